package grid

import "fmt"

// DType identifies the element type of an array taking part in a filter
// call. The set is closed: promotion rules and generated kernel sources
// switch over it exhaustively.
type DType int

const (
	Int8 DType = iota + 1
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

// Kind groups DTypes into the four numeric families that drive dtype
// promotion and output validation.
type Kind int

const (
	KindSignedInt Kind = iota + 1
	KindUnsignedInt
	KindFloat
	KindComplex
)

// Kind returns the numeric family of dt.
func (dt DType) Kind() Kind {
	switch dt {
	case Int8, Int16, Int32, Int64:
		return KindSignedInt
	case Uint8, Uint16, Uint32, Uint64:
		return KindUnsignedInt
	case Float32, Float64:
		return KindFloat
	case Complex64, Complex128:
		return KindComplex
	}
	panic(fmt.Sprintf("grid: unknown DType %d", dt))
}

// Size returns the element size in bytes.
func (dt DType) Size() int64 {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	}
	panic(fmt.Sprintf("grid: unknown DType %d", dt))
}

// Real returns the component type of a complex DType, and dt itself
// otherwise.
func (dt DType) Real() DType {
	switch dt {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	}
	return dt
}

// IsInteger reports whether dt is a signed or unsigned integer type.
func (dt DType) IsInteger() bool {
	k := dt.Kind()
	return k == KindSignedInt || k == KindUnsignedInt
}

// IsComplex reports whether dt is a complex type.
func (dt DType) IsComplex() bool {
	return dt.Kind() == KindComplex
}

func (dt DType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	}
	return fmt.Sprintf("DType(%d)", int(dt))
}

// CName returns the type name used when dt appears in generated kernel
// source. Complex types use the C++ template spelling understood by the
// device compilers.
func (dt DType) CName() string {
	switch dt {
	case Int8:
		return "char"
	case Int16:
		return "short"
	case Int32:
		return "int"
	case Int64:
		return "long long"
	case Uint8:
		return "unsigned char"
	case Uint16:
		return "unsigned short"
	case Uint32:
		return "unsigned int"
	case Uint64:
		return "unsigned long long"
	case Float32:
		return "float"
	case Float64:
		return "double"
	case Complex64:
		return "complex<float>"
	case Complex128:
		return "complex<double>"
	}
	panic(fmt.Sprintf("grid: unknown DType %d", dt))
}
