package grid

// IndexType selects the integer width used for element addressing inside
// generated kernels.
type IndexType int

const (
	// Index32 is safe when every participating array spans fewer than
	// 2^31 bytes. Narrow arithmetic is measurably faster on device.
	Index32 IndexType = iota + 1
	// Index64 is required once any reachable byte offset can exceed a
	// signed 32-bit value.
	Index64
)

// maxNarrowSpan is one past the largest byte span addressable with
// 32-bit signed offsets.
const maxNarrowSpan = int64(1) << 31

// SelectIndexType returns the narrowest index width that can address
// every element of each spec. The decision point is the reachable byte
// span, not the element count: a handful of elements strided across a
// large allocation still needs wide indices.
func SelectIndexType(specs ...ArraySpec) IndexType {
	for _, spec := range specs {
		if spec.ByteSpan() >= maxNarrowSpan {
			return Index64
		}
	}
	return Index32
}

// Size returns the index width in bytes.
func (t IndexType) Size() int64 {
	if t == Index32 {
		return 4
	}
	return 8
}

// CName returns the integer type name used in generated kernel source.
// The wide type is spelled ptrdiff_t so the device compiler picks its
// native pointer-difference width.
func (t IndexType) CName() string {
	if t == Index32 {
		return "int"
	}
	return "ptrdiff_t"
}

func (t IndexType) String() string {
	if t == Index32 {
		return "int32"
	}
	return "int64"
}
