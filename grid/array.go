package grid

import "fmt"

// ArraySpec describes the geometry of one array taking part in a filter
// call: per-axis extents, per-axis strides in elements, and the element
// type. Strides may be negative (reversed views) or zero (broadcast
// axes); a nil Strides means C-contiguous with the last axis fastest.
type ArraySpec struct {
	Shape   []int64
	Strides []int64
	DType   DType
}

// ContiguousStrides returns row-major element strides for shape.
func ContiguousStrides(shape []int64) []int64 {
	strides := make([]int64, len(shape))
	stride := int64(1)
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

// NDim returns the number of axes.
func (a ArraySpec) NDim() int {
	return len(a.Shape)
}

// Count returns the total number of elements.
func (a ArraySpec) Count() int64 {
	n := int64(1)
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// ByteSpan returns the size in bytes of the smallest contiguous region
// containing every element the array can address. The span follows the
// strides rather than the element count: a sliced or broadcast view can
// reach addresses far beyond Count()*Size, and it is the reachable
// addresses that decide whether narrow index arithmetic is safe.
func (a ArraySpec) ByteSpan() int64 {
	strides := a.Strides
	if strides == nil {
		strides = ContiguousStrides(a.Shape)
	}
	if len(strides) != len(a.Shape) {
		panic(fmt.Sprintf("grid: %d strides for %d axes", len(strides), len(a.Shape)))
	}
	span := int64(0)
	for i, d := range a.Shape {
		s := strides[i]
		if s < 0 {
			s = -s
		}
		span += (d - 1) * s
	}
	return (span + 1) * a.DType.Size()
}
