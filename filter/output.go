package filter

import (
	"fmt"

	"github.com/notargets/ndfilter/grid"
)

// Output selects where a filter call writes its result. The zero value
// allocates a new array with the input's dtype. Setting DType allocates
// with an explicit dtype. Setting Spec reuses an existing array, which
// must already have the right shape.
type Output struct {
	Spec  *grid.ArraySpec
	DType grid.DType
}

// IsInteger reports whether the output dtype will be integral, which is
// what gates the finite-cval requirement.
func (o Output) IsInteger(input grid.DType) bool {
	switch {
	case o.Spec != nil:
		return o.Spec.DType.IsInteger()
	case o.DType != 0:
		return o.DType.IsInteger()
	}
	return input.IsInteger()
}

// ResolveOutput pins down the concrete output geometry. shape defaults
// to the input's shape. With complexOutput set, a caller-provided array
// must already be complex, while a caller-provided dtype is promoted in
// place (the silent-precision-loss alternative would discard imaginary
// parts).
func ResolveOutput(out Output, input grid.ArraySpec, shape []int64, complexOutput bool) (grid.ArraySpec, error) {
	if shape == nil {
		shape = input.Shape
	}
	shape = append([]int64(nil), shape...)

	switch {
	case out.Spec != nil:
		if !equalShape(out.Spec.Shape, shape) {
			return grid.ArraySpec{}, fmt.Errorf("%w: got %v, want %v",
				ErrOutputShape, out.Spec.Shape, shape)
		}
		if complexOutput && !out.Spec.DType.IsComplex() {
			return grid.ArraySpec{}, fmt.Errorf("%w (actual: %v)",
				ErrOutputDType, out.Spec.DType)
		}
		return *out.Spec, nil

	case out.DType != 0:
		dt := out.DType
		if complexOutput && !dt.IsComplex() {
			dt = PromoteComplex(dt)
		}
		return grid.ArraySpec{Shape: shape, DType: dt}, nil
	}

	dt := input.DType
	if complexOutput {
		dt = PromoteComplex(dt)
	}
	return grid.ArraySpec{Shape: shape, DType: dt}, nil
}

func equalShape(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
