package filter

import "github.com/notargets/ndfilter/grid"

// The promotion tables follow standard array-library type promotion.
// Narrow integers fit in a float32 mantissa; 32- and 64-bit integers do
// not, so they promote to float64 (and complex128) instead.

// PromoteReal returns the common type of dt and float32.
func PromoteReal(dt grid.DType) grid.DType {
	switch dt {
	case grid.Int8, grid.Int16, grid.Uint8, grid.Uint16, grid.Float32:
		return grid.Float32
	case grid.Int32, grid.Int64, grid.Uint32, grid.Uint64, grid.Float64:
		return grid.Float64
	case grid.Complex64, grid.Complex128:
		return dt
	}
	panic("filter: unknown dtype")
}

// PromoteComplex returns the common type of dt and complex64.
func PromoteComplex(dt grid.DType) grid.DType {
	switch dt {
	case grid.Int8, grid.Int16, grid.Uint8, grid.Uint16, grid.Float32, grid.Complex64:
		return grid.Complex64
	case grid.Int32, grid.Int64, grid.Uint32, grid.Uint64, grid.Float64, grid.Complex128:
		return grid.Complex128
	}
	panic("filter: unknown dtype")
}

// WeightsDType returns the dtype the filter arithmetic runs in for a
// given input and weights pair. Complex anywhere makes the whole
// computation complex. Integer weights are carried as float64, matching
// the SciPy convention, so integer kernels lose no precision. Otherwise
// the input's real component decides.
func WeightsDType(input, weights grid.DType) grid.DType {
	if weights.IsComplex() || input.IsComplex() {
		return PromoteComplex(input.Real())
	}
	if weights.IsInteger() {
		return grid.Float64
	}
	return PromoteReal(input.Real())
}

// InitWeightsDType returns the dtype for weights that are generated
// rather than supplied, as the morphology filters do before the weights
// array exists.
func InitWeightsDType(input grid.DType) grid.DType {
	if input.IsComplex() {
		return PromoteComplex(input.Real())
	}
	return PromoteReal(input.Real())
}
