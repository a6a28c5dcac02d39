package filter

import (
	"fmt"
	"math"

	"github.com/notargets/ndfilter/boundary"
)

// CheckMode validates a boundary mode tag.
func CheckMode(mode boundary.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w (actual: %q)", ErrBadMode, string(mode))
	}
	return nil
}

// fixSequence broadcasts scalar-style arguments across n axes. A nil
// slice broadcasts def, a one-element slice broadcasts its value, and an
// explicit sequence must have exactly n entries. The returned slice is
// always a fresh copy.
func fixSequence[T any](vals []T, n int, name string, def T) ([]T, error) {
	switch len(vals) {
	case 0:
		vals = []T{def}
		fallthrough
	case 1:
		out := make([]T, n)
		for i := range out {
			out[i] = vals[0]
		}
		return out, nil
	case n:
		return append([]T(nil), vals...), nil
	}
	return nil, fmt.Errorf("%w: %s has %d entries for %d axes", ErrBadLength, name, len(vals), n)
}

// NormalizeExtents broadcasts window extents across n filtered axes and
// rejects non-positive sizes. Nil defaults to the classic 3-wide window.
func NormalizeExtents(extents []int64, n int) ([]int64, error) {
	out, err := fixSequence(extents, n, "size", int64(3))
	if err != nil {
		return nil, err
	}
	for _, e := range out {
		if e < 1 {
			return nil, fmt.Errorf("%w (actual: %d)", ErrBadExtent, e)
		}
	}
	return out, nil
}

// NormalizeOrigins broadcasts window origins across the filtered axes,
// one per extent, and checks each against its window. Nil means
// centered.
func NormalizeOrigins(origins []int64, extents []int64) ([]int64, error) {
	out, err := fixSequence(origins, len(extents), "origin", int64(0))
	if err != nil {
		return nil, err
	}
	for i, origin := range out {
		if err := CheckOrigin(origin, extents[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// NormalizeModes broadcasts boundary modes across n filtered axes and
// validates each tag. Nil defaults to reflect.
func NormalizeModes(modes []boundary.Mode, n int) ([]boundary.Mode, error) {
	out, err := fixSequence(modes, n, "mode", boundary.Reflect)
	if err != nil {
		return nil, err
	}
	for _, m := range out {
		if err := CheckMode(m); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CheckOrigin validates one origin against its window extent: the
// shifted center, extent/2 + origin, must still fall inside the window.
func CheckOrigin(origin, extent int64) error {
	if c := extent/2 + origin; c < 0 || c >= extent {
		return fmt.Errorf("%w: origin %d with extent %d", ErrBadOrigin, origin, extent)
	}
	return nil
}

// CheckAxes normalizes an axis selection against an ndim-dimensional
// input. A nil selection means every axis. Negative axes count from the
// end. The result is a fresh slice with all axes in [0, ndim) and no
// duplicates.
func CheckAxes(axes []int, ndim int) ([]int, error) {
	if axes == nil {
		all := make([]int, ndim)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	out := make([]int, len(axes))
	seen := make(map[int]bool, len(axes))
	for i, ax := range axes {
		if ax < -ndim || ax > ndim-1 {
			return nil, fmt.Errorf("%w: axis %d for rank %d", ErrBadAxis, ax, ndim)
		}
		if ax < 0 {
			ax += ndim
		}
		if seen[ax] {
			return nil, fmt.Errorf("%w: axis %d repeats", ErrDupAxes, ax)
		}
		seen[ax] = true
		out[i] = ax
	}
	return out, nil
}

// CheckCval rejects a non-finite fill value when the output has an
// integer dtype, where NaN or infinity cannot round-trip. Only the
// plain constant mode is affected: grid-constant feeds the fill through
// the weighting arithmetic, which stays floating until the final store.
func CheckCval(mode boundary.Mode, cval float64, integerOutput bool) error {
	if mode == boundary.Constant && integerOutput && !isFinite(cval) {
		return fmt.Errorf("%w (cval: %v)", ErrBadCval, cval)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
