package grid

import "fmt"

// Window describes a filter footprint: per-axis extents and per-axis
// origin shifts of the window center. A nil Origins means centered.
type Window struct {
	Extents []int64
	Origins []int64
}

// NDim returns the number of window axes.
func (w Window) NDim() int {
	return len(w.Extents)
}

// Count returns the number of positions in the window.
func (w Window) Count() int64 {
	n := int64(1)
	for _, e := range w.Extents {
		n *= e
	}
	return n
}

// Offsets returns the per-axis center offsets, extent/2 + origin. A
// window coordinate produced by DecomposeIndex is relative to these, so
// position 0 of a centered 3-wide window maps to coordinate -1.
func (w Window) Offsets() []int64 {
	if w.Origins != nil && len(w.Origins) != len(w.Extents) {
		panic(fmt.Sprintf("grid: %d origins for %d window axes", len(w.Origins), len(w.Extents)))
	}
	offsets := make([]int64, len(w.Extents))
	for j, e := range w.Extents {
		offsets[j] = e / 2
		if w.Origins != nil {
			offsets[j] += w.Origins[j]
		}
	}
	return offsets
}

// DecomposeIndex splits the flattened window position i into per-axis
// coordinates relative to the window center, writing them into ind. The
// flattening is row-major, so axes peel off from the last (fastest)
// axis down to axis 0, which takes the remaining quotient without a
// modulo. This is the same arithmetic the generated kernels perform; see
// Builder.IndicesOps.
func DecomposeIndex(i int64, extents, offsets []int64, ind []int64) {
	for j := len(extents) - 1; j >= 1; j-- {
		ind[j] = i%extents[j] - offsets[j]
		i /= extents[j]
	}
	ind[0] = i - offsets[0]
}

// Decompose is DecomposeIndex over the window's own extents and offsets.
func (w Window) Decompose(i int64, ind []int64) {
	DecomposeIndex(i, w.Extents, w.Offsets(), ind)
}
