package builder

import (
	"fmt"
	"strings"
)

// IndicesOps renders the decomposition of a flattened window position i
// into per-axis coordinates ind_0 .. ind_{n-1}, each shifted down by
// its offset. Axes peel off from the last, fastest-varying one; axis 0
// takes the remaining quotient without a modulo. The ysize_j extent
// defines come from the preamble, so the same block serves any window
// of the configured rank. Filter kernels pass grid.Window.Offsets so
// coordinates come out relative to the window center.
func (kb *Builder) IndicesOps(offsets []int64) string {
	if len(offsets) != kb.Window.NDim() {
		panic(fmt.Sprintf("%d offsets for a %d-axis window", len(offsets), kb.Window.NDim()))
	}

	t := kb.IntType.CName()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s _i = i;\n", t))
	for j := len(offsets) - 1; j >= 1; j-- {
		sb.WriteString(fmt.Sprintf("%s ind_%d = _i %% ysize_%d - %d; _i /= ysize_%d;\n",
			t, j, j, offsets[j], j))
	}
	sb.WriteString(fmt.Sprintf("%s ind_0 = _i - %d;\n", t, offsets[0]))
	return sb.String()
}

// WindowIndicesOps is IndicesOps with the offsets taken from the
// builder's own window.
func (kb *Builder) WindowIndicesOps() string {
	return kb.IndicesOps(kb.Window.Offsets())
}
