package builder

import (
	"fmt"

	"github.com/notargets/ndfilter/boundary"
)

// resolveTile is the @inner width of generated resolve kernels. 256
// stays under every backend's thread-per-block limit.
const resolveTile = 256

// ResolveKernelName returns the canonical kernel name for a mode's
// resolve kernel. Mode tags contain '-', which C identifiers cannot.
func ResolveKernelName(mode boundary.Mode, floatIx bool) string {
	name := "resolve_" + string(mode)
	if floatIx {
		name = "resolve_float_" + string(mode)
	}
	return sanitizeIdent(name)
}

func sanitizeIdent(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}

// GenerateResolveKernel emits a standalone kernel that maps a batch of
// raw coordinates through the boundary block for mode against a single
// axis of size xsize. One thread per coordinate, tiled over @outer
// blocks. The kernel exists to run the generated boundary arithmetic on
// a real device and compare it against the host resolvers; it is also
// the template for splicing boundary blocks into larger kernels.
func (kb *Builder) GenerateResolveKernel(name string, mode boundary.Mode, floatIx bool) string {
	coordType := "int_t"
	if floatIx {
		coordType = "real_t"
	}
	ops := IndentBlock(kb.BoundaryOps(mode, "ix", "xsize", floatIx), 4)

	return fmt.Sprintf(`@kernel void %s(const int_t n,
                const int_t xsize,
                const %s* raw,
                %s* resolved) {
	for (int block = 0; block < (n + %d) / %d; ++block; @outer) {
		for (int t = 0; t < %d; ++t; @inner) {
			const int_t i = block * %d + t;
			if (i < n) {
				%s ix = raw[i];
%s
				resolved[i] = ix;
			}
		}
	}
}
`, name, coordType, coordType, resolveTile-1, resolveTile, resolveTile, resolveTile, coordType, ops)
}
