package boundary

// Resolve maps the raw coordinate ix onto the axis [0, xsize) under
// mode, or returns OutOfBounds for the constant modes. xsize must be
// positive and mode valid; both are established at parameter
// normalization, so Resolve itself does not revalidate.
func Resolve(mode Mode, ix, xsize int64) int64 {
	return evalInt(RuleFor(mode), ix, xsize, false)
}

// Resolve32 is Resolve computed entirely in 32-bit arithmetic. It
// matches a device kernel built with the narrow index type exactly,
// including any overflow behavior, which is what makes it useful for
// checking narrow kernels against the host.
func Resolve32(mode Mode, ix, xsize int32) int32 {
	return int32(evalInt(RuleFor(mode), int64(ix), int64(xsize), true))
}

// ResolveFloat resolves a floating coordinate, as produced by a
// geometric mapping stage. Division stays floating, the remainder is
// fmod, and casts truncate toward zero. The constant modes return
// OutOfBounds as -1.
func ResolveFloat(mode Mode, ix float64, xsize int64) float64 {
	return evalFloat(RuleFor(mode), ix, xsize)
}
