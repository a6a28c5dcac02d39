package boundary

// Mode names the rule that maps a window coordinate falling outside an
// axis back onto it. The tags and their semantics match the
// scipy.ndimage boundary modes, so callers migrating filter code keep
// their mode strings unchanged.
type Mode string

const (
	// Reflect mirrors about the outer edge of the boundary sample, so
	// the edge value repeats: (d c b a | a b c d | d c b a).
	Reflect Mode = "reflect"

	// GridMirror is an alias for Reflect kept for spline-order symmetry
	// with GridWrap and GridConstant. Same arithmetic.
	GridMirror Mode = "grid-mirror"

	// Mirror reflects about the center of the boundary sample, so the
	// edge value does not repeat: (d c b | a b c d | c b a).
	Mirror Mode = "mirror"

	// Nearest clamps to the closest edge sample:
	// (a a a a | a b c d | d d d d).
	Nearest Mode = "nearest"

	// Wrap is periodic with the first and last samples identified, so
	// the period is xsize-1. Kept for compatibility with legacy
	// interpolation semantics; GridWrap is the usual choice.
	Wrap Mode = "wrap"

	// GridWrap is exactly periodic with period xsize:
	// (a b c d | a b c d | a b c d).
	GridWrap Mode = "grid-wrap"

	// Constant resolves every outside coordinate to OutOfBounds and the
	// caller substitutes a fill value: (k k k k | a b c d | k k k k).
	Constant Mode = "constant"

	// GridConstant resolves like Constant. The two differ downstream in
	// how the fill value participates in weighting, not in coordinate
	// resolution.
	GridConstant Mode = "grid-constant"
)

// OutOfBounds is the resolved coordinate meaning "outside the domain".
// Only the constant modes produce it; consumers substitute their fill
// value. Every in-domain resolution is non-negative, so the sentinel
// never collides with a real coordinate.
const OutOfBounds int64 = -1

// Modes returns all supported modes in a stable order.
func Modes() []Mode {
	return []Mode{
		Reflect, GridMirror, Mirror, Nearest,
		Wrap, GridWrap, Constant, GridConstant,
	}
}

// Valid reports whether m is a supported mode tag.
func (m Mode) Valid() bool {
	switch m {
	case Reflect, GridMirror, Mirror, Nearest, Wrap, GridWrap, Constant, GridConstant:
		return true
	}
	return false
}

// UsesFill reports whether m can resolve to OutOfBounds, obligating the
// caller to supply a fill value.
func (m Mode) UsesFill() bool {
	return m == Constant || m == GridConstant
}

func (m Mode) String() string {
	return string(m)
}
