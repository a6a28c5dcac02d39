package filter

import (
	"github.com/notargets/ndfilter/boundary"
	"github.com/notargets/ndfilter/grid"
)

// Request carries the raw arguments of one filter invocation, before
// any validation. Extents, Origins and Modes follow scalar-broadcast
// rules: nil picks the default, one element applies to every filtered
// axis, and an explicit sequence must match the number of filtered axes.
type Request struct {
	Input grid.ArraySpec

	// Extents of the filter window along each filtered axis. Defaults
	// to 3, the classic filter size.
	Extents []int64

	// Origins shift the window center along each filtered axis.
	// Defaults to 0, centered.
	Origins []int64

	// Modes select the boundary extension per filtered axis. Defaults
	// to reflect.
	Modes []boundary.Mode

	// Axes restricts filtering to a subset of input axes. Nil means all
	// axes. Negative values count from the end.
	Axes []int

	// Cval is the fill value for the constant modes.
	Cval float64

	// WeightsDType is the element type of the filter weights, when the
	// caller supplies a weights array. Zero means the weights are
	// generated by the filter itself.
	WeightsDType grid.DType

	// OutputShape overrides the output geometry; nil keeps the input's.
	OutputShape []int64

	Output Output
}

// Plan is the fully normalized form of a Request: full-rank window and
// modes (unfiltered axes carry extent 1), concrete output geometry, the
// dtype the arithmetic runs in, and the index width every participating
// array fits.
type Plan struct {
	Input  grid.ArraySpec
	Output grid.ArraySpec

	Axes   []int
	Window grid.Window
	Modes  []boundary.Mode
	Cval   float64

	WorkDType grid.DType
	Index     grid.IndexType
}

// Normalize validates a request and pins every degree of freedom down.
// All parameter errors come from here; the resolution and generation
// layers below assume normalized inputs and panic instead of returning
// errors.
func Normalize(req Request) (*Plan, error) {
	ndim := req.Input.NDim()
	if ndim < 1 {
		return nil, ErrBadRank
	}

	axes, err := CheckAxes(req.Axes, ndim)
	if err != nil {
		return nil, err
	}
	n := len(axes)

	extents, err := NormalizeExtents(req.Extents, n)
	if err != nil {
		return nil, err
	}

	origins, err := NormalizeOrigins(req.Origins, extents)
	if err != nil {
		return nil, err
	}

	modes, err := NormalizeModes(req.Modes, n)
	if err != nil {
		return nil, err
	}

	// Expand the per-axis arguments to full rank. Unfiltered axes get a
	// single-sample centered window, which resolves every coordinate to
	// itself under any mode.
	fullExtents := make([]int64, ndim)
	fullOrigins := make([]int64, ndim)
	fullModes := make([]boundary.Mode, ndim)
	for i := range fullExtents {
		fullExtents[i] = 1
		fullModes[i] = boundary.Reflect
	}
	for i, ax := range axes {
		fullExtents[ax] = extents[i]
		fullOrigins[ax] = origins[i]
		fullModes[ax] = modes[i]
	}

	complexOutput := req.Input.DType.IsComplex() ||
		(req.WeightsDType != 0 && req.WeightsDType.IsComplex())
	output, err := ResolveOutput(req.Output, req.Input, req.OutputShape, complexOutput)
	if err != nil {
		return nil, err
	}

	integerOutput := req.Output.IsInteger(req.Input.DType)
	for _, m := range fullModes {
		if err := CheckCval(m, req.Cval, integerOutput); err != nil {
			return nil, err
		}
	}

	workDType := InitWeightsDType(req.Input.DType)
	if req.WeightsDType != 0 {
		workDType = WeightsDType(req.Input.DType, req.WeightsDType)
	}

	return &Plan{
		Input:     req.Input,
		Output:    output,
		Axes:      axes,
		Window:    grid.Window{Extents: fullExtents, Origins: fullOrigins},
		Modes:     fullModes,
		Cval:      req.Cval,
		WorkDType: workDType,
		Index:     grid.SelectIndexType(req.Input, output),
	}, nil
}
