package filter

import "errors"

// Sentinel errors for parameter validation. Call sites wrap these with
// the offending values, so errors.Is works across the wrapping.
var (
	ErrBadMode     = errors.New("filter: boundary mode not supported")
	ErrBadOrigin   = errors.New("filter: invalid origin")
	ErrBadExtent   = errors.New("filter: extents must be positive")
	ErrBadLength   = errors.New("filter: sequence must have length equal to number of filtered axes")
	ErrBadAxis     = errors.New("filter: axis out of range")
	ErrDupAxes     = errors.New("filter: axes must be unique")
	ErrBadRank     = errors.New("filter: input must have at least one axis")
	ErrOutputShape = errors.New("filter: output shape not correct")
	ErrOutputDType = errors.New("filter: output must have complex dtype")
	ErrBadCval     = errors.New("filter: non-finite fill value with integer output")
)
