package timecard

import "errors"

var (
	ErrInvalidRange    = errors.New("end must not precede start")
	ErrMissingTimeZone = errors.New("reference time zone is not configured")
)
