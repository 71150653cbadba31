package attendance

import "errors"

// Attendance domain errors
var (
	ErrUnknownPunchType = errors.New("unknown punch type")
)
