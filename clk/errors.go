package clk

import "errors"

var (
	ErrUnknownClock  = errors.New("unknown clock")
	ErrDuplicateName = errors.New("duplicate clock name")
	ErrInvalidRate   = errors.New("invalid rate")
	ErrUnsupported   = errors.New("operation not supported")
	ErrLockTimeout   = errors.New("PLL lock timeout")
	ErrMapFailure    = errors.New("couldn't map registers")
	ErrCycleDetected = errors.New("clock cycle detected")
)
