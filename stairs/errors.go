package stairs

import (
	"errors"
	"strconv"
)

var (
	// ErrNegativeSteps is matched by NegativeStepsError.
	ErrNegativeSteps = errors.New("stairs: negative step count")

	// ErrOverflow is matched by OverflowError.
	ErrOverflow = errors.New("stairs: count overflows int64")

	// ErrUnknownStrategy is matched by UnknownStrategyError.
	ErrUnknownStrategy = errors.New("stairs: unknown strategy")
)

// NegativeStepsError is returned by the validating strategies when asked to
// count a staircase with fewer than zero steps.
type NegativeStepsError struct{ Steps int }

// Error implements the error interface.
func (e NegativeStepsError) Error() string {
	// Example: stairs: negative step count -3
	return "stairs: negative step count " + strconv.Itoa(e.Steps)
}

// Is reports ErrNegativeSteps as a match.
func (e NegativeStepsError) Is(target error) bool { return target == ErrNegativeSteps }

// OverflowError is returned by Table when the count for Steps does not fit in
// an int64.
type OverflowError struct{ Steps int }

// Error implements the error interface.
func (e OverflowError) Error() string {
	// Example: stairs: count for 80 steps overflows int64
	return "stairs: count for " + strconv.Itoa(e.Steps) + " steps overflows int64"
}

// Is reports ErrOverflow as a match.
func (e OverflowError) Is(target error) bool { return target == ErrOverflow }

// UnknownStrategyError is returned by (*Registry).Resolve for a name nothing
// was provided under.
type UnknownStrategyError struct{ Name string }

// Error implements the error interface.
func (e UnknownStrategyError) Error() string {
	// Example: stairs: unknown strategy "fast"
	return "stairs: unknown strategy " + strconv.Quote(e.Name)
}

// Is reports ErrUnknownStrategy as a match.
func (e UnknownStrategyError) Is(target error) bool { return target == ErrUnknownStrategy }
