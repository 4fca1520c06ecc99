package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for configuration and parameter handling.
var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrUnknownParam indicates a parameter name no component recognises.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")

	// ErrUnknownPreset indicates a preset lookup miss.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")

	// ErrInvalidBounds indicates a viewport too small to hold the ball.
	ErrInvalidBounds = errors.New("dynamo: viewport smaller than ball")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Name, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// NewParamError is shorthand for a bounds violation on name.
func NewParamError(name string, value float64) error {
	return &ParamError{Name: name, Value: value, Wrapped: ErrParameterBounds}
}
