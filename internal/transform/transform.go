// Package transform implements named, string-parameterized what-if
// mutations over a SimulationInput, mirroring the teacher's
// TransformRegistry/ScenarioTransform pattern narrowed to this engine's
// single-employee model.
package transform

import (
	"fmt"

	"github.com/rgehrsitz/fersproj/internal/domain"
)

// InputTransform mutates a copy of a SimulationInput.
type InputTransform interface {
	// Apply returns a modified copy of base; it never mutates base itself.
	Apply(base domain.SimulationInput) (domain.SimulationInput, error)

	// Name is the transform's registry identifier.
	Name() string

	// Description is a human-readable summary of what Apply does.
	Description() string

	// Validate reports whether the transform's parameters are sane for
	// base, without applying it.
	Validate(base domain.SimulationInput) error
}

// TransformError reports a failure during transform construction,
// validation, or application.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError builds a TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{TransformName: transformName, Operation: operation, Reason: reason, Err: err}
}
