package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolStopped is returned when work is submitted to a stopped pool
	ErrPoolStopped = errors.New("worker pool is stopped")
	// ErrUnknownFilter is returned when a filter name is not registered
	ErrUnknownFilter = errors.New("filter not found")
)

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter could not be evaluated against a result
	EvaluationError struct {
		Expression string
		ItemID     string
		ItemTitle  string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation of '%s' failed on %s (%s): %v", e.Expression, e.ItemID, e.ItemTitle, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
