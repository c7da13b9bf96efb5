package eval

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tsdag/core"
)

// classify wraps a downstream error as core.ErrEvaluationFailure unless it
// already carries one of the five sentinel kinds, in which case it
// propagates verbatim (spec.md §7: "EvaluationFailure — downstream library
// error surfaced from a combiner, propagated verbatim" applies only to
// errors that aren't already one of the other four kinds).
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		core.ErrInvalidArgument,
		core.ErrTypeMismatch,
		core.ErrShapeMismatch,
		core.ErrInternalInvariantViolation,
		core.ErrEvaluationFailure,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", err.Error(), core.ErrEvaluationFailure)
}
