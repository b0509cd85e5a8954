package check

import (
	"github.com/ib-77/check/pkg/rop"
)

// Err returns the error of a failed outcome and nil for a successful one.
// The payload, if any, is not looked at. A failure that reports no error
// yields rop.ErrNoError.
func Err(o rop.Outcome) error {
	if o.IsSuccess() {
		return nil
	}

	if err := o.Err(); !rop.IsNil(err) {
		return err
	}
	return rop.ErrNoError
}

// Into stores the payload of a successful result in dst and returns nil.
// A failed result leaves dst untouched and returns its error.
// A nil dst discards the payload.
func Into[T any](r rop.Result[T], dst *T) error {
	if r.IsFailure() {
		return r.Err()
	}

	if dst != nil {
		*dst = r.Result()
	}
	return nil
}

// Propagate reports whether r failed and, if so, the failure re-typed for a
// caller returning rop.Result[Out]:
//
//	if out, failed := check.Propagate[Out](step()); failed {
//		return out
//	}
func Propagate[Out, In any](r rop.Result[In]) (rop.Result[Out], bool) {
	if r.IsFailure() {
		return rop.FailFrom[In, Out](r), true
	}
	return rop.Result[Out]{}, false
}

// PropagateInto is Propagate that also stores a successful payload in dst.
func PropagateInto[Out, In any](r rop.Result[In], dst *In) (rop.Result[Out], bool) {
	if out, failed := Propagate[Out](r); failed {
		return out, true
	}

	if dst != nil {
		*dst = r.Result()
	}
	return rop.Result[Out]{}, false
}
