package check

import (
	"github.com/ib-77/check/pkg/rop"
	"import.name/pan"
)

// Do unwinds to the enclosing Guard or Run if o failed.
func Do(o rop.Outcome) {
	if err := Err(o); err != nil {
		pan.Panic(err)
	}
}

// Must returns the payload of r, or unwinds to the enclosing Guard or Run
// with its error.
func Must[T any](r rop.Result[T]) T {
	Do(r)
	return r.Result()
}

// MustInto stores the payload of r in dst, or unwinds to the enclosing Guard
// or Run with its error. A nil dst discards the payload.
func MustInto[T any](r rop.Result[T], dst *T) {
	v := Must(r)
	if dst != nil {
		*dst = v
	}
}

// Guard calls f and returns its value as a success. A failure raised by Do,
// Must or MustInto while f runs becomes the returned failure, with the error
// unchanged. Other panics pass through.
func Guard[T any](f func() T) rop.Result[T] {
	var v T

	if err := pan.Recover(func() {
		v = f()
	}); err != nil {
		return rop.Fail[T](err)
	}

	return rop.Success(v)
}

// Run is Guard for a function with no result.
func Run(f func()) error {
	return pan.Recover(f)
}
