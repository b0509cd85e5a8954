package rop

import "time"

// Outcome is the discriminant of a fallible computation, without its payload.
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Err returns the error if operation failed
	Err() error
}

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	Outcome
}

var (
	_ Outcome        = Result[struct{}]{}
	_ WithError[int] = Result[int]{}
)
