package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoError is carried by failures that were built without an error,
// including the zero Result.
var ErrNoError = errors.New("rop: failure without error")

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNoError
	}

	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromTuple builds a Result from the usual (value, error) pair.
func FromTuple[T any](r T, err error) Result[T] {
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success(r)
}

// FromError builds a payload-free Result from an error-only call.
func FromError(err error) Result[struct{}] {
	return FromTuple(struct{}{}, err)
}

// FailFrom re-types a failed result, keeping its error, id and creation time.
// It panics if from is a success.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("rop: FailFrom called on a successful result")
	}

	return Result[Out]{
		err:       from.Err(),
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

// Err returns nil for a success. A failure always reports a non-nil error.
func (r Result[T]) Err() error {
	if !r.isSuccess && r.err == nil {
		return ErrNoError
	}
	return r.err
}

// Get returns the payload and error as a Go tuple.
func (r Result[T]) Get() (T, error) {
	if !r.isSuccess {
		var zero T
		return zero, r.Err()
	}
	return r.result, nil
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports whether r is the zero Result.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess && r.id == uuid.Nil
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
