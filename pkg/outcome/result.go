package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either one success value of type T or one error value of
// type E, never both. The variant is fixed at construction.
type Result[T any, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

func Success[T any, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsErr() bool {
	return !r.isSuccess
}

// Ok converts the Result into an Option over the success payload:
// present on success, absent on failure. Provenance carries over.
func (r Result[T, E]) Ok() Option[T] {
	return Option[T]{
		value:     r.result,
		present:   r.isSuccess,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// Err converts the Result into an Option over the error payload:
// present on failure, absent on success. Provenance carries over.
func (r Result[T, E]) Err() Option[E] {
	return Option[E]{
		value:     r.err,
		present:   !r.isSuccess,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// Unwrap returns the success value. On a failure it panics with the
// held error value itself rather than a *Fault; the failure payload
// already carries the caller's description of what went wrong.
func (r Result[T, E]) Unwrap() T {
	if !r.isSuccess {
		panic(r.err)
	}
	return r.result
}

func (r Result[T, E]) Value() (T, bool) {
	return r.result, r.isSuccess
}

func (r Result[T, E]) Error() (E, bool) {
	return r.err, !r.isSuccess
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}
