package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Option holds either one value of type T or nothing. The variant is
// fixed at construction and never changes afterwards.
type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	present   bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:     v,
		present:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Option[T] {
	return Option[T]{
		present:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the held value. When the Option is absent it panics
// with a *Fault; use Match or Value for the total access path.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(NewFault(absentUnwrapMessage))
	}
	return o.value
}

func (o Option[T]) Value() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) Id() uuid.UUID {
	return o.id
}

func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}
