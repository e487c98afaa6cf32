package outcome

import (
	"time"

	"github.com/google/uuid"
)

type Provenance interface {
	// Id identifies the instance
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// OptionProvider defines read access to an optional value
type OptionProvider[T any] interface {
	Provenance
	// IsSome returns true if a value is present
	IsSome() bool
	// IsNone returns true if no value is present
	IsNone() bool
	// Unwrap returns the held value or panics with a *Fault when absent
	Unwrap() T
}

// ResultProvider defines read access to a success/failure outcome
type ResultProvider[T any] interface {
	Provenance
	// IsOk returns true if the operation was successful
	IsOk() bool
	// IsErr returns true if the operation failed
	IsErr() bool
	// Unwrap returns the success value or panics with the error value
	Unwrap() T
}

var (
	_ OptionProvider[int] = Option[int]{}
	_ ResultProvider[int] = Result[int, error]{}
)
