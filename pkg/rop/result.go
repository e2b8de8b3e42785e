package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome is either a success carrying S or a failure carrying E.
type Outcome[S, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    S
	err       E
	isSuccess bool
}

// Result is the common case of an outcome whose failure is a Go error.
type Result[T any] = Outcome[T, error]

func Ok[S, E any](r S) Outcome[S, E] {
	return Outcome[S, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[S, E any](err E) Outcome[S, E] {
	return Outcome[S, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Success[T any](r T) Result[T] {
	return Ok[T, error](r)
}

func Fail[T any](err error) Result[T] {
	return Err[T](err)
}

// FailFrom moves a failure onto a new success type. Payload, id and
// creation time are kept. Must only be called on a failure.
func FailFrom[Out, S, E any](from Outcome[S, E]) Outcome[Out, E] {
	return Outcome[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom moves a success onto a new failure type. Payload, id and
// creation time are kept. Must only be called on a success.
func SuccessFrom[F, S, E any](from Outcome[S, E]) Outcome[S, F] {
	return Outcome[S, F]{
		result:    from.result,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// From adopts any type exposing the outcome accessors. An Outcome passed in
// is returned as is.
func From[S, E any](src WithError[S, E]) Outcome[S, E] {
	if o, ok := src.(Outcome[S, E]); ok {
		return o
	}
	if src.IsSuccess() {
		return Ok[S, E](src.Result())
	}
	return Err[S](src.Err())
}

func (r Outcome[S, E]) Result() S {
	return r.result
}

func (r Outcome[S, E]) Err() E {
	return r.err
}

// Get returns both payloads and whether the outcome is a success.
// Only the payload of the active variant is meaningful.
func (r Outcome[S, E]) Get() (S, E, bool) {
	return r.result, r.err, r.isSuccess
}

func (r Outcome[S, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Outcome[S, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Outcome[S, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Outcome[S, E]) Id() uuid.UUID {
	return r.id
}

func (r Outcome[S, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
