package rop

import "time"

type ResultProvider[S any] interface {
	// Result returns the success payload
	Result() S
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

type ErrorProvider[E any] interface {
	// Err returns the failure payload
	Err() E
}

// WithError is the set of read accessors every outcome-like type exposes.
// The combinators in solo, async and chain are defined purely in terms of it.
type WithError[S, E any] interface {
	ResultProvider[S]
	ErrorProvider[E]
	// IsSuccess returns true if the outcome holds a success payload
	IsSuccess() bool
	// IsFailure returns true if the outcome holds a failure payload
	IsFailure() bool
}

var _ WithError[int, error] = Outcome[int, error]{}
