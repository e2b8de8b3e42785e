package chain

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/async"
)

// Chain wraps a rop.Outcome with context to enable fluent async chaining.
// The first transformation error stops the chain; later steps are not invoked.
type Chain[S, E any] struct {
	ctx    context.Context
	result rop.Outcome[S, E]
	err    error
}

// Start creates a new chain from a rop.Outcome
func Start[S, E any](ctx context.Context, result rop.Outcome[S, E]) *Chain[S, E] {
	return &Chain[S, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[S, E any](ctx context.Context, value S) *Chain[S, E] {
	return Start(ctx, rop.Ok[S, E](value))
}

// Result returns the underlying outcome, or the error that stopped the chain
func (c *Chain[S, E]) Result() (rop.Outcome[S, E], error) {
	return c.result, c.err
}

func (c *Chain[S, E]) Err() error {
	return c.err
}

func (c *Chain[S, E]) next(result rop.Outcome[S, E], err error) *Chain[S, E] {
	return &Chain[S, E]{ctx: c.ctx, result: result, err: err}
}

func stopped[S, E, U, F any](c *Chain[S, E]) *Chain[U, F] {
	return &Chain[U, F]{ctx: c.ctx, err: c.err}
}

// Map transforms the success payload without changing its type
func (c *Chain[S, E]) Map(f async.Func[S, S]) *Chain[S, E] {
	if c.err != nil {
		return c
	}
	return c.next(async.Map(c.ctx, c.result, f))
}

// AndThen chains a step that keeps both payload types
func (c *Chain[S, E]) AndThen(f async.Func[S, rop.Outcome[S, E]]) *Chain[S, E] {
	if c.err != nil {
		return c
	}
	return c.next(async.AndThen(c.ctx, c.result, f))
}

// OrElse gives a failure a chance to recover into a success
func (c *Chain[S, E]) OrElse(f async.Func[E, rop.Outcome[S, E]]) *Chain[S, E] {
	if c.err != nil {
		return c
	}
	return c.next(async.OrElse(c.ctx, c.result, f))
}

// Inspect performs a side effect on success without changing the result
func (c *Chain[S, E]) Inspect(f async.Effect[S]) *Chain[S, E] {
	if c.err != nil {
		return c
	}
	return c.next(async.Inspect(c.ctx, c.result, f))
}

func (c *Chain[S, E]) InspectErr(f async.Effect[E]) *Chain[S, E] {
	if c.err != nil {
		return c
	}
	return c.next(async.InspectErr(c.ctx, c.result, f))
}

// Map chains a transformation to a new success type
func Map[S, E, U any](c *Chain[S, E], f async.Func[S, U]) *Chain[U, E] {
	if c.err != nil {
		return stopped[S, E, U, E](c)
	}
	result, err := async.Map(c.ctx, c.result, f)
	return &Chain[U, E]{ctx: c.ctx, result: result, err: err}
}

// MapErr chains a transformation to a new failure type
func MapErr[S, E, F any](c *Chain[S, E], f async.Func[E, F]) *Chain[S, F] {
	if c.err != nil {
		return stopped[S, E, S, F](c)
	}
	result, err := async.MapErr(c.ctx, c.result, f)
	return &Chain[S, F]{ctx: c.ctx, result: result, err: err}
}

// Then chains a step that returns rop.Outcome[U, E]
func Then[S, E, U any](c *Chain[S, E], f async.Func[S, rop.Outcome[U, E]]) *Chain[U, E] {
	if c.err != nil {
		return stopped[S, E, U, E](c)
	}
	result, err := async.AndThen(c.ctx, c.result, f)
	return &Chain[U, E]{ctx: c.ctx, result: result, err: err}
}

// Recover chains a failure handler that returns rop.Outcome[S, F]
func Recover[S, E, F any](c *Chain[S, E], f async.Func[E, rop.Outcome[S, F]]) *Chain[S, F] {
	if c.err != nil {
		return stopped[S, E, S, F](c)
	}
	result, err := async.OrElse(c.ctx, c.result, f)
	return &Chain[S, F]{ctx: c.ctx, result: result, err: err}
}

func UnwrapOrElse[S, E any](c *Chain[S, E], f async.Func[E, S]) (S, error) {
	if c.err != nil {
		var zero S
		return zero, c.err
	}
	return async.UnwrapOrElse(c.ctx, c.result, f)
}

func MapOr[S, E, U any](c *Chain[S, E], defaultV U, f async.Func[S, U]) (U, error) {
	if c.err != nil {
		var zero U
		return zero, c.err
	}
	return async.MapOr(c.ctx, c.result, defaultV, f)
}

// MapOrElse collapses the chain into a final value
func MapOrElse[S, E, U any](c *Chain[S, E], onFailure async.Func[E, U], onSuccess async.Func[S, U]) (U, error) {
	if c.err != nil {
		var zero U
		return zero, c.err
	}
	return async.MapOrElse(c.ctx, c.result, onFailure, onSuccess)
}

func IsOkAnd[S, E any](c *Chain[S, E], f async.Func[S, bool]) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return async.IsOkAnd(c.ctx, c.result, f)
}

func IsErrAnd[S, E any](c *Chain[S, E], f async.Func[E, bool]) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return async.IsErrAnd(c.ctx, c.result, f)
}
