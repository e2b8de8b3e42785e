package future

import (
	"context"
	"fmt"
	"sync"
)

// Waiter is anything that can be awaited for completion only.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Future is the handle of a computation that settles exactly once with a
// value or an error.
type Future[T any] struct {
	value    T
	err      error
	settled  chan struct{}
	settleIt sync.Once
}

// PanicError is the rejection reason of a future whose function panicked.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("future: panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{settled: make(chan struct{})}
}

func (f *Future[T]) settle(value T, err error) {
	f.settleIt.Do(func() {
		f.value = value
		f.err = err
		close(f.settled)
	})
}

// Go runs fn on its own goroutine and returns its future.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()

	go func() {
		ok := false
		defer func() {
			if !ok {
				var zero T
				f.settle(zero, &PanicError{Value: recover()})
			}
		}()

		v, err := fn(ctx)
		ok = true
		f.settle(v, err)
	}()

	return f
}

func Resolved[T any](value T) *Future[T] {
	f := newFuture[T]()
	f.settle(value, nil)
	return f
}

func Rejected[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.settle(zero, err)
	return f
}

// Await blocks until the future settles or ctx is done, whichever is first.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.settled:
		return f.value, f.err
	default:
	}

	select {
	case <-f.settled:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) Wait(ctx context.Context) error {
	_, err := f.Await(ctx)
	return err
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.settled
}

// TryAwait reports whether the future has already settled.
func (f *Future[T]) TryAwait() bool {
	select {
	case <-f.settled:
		return true
	default:
		return false
	}
}
