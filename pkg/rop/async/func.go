package async

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop/future"
)

// Func is an asynchronous transformation: calling it starts the work and
// hands back the future to await.
type Func[In, Out any] func(ctx context.Context, in In) *future.Future[Out]

// Effect is an asynchronous side effect whose result is discarded.
type Effect[In any] func(ctx context.Context, in In) future.Waiter

// Lift runs fn on its own goroutine each time the Func is invoked.
func Lift[In, Out any](fn func(ctx context.Context, in In) (Out, error)) Func[In, Out] {
	return func(ctx context.Context, in In) *future.Future[Out] {
		return future.Go(ctx, func(ctx context.Context) (Out, error) {
			return fn(ctx, in)
		})
	}
}

// Pure wraps an infallible function as an already resolved future.
func Pure[In, Out any](fn func(in In) Out) Func[In, Out] {
	return func(ctx context.Context, in In) *future.Future[Out] {
		return future.Resolved(fn(in))
	}
}

func LiftEffect[In any](fn func(ctx context.Context, in In) error) Effect[In] {
	return func(ctx context.Context, in In) future.Waiter {
		return future.Go(ctx, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, fn(ctx, in)
		})
	}
}
