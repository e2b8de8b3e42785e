package async

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop"
)

// Map awaits f on a success payload. A failure is passed through without
// invoking f.
func Map[S, E, U any](ctx context.Context, input rop.Outcome[S, E],
	f Func[S, U]) (rop.Outcome[U, E], error) {

	c := begin(ctx, OpMap, input)
	if input.IsFailure() {
		c.skip()
		return rop.FailFrom[U](input), nil
	}

	v, err := await(c, f(ctx, input.Result()))
	if err != nil {
		return rop.Outcome[U, E]{}, err
	}
	return rop.Ok[U, E](v), nil
}

// MapOr returns defaultV for a failure. defaultV is evaluated by the caller
// before the call; use MapOrElse when it is expensive.
func MapOr[S, E, U any](ctx context.Context, input rop.Outcome[S, E],
	defaultV U, f Func[S, U]) (U, error) {

	c := begin(ctx, OpMapOr, input)
	if input.IsFailure() {
		c.skip()
		return defaultV, nil
	}

	return await(c, f(ctx, input.Result()))
}

// MapOrElse awaits exactly one of onFailure or onSuccess.
func MapOrElse[S, E, U any](ctx context.Context, input rop.Outcome[S, E],
	onFailure Func[E, U], onSuccess Func[S, U]) (U, error) {

	c := begin(ctx, OpMapOrElse, input)
	if input.IsSuccess() {
		return await(c, onSuccess(ctx, input.Result()))
	}
	return await(c, onFailure(ctx, input.Err()))
}

func MapErr[S, E, F any](ctx context.Context, input rop.Outcome[S, E],
	f Func[E, F]) (rop.Outcome[S, F], error) {

	c := begin(ctx, OpMapErr, input)
	if input.IsSuccess() {
		c.skip()
		return rop.SuccessFrom[F](input), nil
	}

	e, err := await(c, f(ctx, input.Err()))
	if err != nil {
		return rop.Outcome[S, F]{}, err
	}
	return rop.Err[S](e), nil
}

// Inspect awaits f for its side effect only and returns input untouched.
func Inspect[S, E any](ctx context.Context, input rop.Outcome[S, E],
	f Effect[S]) (rop.Outcome[S, E], error) {

	c := begin(ctx, OpInspect, input)
	if input.IsFailure() {
		c.skip()
		return input, nil
	}

	if err := wait(c, f(ctx, input.Result())); err != nil {
		return rop.Outcome[S, E]{}, err
	}
	return input, nil
}

func InspectErr[S, E any](ctx context.Context, input rop.Outcome[S, E],
	f Effect[E]) (rop.Outcome[S, E], error) {

	c := begin(ctx, OpInspectErr, input)
	if input.IsSuccess() {
		c.skip()
		return input, nil
	}

	if err := wait(c, f(ctx, input.Err())); err != nil {
		return rop.Outcome[S, E]{}, err
	}
	return input, nil
}

// AndThen returns exactly what f produced for a success payload.
func AndThen[S, E, U any](ctx context.Context, input rop.Outcome[S, E],
	f Func[S, rop.Outcome[U, E]]) (rop.Outcome[U, E], error) {

	c := begin(ctx, OpAndThen, input)
	if input.IsFailure() {
		c.skip()
		return rop.FailFrom[U](input), nil
	}

	return await(c, f(ctx, input.Result()))
}

// OrElse returns exactly what f produced for a failure payload.
func OrElse[S, E, F any](ctx context.Context, input rop.Outcome[S, E],
	f Func[E, rop.Outcome[S, F]]) (rop.Outcome[S, F], error) {

	c := begin(ctx, OpOrElse, input)
	if input.IsSuccess() {
		c.skip()
		return rop.SuccessFrom[F](input), nil
	}

	return await(c, f(ctx, input.Err()))
}

func UnwrapOrElse[S, E any](ctx context.Context, input rop.Outcome[S, E],
	f Func[E, S]) (S, error) {

	c := begin(ctx, OpUnwrapOrElse, input)
	if input.IsSuccess() {
		c.skip()
		return input.Result(), nil
	}

	return await(c, f(ctx, input.Err()))
}

func IsOkAnd[S, E any](ctx context.Context, input rop.Outcome[S, E],
	f Func[S, bool]) (bool, error) {

	c := begin(ctx, OpIsOkAnd, input)
	if input.IsFailure() {
		c.skip()
		return false, nil
	}

	return await(c, f(ctx, input.Result()))
}

func IsErrAnd[S, E any](ctx context.Context, input rop.Outcome[S, E],
	f Func[E, bool]) (bool, error) {

	c := begin(ctx, OpIsErrAnd, input)
	if input.IsSuccess() {
		c.skip()
		return false, nil
	}

	return await(c, f(ctx, input.Err()))
}
