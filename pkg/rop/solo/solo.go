package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropasync/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Result()); !isValid {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Map[S, E, U any](input rop.Outcome[S, E], onSuccess func(r S) U) rop.Outcome[U, E] {
	if input.IsSuccess() {
		return rop.Ok[U, E](onSuccess(input.Result()))
	}
	return rop.FailFrom[U](input)
}

// MapOr takes an eagerly evaluated default, unlike MapOrElse.
func MapOr[S, E, U any](input rop.Outcome[S, E], defaultV U, onSuccess func(r S) U) U {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return defaultV
}

func MapOrElse[S, E, U any](input rop.Outcome[S, E], onFailure func(e E) U, onSuccess func(r S) U) U {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

func MapErr[S, E, F any](input rop.Outcome[S, E], onFailure func(e E) F) rop.Outcome[S, F] {
	if input.IsFailure() {
		return rop.Err[S](onFailure(input.Err()))
	}
	return rop.SuccessFrom[F](input)
}

func Inspect[S, E any](input rop.Outcome[S, E], onSuccess func(r S)) rop.Outcome[S, E] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func InspectErr[S, E any](input rop.Outcome[S, E], onFailure func(e E)) rop.Outcome[S, E] {
	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

func AndThen[S, E, U any](input rop.Outcome[S, E], onSuccess func(r S) rop.Outcome[U, E]) rop.Outcome[U, E] {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[U](input)
}

func OrElse[S, E, F any](input rop.Outcome[S, E], onFailure func(e E) rop.Outcome[S, F]) rop.Outcome[S, F] {
	if input.IsFailure() {
		return onFailure(input.Err())
	}
	return rop.SuccessFrom[F](input)
}

func UnwrapOrElse[S, E any](input rop.Outcome[S, E], onFailure func(e E) S) S {
	if input.IsSuccess() {
		return input.Result()
	}
	return onFailure(input.Err())
}

func IsOkAnd[S, E any](input rop.Outcome[S, E], predicate func(r S) bool) bool {
	return input.IsSuccess() && predicate(input.Result())
}

func IsErrAnd[S, E any](input rop.Outcome[S, E], predicate func(e E) bool) bool {
	return input.IsFailure() && predicate(input.Err())
}

// Try calls a (Out, error) function on a success payload and turns its error
// into a failure.
func Try[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.Fail[Out](err)
		}
		return rop.Success(out)
	}

	return rop.FailFrom[Out](input)
}

func Finally[S, E, Out any](ctx context.Context, input rop.Outcome[S, E],
	onSuccess func(ctx context.Context, r S) Out,
	onFailure func(ctx context.Context, e E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}
