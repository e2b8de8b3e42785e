package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	t.Parallel()

	r := Ok[int, string](4)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 4, r.Result())
	assert.Equal(t, "", r.Err())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.Equal(t, time.UTC, r.CreatedAt().Location())
}

func TestErr(t *testing.T) {
	t.Parallel()

	r := Err[int]("bad")

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Equal(t, "bad", r.Err())
	assert.Equal(t, 0, r.Result())
}

func TestSuccessAndFail_AreErrorTyped(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var ok Result[string] = Success("v")
	var failed Result[string] = Fail[string](boom)

	assert.True(t, ok.IsSuccess())
	assert.Nil(t, ok.Err())
	assert.ErrorIs(t, failed.Err(), boom)
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Err[int]("bad")
	out := FailFrom[string](in)

	assert.True(t, out.IsFailure())
	assert.Equal(t, "bad", out.Err())
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
}

func TestSuccessFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Ok[int, string](7)
	out := SuccessFrom[error](in)

	assert.True(t, out.IsSuccess())
	assert.Equal(t, 7, out.Result())
	assert.Nil(t, out.Err())
	assert.Equal(t, in.Id(), out.Id())
}

type legacyResult struct {
	value int
	err   error
}

func (l legacyResult) Result() int          { return l.value }
func (l legacyResult) Err() error           { return l.err }
func (l legacyResult) IsSuccess() bool      { return l.err == nil }
func (l legacyResult) IsFailure() bool      { return l.err != nil }
func (l legacyResult) CreatedAt() time.Time { return time.Time{} }

func TestFrom(t *testing.T) {
	t.Parallel()

	t.Run("foreign success", func(t *testing.T) {
		r := From[int, error](legacyResult{value: 3})
		require.True(t, r.IsSuccess())
		assert.Equal(t, 3, r.Result())
	})

	t.Run("foreign failure", func(t *testing.T) {
		boom := errors.New("boom")
		r := From[int, error](legacyResult{err: boom})
		require.True(t, r.IsFailure())
		assert.ErrorIs(t, r.Err(), boom)
	})

	t.Run("outcome passes through", func(t *testing.T) {
		in := Success(9)
		assert.Equal(t, in, From[int, error](in))
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, e, ok := Ok[int, string](1).Get()
	assert.Equal(t, 1, v)
	assert.Equal(t, "", e)
	assert.True(t, ok)

	v, e, ok = Err[int]("x").Get()
	assert.Equal(t, 0, v)
	assert.Equal(t, "x", e)
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(8)", Ok[int, string](8).String())
	assert.Equal(t, "Failure(bad)", fmt.Sprint(Err[int]("bad")))
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.False(t, IsCancellationError(errors.New("other")))
	assert.False(t, IsCancellationError(nil))
}
