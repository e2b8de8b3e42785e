package async

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
	"github.com/ib-77/ropasync/pkg/rop/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	awaits []observe.AwaitRecord
	skips  []observe.AwaitRecord
}

func (r *recordingObserver) OnAwait(ctx context.Context, rec observe.AwaitRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.awaits = append(r.awaits, rec)
}

func (r *recordingObserver) OnSkip(ctx context.Context, rec observe.AwaitRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skips = append(r.skips, rec)
}

func TestObserver_ReceivesAwaitRecord(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	ctx := core.WithStage(core.WithObserver(context.Background(), obs), "pricing")

	in := rop.Ok[int, string](4)
	_, err := Map(ctx, in, Pure(double))
	require.NoError(t, err)

	require.Len(t, obs.awaits, 1)
	assert.Empty(t, obs.skips)

	rec := obs.awaits[0]
	assert.Equal(t, OpMap, rec.Op)
	assert.Equal(t, "pricing", rec.Stage)
	assert.Equal(t, observe.BranchSuccess, rec.Branch)
	assert.True(t, rec.Awaited)
	assert.Equal(t, in.Id(), rec.OutcomeID)
	assert.False(t, rec.EndTime.Before(rec.StartTime))
	assert.NoError(t, rec.Err)
}

func TestObserver_ReceivesSkipRecord(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	ctx := core.WithObserver(context.Background(), obs)

	_, err := UnwrapOrElse(ctx, rop.Ok[int, string](4), Pure(func(e string) int { return 0 }))
	require.NoError(t, err)

	require.Len(t, obs.skips, 1)
	assert.Empty(t, obs.awaits)

	rec := obs.skips[0]
	assert.Equal(t, OpUnwrapOrElse, rec.Op)
	assert.Equal(t, "", rec.Stage)
	assert.Equal(t, observe.BranchSuccess, rec.Branch)
	assert.False(t, rec.Awaited)
	assert.Equal(t, rec.StartTime, rec.EndTime)
}

func TestObserver_SeesTransformationError(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	ctx := core.WithObserver(context.Background(), obs)

	boom := errors.New("boom")
	_, err := OrElse(ctx, rop.Err[int]("bad"),
		Lift(func(ctx context.Context, e string) (rop.Outcome[int, string], error) {
			return rop.Outcome[int, string]{}, boom
		}))
	assert.Same(t, boom, err)

	require.Len(t, obs.awaits, 1)
	assert.Equal(t, OpOrElse, obs.awaits[0].Op)
	assert.Equal(t, observe.BranchFailure, obs.awaits[0].Branch)
	assert.Same(t, boom, obs.awaits[0].Err)
	assert.Equal(t, "error", obs.awaits[0].Result())
}

func TestObserver_OneRecordPerCall(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	ctx := core.WithObserver(context.Background(), obs)
	ok := rop.Ok[int, string](1)
	failed := rop.Err[int]("bad")
	noop := LiftEffect(func(ctx context.Context, in int) error { return nil })
	noopErr := LiftEffect(func(ctx context.Context, in string) error { return nil })

	_, _ = Inspect(ctx, ok, noop)
	_, _ = Inspect(ctx, failed, noop)
	_, _ = InspectErr(ctx, failed, noopErr)
	_, _ = InspectErr(ctx, ok, noopErr)
	_, _ = MapOrElse(ctx, failed, Pure(func(e string) int { return 0 }), Pure(double))
	_, _ = IsErrAnd(ctx, ok, Pure(func(e string) bool { return true }))

	ops := func(recs []observe.AwaitRecord) []string {
		var out []string
		for _, r := range recs {
			out = append(out, r.Op)
		}
		return out
	}

	assert.Equal(t, []string{OpInspect, OpInspectErr, OpMapOrElse}, ops(obs.awaits))
	assert.Equal(t, []string{OpInspect, OpInspectErr, OpIsErrAnd}, ops(obs.skips))
}
