package async

import (
	"context"
	"time"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
	"github.com/ib-77/ropasync/pkg/rop/future"
	"github.com/ib-77/ropasync/pkg/rop/observe"
)

const (
	OpMap          = "map"
	OpMapOr        = "map_or"
	OpMapOrElse    = "map_or_else"
	OpMapErr       = "map_err"
	OpInspect      = "inspect"
	OpInspectErr   = "inspect_err"
	OpAndThen      = "and_then"
	OpOrElse       = "or_else"
	OpUnwrapOrElse = "unwrap_or_else"
	OpIsOkAnd      = "is_ok_and"
	OpIsErrAnd     = "is_err_and"
)

type call struct {
	ctx context.Context
	obs observe.Observer
	rec observe.AwaitRecord
}

func begin[S, E any](ctx context.Context, op string, r rop.Outcome[S, E]) call {
	if !core.HasObserver(ctx) {
		return call{ctx: ctx}
	}

	return call{
		ctx: ctx,
		obs: core.GetObserver(ctx),
		rec: observe.AwaitRecord{
			Op:        op,
			Stage:     core.GetStage(ctx, ""),
			Branch:    observe.BranchOf(r.IsSuccess()),
			OutcomeID: r.Id(),
			StartTime: time.Now(),
		},
	}
}

func (c call) skip() {
	if c.obs == nil {
		return
	}
	c.rec.EndTime = c.rec.StartTime
	c.obs.OnSkip(c.ctx, c.rec)
}

func (c call) done(err error) {
	if c.obs == nil {
		return
	}
	c.rec.Awaited = true
	c.rec.EndTime = time.Now()
	c.rec.Err = err
	c.obs.OnAwait(c.ctx, c.rec)
}

// await is the single suspension point of every combinator.
func await[T any](c call, f *future.Future[T]) (T, error) {
	v, err := f.Await(c.ctx)
	c.done(err)
	return v, err
}

func wait(c call, w future.Waiter) error {
	err := w.Wait(c.ctx)
	c.done(err)
	return err
}
