// Package logobs reports combinator calls to a logr.Logger.
package logobs

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/ib-77/ropasync/pkg/rop/observe"
)

// Verbosity levels used for non-error records.
const (
	AwaitLevel = 1
	SkipLevel  = 2
)

type Observer struct {
	log logr.Logger
}

func New(log logr.Logger) *Observer {
	return &Observer{log: log.WithName("ropasync")}
}

func (o *Observer) OnAwait(ctx context.Context, rec observe.AwaitRecord) {
	if rec.Err != nil {
		o.log.Error(rec.Err, "transformation failed", keysAndValues(rec)...)
		return
	}
	o.log.V(AwaitLevel).Info("awaited", keysAndValues(rec)...)
}

func (o *Observer) OnSkip(ctx context.Context, rec observe.AwaitRecord) {
	o.log.V(SkipLevel).Info("skipped", keysAndValues(rec)...)
}

func keysAndValues(rec observe.AwaitRecord) []any {
	kv := []any{
		"op", rec.Op,
		"branch", string(rec.Branch),
		"outcome", rec.OutcomeID.String(),
	}
	if rec.Stage != "" {
		kv = append(kv, "stage", rec.Stage)
	}
	if rec.Awaited {
		kv = append(kv, "duration", rec.Duration().String(), "result", rec.Result())
	}
	return kv
}
