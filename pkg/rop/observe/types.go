package observe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/ropasync/pkg/rop"
)

// Branch is the variant of the receiver a combinator saw.
type Branch string

const (
	BranchSuccess Branch = "success"
	BranchFailure Branch = "failure"
)

func BranchOf(isSuccess bool) Branch {
	if isSuccess {
		return BranchSuccess
	}
	return BranchFailure
}

// AwaitRecord describes a single combinator call.
type AwaitRecord struct {
	Op        string    // Combinator name ("map", "and_then", ...).
	Stage     string    // Caller-supplied stage name, empty if unset.
	Branch    Branch    // Variant of the receiver.
	Awaited   bool      // Whether the transformation was invoked and awaited.
	OutcomeID uuid.UUID // Id of the receiver outcome.
	StartTime time.Time // Call start time.
	EndTime   time.Time // Time the await returned (equals StartTime when skipped).
	Err       error     // Error returned by the transformation (if any).
}

func (r AwaitRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Result labels the record as "ok", "error" or "cancelled".
func (r AwaitRecord) Result() string {
	switch {
	case r.Err == nil:
		return "ok"
	case rop.IsCancellationError(r.Err):
		return "cancelled"
	default:
		return "error"
	}
}

// Observer receives one callback per combinator call: OnAwait when the
// transformation ran, OnSkip when the receiver's branch did not need it.
type Observer interface {
	OnAwait(ctx context.Context, rec AwaitRecord)
	OnSkip(ctx context.Context, rec AwaitRecord)
}

// BaseObserver ignores everything. Embed it to implement a subset.
type BaseObserver struct{}

func (BaseObserver) OnAwait(ctx context.Context, rec AwaitRecord) {}
func (BaseObserver) OnSkip(ctx context.Context, rec AwaitRecord)  {}

// Multi fans every callback out to each observer in order.
type Multi []Observer

func (m Multi) OnAwait(ctx context.Context, rec AwaitRecord) {
	for _, o := range m {
		if o != nil {
			o.OnAwait(ctx, rec)
		}
	}
}

func (m Multi) OnSkip(ctx context.Context, rec AwaitRecord) {
	for _, o := range m {
		if o != nil {
			o.OnSkip(ctx, rec)
		}
	}
}
