package core

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop/observe"
)

type OptionKey string

const (
	ObserverOptionKey OptionKey = "observer_options"
	StageOptionKey    OptionKey = "stage_options"
)

type ObserverOptions struct {
	Observer observe.Observer
}

type StageOptions struct {
	Name string
}

func WithObserver(ctx context.Context, obs observe.Observer) context.Context {
	return context.WithValue(ctx, ObserverOptionKey, ObserverOptions{Observer: obs})
}

// WithStage names the calls made with ctx so observers can tell them apart.
func WithStage(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, StageOptionKey, StageOptions{Name: name})
}

// GetObserver never returns nil; without an installed observer it returns a no-op.
func GetObserver(ctx context.Context) observe.Observer {
	options, ok := ctx.Value(ObserverOptionKey).(ObserverOptions)
	if ok && options.Observer != nil {
		return options.Observer
	}
	return observe.BaseObserver{}
}

func HasObserver(ctx context.Context) bool {
	options, ok := ctx.Value(ObserverOptionKey).(ObserverOptions)
	return ok && options.Observer != nil
}

func GetStage(ctx context.Context, defaultStage string) string {
	options, ok := ctx.Value(StageOptionKey).(StageOptions)
	if ok {
		return options.Name
	}
	return defaultStage
}
