// Package promobs exports combinator calls as Prometheus metrics.
package promobs

import (
	"context"
	"strconv"

	"github.com/ib-77/ropasync/pkg/rop/observe"
	"github.com/prometheus/client_golang/prometheus"
)

type Observer struct {
	calls        *prometheus.CounterVec
	awaitLatency *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	obs := &Observer{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ropasync_combinator_calls_total",
				Help: "Total number of async combinator calls.",
			},
			[]string{"op", "stage", "branch", "awaited", "result"},
		),
		awaitLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ropasync_await_latency_seconds",
				Help:    "Time spent awaiting the transformation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op", "stage"},
		),
	}

	reg.MustRegister(obs.calls, obs.awaitLatency)
	return obs
}

func (o *Observer) OnAwait(ctx context.Context, rec observe.AwaitRecord) {
	o.calls.WithLabelValues(rec.Op, rec.Stage, string(rec.Branch), "true", rec.Result()).Inc()
	if !rec.StartTime.IsZero() && !rec.EndTime.IsZero() {
		o.awaitLatency.WithLabelValues(rec.Op, rec.Stage).Observe(rec.Duration().Seconds())
	}
}

func (o *Observer) OnSkip(ctx context.Context, rec observe.AwaitRecord) {
	o.calls.WithLabelValues(rec.Op, rec.Stage, string(rec.Branch), strconv.FormatBool(rec.Awaited), rec.Result()).Inc()
}
