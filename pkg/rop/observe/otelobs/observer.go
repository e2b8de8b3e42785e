// Package otelobs turns every awaited combinator call into an OpenTelemetry
// span. Calls that skip the transformation produce no span.
package otelobs

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop/observe"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Observer struct {
	observe.BaseObserver
	tracer trace.Tracer
}

func New(tracer trace.Tracer) *Observer {
	return &Observer{tracer: tracer}
}

func (o *Observer) OnAwait(ctx context.Context, rec observe.AwaitRecord) {
	if o == nil || o.tracer == nil {
		return
	}

	startOpts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindInternal)}
	if !rec.StartTime.IsZero() {
		startOpts = append(startOpts, trace.WithTimestamp(rec.StartTime))
	}
	_, span := o.tracer.Start(ctx, "ropasync."+rec.Op, startOpts...)

	attrs := []attribute.KeyValue{
		attribute.String("ropasync.op", rec.Op),
		attribute.String("ropasync.branch", string(rec.Branch)),
		attribute.String("ropasync.outcome_id", rec.OutcomeID.String()),
	}
	if rec.Stage != "" {
		attrs = append(attrs, attribute.String("ropasync.stage", rec.Stage))
	}
	span.SetAttributes(attrs...)

	if rec.Err != nil {
		span.RecordError(rec.Err)
		span.SetStatus(codes.Error, rec.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if !rec.EndTime.IsZero() {
		span.End(trace.WithTimestamp(rec.EndTime))
		return
	}
	span.End()
}
