package middleware

import (
	"context"

	"github.com/absmach/fibonacci/calculator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ calculator.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	svc    calculator.Service
}

func Tracing(tracer trace.Tracer, svc calculator.Service) calculator.Service {
	return &tracingMiddleware{
		tracer: tracer,
		svc:    svc,
	}
}

func (tm *tracingMiddleware) Sequence(ctx context.Context, n int) (calculator.Sequence, error) {
	ctx, span := tm.tracer.Start(ctx, "sequence", trace.WithAttributes(attribute.Int("n", n)))
	defer span.End()

	seq, err := tm.svc.Sequence(ctx, n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return seq, err
	}
	span.SetAttributes(attribute.Int("count", len(seq.Terms)))

	return seq, nil
}

func (tm *tracingMiddleware) Term(ctx context.Context, n int) (calculator.Term, error) {
	ctx, span := tm.tracer.Start(ctx, "term", trace.WithAttributes(attribute.Int("n", n)))
	defer span.End()

	t, err := tm.svc.Term(ctx, n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return t, err
	}
	span.SetAttributes(attribute.Bool("valid", t.Valid()))

	return t, nil
}
