package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/fibonacci/calculator"
)

var _ calculator.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    calculator.Service
}

func Logging(logger *slog.Logger, svc calculator.Service) calculator.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm *loggingMiddleware) Sequence(ctx context.Context, n int) (resp calculator.Sequence, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("n", n),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.WarnContext(ctx, "Generate sequence failed", args...)

			return
		}
		args = append(args, slog.String("id", resp.ID), slog.Int("terms", len(resp.Terms)))
		lm.logger.InfoContext(ctx, "Generate sequence completed successfully", args...)
	}(time.Now())

	return lm.svc.Sequence(ctx, n)
}

func (lm *loggingMiddleware) Term(ctx context.Context, n int) (resp calculator.Term, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("n", n),
		}
		switch {
		case err != nil:
			args = append(args, slog.Any("error", err))
			lm.logger.WarnContext(ctx, "Lookup term failed", args...)
		case !resp.Valid():
			args = append(args, slog.String("id", resp.ID))
			lm.logger.WarnContext(ctx, "Lookup term returned no value for negative index", args...)
		default:
			args = append(args, slog.String("id", resp.ID), slog.Int64("value", *resp.Value))
			lm.logger.InfoContext(ctx, "Lookup term completed successfully", args...)
		}
	}(time.Now())

	return lm.svc.Term(ctx, n)
}
