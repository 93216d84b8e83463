package calculator

import (
	"context"
	"time"

	"github.com/absmach/fibonacci/pkg/fibonacci"
	"github.com/google/uuid"
)

type service struct{}

func NewService() Service {
	return &service{}
}

func (svc *service) Sequence(ctx context.Context, n int) (Sequence, error) {
	if err := ctx.Err(); err != nil {
		return Sequence{}, err
	}

	return Sequence{
		ID:        uuid.NewString(),
		Count:     n,
		Terms:     fibonacci.Sequence(n),
		CreatedAt: time.Now(),
	}, nil
}

func (svc *service) Term(ctx context.Context, n int) (Term, error) {
	if err := ctx.Err(); err != nil {
		return Term{}, err
	}

	t := Term{
		ID:        uuid.NewString(),
		Index:     n,
		CreatedAt: time.Now(),
	}
	if v, ok := fibonacci.Nth(n); ok {
		t.Value = &v
	}

	return t, nil
}
