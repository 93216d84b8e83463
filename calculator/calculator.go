package calculator

import (
	"context"
	"time"
)

// Sequence is the result of generating the first Count terms.
type Sequence struct {
	ID        string    `json:"id"`
	Count     int       `json:"count"`
	Terms     []int64   `json:"terms"`
	CreatedAt time.Time `json:"created_at"`
}

// Term is the result of a single lookup. Value is nil when Index is
// negative.
type Term struct {
	ID        string    `json:"id"`
	Index     int       `json:"index"`
	Value     *int64    `json:"value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (t Term) Valid() bool {
	return t.Value != nil
}

type Service interface {
	// Sequence generates the first n Fibonacci numbers.
	Sequence(ctx context.Context, n int) (Sequence, error)
	// Term looks up the Fibonacci number at zero-based index n.
	Term(ctx context.Context, n int) (Term, error)
}
