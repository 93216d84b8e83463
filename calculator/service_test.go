package calculator_test

import (
	"context"
	"testing"

	"github.com/absmach/fibonacci/calculator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	svc := calculator.NewService()

	cases := []struct {
		desc string
		n    int
		want []int64
	}{
		{desc: "negative count", n: -1, want: []int64{}},
		{desc: "empty sequence", n: 0, want: []int64{}},
		{desc: "ten terms", n: 10, want: []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			seq, err := svc.Sequence(context.Background(), tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.n, seq.Count)
			assert.Equal(t, tc.want, seq.Terms)
			assert.False(t, seq.CreatedAt.IsZero())
			_, err = uuid.Parse(seq.ID)
			assert.NoError(t, err)
		})
	}
}

func TestTerm(t *testing.T) {
	svc := calculator.NewService()

	cases := []struct {
		desc  string
		n     int
		want  int64
		valid bool
	}{
		{desc: "negative index has no value", n: -1, valid: false},
		{desc: "index zero", n: 0, want: 0, valid: true},
		{desc: "index five", n: 5, want: 5, valid: true},
		{desc: "index ten", n: 10, want: 55, valid: true},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			term, err := svc.Term(context.Background(), tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.n, term.Index)
			assert.Equal(t, tc.valid, term.Valid())
			if tc.valid {
				require.NotNil(t, term.Value)
				assert.Equal(t, tc.want, *term.Value)
			} else {
				assert.Nil(t, term.Value)
			}
		})
	}
}

func TestCancelledContext(t *testing.T) {
	svc := calculator.NewService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Sequence(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.Term(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDistinctIDs(t *testing.T) {
	svc := calculator.NewService()

	a, err := svc.Term(context.Background(), 3)
	require.NoError(t, err)
	b, err := svc.Term(context.Background(), 3)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, *a.Value, *b.Value)
}
