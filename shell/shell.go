// Package shell implements the interactive Fibonacci demo.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/absmach/fibonacci/calculator"
	pkgerrors "github.com/absmach/fibonacci/pkg/errors"
	"github.com/absmach/fibonacci/pkg/format"
)

const (
	prompt       = "Enter number of Fibonacci terms to generate: "
	invalidInput = "Please enter a valid integer."
)

type Config struct {
	// DemoTerms is the length of the sequence printed on start.
	DemoTerms int
	// DemoIndices are the terms looked up after the sequence.
	DemoIndices []int
}

type Shell struct {
	svc       calculator.Service
	formatter format.Formatter
	cfg       Config
	logger    *slog.Logger
}

func New(svc calculator.Service, formatter format.Formatter, cfg Config, logger *slog.Logger) *Shell {
	return &Shell{
		svc:       svc,
		formatter: formatter,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run prints the demo to out and reads a single term count from in. Invalid
// input is reported to the user and does not fail the run.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)

	if err := s.demo(ctx, w); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s", prompt)
	if err := w.Flush(); err != nil {
		return err
	}

	n, err := readCount(in)
	switch {
	case errors.Is(err, pkgerrors.ErrInvalidInput):
		s.logger.WarnContext(ctx, "rejected term count", slog.Any("error", err))
		fmt.Fprintln(w, invalidInput)

		return w.Flush()
	case err != nil:
		return err
	}

	seq, err := s.svc.Sequence(ctx, n)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Fibonacci sequence (%d terms): %s\n", n, s.formatter.Sequence(seq.Terms))

	return w.Flush()
}

func (s *Shell) demo(ctx context.Context, w io.Writer) error {
	seq, err := s.svc.Sequence(ctx, s.cfg.DemoTerms)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "First %d Fibonacci numbers:\n%s\n", s.cfg.DemoTerms, s.formatter.Sequence(seq.Terms))

	if len(s.cfg.DemoIndices) > 0 {
		fmt.Fprintln(w)
	}
	for _, i := range s.cfg.DemoIndices {
		t, err := s.svc.Term(ctx, i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s Fibonacci number: %s\n", Ordinal(i), s.formatter.Term(t.Value))
	}

	return nil
}

func readCount(in io.Reader) (int, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, fmt.Errorf("%w: empty line", pkgerrors.ErrInvalidInput)
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", pkgerrors.ErrInvalidInput, line)
	}

	return n, nil
}

// Ordinal formats n with its English ordinal suffix, e.g. 1st, 12th, 23rd.
func Ordinal(n int) string {
	suffix := "th"
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch abs % 100 {
	case 11, 12, 13:
	default:
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}
