package solver

import (
	"context"
	"fmt"
	"io"

	"expense_report/internal/entries"

	"go.uber.org/zap"
)

// Source opens the input named by location.
type Source interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

type Solver struct {
	source Source
	logger *zap.Logger
}

func New(source Source, logger *zap.Logger) *Solver {
	return &Solver{
		source: source,
		logger: logger.Named("solver"),
	}
}

func (s *Solver) Solve(ctx context.Context, location string, target int64) (entries.Pair, error) {
	rc, err := s.source.Open(ctx, location)
	if err != nil {
		return entries.Pair{}, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			s.logger.Warn("close input", zap.String("location", location), zap.Error(cerr))
		}
	}()

	pair, err := entries.Process(rc, target)
	if err != nil {
		s.logger.Warn("search failed",
			zap.String("location", location),
			zap.Int64("target", target),
			zap.Error(err),
		)
		return entries.Pair{}, err
	}

	s.logger.Info("pair found",
		zap.String("location", location),
		zap.Int64("entry1", pair.Entry1),
		zap.Int64("entry2", pair.Entry2),
		zap.Int64("target", pair.Target),
	)
	return pair, nil
}

// Run solves and writes the product as a single line to w.
func (s *Solver) Run(ctx context.Context, w io.Writer, location string, target int64) error {
	pair, err := s.Solve(ctx, location, target)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, pair.Product()); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
