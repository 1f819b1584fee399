package solver

import (
	"expense_report/internal/input"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"solver",
		fx.Provide(func(opener *input.Opener, logger *zap.Logger) *Solver {
			return New(opener, logger)
		}),
	)
}
