package internal

import (
	"context"

	"expense_report/internal/cli"
	"expense_report/internal/config"
	"expense_report/internal/input"
	"expense_report/internal/logging"
	"expense_report/internal/solver"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

// Run builds the application and executes one run with args.
func Run(args []string) error {
	var runner *cli.Runner

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		logging.Module(),
		input.Module(),
		solver.Module(),
		cli.Module(),
		fx.Populate(&runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute(args)
}
