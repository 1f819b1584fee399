package logging

import (
	"context"

	"expense_report/internal/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module opens the optional log file and tees it into the application logger.
// The decorator sits outside fx.Module so every module sees the teed logger.
func Module() fx.Option {
	return fx.Options(
		fx.Module(
			"logging",
			fx.Provide(func(cfg config.Config) (*File, error) {
				return OpenLogFile(cfg.LogFile)
			}),
			fx.Invoke(func(lc fx.Lifecycle, file *File, logger *zap.Logger) {
				if file == nil {
					return
				}
				lc.Append(fx.Hook{
					OnStop: func(_ context.Context) error {
						_ = logger.Sync()
						return file.Close()
					},
				})
			}),
		),
		fx.Decorate(func(base *zap.Logger, cfg config.Config, file *File) *zap.Logger {
			if file == nil {
				return base
			}
			return Tee(base, NewJSONCore(file, Level(cfg.Debug)))
		}),
	)
}
