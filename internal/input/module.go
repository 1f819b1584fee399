package input

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"input",
		fx.Provide(NewOpener),
	)
}
