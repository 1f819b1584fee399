package config

import (
	"fmt"
	"time"

	coreconfig "github.com/go-core-fx/config"
	"go.uber.org/fx"
)

const (
	DefaultInputPath = "./day1.txt"
	DefaultTarget    = int64(2020)
)

type Config struct {
	InputPath    string        `koanf:"input_path"`
	Target       int64         `koanf:"target"`
	SessionToken string        `koanf:"session_token"`
	Timeout      time.Duration `koanf:"timeout"`
	LogFile      string        `koanf:"log_file"`
	Debug        bool          `koanf:"debug"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		InputPath: DefaultInputPath,
		Target:    DefaultTarget,
		Timeout:   20 * time.Second,
	}
}

func New() (Config, error) {
	cfg := Default()

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
	)
}
