package logger

import (
	"io"
	"os"
	"pokedex/internal/config"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New builds the service logger at the configured level and records the
// configuration it was built from.
func New(cfg *config.Config) zerolog.Logger {
	logger := SetLevel(cfg.Level())
	logger.Info().Object("config", cfg).Msg("configuration loaded")
	return logger
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter is used by the CLI to keep stdout free for command output.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger.Level(level)
}

var Module = fx.Provide(New)
