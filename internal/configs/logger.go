package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func NewLogger(cfg Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	if cfg.DatabaseEcho && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	if out == nil {
		out = os.Stderr
	}
	if cfg.Env == EnvLocal {
		cw := zerolog.NewConsoleWriter()
		cw.TimeFormat = time.DateTime
		cw.Out = out
		out = cw
	}

	zerolog.TimestampFieldName = "timestamp"

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}
