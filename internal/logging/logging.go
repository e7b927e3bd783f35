// Package logging builds the zap logger shared by the program.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"neonorbs/hal"
	"neonorbs/internal/config"
)

// New builds a logger from cfg. Every entry carries the run_id of this
// process. An empty output list returns a no-op logger.
func New(cfg config.Log) (*zap.Logger, error) {
	if len(cfg.Output) == 0 {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Encoding == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         cfg.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      cfg.Output,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.With(zap.String("run_id", uuid.NewString())), nil
}

// Lines adapts a zap logger to hal.Logger. Each line becomes one Info entry.
type Lines struct {
	L *zap.Logger
}

var _ hal.Logger = Lines{}

func (l Lines) WriteLineString(s string) { l.L.Info("hal", zap.String("line", s)) }
func (l Lines) WriteLineBytes(b []byte)  { l.L.Info("hal", zap.ByteString("line", b)) }
