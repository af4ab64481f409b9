// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger builds the zap logger used across specnav and carries it
// through contexts.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/specnav/pkg/types"
)

// New creates a logger for cfg.Env. prod writes JSON, local and dev write
// colored console output. A non-empty cfg.Level overrides the level: debug,
// info, warn, error. Output goes to stderr so command output stays clean.
func New(cfg types.LoggingConfig) (*zap.Logger, error) {
	var zc zap.Config
	switch cfg.Env {
	case "prod":
		zc = zap.NewProductionConfig()
	case "", "local", "dev":
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", cfg.Env)
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	if cfg.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	l, err := zc.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}
