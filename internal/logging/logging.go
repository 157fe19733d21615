package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/keedam/preloadquiz/internal/config"
)

// New builds the application logger. The terminal UI owns stdout, so output
// goes to cfg.Log.File unless it names "stderr" or "stdout" explicitly.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	level := zapcore.InfoLevel
	if cfg.Log.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	out := cfg.Log.File
	if out == "" {
		p, err := config.DefaultLogPath()
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		out = p
	}
	zcfg.OutputPaths = []string{out}
	zcfg.ErrorOutputPaths = []string{out}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("preloadquiz"), nil
}
