// Package logging builds the application's zap logger from configuration.
//
// Go Learning Note — "go.uber.org/zap":
// zap is a structured, levelled logger. Instead of formatting a message string,
// you attach typed fields (zap.String, zap.Int, zap.Error) that are encoded
// as JSON keys in production or as aligned columns in development. Typed
// fields avoid reflection, which is what makes zap fast.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"videostore/internal/config"
)

// New builds a zap.Logger configured according to the provided logging config.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if strings.EqualFold(cfg.Format, "console") {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	return zcfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
