// Package logger provides the process-global structured logger for jcrbox.
//
// The logger is a no-op until Initialize is called, so library consumers
// that never configure logging stay silent.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for consistent structured logging across jcrbox.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldPath       = "path"
	FieldNodeType   = "node_type"
	FieldProperty   = "property"
	FieldChild      = "child"
	FieldSelector   = "selector"
	FieldPrefix     = "prefix"
	FieldNamespace  = "namespace"
	FieldIdentifier = "identifier"
	FieldError      = "error"
	FieldCount      = "count"
)

// Logger is the global logger instance.
var Logger *zap.SugaredLogger

func init() {
	// Safe no-op logger at package load time; prevents nil pointer panics
	// if the logger is used before Initialize() is called.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. jsonOutput selects JSON structured
// output over human-readable console output.
func Initialize(jsonOutput bool) error {
	var config zap.Config
	if jsonOutput {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	zapLogger, err := config.Build()
	if err != nil {
		return err
	}
	Logger = zapLogger.Sugar()
	return nil
}

// Set replaces the global logger, e.g. with a test logger or one built by
// the embedding application. A nil argument restores the no-op logger.
func Set(l *zap.SugaredLogger) {
	if l == nil {
		Logger = zap.NewNop().Sugar()
		return
	}
	Logger = l
}
