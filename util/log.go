package util

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger          = zap.NewNop()
	flagEnableTrace = false
)

// CallSiter is implemented by errors that know which library call failed.
type CallSiter interface {
	CallSite() string
}

// InitLogger replaces the no-op logger. Tracing switches to the development
// config so debug lines become visible.
func InitLogger(trace bool) error {
	var cfg zap.Config
	if trace {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	}
	cfg.Encoding = "console"

	l, err := cfg.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return err
	}
	logger = l
	flagEnableTrace = trace
	return nil
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func Logger() *zap.Logger {
	return logger
}

func Sync() {
	_ = logger.Sync()
}

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		logger.WithOptions(zap.AddCallerSkip(1)).Sugar().Debugf(format, v...)
	}
}

// Fatal prints the failing call site of err and terminates the process with
// status 1.
func Fatal(err error) {
	fields := []zap.Field{zap.Error(err)}
	var cs CallSiter
	if errors.As(err, &cs) {
		fields = append(fields, zap.String("call", cs.CallSite()))
	}
	l := logger
	if !l.Core().Enabled(zapcore.FatalLevel) {
		l = zap.NewExample()
	}
	l.WithOptions(zap.AddCallerSkip(1)).Fatal("[!] setup failed", fields...)
}
