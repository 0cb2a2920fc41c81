package common

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process wide sugared logger. Defaults to warn level so the
// hot paths stay quiet; call SetLogLevel to turn on debug output.
var Logger *zap.SugaredLogger

var logLevel zap.AtomicLevel

func init() {
	logLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = logLevel
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	Logger = logger.Sugar()
}

func SetLogLevel(level zapcore.Level) {
	logLevel.SetLevel(level)
}
