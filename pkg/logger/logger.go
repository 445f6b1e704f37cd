package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// NewLogger builds the shared JSON logger. Output goes to stderr and, when a
// file syncer is given, to the reopenable log file as well.
func NewLogger(logLevel string, fileSyncer *ReopenableWriteSyncer) *zap.Logger {
	encodeConfig := zap.NewProductionConfig()
	encodeConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	syncer := zapcore.NewMultiWriteSyncer(os.Stderr)
	if fileSyncer != nil {
		syncer = zapcore.NewMultiWriteSyncer(fileSyncer, os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encodeConfig.EncoderConfig), syncer, parseLevel(logLevel))
	return zap.New(core, zap.AddCaller())
}

// NewServiceLogger is NewLogger with the service.name field attached.
func NewServiceLogger(serviceName string, logLevel string, fileSyncer *ReopenableWriteSyncer) *zap.Logger {
	return NewLogger(logLevel, fileSyncer).With(zap.String("service.name", serviceName))
}
