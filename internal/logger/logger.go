package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide SugaredLogger.
// It discards everything until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize builds a production JSON logger at the given level and tags
// every record with the service name.
func Initialize(level string, service string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "ts"

	logger, err := cfg.Build(zap.Fields(zap.String("service", service)))
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// Sync flushes buffered records. Errors from syncing stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
