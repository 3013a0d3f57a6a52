// Package configslog wires the application-wide zap loggers. Log is the
// structured logger, SLog its sugared twin; both are safe to use after
// InitLogger has run.
package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger builds the global loggers. Output goes to stdout; when logFile
// is non-empty a rotating file sink is added alongside it.
func InitLogger(logFile, logLevel string) {
	level := zapcore.InfoLevel
	if err := level.Set(logLevel); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if logFile != "" {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), level)
	Log = zap.New(core, zap.AddCaller())
	SLog = Log.Sugar()
}

// SyncLogger flushes buffered log entries. Call it from a defer in main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}

func init() {
	// Fallback no-op loggers so packages can log before InitLogger runs
	// (mostly in tests).
	if Log == nil {
		Log = zap.NewNop()
		SLog = Log.Sugar()
	}
}
