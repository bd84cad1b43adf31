package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New membuat zap logger untuk aplikasi. Level dibaca dari konfigurasi
// (debug/info/warn/error); default info.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
