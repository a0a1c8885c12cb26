package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger はグローバルzapロガーを初期化する
func InitLogger() *zap.Logger {
	var logger *zap.Logger

	if os.Getenv("GO_ENV") == "prod" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, _ = cfg.Build()
	} else {
		logger, _ = zap.NewDevelopment()
	}

	zap.ReplaceGlobals(logger)
	return logger
}
