// Package logger はzapロガーの生成とgin用のアクセスログミドルウェアを提供します。
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New はレベルとフォーマットからzapロガーを生成します。
// formatが"json"の場合は本番用設定、それ以外は開発用（コンソール）設定を使います。
func New(levelStr, format string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
