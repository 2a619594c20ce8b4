package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 默认 no-op，Init 前调用不输出（方便测试）
var log = zap.NewNop()

// Init 按级别初始化全局 logger
func Init(level string) error {
	lv := zapcore.InfoLevel
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lv)
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	log = l
	return nil
}

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }

// Sync 刷新缓冲日志，进程退出前调用
func Sync() { _ = log.Sync() }
