// Package log 对 zap 做了一层轻量封装，提供全局的 SugaredLogger。
package log

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init 之前为 nop，测试里可以直接调用。
var sugar = zap.NewNop().Sugar()

// Init 按配置构建全局 logger，配置无效时 panic。
func Init(level, format, outputPath string) {
	logger, err := newConfig(level, format, outputPath).Build()
	if err != nil {
		panic(err)
	}
	sugar = logger.Sugar()
}

// newConfig 生成 zap 配置：console 格式带颜色便于本地调试，其余输出 json。
// 无法识别的级别按 info 处理，outputPath 非空时额外写入 <outputPath>/app.log。
func newConfig(level, format, outputPath string) zap.Config {
	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		lvl.SetLevel(parsed)
	}
	cfg.Level = lvl

	cfg.OutputPaths = []string{"stdout"}
	if outputPath != "" {
		_ = os.MkdirAll(outputPath, os.ModePerm)
		cfg.OutputPaths = append(cfg.OutputPaths, filepath.Join(outputPath, "app.log"))
	}
	return cfg
}

func Debugf(template string, args ...interface{}) { sugar.Debugf(template, args...) }

func Info(msg string) { sugar.Info(msg) }

func Infof(template string, args ...interface{}) { sugar.Infof(template, args...) }

// Infow 记录结构化日志，keysAndValues 为交替的键值对。
func Infow(msg string, keysAndValues ...interface{}) { sugar.Infow(msg, keysAndValues...) }

func Warnf(template string, args ...interface{}) { sugar.Warnf(template, args...) }

func Warnw(msg string, keysAndValues ...interface{}) { sugar.Warnw(msg, keysAndValues...) }

// Error 把 err 作为 "error" 字段记录。
func Error(msg string, err error) { sugar.Errorw(msg, "error", err) }

func Errorw(msg string, keysAndValues ...interface{}) { sugar.Errorw(msg, keysAndValues...) }

func Errorf(template string, args ...interface{}) { sugar.Errorf(template, args...) }

// Fatal 记录后以非零状态退出进程。
func Fatal(msg string, err error) { sugar.Fatalw(msg, "error", err) }

func Fatalf(template string, args ...interface{}) { sugar.Fatalf(template, args...) }

// Sync 刷新缓冲的日志，退出前调用。
func Sync() { _ = sugar.Sync() }
