// Package logger 封装 zap + lumberjack，提供全局的格式化日志函数。
// 未调用 Init 之前使用 info 级别的控制台输出。
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultFileName   = "app.log"
	defaultMaxSizeMB  = 200 // 单个日志文件最大体积（MB）
	defaultMaxBackups = 24  // 最多保留的历史文件数
	defaultMaxAgeDays = 7   // 历史文件保留天数
)

// LogOption 日志初始化参数
type LogOption struct {
	Format   string // "console" 或 "json"
	LogDir   string // 日志目录，为空时只输出到 stdout
	Level    string // debug / info / warn / error
	Compress bool   // 是否压缩滚动后的旧文件
}

var current atomic.Pointer[zap.SugaredLogger]

func init() {
	current.Store(newLogger(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(os.Stdout), zapcore.InfoLevel))
}

// Init 按配置重建全局 logger，可重复调用
func Init(opt LogOption) error {
	level := zapcore.InfoLevel
	if opt.Level != "" {
		if err := level.UnmarshalText([]byte(opt.Level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", opt.Level, err)
		}
	}

	var encoder zapcore.Encoder
	switch opt.Format {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig())
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig())
	default:
		return fmt.Errorf("unsupported log format %q", opt.Format)
	}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if opt.LogDir != "" {
		if err := os.MkdirAll(opt.LogDir, 0o755); err != nil {
			return fmt.Errorf("create log dir %s: %w", opt.LogDir, err)
		}
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opt.LogDir, defaultFileName),
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAgeDays,
			Compress:   opt.Compress,
			LocalTime:  true,
		}))
	}

	old := current.Swap(newLogger(encoder, zapcore.NewMultiWriteSyncer(syncers...), level))
	_ = old.Sync()
	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func newLogger(encoder zapcore.Encoder, ws zapcore.WriteSyncer, level zapcore.Level) *zap.SugaredLogger {
	core := zapcore.NewCore(encoder, ws, level)
	// 跳过本包的包装函数，调用位置指向业务代码
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func Debugf(template string, args ...interface{}) {
	current.Load().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	current.Load().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	current.Load().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	current.Load().Errorf(template, args...)
}

// Sync 刷新缓冲区，进程退出前调用
func Sync() {
	_ = current.Load().Sync()
}
