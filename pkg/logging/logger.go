// Package logging 构建游戏使用的 zerolog 日志器
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New 创建控制台日志器
// verbose 为 true 时输出 Debug 级别（逐帧的生成、击毁等事件），否则只输出 Info 及以上
func New(verbose bool, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ForSystem 创建带 {"system": name} 字段的子日志器
func ForSystem(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("system", name).Logger()
}

// Nop 不输出任何内容的日志器（测试和未配置日志时使用）
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
