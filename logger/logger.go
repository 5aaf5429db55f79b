package logger

import (
	"io"

	"github.com/xyzj/geodatum/json"
)

type LogLevel byte

const (
	LogDebug   LogLevel = 10
	LogInfo    LogLevel = 20
	LogWarning LogLevel = 30
	LogError   LogLevel = 40
	LogSystem  LogLevel = 90
)

var levelTags = map[LogLevel]string{
	LogDebug:   "[DBG] ",
	LogInfo:    "[INF] ",
	LogWarning: "[WRN] ",
	LogError:   "[ERR] ",
	LogSystem:  "[SYS] ",
}

// Logger 日志接口
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	System(msg string)
	DefaultWriter() io.Writer
	SetLevel(l LogLevel)
}

// NilLogger 空日志
type NilLogger struct{}

// Debug Debug
func (l *NilLogger) Debug(msg string) {}

// Info Info
func (l *NilLogger) Info(msg string) {}

// Warning Warning
func (l *NilLogger) Warning(msg string) {}

// Error Error
func (l *NilLogger) Error(msg string) {}

// System System
func (l *NilLogger) System(msg string) {}

// DefaultWriter 返回日志Writer
func (l *NilLogger) DefaultWriter() io.Writer { return io.Discard }
func (l *NilLogger) SetLevel(LogLevel)        {}

// StdLogger 按等级过滤后写入out
type StdLogger struct {
	out      io.Writer
	logLevel LogLevel
}

func (l *StdLogger) write(ll LogLevel, msg string) {
	if ll < l.logLevel {
		return
	}
	l.out.Write(json.Bytes(levelTags[ll] + msg))
}

// Debug Debug
func (l *StdLogger) Debug(msg string) { l.write(LogDebug, msg) }

// Info Info
func (l *StdLogger) Info(msg string) { l.write(LogInfo, msg) }

// Warning Warning
func (l *StdLogger) Warning(msg string) { l.write(LogWarning, msg) }

// Error Error
func (l *StdLogger) Error(msg string) { l.write(LogError, msg) }

// System System
func (l *StdLogger) System(msg string) { l.write(LogSystem, msg) }

// DefaultWriter 返回日志Writer
func (l *StdLogger) DefaultWriter() io.Writer {
	return l.out
}

func (l *StdLogger) SetLevel(ll LogLevel) {
	l.logLevel = ll
}

// NewLogger init logger
//
// l: 日志等级，低于该等级的日志不输出
//
// opts: 文件相关设置，未设置文件名时仅输出到控制台
func NewLogger(l LogLevel, opts ...Options) Logger {
	return &StdLogger{
		out:      NewWriter(opts...),
		logLevel: l,
	}
}

// NewWriterLogger 输出到指定的writer，不附加时间戳
func NewWriterLogger(w io.Writer, l LogLevel) Logger {
	return &StdLogger{
		out:      w,
		logLevel: l,
	}
}

func NewNilLogger() Logger {
	return &NilLogger{}
}

// Close 关闭日志的文件输出
func Close(l Logger) error {
	if c, ok := l.DefaultWriter().(io.Closer); ok {
		return c.Close()
	}
	return nil
}
