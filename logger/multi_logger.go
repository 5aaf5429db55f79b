package logger

import (
	"errors"
	"io"
)

// MultiLogger 同时输出到多个日志
type MultiLogger struct {
	outs []Logger
}

func NewMultiLogger(writers ...Logger) Logger {
	return &MultiLogger{
		outs: writers,
	}
}

// DefaultWriter out
func (l *MultiLogger) DefaultWriter() io.Writer {
	ws := make([]io.Writer, 0, len(l.outs))
	for _, o := range l.outs {
		ws = append(ws, o.DefaultWriter())
	}
	return &multiWriter{Writer: io.MultiWriter(ws...), ws: ws}
}

// SetLevel set all
func (l *MultiLogger) SetLevel(ll LogLevel) {
	for _, o := range l.outs {
		o.SetLevel(ll)
	}
}

// Debug writelog with level 10
func (l *MultiLogger) Debug(msg string) {
	for _, o := range l.outs {
		o.Debug(msg)
	}
}

// Info writelog with level 20
func (l *MultiLogger) Info(msg string) {
	for _, o := range l.outs {
		o.Info(msg)
	}
}

// Warning writelog with level 30
func (l *MultiLogger) Warning(msg string) {
	for _, o := range l.outs {
		o.Warning(msg)
	}
}

// Error writelog with level 40
func (l *MultiLogger) Error(msg string) {
	for _, o := range l.outs {
		o.Error(msg)
	}
}

// System writelog with level 90
func (l *MultiLogger) System(msg string) {
	for _, o := range l.outs {
		o.System(msg)
	}
}

type multiWriter struct {
	io.Writer
	ws []io.Writer
}

func (m *multiWriter) Close() error {
	var errs []error
	for _, w := range m.ws {
		if c, ok := w.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
