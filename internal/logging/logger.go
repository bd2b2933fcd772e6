// Package logging provides the output interface used by warp components
// outside the numeric core.
package logging

import (
	"io"
	"log"
	"os"
)

// Logger defines the output interface used by warp components.
type Logger interface {
	Info(...interface{})
	Infof(string, ...interface{})
	Warn(...interface{})
	Warnf(string, ...interface{})
	Error(...interface{})
	Errorf(string, ...interface{})
}

// DefaultLogger wraps the standard log library with one logger per level.
type DefaultLogger struct {
	I *log.Logger
	W *log.Logger
	E *log.Logger
}

// NewLogger returns a configured default logger: info and warnings go to
// stdout, errors to stderr.
func NewLogger() *DefaultLogger {
	return &DefaultLogger{
		I: log.New(os.Stdout, "[INFO] ", log.LstdFlags),
		W: log.New(os.Stdout, "[WARN] ", log.LstdFlags),
		E: log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
}

// NewWriterLogger returns a logger sending every level to w.
func NewWriterLogger(w io.Writer) *DefaultLogger {
	return &DefaultLogger{
		I: log.New(w, "[INFO] ", log.LstdFlags),
		W: log.New(w, "[WARN] ", log.LstdFlags),
		E: log.New(w, "[ERROR] ", log.LstdFlags),
	}
}

// Discard returns a logger that drops everything.
func Discard() *DefaultLogger {
	return NewWriterLogger(io.Discard)
}

// Info writes to info logger
func (d *DefaultLogger) Info(v ...interface{}) { d.I.Print(v...) }

// Infof writes to info logger
func (d *DefaultLogger) Infof(f string, v ...interface{}) { d.I.Printf(f, v...) }

// Warn writes to the warning logger
func (d *DefaultLogger) Warn(v ...interface{}) { d.W.Print(v...) }

// Warnf writes to the warning logger
func (d *DefaultLogger) Warnf(f string, v ...interface{}) { d.W.Printf(f, v...) }

// Error writes to the error logger
func (d *DefaultLogger) Error(v ...interface{}) { d.E.Print(v...) }

// Errorf writes to the error logger
func (d *DefaultLogger) Errorf(f string, v ...interface{}) { d.E.Printf(f, v...) }
