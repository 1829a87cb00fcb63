// Package log provides diagnostic logging for fexplore on top of logrus.
//
// Diagnostic logs are kept apart from the console output of the explorer:
// by default they go to stderr at warn level, so an interactive session shows
// nothing from this package unless debugging is turned on.
package log

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"fexplore/internal/errors"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value pair attached to a log entry
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type options struct {
	out   io.Writer
	json  bool
	file  string
	level logrus.Level
}

// Option configures a Logger
type Option func(*options)

// WithOutput sends log entries to w
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithJSON switches to one JSON object per line
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithFile additionally appends log entries to the named file
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithLevel sets the minimum level that is written
func WithLevel(level logrus.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// Logger writes leveled, structured entries
type Logger struct {
	entry *logrus.Entry
	level logrus.Level
	file  *os.File
}

// NewLogger creates a logger. Without options it writes text entries to
// stderr at warn level.
func NewLogger(opts ...Option) *Logger {
	o := options{
		out:   os.Stderr,
		level: logrus.WarnLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}

	l := &Logger{level: o.level}
	out := o.out
	if o.file != "" {
		f, err := os.OpenFile(o.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", o.file, err)
		} else {
			l.file = f
			out = io.MultiWriter(o.out, f)
		}
	}

	base := logrus.New()
	base.SetOutput(out)
	// Level gating happens in Logger so SetDebug can apply to existing loggers.
	base.SetLevel(logrus.DebugLevel)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l.entry = logrus.NewEntry(base)
	return l
}

// Configure replaces the package level logger
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Default returns the package level logger
func Default() *Logger {
	return logger
}

// SetDebug forces debug entries through regardless of the configured level
func SetDebug(debug bool) {
	isDebug = debug
}

// ParseLevel wraps logrus.ParseLevel
func ParseLevel(level string) (logrus.Level, error) {
	return logrus.ParseLevel(level)
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// With returns a logger that adds fields to every entry
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{
		entry: l.entry.WithFields(data),
		level: l.level,
		file:  l.file,
	}
}

// WithContext is accepted for call sites that carry a context; no values
// are extracted from it yet.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	return &Logger{
		entry: l.entry.WithContext(ctx),
		level: l.level,
		file:  l.file,
	}
}

func (l *Logger) enabled(level logrus.Level) bool {
	if level == logrus.DebugLevel && isDebug {
		return true
	}
	return level <= l.level
}

func (l *Logger) Debug(msg string) {
	if l.enabled(logrus.DebugLevel) {
		l.entry.Debug(msg)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.enabled(logrus.DebugLevel) {
		l.entry.Debugf(format, args...)
	}
}

func (l *Logger) Info(msg string) {
	if l.enabled(logrus.InfoLevel) {
		l.entry.Info(msg)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.enabled(logrus.InfoLevel) {
		l.entry.Infof(format, args...)
	}
}

func (l *Logger) Warn(msg string) {
	if l.enabled(logrus.WarnLevel) {
		l.entry.Warn(msg)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.enabled(logrus.WarnLevel) {
		l.entry.Warnf(format, args...)
	}
}

func (l *Logger) Error(msg string) {
	if l.enabled(logrus.ErrorLevel) {
		l.entry.Error(msg)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.enabled(logrus.ErrorLevel) {
		l.entry.Errorf(format, args...)
	}
}

// LogWithFields returns the package logger with fields attached
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger with the error and whatever
// the error knows about itself attached as fields.
func LogWithError(err error) *Logger {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}

	fields := []Field{
		F("error", err.Error()),
		F("error_kind", int(errors.KindOf(err))),
	}

	var fileErr *errors.FileError
	var configErr *errors.ConfigError
	switch {
	case errors.As(err, &configErr):
		fields = append(fields, F("param", configErr.Param()))
	case errors.As(err, &fileErr):
		fields = append(fields, F("path", fileErr.Path()), F("op", fileErr.Op()))
	}

	return logger.With(fields...)
}

// LogError logs err at error level with msg
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func Debug(msg string) {
	logger.Debug(msg)
}

func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Info(msg string) {
	logger.Info(msg)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Warn(msg string) {
	logger.Warn(msg)
}

func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func Error(msg string) {
	logger.Error(msg)
}

func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
