// Package logx is the process-wide logger facade.
//
// Call sites use the package functions (logx.Infof, logx.Warn, ...) or
// logx.WithFields for structured context. The backend is logrus.
package logx

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Fields is a set of structured key/value pairs
type Fields = logrus.Fields

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// ParseLevel maps a config string to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func SetLevel(level Level) {
	std.SetLevel(level.logrus())
}

func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Configure applies the level and format ("json" or "text") from configuration
func Configure(level, format string) {
	SetLevel(ParseLevel(level))
	if strings.EqualFold(format, "json") {
		std.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Entry is a logger bound to structured fields
type Entry struct {
	entry *logrus.Entry
}

func WithFields(fields Fields) *Entry {
	return &Entry{entry: std.WithFields(fields)}
}

func (e *Entry) WithField(key string, value any) *Entry {
	return &Entry{entry: e.entry.WithField(key, value)}
}

func (e *Entry) Debugf(format string, args ...any) { e.entry.Debugf(format, args...) }
func (e *Entry) Infof(format string, args ...any)  { e.entry.Infof(format, args...) }
func (e *Entry) Warnf(format string, args ...any)  { e.entry.Warnf(format, args...) }
func (e *Entry) Errorf(format string, args ...any) { e.entry.Errorf(format, args...) }

func Debug(args ...any)                 { std.Debug(args...) }
func Debugf(format string, args ...any) { std.Debugf(format, args...) }
func Info(args ...any)                  { std.Info(args...) }
func Infof(format string, args ...any)  { std.Infof(format, args...) }
func Warn(args ...any)                  { std.Warn(args...) }
func Warnf(format string, args ...any)  { std.Warnf(format, args...) }
func Error(args ...any)                 { std.Error(args...) }
func Errorf(format string, args ...any) { std.Errorf(format, args...) }
func Fatal(args ...any)                 { std.Fatal(args...) }
func Fatalf(format string, args ...any) { std.Fatalf(format, args...) }
