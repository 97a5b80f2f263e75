package logging

import (
	"context"
	"maps"
	"os"

	"github.com/rs/zerolog"
)

// DefaultLogger is the built-in Logger implementation backed by zerolog.
// All levels write to stderr, keeping stdout free for command output.
type DefaultLogger struct {
	zl     zerolog.Logger
	level  Level
	fields Fields
}

// NewDefaultLogger creates a new zerolog-backed logger writing
// human-readable console output to stderr.
func NewDefaultLogger() *DefaultLogger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return &DefaultLogger{
		zl:     zerolog.New(writer).With().Timestamp().Logger(),
		level:  InfoLevel,
		fields: make(Fields),
	}
}

// NewJSONLogger creates a zerolog-backed logger emitting structured JSON,
// for embedding backline in services that aggregate logs.
func NewJSONLogger() *DefaultLogger {
	return &DefaultLogger{
		zl:     zerolog.New(os.Stderr).With().Timestamp().Logger(),
		level:  InfoLevel,
		fields: make(Fields),
	}
}

func (d *DefaultLogger) event(ev *zerolog.Event, msg string, fields []Fields) {
	allFields := make(Fields)
	maps.Copy(allFields, d.fields)
	for _, f := range fields {
		maps.Copy(allFields, f)
	}
	for k, v := range allFields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	if d.level > DebugLevel {
		return
	}
	d.event(d.zl.Debug(), msg, fields)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	if d.level > InfoLevel {
		return
	}
	d.event(d.zl.Info(), msg, fields)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	if d.level > WarnLevel {
		return
	}
	d.event(d.zl.Warn(), msg, fields)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	if d.level > ErrorLevel {
		return
	}
	d.event(d.zl.Error().Err(err), msg, fields)
}

func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	// zerolog's Fatal would os.Exit; the library must not terminate the host
	// application, so Fatal logs at error severity with a fatal marker.
	d.event(d.zl.Error().Err(err).Bool("fatal", true), msg, fields)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields)
	maps.Copy(merged, d.fields)
	maps.Copy(merged, fields)
	return &DefaultLogger{zl: d.zl, level: d.level, fields: merged}
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := ctx.Value(contextFieldsKey{}).(Fields); ok {
		return d.WithFields(fields)
	}
	return d
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}

type contextFieldsKey struct{}

// ContextWithFields attaches logging fields to a context so that
// WithContext-derived loggers pick them up.
func ContextWithFields(ctx context.Context, fields Fields) context.Context {
	return context.WithValue(ctx, contextFieldsKey{}, fields)
}
