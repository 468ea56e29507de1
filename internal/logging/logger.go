package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the structured logging contract used across the application.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// Field is a single structured key/value pair attached to a log event.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a field holding err under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger returns a logger writing to w, tagging every event with the
// given component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// Info logs msg at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

// Error logs msg at error level with err attached.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs msg at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments, space separated, at info level.
func (a *ZerologAdapter) Println(args ...any) {
	msg := fmt.Sprintln(args...)
	a.logger.Info().Msg(msg[:len(msg)-1])
}

func applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(string, ...Field)         {}
func (NopLogger) Error(string, error, ...Field) {}
func (NopLogger) Debug(string, ...Field)        {}
func (NopLogger) Printf(string, ...any)         {}
func (NopLogger) Println(...any)                {}

// SetLevel parses level (e.g. "debug", "info", "warn") and applies it as the
// zerolog global level.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
