package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger wraps zerolog with a context-aware key/value API. Entries are
// enriched with the correlation ID stored in the context, if any.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		console.NoColor = writer != os.Stdout && writer != os.Stderr
		output = console
	}

	builder := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		builder = builder.Str("component", opts.Component)
	}
	return &Logger{base: builder.Logger()}, nil
}

// Nop returns a logger that discards every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that always writes the supplied key/value pairs.
func (l *Logger) With(fields ...any) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Fields(fields).Logger()}
	return &derived
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...any) {
	if l == nil {
		return
	}
	l.write(ctx, l.base.Debug(), msg, fields)
}

// Info writes an informational log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...any) {
	if l == nil {
		return
	}
	l.write(ctx, l.base.Info(), msg, fields)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...any) {
	if l == nil {
		return
	}
	l.write(ctx, l.base.Warn(), msg, fields)
}

// Error writes an error log entry. Pass the error as an "error" field.
func (l *Logger) Error(ctx context.Context, msg string, fields ...any) {
	if l == nil {
		return
	}
	l.write(ctx, l.base.Error(), msg, fields)
}

func (l *Logger) write(ctx context.Context, event *zerolog.Event, msg string, fields []any) {
	if event == nil {
		return
	}
	if id := CorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}
