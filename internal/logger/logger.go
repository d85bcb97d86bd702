// Package logger wraps zerolog for the demo command.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	FieldComponent = "component"
	FieldScenario  = "scenario"
	FieldStage     = "stage"
	FieldValue     = "value"
)

// Logger wraps zerolog.Logger with a component tag.
type Logger struct {
	logger zerolog.Logger
}

// New creates a logger from cfg writing to w. Choosing w from cfg.Output is
// left to the caller.
func New(cfg Config, w io.Writer) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if strings.ToLower(cfg.Format) == FormatConsole {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    cfg.NoColor,
			TimeFormat: "15:04:05",
		}
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{logger: zl}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldComponent, name).Logger()}
}

// With returns a logger carrying an extra string field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{logger: l.logger.With().Str(key, value).Logger()}
}

// Stage logs an intermediate pipeline value at debug level.
func (l *Logger) Stage(stage string, value any) {
	l.logger.Debug().Str(FieldStage, stage).Interface(FieldValue, value).Msg("stage")
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}
