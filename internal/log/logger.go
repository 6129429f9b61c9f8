// Package log wraps log/slog with the component and field conventions
// used across the hisab binaries.
package log

import (
	"log/slog"
	"os"
	"strings"
)

// Logger carries a component name that is attached to every record.
type Logger struct {
	*slog.Logger
	component string
}

// Config controls handler construction. A nil Handler gets a text or
// JSON handler on stderr depending on Format.
type Config struct {
	Level     slog.Level
	Component string
	Format    string // "text" or "json"
	Handler   slog.Handler
}

// DefaultConfig reads LOG_LEVEL and LOG_FORMAT from the environment,
// defaulting to info-level text output for the app component.
func DefaultConfig() Config {
	return Config{
		Level:     levelFromEnv(os.Getenv("LOG_LEVEL")),
		Component: ComponentApp,
		Format:    os.Getenv("LOG_FORMAT"),
	}
}

func levelFromEnv(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New builds a logger from the config.
func New(cfg Config) *Logger {
	handler := cfg.Handler
	if handler == nil {
		opts := &slog.HandlerOptions{Level: cfg.Level}
		if strings.EqualFold(cfg.Format, "json") {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}
	}
	component := cfg.Component
	if component == "" {
		component = ComponentApp
	}
	return &Logger{Logger: slog.New(handler), component: component}
}

// With returns a logger carrying the extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), component: l.component}
}

// WithComponent returns a logger for a subsystem; the component shows
// up as an attribute on every record it writes.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger, component: component}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.Logger.Debug(msg, l.withComponent(args)...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.Logger.Info(msg, l.withComponent(args)...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.Logger.Warn(msg, l.withComponent(args)...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.Logger.Error(msg, l.withComponent(args)...)
}

func (l *Logger) withComponent(args []any) []any {
	return append([]any{FieldComponent, l.component}, args...)
}

// SetDefault routes the package-level slog calls through this logger,
// so code that only imports log/slog still lands in the same handler.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
