package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the minimal logging interface for upcheck.
// This allows hosts to provide their own logger implementation or use the built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// UpdateLogger decorates any Logger with contextual cloning helpers and the
// domain log lines the orchestrator emits (provider fetches, cycle outcomes).
// The orchestrator wraps whatever Logger the host injected, so the contextual
// attributes reach custom logger implementations too. Level filtering is the
// wrapped logger's concern.
type UpdateLogger struct {
	logger    Logger
	context   map[string]any
	component string
	provider  string
}

// NewUpdateLogger wraps a Logger. A nil logger yields a silent UpdateLogger.
func NewUpdateLogger(logger Logger) *UpdateLogger {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &UpdateLogger{logger: logger, context: map[string]any{}}
}

// LoggerConfig configures construction of an UpdateLogger backed by slog.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	AddSource bool
	Component string
	// CustomAttrs are attached to every log entry, e.g. an application name.
	CustomAttrs map[string]any
}

// DefaultLoggerConfig returns a baseline JSON info level configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout, AddSource: false, CustomAttrs: map[string]any{}}
}

// NewLogger builds a slog-backed UpdateLogger from a config (or defaults if
// nil).
func NewLogger(cfg *LoggerConfig) *UpdateLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	l := NewUpdateLogger(NewSlogAdapter(slog.New(handler)))
	l.component = cfg.Component
	for k, v := range cfg.CustomAttrs {
		l.context[k] = v
	}
	return l
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *UpdateLogger) clone() *UpdateLogger {
	nl := *l
	nl.context = map[string]any{}
	for k, v := range l.context {
		nl.context[k] = v
	}
	return &nl
}

// WithContext adds a key/value attribute that will be attached to every log entry.
func (l *UpdateLogger) WithContext(key string, value any) *UpdateLogger {
	nl := l.clone()
	nl.context[key] = value
	return nl
}

// WithComponent sets the logical component (updater, scheduler, provider, etc.).
func (l *UpdateLogger) WithComponent(c string) *UpdateLogger {
	nl := l.clone()
	nl.component = c
	return nl
}

// WithProvider attaches the provider name currently being consulted.
func (l *UpdateLogger) WithProvider(name string) *UpdateLogger {
	nl := l.clone()
	nl.provider = name
	return nl
}

// args prepends the contextual attributes to the call-site key/value pairs.
func (l *UpdateLogger) args(extra ...any) []any {
	out := make([]any, 0, 4+2*len(l.context)+len(extra))
	if l.component != "" {
		out = append(out, "component", l.component)
	}
	if l.provider != "" {
		out = append(out, "provider", l.provider)
	}
	for k, v := range l.context {
		out = append(out, k, v)
	}
	return append(out, extra...)
}

// Debug logs at debug level with the contextual attributes attached.
func (l *UpdateLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, l.args(args...)...) }

// Info logs at info level with the contextual attributes attached.
func (l *UpdateLogger) Info(msg string, args ...any) { l.logger.Info(msg, l.args(args...)...) }

// Warn logs at warn level with the contextual attributes attached.
func (l *UpdateLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, l.args(args...)...) }

// Error logs at error level with the contextual attributes attached.
func (l *UpdateLogger) Error(msg string, args ...any) { l.logger.Error(msg, l.args(args...)...) }

// LogProviderFetch records the outcome of a single provider fetch: debug for
// routine completion, error when the fetch failed.
func (l *UpdateLogger) LogProviderFetch(provider string, dur time.Duration, found bool, err error) {
	args := l.args("provider", provider, "duration", dur, "found", found)
	if err != nil {
		l.logger.Error("Provider fetch failed", append(args, "error", err)...)
		return
	}
	l.logger.Debug("Provider fetch completed", args...)
}

// LogCycle records aggregate check cycle metrics.
func (l *UpdateLogger) LogCycle(result string, providersTried int, dur time.Duration) {
	l.logger.Info("Check cycle completed",
		l.args("result", result, "providers_tried", providersTried, "duration", dur)...)
}

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}
