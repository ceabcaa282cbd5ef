// Package logging provides a minimal logging interface and adapters for
// upcheck.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the orchestrator, scheduler and providers use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - UpdateLogger contextual wrapper with cycle and fetch helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewDefaultSlogLogger()
//	checker, err := upcheck.New("1.0.0", func(o *upcheck.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
