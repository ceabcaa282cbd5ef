package core

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

var (
	// ErrNoProviders is returned when an updater is configured without any
	// update provider. It is a configuration error raised before any I/O,
	// never mapped to a cycle result.
	ErrNoProviders = errors.New("at least one update provider is required")
)

// CheckError wraps an unclassified I/O failure encountered during a check
// cycle. Only connectivity and versioning failures are downgraded to reported
// results; everything else signals a genuine defect or an unexpected
// condition and propagates fatally through this type.
type CheckError struct {
	Provider string
	Err      error
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("update check failed on provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CheckError) Unwrap() error { return e.Err }

// IsConnectionError reports whether err represents a DNS or socket-level
// connectivity failure, unwrapping url.Error chains produced by net/http.
// Timeouts count as connectivity failures: a stalled remote endpoint hitting
// the read timeout is indistinguishable from an unreachable one.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
