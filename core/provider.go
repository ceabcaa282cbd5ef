package core

import "context"

// Provider is the capability contract every update source adapter implements.
//
// Providers are consumed polymorphically by the orchestrator as a
// priority-ordered fallback chain: the orchestrator walks them in insertion
// order and stops at the first one reporting a version strictly newer than
// the locally installed one.
//
// Implementations must:
//   - Perform the network fetch inside Initialize and populate their
//     version/link fields there.
//   - Return (false, nil) for "no usable data" conditions such as a missing
//     resource, an empty release list or an explicit rate-limit response.
//   - Return an error only for genuine I/O failures; connectivity-level
//     failures (DNS, socket) are recognized downstream via IsConnectionError.
//   - Respect context cancellation on the fetch.
type Provider interface {
	// Initialize performs the remote fetch. It reports whether usable data
	// was retrieved.
	Initialize(ctx context.Context) (bool, error)

	// Name returns the unique, non-empty name of this provider, used in logs
	// and diagnostics (e.g. "GitHub").
	Name() string

	// Author identifies who maintains this provider adapter.
	Author() string

	// Version returns the build version of the adapter implementation itself,
	// not the fetched remote version.
	Version() string

	// DownloadLink returns the location users can obtain the update from.
	// Empty until Initialize succeeds; may stay empty if the source exposes
	// no direct download.
	DownloadLink() string

	// ChangelogLink returns the location of the update's changelog, or empty.
	ChangelogLink() string

	// RemoteVersion returns the raw version string fetched from the remote
	// source. Empty until Initialize succeeds.
	RemoteVersion() string
}
