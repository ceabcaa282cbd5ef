// Package core provides the foundational domain types and interfaces used by
// upcheck. It defines the core abstractions for:
//
//   - Providers (adapters that fetch a remote version plus links from one source)
//   - Audience members (recipient identities with presence and permission checks)
//   - Results (the classified outcome of a check cycle)
//   - Events (immutable completion / failure signals) and the Notifier port
//
// The package intentionally keeps implementation concerns (HTTP adapters,
// orchestration, scheduling) out of scope, exposing small interfaces to enable
// custom providers and host integrations.
package core
