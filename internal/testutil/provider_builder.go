package testutil

import (
	"context"
	"sync/atomic"
)

// StubProvider is a scripted core.Provider double. Configure it through
// ProviderBuilder; Initialize replays the scripted outcome and counts calls.
// The call counter is atomic so scheduler tests can poll it while cycles run
// on a worker goroutine.
type StubProvider struct {
	name          string
	remoteVersion string
	downloadLink  string
	changelogLink string
	initOK        bool
	initErr       error

	calls atomic.Int64
}

// Initialize replays the scripted outcome.
func (p *StubProvider) Initialize(ctx context.Context) (bool, error) {
	p.calls.Add(1)
	if p.initErr != nil {
		return false, p.initErr
	}
	return p.initOK, nil
}

// Calls reports how often Initialize was invoked, for asserting
// short-circuit behavior.
func (p *StubProvider) Calls() int { return int(p.calls.Load()) }

// Name implements core.Provider.
func (p *StubProvider) Name() string { return p.name }

// Author implements core.Provider.
func (p *StubProvider) Author() string { return "testutil" }

// Version implements core.Provider.
func (p *StubProvider) Version() string { return "0.0" }

// DownloadLink implements core.Provider.
func (p *StubProvider) DownloadLink() string { return p.downloadLink }

// ChangelogLink implements core.Provider.
func (p *StubProvider) ChangelogLink() string { return p.changelogLink }

// RemoteVersion implements core.Provider.
func (p *StubProvider) RemoteVersion() string { return p.remoteVersion }

// ProviderBuilder fluently constructs StubProviders.
// Example:
//
//	p := NewProviderBuilder().Name("beta-feed").Remote("1.3.0-beta").Build()
//
// Chain only the parts you need; defaults produce a successful provider with
// no remote version.
type ProviderBuilder struct {
	name          string
	remoteVersion string
	downloadLink  string
	changelogLink string
	initOK        bool
	initErr       error
}

// NewProviderBuilder creates a builder whose provider initializes
// successfully by default.
func NewProviderBuilder() *ProviderBuilder {
	return &ProviderBuilder{name: "stub", initOK: true}
}

// Name sets the provider name (chainable).
func (b *ProviderBuilder) Name(name string) *ProviderBuilder { b.name = name; return b }

// Remote sets the raw remote version returned after Initialize (chainable).
func (b *ProviderBuilder) Remote(v string) *ProviderBuilder { b.remoteVersion = v; return b }

// Links sets the download and changelog links (chainable).
func (b *ProviderBuilder) Links(download, changelog string) *ProviderBuilder {
	b.downloadLink = download
	b.changelogLink = changelog
	return b
}

// NoData scripts Initialize to report (false, nil) (chainable).
func (b *ProviderBuilder) NoData() *ProviderBuilder { b.initOK = false; return b }

// Fails scripts Initialize to return the given error (chainable).
func (b *ProviderBuilder) Fails(err error) *ProviderBuilder { b.initErr = err; return b }

// Build returns a fresh stub with the configured script.
func (b *ProviderBuilder) Build() *StubProvider {
	return &StubProvider{
		name:          b.name,
		remoteVersion: b.remoteVersion,
		downloadLink:  b.downloadLink,
		changelogLink: b.changelogLink,
		initOK:        b.initOK,
		initErr:       b.initErr,
	}
}
