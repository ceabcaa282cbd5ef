// Package provider contains the shared plumbing for update provider adapters:
// URL templating with positional parameters, automatic https prefixing, a
// bounded-timeout HTTP client and User-Agent generation. Concrete adapters
// live in subpackages (github, polymart, bukkit) and embed Base, supplying
// only their endpoint, identification and payload decoding.
package provider

import (
	"context"
	"net/http"
	"time"

	"github.com/hupe1980/upcheck/internal/util"
)

// ReadTimeout bounds every remote fetch so a stalled endpoint cannot hang a
// check cycle indefinitely. There is no cancellation beyond this timeout and
// the caller's context.
const ReadTimeout = 30 * time.Second

// Base bundles the state and helpers shared by provider adapters. Embed it in
// a concrete adapter and populate the link/version fields during Initialize.
// Base is immutable after construction except for those fields.
type Base struct {
	url    string
	client *http.Client

	downloadLink  string
	changelogLink string
	remoteVersion string
}

// NewBase constructs a Base from a URL template with bracketed positional
// parameters ("{0}", "{1}", ...). A missing http(s) scheme is auto-prefixed
// with https.
//
//	NewBase("api.github.com/repos/{0}/releases/latest", "owner/name")
func NewBase(urlTemplate string, params ...any) Base {
	return Base{
		url:    util.EnsureScheme(util.Format(urlTemplate, params...)),
		client: &http.Client{Timeout: ReadTimeout},
	}
}

// SetHTTPClient swaps the HTTP client, mainly for tests. The default client
// carries the 30-second read timeout.
func (b *Base) SetHTTPClient(c *http.Client) {
	if c != nil {
		b.client = c
	}
}

// URL returns the resolved remote endpoint this adapter fetches from. It is
// not the download or changelog link.
func (b *Base) URL() string { return b.url }

// Get performs a GET against the adapter's endpoint with the generated
// User-Agent. adapterName identifies the concrete adapter in the agent
// string. The caller owns the response body.
func (b *Base) Get(ctx context.Context, adapterName string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent(adapterName))
	req.Header.Set("Accept", "application/json")
	return b.client.Do(req)
}

// UserAgent generates the agent string sent on provider requests, in the
// form "upcheck/<AdapterName> (<date>)".
func UserAgent(adapterName string) string {
	return util.Format("upcheck/{0} ({1})", adapterName, time.Now().Format(time.RFC1123))
}

// DownloadLink returns the location users can obtain the update from, or
// empty if the adapter has not populated it.
func (b *Base) DownloadLink() string { return b.downloadLink }

// ChangelogLink returns the changelog location, or empty.
func (b *Base) ChangelogLink() string { return b.changelogLink }

// RemoteVersion returns the fetched raw remote version, or empty until a
// successful Initialize.
func (b *Base) RemoteVersion() string { return b.remoteVersion }

// SetDownloadLink stores the download location. For adapter use.
func (b *Base) SetDownloadLink(link string) { b.downloadLink = link }

// SetChangelogLink stores the changelog location. For adapter use.
func (b *Base) SetChangelogLink(link string) { b.changelogLink = link }

// SetRemoteVersion stores the fetched remote version. For adapter use.
func (b *Base) SetRemoteVersion(v string) { b.remoteVersion = v }
