// Package github provides an update provider adapter for the GitHub releases
// API.
package github

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hupe1980/upcheck/logging"
	"github.com/hupe1980/upcheck/provider"
)

const endpoint = "https://api.github.com/repos/{0}/releases/latest"

// Options configures the GitHub provider adapter.
type Options struct {
	// HTTPClient overrides the default 30-second-timeout client. Useful for
	// tests.
	HTTPClient *http.Client
	// Endpoint overrides the release API URL template. The template receives
	// the repository as parameter {0}.
	Endpoint string
	// Logger receives diagnostic output. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Provider fetches the latest release of a GitHub repository.
type Provider struct {
	provider.Base
	repo   string
	logger logging.Logger
}

// release mirrors the subset of the GitHub release payload the adapter reads.
type release struct {
	TagName string  `json:"tag_name"`
	HTMLURL string  `json:"html_url"`
	Assets  []asset `json:"assets"`
}

type asset struct {
	BrowserDownloadURL string `json:"browser_download_url"`
}

// New creates a provider for the given "owner/name" repository.
func New(repo string, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Endpoint: endpoint,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	p := &Provider{
		Base:   provider.NewBase(opts.Endpoint, repo),
		repo:   repo,
		logger: opts.Logger,
	}
	p.SetHTTPClient(opts.HTTPClient)

	return p
}

// Initialize fetches the latest release and populates the version and link
// fields. It reports false without error when the repository does not exist,
// has no releases, or the API rate limit was hit.
func (p *Provider) Initialize(ctx context.Context) (bool, error) {
	resp, err := p.Get(ctx, "GithubProvider")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		p.logger.Warn("Unable to reach provider, perhaps the resource does not exist", "provider", p.Name(), "repo", p.repo)
		return false, nil
	case http.StatusForbidden:
		p.logger.Warn("Unable to reach provider: rate limit reached", "provider", p.Name())
		return false, nil
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return false, err
	}

	p.SetRemoteVersion(rel.TagName)
	p.SetChangelogLink(rel.HTMLURL)
	if len(rel.Assets) > 0 {
		p.SetDownloadLink(rel.Assets[0].BrowserDownloadURL)
	}

	return true, nil
}

// Name implements core.Provider.
func (p *Provider) Name() string { return "GitHub" }

// Author implements core.Provider.
func (p *Provider) Author() string { return "hupe1980" }

// Version implements core.Provider.
func (p *Provider) Version() string { return "1.0" }
