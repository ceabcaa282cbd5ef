// Package polymart provides an update provider adapter for the Polymart
// marketplace API.
package polymart

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hupe1980/upcheck/internal/util"
	"github.com/hupe1980/upcheck/logging"
	"github.com/hupe1980/upcheck/provider"
)

const endpoint = "https://api.polymart.org/v1/getResourceInfoSimple/?resource_id={0}&key=version"

// Options configures the Polymart provider adapter.
type Options struct {
	HTTPClient *http.Client
	// Endpoint overrides the API URL template; receives the resource id as {0}.
	Endpoint string
	Logger   logging.Logger
}

// Provider fetches the latest version of a Polymart resource. Download and
// changelog links are derived from the resource page and available without a
// fetch.
type Provider struct {
	provider.Base
	resourceID int
	logger     logging.Logger
}

// New creates a provider for the given Polymart resource id.
func New(resourceID int, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Endpoint: endpoint,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	p := &Provider{
		Base:       provider.NewBase(opts.Endpoint, resourceID),
		resourceID: resourceID,
		logger:     opts.Logger,
	}
	p.SetHTTPClient(opts.HTTPClient)

	pageURL := util.Format("https://polymart.org/resource/{0}", resourceID)
	p.SetDownloadLink(pageURL)
	p.SetChangelogLink(pageURL + "/updates")

	return p
}

// response mirrors the simple-info payload: a bare version string on success,
// an error message for unknown resources.
type response struct {
	Response struct {
		Success bool   `json:"success"`
		Version string `json:"version"`
		Errors  any    `json:"errors"`
	} `json:"response"`
}

// Initialize fetches the resource version. It reports false without error for
// an unknown resource id.
func (p *Provider) Initialize(ctx context.Context) (bool, error) {
	resp, err := p.Get(ctx, "PolymartProvider")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		p.logger.Warn("Unable to reach provider, perhaps the resource does not exist", "provider", p.Name(), "resource_id", p.resourceID)
		return false, nil
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}

	if !body.Response.Success || body.Response.Version == "" {
		p.logger.Warn("Unable to reach provider, perhaps the resource does not exist", "provider", p.Name(), "resource_id", p.resourceID)
		return false, nil
	}

	p.SetRemoteVersion(body.Response.Version)

	return true, nil
}

// Name implements core.Provider.
func (p *Provider) Name() string { return "Polymart" }

// Author implements core.Provider.
func (p *Provider) Author() string { return "hupe1980" }

// Version implements core.Provider.
func (p *Provider) Version() string { return "1.0" }
