// Package bukkit provides an update provider adapter for the Bukkit
// (CurseForge servermods) files API.
package bukkit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hupe1980/upcheck/logging"
	"github.com/hupe1980/upcheck/provider"
)

const endpoint = "https://api.curseforge.com/servermods/files?projectids={0}"

// Options configures the Bukkit provider adapter.
type Options struct {
	HTTPClient *http.Client
	// Endpoint overrides the files API URL template; receives the project id
	// as {0}.
	Endpoint string
	Logger   logging.Logger
}

// Provider fetches the newest file of a CurseForge servermods project. The
// files endpoint returns releases oldest-first; the last entry wins.
type Provider struct {
	provider.Base
	projectID int
	logger    logging.Logger
}

// New creates a provider for the given servermods project id.
func New(projectID int, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Endpoint: endpoint,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	p := &Provider{
		Base:      provider.NewBase(opts.Endpoint, projectID),
		projectID: projectID,
		logger:    opts.Logger,
	}
	p.SetHTTPClient(opts.HTTPClient)

	return p
}

// file mirrors the subset of a servermods file entry the adapter reads.
type file struct {
	Name        string `json:"name"`
	DownloadURL string `json:"downloadUrl"`
}

// Initialize fetches the project file list. It reports false without error
// when the project does not exist or has no files yet.
func (p *Provider) Initialize(ctx context.Context) (bool, error) {
	resp, err := p.Get(ctx, "BukkitProvider")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		p.logger.Warn("Unable to reach provider, perhaps the resource does not exist", "provider", p.Name(), "project_id", p.projectID)
		return false, nil
	}

	var files []file
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return false, err
	}

	if len(files) == 0 {
		p.logger.Warn("There are no files yet for this resource", "provider", p.Name(), "project_id", p.projectID)
		return false, nil
	}

	latest := files[len(files)-1]
	p.SetRemoteVersion(latest.Name)
	p.SetDownloadLink(latest.DownloadURL)

	return true, nil
}

// Name implements core.Provider.
func (p *Provider) Name() string { return "Bukkit" }

// Author implements core.Provider.
func (p *Provider) Author() string { return "hupe1980" }

// Version implements core.Provider.
func (p *Provider) Version() string { return "1.0" }
