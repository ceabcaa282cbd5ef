package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/upcheck/updater"
)

const sampleConfig = `
updater:
  enabled: true
  unstable_preferred: true
  interval: 30 minutes
  permission: myplugin.update.notify
providers:
  - type: github
    repo: owner/name
  - type: polymart
    resource_id: 123
  - type: bukkit
    project_id: 456
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	require.NotNil(t, cfg.Updater.Enabled)
	assert.True(t, *cfg.Updater.Enabled)
	require.NotNil(t, cfg.Updater.UnstablePreferred)
	assert.True(t, *cfg.Updater.UnstablePreferred)
	assert.Equal(t, "30 minutes", cfg.Updater.Interval)
	assert.Equal(t, "myplugin.update.notify", cfg.Updater.Permission)
	require.Len(t, cfg.Providers, 3)
	assert.Equal(t, "github", cfg.Providers[0].Type)
	assert.Equal(t, "owner/name", cfg.Providers[0].Repo)
	assert.Equal(t, 123, cfg.Providers[1].ResourceID)
	assert.Equal(t, 456, cfg.Providers[2].ProjectID)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("updater: [not, a, mapping]"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Providers, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	b, err := cfg.Apply(updater.NewBuilder("1.0.0"))
	require.NoError(t, err)

	u, err := b.Build()
	require.NoError(t, err)
	assert.True(t, u.Enabled())
	assert.True(t, u.UnstablePreferred())
	assert.Equal(t, 30*time.Minute, u.Interval())
	assert.Equal(t, "myplugin.update.notify", u.Permission())
	assert.Len(t, u.Providers(), 3)
}

func TestApply_UnknownProviderType(t *testing.T) {
	cfg, err := Parse([]byte("providers:\n  - type: mystery\n"))
	require.NoError(t, err)

	_, err = cfg.Apply(updater.NewBuilder("1.0.0"))
	assert.ErrorContains(t, err, "unknown type")
}

func TestApply_MissingAdapterField(t *testing.T) {
	cfg, err := Parse([]byte("providers:\n  - type: github\n"))
	require.NoError(t, err)

	_, err = cfg.Apply(updater.NewBuilder("1.0.0"))
	assert.ErrorContains(t, err, "requires repo")
}

func TestApply_OmittedBooleansKeepBuilderState(t *testing.T) {
	cfg, err := Parse([]byte("providers:\n  - type: github\n    repo: o/n\n"))
	require.NoError(t, err)

	b := updater.NewBuilder("1.0.0").
		SetEnabled(false).
		SetUnstablePreferred(true)
	_, err = cfg.Apply(b)
	require.NoError(t, err)

	u, err := b.Build()
	require.NoError(t, err)
	assert.False(t, u.Enabled())
	assert.True(t, u.UnstablePreferred())
}

func TestApply_DisabledStaysDisabled(t *testing.T) {
	cfg, err := Parse([]byte("updater:\n  enabled: false\nproviders:\n  - type: github\n    repo: o/n\n"))
	require.NoError(t, err)

	b, err := cfg.Apply(updater.NewBuilder("1.0.0"))
	require.NoError(t, err)
	u, err := b.Build()
	require.NoError(t, err)
	assert.False(t, u.Enabled())
}
