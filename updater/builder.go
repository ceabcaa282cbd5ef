// Package updater implements the update-check orchestrator: it owns the
// provider chain, the audience list and the check settings, runs the check
// cycle and emits completion / failure signals. Configuration happens on a
// chainable Builder that is finalized into an immutable Updater before any
// scheduling begins, so running cycles never race with mutation.
package updater

import (
	"time"

	"github.com/hupe1980/upcheck/core"
	"github.com/hupe1980/upcheck/history"
	"github.com/hupe1980/upcheck/internal/util"
	"github.com/hupe1980/upcheck/logging"
	"github.com/hupe1980/upcheck/version"
)

// Builder accumulates updater configuration through chainable calls. Obtain
// one via NewBuilder, chain the options you need, then call Build. A Builder
// is not safe for concurrent use and should be discarded after Build.
type Builder struct {
	localVersion      string
	providers         []core.Provider
	audience          []core.Member
	enabled           bool
	unstablePreferred bool
	interval          time.Duration
	permission        string
	notifier          core.Notifier
	logger            logging.Logger
	store             history.Store
}

// NewBuilder starts a builder for an updater watching over the given locally
// installed version. Defaults: enabled, stable releases only, 2 hour poll
// interval, no permission requirement.
func NewBuilder(localVersion string) *Builder {
	return &Builder{
		localVersion: localVersion,
		enabled:      true,
		interval:     util.DefaultInterval,
	}
}

// AddProvider appends a provider to the fallback chain. Providers are
// consulted in insertion order; nil providers are ignored.
func (b *Builder) AddProvider(p core.Provider) *Builder {
	if p != nil {
		b.providers = append(b.providers, p)
	}
	return b
}

// AddAudienceMember adds a single recipient to the audience list. Members are
// deduplicated by ID; presence and permissions are checked at notification
// time, not here.
func (b *Builder) AddAudienceMember(m core.Member) *Builder {
	if m == nil {
		return b
	}
	for _, existing := range b.audience {
		if existing.ID() == m.ID() {
			return b
		}
	}
	b.audience = append(b.audience, m)
	return b
}

// AddAudience adds multiple recipients, deduplicated by ID.
func (b *Builder) AddAudience(members ...core.Member) *Builder {
	for _, m := range members {
		b.AddAudienceMember(m)
	}
	return b
}

// SetEnabled toggles whether the updater performs checks. Enabled by default.
func (b *Builder) SetEnabled(enabled bool) *Builder {
	b.enabled = enabled
	return b
}

// SetUnstablePreferred controls whether non-release builds (alpha, beta,
// pre-release) may trigger the completion signal. Off by default: only
// RELEASE tagged versions notify.
func (b *Builder) SetUnstablePreferred(preferred bool) *Builder {
	b.unstablePreferred = preferred
	return b
}

// SetInterval sets the poll interval from a human string such as "2h",
// "30 minutes" or "1 day". Letter casing is ignored; unparsable input falls
// back to the fixed 2 hour default.
func (b *Builder) SetInterval(interval string) *Builder {
	b.interval = util.ParseInterval(interval)
	return b
}

// SetPermission sets the permission node a member must hold to receive
// notifications. Empty means no permission requirement.
func (b *Builder) SetPermission(node string) *Builder {
	b.permission = node
	return b
}

// WithNotifier injects the port through which signals reach the host's event
// system. Defaults to a NoOpNotifier.
func (b *Builder) WithNotifier(n core.Notifier) *Builder {
	b.notifier = n
	return b
}

// WithLogger injects a logger. Defaults to a NoOpLogger.
func (b *Builder) WithLogger(l logging.Logger) *Builder {
	b.logger = l
	return b
}

// WithHistory injects a store that receives a record for every completed
// cycle. Optional.
func (b *Builder) WithHistory(s history.Store) *Builder {
	b.store = s
	return b
}

// Build finalizes the configuration into an Updater. It fails with
// core.ErrNoProviders when no provider was added and with an
// *version.InvalidVersionError when the local version cannot be normalized.
// Both are configuration errors surfaced before any I/O.
func (b *Builder) Build() (*Updater, error) {
	if len(b.providers) == 0 {
		return nil, core.ErrNoProviders
	}

	local, err := version.ParseArtifact(b.localVersion)
	if err != nil {
		return nil, err
	}

	notifier := b.notifier
	if notifier == nil {
		notifier = core.NoOpNotifier{}
	}
	// NewUpdateLogger tolerates nil and keeps the orchestrator silent; any
	// injected logger gains the contextual component attribute.
	logger := logging.NewUpdateLogger(b.logger).WithComponent("updater")

	providers := make([]core.Provider, len(b.providers))
	copy(providers, b.providers)
	audience := make([]core.Member, len(b.audience))
	copy(audience, b.audience)

	return &Updater{
		local:             local,
		latest:            local,
		providers:         providers,
		audience:          audience,
		enabled:           b.enabled,
		unstablePreferred: b.unstablePreferred,
		interval:          b.interval,
		permission:        b.permission,
		notifier:          notifier,
		logger:            logger,
		store:             b.store,
		result:            core.ResultUnknown,
	}, nil
}
