package updater

import (
	"context"
	"time"

	"github.com/hupe1980/upcheck/core"
	"github.com/hupe1980/upcheck/history"
	"github.com/hupe1980/upcheck/logging"
	"github.com/hupe1980/upcheck/version"
)

// Updater runs the update check cycle over a priority-ordered provider chain
// and notifies a filtered audience through its configured Notifier. Construct
// one via Builder.Build; configuration is immutable afterwards.
//
// The updater is designed for one cycle in flight at a time per instance and
// holds no internal lock: the scheduler guarantees non-overlapping
// invocations, and concurrent manual calls to RunCycle are a caller error.
type Updater struct {
	local     version.Artifact
	providers []core.Provider
	audience  []core.Member

	enabled           bool
	unstablePreferred bool
	interval          time.Duration
	permission        string

	notifier core.Notifier
	logger   *logging.UpdateLogger
	store    history.Store

	// Mutated only by RunCycle.
	result  core.Result
	latest  version.Artifact
	winning core.Provider
}

// RunCycle performs one full pass over the provider chain and returns the
// classified result. async distinguishes worker-context execution in the
// emitted signals; it does not change cycle behavior.
//
// Connectivity and versioning failures are downgraded to a result plus a
// failure signal and return a nil error. A nil ctx, configuration problems
// (empty chain) and any other I/O failure return an error instead: those are
// defects or unanticipated conditions, deliberately not classified.
func (u *Updater) RunCycle(ctx context.Context, async bool) (core.Result, error) {
	if len(u.providers) == 0 {
		return u.result, core.ErrNoProviders
	}

	if !u.enabled {
		u.result = core.ResultDisabled
		u.record()
		return u.result, nil
	}

	if len(u.audience) == 0 {
		u.logger.Warn("No audience configured for the updater")
	}

	start := time.Now()
	u.result = core.ResultUnknown
	u.latest = u.local
	tried := 0

	for _, p := range u.providers {
		u.winning = p
		tried++

		fetchStart := time.Now()
		ok, err := p.Initialize(ctx)
		if err != nil {
			if core.IsConnectionError(err) {
				u.logger.LogProviderFetch(p.Name(), time.Since(fetchStart), false, err)
				return u.fail(async, core.ResultFailConnection), nil
			}
			return u.result, &core.CheckError{Provider: p.Name(), Err: err}
		}
		u.logger.LogProviderFetch(p.Name(), time.Since(fetchStart), ok, nil)

		if !ok || p.RemoteVersion() == "" {
			continue
		}

		artifact, err := version.ParseArtifact(p.RemoteVersion())
		if err != nil {
			u.logger.Error("Remote version is not readable", "provider", p.Name(), "raw", p.RemoteVersion(), "error", err)
			return u.fail(async, core.ResultFailVersion), nil
		}
		u.latest = artifact

		newer, err := version.IsLess(u.local.Version(), artifact.Version())
		if err != nil {
			return u.fail(async, core.ResultFailVersion), nil
		}
		if newer {
			// First-found-newer wins; the chain is a fallback order, not a merge.
			break
		}
	}

	equal, err := version.IsEqual(u.local.Version(), u.latest.Version())
	if err != nil {
		return u.fail(async, core.ResultFailVersion), nil
	}
	if equal {
		u.result = core.ResultLatest
		u.record()
		u.logger.LogCycle(u.result.String(), tried, time.Since(start))
		return u.result, nil
	}

	if !u.unstablePreferred && u.latest.Tag() != version.TagRelease {
		u.logger.Debug("Suppressing unstable build",
			"version", u.latest.Version(), "tag", u.latest.Tag().String())
		u.record()
		return u.result, nil
	}

	u.result = core.ResultAvailable
	u.record()
	u.notifier.Notify(core.NewCompleteEvent(async, u.latest, u.ResolveAudience(), u.winning))
	u.logger.LogCycle(u.result.String(), tried, time.Since(start))

	return u.result, nil
}

// fail sets a classified failure result, records it and emits the failure
// signal.
func (u *Updater) fail(async bool, result core.Result) core.Result {
	u.result = result
	u.record()
	u.notifier.Notify(core.NewFailedEvent(async, result))
	return result
}

// record appends the current cycle outcome to the history store, if any.
func (u *Updater) record() {
	if u.store == nil {
		return
	}
	rec := history.Record{
		Result:  u.result,
		Version: u.latest.Version(),
		Tag:     u.latest.Tag(),
	}
	if u.winning != nil {
		rec.Provider = u.winning.Name()
	}
	if err := u.store.Append(rec); err != nil {
		u.logger.Warn("Failed to record cycle outcome", "error", err)
	}
}

// ResolveAudience returns the members currently eligible for notification:
// online and, when a permission is configured, holding it. The filter is
// recomputed on every call because presence and permission state change
// between cycles.
func (u *Updater) ResolveAudience() []core.Member {
	return core.FilterAudience(u.audience, u.permission)
}

// Result returns the outcome of the most recent cycle, or ResultUnknown
// before the first one.
func (u *Updater) Result() core.Result { return u.result }

// LatestArtifact returns the artifact produced by the most recent cycle. It
// represents the locally installed version until a cycle has run.
func (u *Updater) LatestArtifact() version.Artifact { return u.latest }

// LocalArtifact returns the normalized locally installed version.
func (u *Updater) LocalArtifact() version.Artifact { return u.local }

// Provider returns the provider holding the latest release: the one that
// short-circuited the chain, or, when no provider had a newer version, the
// last one consulted. Nil before the first cycle.
func (u *Updater) Provider() core.Provider { return u.winning }

// Providers returns the configured provider chain in consultation order.
func (u *Updater) Providers() []core.Provider {
	out := make([]core.Provider, len(u.providers))
	copy(out, u.providers)
	return out
}

// AudienceList returns the unfiltered audience references.
func (u *Updater) AudienceList() []core.Member {
	out := make([]core.Member, len(u.audience))
	copy(out, u.audience)
	return out
}

// Enabled reports whether check cycles are enabled.
func (u *Updater) Enabled() bool { return u.enabled }

// UnstablePreferred reports whether unstable builds may trigger notification.
func (u *Updater) UnstablePreferred() bool { return u.unstablePreferred }

// Interval returns the configured poll interval.
func (u *Updater) Interval() time.Duration { return u.interval }

// Permission returns the permission node required for notification, or empty.
func (u *Updater) Permission() string { return u.permission }
