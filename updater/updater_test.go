package updater

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/upcheck/core"
	"github.com/hupe1980/upcheck/history"
	"github.com/hupe1980/upcheck/internal/testutil"
	"github.com/hupe1980/upcheck/version"
)

// eventRecorder captures emitted signals synchronously for assertions.
type eventRecorder struct {
	events []core.Event
}

func (r *eventRecorder) Notify(ev core.Event) { r.events = append(r.events, ev) }

func TestRunCycle_FirstNewerWinsButUnstableGateSuppresses(t *testing.T) {
	older := testutil.NewProviderBuilder().Name("older").Remote("1.1.9").Build()
	beta := testutil.NewProviderBuilder().Name("beta-feed").Remote("1.3.0-beta").Build()
	equal := testutil.NewProviderBuilder().Name("equal").Remote("1.2.0").Build()
	rec := &eventRecorder{}

	u, err := NewBuilder("1.2.0").
		AddProvider(older).
		AddProvider(beta).
		AddProvider(equal).
		WithNotifier(rec).
		Build()
	require.NoError(t, err)

	result, err := u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	// 1.3.0-beta is the first strictly-newer match; the chain short-circuits
	// and the third provider is never consulted.
	assert.Equal(t, 1, older.Calls())
	assert.Equal(t, 1, beta.Calls())
	assert.Equal(t, 0, equal.Calls())

	// Unstable and not preferred: the gate stops silently, leaving the
	// pre-gate result in place and emitting nothing.
	assert.Equal(t, core.ResultUnknown, result)
	assert.NotEqual(t, core.ResultAvailable, u.Result())
	assert.Empty(t, rec.events)
	assert.Equal(t, "1.3.0", u.LatestArtifact().Version())
}

func TestRunCycle_LatestOnEqualVersion(t *testing.T) {
	p := testutil.NewProviderBuilder().Remote("1.0.0").Build()
	rec := &eventRecorder{}

	u, err := NewBuilder("1.0.0").AddProvider(p).WithNotifier(rec).Build()
	require.NoError(t, err)

	result, err := u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, core.ResultLatest, result)
	assert.Empty(t, rec.events)
}

func TestRunCycle_AvailableEmitsCompletionSignal(t *testing.T) {
	p := testutil.NewProviderBuilder().Name("GitHub").Remote("1.1.0").Build()
	member := testutil.NewMemberBuilder("player-1").Build()
	rec := &eventRecorder{}

	u, err := NewBuilder("1.0.0").
		AddProvider(p).
		AddAudienceMember(member).
		WithNotifier(rec).
		Build()
	require.NoError(t, err)

	result, err := u.RunCycle(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, core.ResultAvailable, result)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, core.ResultAvailable, ev.Result)
	assert.Equal(t, "1.1.0", ev.Version)
	assert.Equal(t, version.TagRelease, ev.Tag)
	assert.True(t, ev.Async)
	require.Len(t, ev.Audience, 1)
	assert.Equal(t, "player-1", ev.Audience[0].ID())
	require.NotNil(t, ev.Provider)
	assert.Equal(t, "GitHub", ev.Provider.Name())
}

func TestRunCycle_ConnectionFailureAbortsChain(t *testing.T) {
	down := testutil.NewProviderBuilder().Name("down").
		Fails(&net.OpError{Op: "dial", Err: errors.New("connection refused")}).Build()
	next := testutil.NewProviderBuilder().Name("next").Remote("2.0.0").Build()
	rec := &eventRecorder{}

	u, err := NewBuilder("1.0.0").AddProvider(down).AddProvider(next).WithNotifier(rec).Build()
	require.NoError(t, err)

	result, err := u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, core.ResultFailConnection, result)
	assert.Equal(t, 0, next.Calls())
	require.Len(t, rec.events, 1)
	assert.Equal(t, core.ResultFailConnection, rec.events[0].Result)
}

func TestRunCycle_UnreadableRemoteVersionFails(t *testing.T) {
	p := testutil.NewProviderBuilder().Remote("latest").Build()
	rec := &eventRecorder{}

	u, err := NewBuilder("1.0.0").AddProvider(p).WithNotifier(rec).Build()
	require.NoError(t, err)

	result, err := u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, core.ResultFailVersion, result)
	require.Len(t, rec.events, 1)
	assert.Equal(t, core.ResultFailVersion, rec.events[0].Result)
}

func TestRunCycle_UnclassifiedErrorPropagates(t *testing.T) {
	p := testutil.NewProviderBuilder().Name("broken").Fails(errors.New("unexpected end of JSON input")).Build()
	rec := &eventRecorder{}

	u, err := NewBuilder("1.0.0").AddProvider(p).WithNotifier(rec).Build()
	require.NoError(t, err)

	_, err = u.RunCycle(context.Background(), false)
	require.Error(t, err)

	var checkErr *core.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, "broken", checkErr.Provider)
	assert.Empty(t, rec.events)
}

func TestRunCycle_DisabledContactsNoProvider(t *testing.T) {
	p := testutil.NewProviderBuilder().Remote("9.9.9").Build()

	u, err := NewBuilder("1.0.0").AddProvider(p).SetEnabled(false).Build()
	require.NoError(t, err)

	result, err := u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, core.ResultDisabled, result)
	assert.Equal(t, 0, p.Calls())
}

func TestRunCycle_NoDataContinuesToNextProvider(t *testing.T) {
	empty := testutil.NewProviderBuilder().Name("empty").NoData().Build()
	good := testutil.NewProviderBuilder().Name("good").Remote("1.2.0").Build()
	rec := &eventRecorder{}

	u, err := NewBuilder("1.0.0").AddProvider(empty).AddProvider(good).WithNotifier(rec).Build()
	require.NoError(t, err)

	result, err := u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, core.ResultAvailable, result)
	require.NotNil(t, u.Provider())
	assert.Equal(t, "good", u.Provider().Name())
}

func TestRunCycle_UnstablePreferredNotifies(t *testing.T) {
	p := testutil.NewProviderBuilder().Remote("1.3.0-beta").Build()
	rec := &eventRecorder{}

	u, err := NewBuilder("1.2.0").AddProvider(p).SetUnstablePreferred(true).WithNotifier(rec).Build()
	require.NoError(t, err)

	result, err := u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, core.ResultAvailable, result)
	require.Len(t, rec.events, 1)
	assert.Equal(t, version.TagBeta, rec.events[0].Tag)
}

func TestRunCycle_RecordsHistory(t *testing.T) {
	p := testutil.NewProviderBuilder().Name("GitHub").Remote("1.1.0").Build()
	store := history.NewInMemoryStore()

	u, err := NewBuilder("1.0.0").AddProvider(p).WithHistory(store).Build()
	require.NoError(t, err)

	_, err = u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, core.ResultAvailable, latest.Result)
	assert.Equal(t, "1.1.0", latest.Version)
	assert.Equal(t, "GitHub", latest.Provider)
}

// logRecorder captures log messages per level for assertions.
type logRecorder struct {
	debug, info, warn, errs []string
}

func (r *logRecorder) Debug(msg string, _ ...any) { r.debug = append(r.debug, msg) }
func (r *logRecorder) Info(msg string, _ ...any)  { r.info = append(r.info, msg) }
func (r *logRecorder) Warn(msg string, _ ...any)  { r.warn = append(r.warn, msg) }
func (r *logRecorder) Error(msg string, _ ...any) { r.errs = append(r.errs, msg) }

func TestRunCycle_LogsFetchAndCycleThroughInjectedLogger(t *testing.T) {
	rec := &logRecorder{}
	p := testutil.NewProviderBuilder().Name("GitHub").Remote("1.1.0").Build()

	u, err := NewBuilder("1.0.0").AddProvider(p).WithLogger(rec).Build()
	require.NoError(t, err)

	_, err = u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	assert.Contains(t, rec.debug, "Provider fetch completed")
	assert.Contains(t, rec.info, "Check cycle completed")
	assert.Empty(t, rec.errs)
}

func TestRunCycle_LogsFailedFetchAsError(t *testing.T) {
	rec := &logRecorder{}
	down := testutil.NewProviderBuilder().Name("down").
		Fails(&net.OpError{Op: "dial", Err: errors.New("connection refused")}).Build()

	u, err := NewBuilder("1.0.0").AddProvider(down).WithLogger(rec).Build()
	require.NoError(t, err)

	_, err = u.RunCycle(context.Background(), false)
	require.NoError(t, err)

	assert.Contains(t, rec.errs, "Provider fetch failed")
	assert.NotContains(t, rec.debug, "Provider fetch completed")
}

func TestResolveAudience_IsARecomputedView(t *testing.T) {
	online := testutil.NewMemberBuilder("online").Grant("update.notify").Build()
	offline := testutil.NewMemberBuilder("offline").Offline().Grant("update.notify").Build()
	noPerm := testutil.NewMemberBuilder("noperm").Build()

	u, err := NewBuilder("1.0.0").
		AddProvider(testutil.NewProviderBuilder().Remote("1.0.0").Build()).
		AddAudience(online, offline, noPerm).
		SetPermission("update.notify").
		Build()
	require.NoError(t, err)

	resolved := u.ResolveAudience()
	require.Len(t, resolved, 1)
	assert.Equal(t, "online", resolved[0].ID())

	// Presence changes between cycles must be reflected on the next access.
	offline.SetOnline(true)
	assert.Len(t, u.ResolveAudience(), 2)
}
