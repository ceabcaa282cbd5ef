// Package upcheck provides a high-level façade over the update orchestrator
// and scheduler, enabling rapid construction of version checkers. Most
// applications interact with this package by:
//  1. Creating an UpCheck via New() with the running version and one or more
//     providers (optionally from a YAML config file)
//  2. Running a one-shot Check, or scheduling recurring cycles with Run
//     (blocking) or Start/Stop (background)
//  3. Receiving completion and failure events through a core.Notifier
//
// The façade delegates orchestration to updater.Updater while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply a structured logger
// and a durable history store.
package upcheck

import (
	"context"

	"github.com/hupe1980/upcheck/config"
	"github.com/hupe1980/upcheck/core"
	"github.com/hupe1980/upcheck/history"
	"github.com/hupe1980/upcheck/logging"
	"github.com/hupe1980/upcheck/scheduler"
	"github.com/hupe1980/upcheck/updater"
)

// Options configures the UpCheck instance.
type Options struct {
	// Providers are consulted in order on every cycle.
	Providers []core.Provider

	// Audience receives completion events, filtered by Permission.
	Audience []core.Member

	// Enabled toggles cycles entirely. Defaults to true; nil leaves the
	// config file value (if any) in place.
	Enabled *bool

	// UnstablePreferred admits alpha, beta and pre-release artifacts.
	// Nil leaves the config file value in place.
	UnstablePreferred *bool

	// Interval between cycles as a human string ("2h", "30 minutes").
	// Unparsable or empty values fall back to the 2 hour default.
	Interval string

	// Permission gates which audience members are notified.
	Permission string

	// Notifier receives completion and failure events (defaults to NoOp).
	Notifier core.Notifier

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// History records cycle outcomes (optional).
	History history.Store

	// ConfigFile, when set, is loaded first; explicit options above are
	// applied on top of it.
	ConfigFile string
}

// UpCheck is the high-level façade aggregating the orchestrator and scheduler.
type UpCheck struct {
	updater   *updater.Updater
	scheduler *scheduler.Scheduler
}

// New creates a configured UpCheck for the given running version.
func New(localVersion string, optFns ...func(o *Options)) (*UpCheck, error) {
	opts := Options{
		Notifier: core.NoOpNotifier{},
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	b := updater.NewBuilder(localVersion)

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if _, err := cfg.Apply(b); err != nil {
			return nil, err
		}
	}

	for _, p := range opts.Providers {
		b.AddProvider(p)
	}
	b.AddAudience(opts.Audience...).
		WithNotifier(opts.Notifier).
		WithLogger(opts.Logger)
	if opts.Enabled != nil {
		b.SetEnabled(*opts.Enabled)
	}
	if opts.UnstablePreferred != nil {
		b.SetUnstablePreferred(*opts.UnstablePreferred)
	}
	if opts.Permission != "" {
		b.SetPermission(opts.Permission)
	}
	if opts.Interval != "" {
		b.SetInterval(opts.Interval)
	}
	if opts.History != nil {
		b.WithHistory(opts.History)
	}

	u, err := b.Build()
	if err != nil {
		return nil, err
	}

	s := scheduler.New(u, func(o *scheduler.Options) {
		o.Logger = opts.Logger
	})

	return &UpCheck{updater: u, scheduler: s}, nil
}

// Check runs a single synchronous cycle and returns its outcome.
func (c *UpCheck) Check(ctx context.Context) (core.Result, error) {
	return c.updater.RunCycle(ctx, false)
}

// Run blocks, executing cycles at the configured interval until the context
// is cancelled or a cycle fails fatally.
func (c *UpCheck) Run(ctx context.Context) error {
	return c.scheduler.Run(ctx)
}

// Start launches recurring background cycles. Use Stop to halt them.
func (c *UpCheck) Start() error { return c.scheduler.Start() }

// Stop halts background cycles, waiting for an in-flight cycle to finish.
func (c *UpCheck) Stop() { c.scheduler.Stop() }

// Updater exposes the underlying orchestrator for result and state inspection.
func (c *UpCheck) Updater() *updater.Updater { return c.updater }
