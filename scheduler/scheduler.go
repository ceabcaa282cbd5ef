// Package scheduler wraps the updater's check cycle in recurring execution.
// Two modes are supported: Run blocks the caller's goroutine on a fixed-rate
// ticker (synchronous mode), Start delegates to a cron-driven worker so the
// caller's context is never blocked (asynchronous mode). Either way exactly
// one cycle is in flight at a time; the cron chain skips a firing while the
// previous cycle still runs.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hupe1980/upcheck/logging"
	"github.com/hupe1980/upcheck/updater"
)

// Options holds configuration overrides passed to New().
type Options struct {
	// Interval overrides the updater's configured poll interval.
	Interval time.Duration
	// Logger receives scheduling diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Scheduler drives an updater's check cycle on a recurring timer.
type Scheduler struct {
	updater  *updater.Updater
	interval time.Duration
	logger   logging.Logger

	cron    *cron.Cron
	running bool
	wg      sync.WaitGroup
}

// New constructs a Scheduler for the given updater with optional overrides.
func New(u *updater.Updater, optFns ...func(o *Options)) *Scheduler {
	opts := Options{
		Interval: u.Interval(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Scheduler{
		updater:  u,
		interval: opts.Interval,
		logger:   opts.Logger,
	}
}

// Interval returns the effective poll interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Run executes the check cycle synchronously on the caller's goroutine: one
// immediate cycle, then one per interval until ctx is cancelled. The caller's
// context is blocked for the duration of all network calls per cycle.
//
// A disabled updater runs a single cycle (marking it DISABLED) and returns
// nil. Unclassified cycle failures abort the loop and are returned.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.updater.Enabled() {
		_, err := s.updater.RunCycle(ctx, false)
		return err
	}

	if _, err := s.updater.RunCycle(ctx, false); err != nil {
		return err
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.updater.RunCycle(ctx, false); err != nil {
				return err
			}
		}
	}
}

// Start launches asynchronous recurring execution on a worker goroutine and
// returns immediately. The first cycle fires right away; subsequent cycles
// fire at the fixed interval, skipping a firing while a cycle is still in
// flight. Use Stop to halt.
//
// A disabled updater runs a single cycle (marking it DISABLED) and nothing is
// scheduled.
func (s *Scheduler) Start() error {
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if !s.updater.Enabled() {
		_, err := s.updater.RunCycle(context.Background(), true)
		return err
	}

	job := cron.FuncJob(func() {
		if _, err := s.updater.RunCycle(context.Background(), true); err != nil {
			s.logger.Error("Update check failed", "error", err)
		}
	})
	// The immediate first check shares the skip chain with the cron firings,
	// so a slow first cycle cannot overlap an interval firing.
	wrapped := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(job)

	s.cron = cron.New()
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddJob(spec, wrapped); err != nil {
		return fmt.Errorf("failed to schedule update check: %w", err)
	}

	s.cron.Start()
	s.running = true

	// Immediate first check; recurring firings follow the interval.
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		wrapped.Run()
	}()

	return nil
}

// Stop halts asynchronous execution and waits for an in-flight cycle to
// finish. It is a no-op when the scheduler is not running.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.running = false
}
