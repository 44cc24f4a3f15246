// Package scheduler advances a game unattended on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rustyeddy/sectorsim/sim"
)

// Stepper is the part of a game the scheduler drives.
type Stepper interface {
	NextTurn(ctx context.Context) (sim.Report, error)
}

// Autoplay plays turns on a cron schedule until its turn budget is spent
// or its context ends.
type Autoplay struct {
	Cron *cron.Cron

	// OnTurn, when set, sees every report. Set it before Start.
	OnTurn func(sim.Report)

	game  Stepper
	limit int
	log   *slog.Logger

	mu     sync.Mutex
	ctx    context.Context
	played int
	err    error

	done chan struct{}
	once sync.Once
}

// New registers spec (standard cron syntax or a descriptor such as
// "@every 2s"). turns <= 0 plays until stopped.
func New(game Stepper, spec string, turns int, logger *slog.Logger) (*Autoplay, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Autoplay{
		Cron:  cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		game:  game,
		limit: turns,
		log:   logger.With("component", "autoplay"),
		ctx:   context.Background(),
		done:  make(chan struct{}),
	}
	if _, err := a.Cron.AddFunc(spec, a.tick); err != nil {
		return nil, fmt.Errorf("register autoplay %q: %w", spec, err)
	}
	return a, nil
}

// Start begins playing. Cancelling ctx stops the schedule.
func (a *Autoplay) Start(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	a.Cron.Start()
	a.log.Info("autoplay started", "turns", a.limit)

	go func() {
		select {
		case <-ctx.Done():
			a.finish()
		case <-a.done:
		}
	}()
}

// Stop halts the schedule and waits for a running turn to finish.
func (a *Autoplay) Stop() {
	<-a.Cron.Stop().Done()
	a.finish()
}

// Done is closed once autoplay has stopped for any reason.
func (a *Autoplay) Done() <-chan struct{} { return a.done }

func (a *Autoplay) Played() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.played
}

// Err returns the error that ended autoplay early, if any.
func (a *Autoplay) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

func (a *Autoplay) tick() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.limit > 0 && a.played >= a.limit {
		return
	}

	rep, err := a.game.NextTurn(a.ctx)
	if err != nil {
		a.log.Error("turn failed", "err", err)
		a.err = err
		go a.finish()
		return
	}
	a.played++
	a.log.Info("turn", "turn", rep.Turn, "entry", rep.Entry)
	if a.OnTurn != nil {
		a.OnTurn(rep)
	}

	if a.limit > 0 && a.played >= a.limit {
		go a.finish()
	}
}

// finish stops the cron without waiting: it may run from inside a job.
func (a *Autoplay) finish() {
	a.once.Do(func() {
		a.Cron.Stop()
		a.log.Info("autoplay stopped", "played", a.Played())
		close(a.done)
	})
}
