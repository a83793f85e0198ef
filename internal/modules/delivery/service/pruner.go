package service

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/samber/oops"
)

// Prunable is a store that can drop stale entries.
type Prunable interface {
	Prune(now time.Time) (int, error)
}

// Pruner runs registered prune jobs on a cron schedule
type Pruner struct {
	cron     *cron.Cron
	schedule string
	jobs     map[string]Prunable
	now      func() time.Time
}

// NewPruner creates a pruner for the given cron spec (e.g. "@every 1h")
func NewPruner(schedule string) *Pruner {
	return &Pruner{
		cron:     cron.New(),
		schedule: schedule,
		jobs:     make(map[string]Prunable),
		now:      time.Now,
	}
}

// Register adds a store to prune. Must be called before Start.
func (p *Pruner) Register(name string, target Prunable) {
	p.jobs[name] = target
}

// Start schedules the prune run and starts the cron scheduler
func (p *Pruner) Start() error {
	if _, err := p.cron.AddFunc(p.schedule, p.RunOnce); err != nil {
		return oops.With("schedule", p.schedule, "context", "invalid prune schedule").Wrap(err)
	}
	p.cron.Start()
	slog.Info("Pruner started", "schedule", p.schedule, "jobs", len(p.jobs))
	return nil
}

// Stop stops the scheduler and waits for a running prune to finish
func (p *Pruner) Stop() {
	<-p.cron.Stop().Done()
}

// RunOnce prunes every registered store now
func (p *Pruner) RunOnce() {
	now := p.now()
	for name, job := range p.jobs {
		removed, err := job.Prune(now)
		if err != nil {
			slog.Error("Prune failed", "store", name, "error", err)
			continue
		}
		if removed > 0 {
			slog.Info("Pruned stale entries", "store", name, "removed", removed)
		}
	}
}
