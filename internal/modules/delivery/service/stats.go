package service

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/reshetovitsme/channel-mirror/internal/modules/delivery/domain"
)

// TargetStats are the counters of one destination.
type TargetStats struct {
	Target    string `json:"target"`
	Succeeded int64  `json:"succeeded"`
	Failed    int64  `json:"failed"`
	LastError string `json:"last_error,omitempty"`
}

type targetCounters struct {
	succeeded atomic.Int64
	failed    atomic.Int64
	mu        sync.Mutex
	lastError string
}

// Stats counts delivery outcomes per destination
type Stats struct {
	targets *xsync.Map[string, *targetCounters]
}

// NewStats creates an empty counter set
func NewStats() *Stats {
	return &Stats{targets: xsync.NewMap[string, *targetCounters]()}
}

// Record counts one outcome
func (s *Stats) Record(o domain.Outcome) {
	c, _ := s.targets.LoadOrCompute(o.Target, func() (*targetCounters, bool) {
		return &targetCounters{}, false
	})
	if o.OK {
		c.succeeded.Add(1)
		return
	}
	c.failed.Add(1)
	c.mu.Lock()
	c.lastError = o.Reason
	c.mu.Unlock()
}

// Snapshot returns the counters of every destination, sorted by target
func (s *Stats) Snapshot() []TargetStats {
	out := make([]TargetStats, 0, s.targets.Size())
	s.targets.Range(func(target string, c *targetCounters) bool {
		c.mu.Lock()
		lastError := c.lastError
		c.mu.Unlock()
		out = append(out, TargetStats{
			Target:    target,
			Succeeded: c.succeeded.Load(),
			Failed:    c.failed.Load(),
			LastError: lastError,
		})
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out
}
