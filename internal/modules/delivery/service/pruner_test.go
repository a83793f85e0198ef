package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPrunable struct {
	calls []time.Time
	err   error
}

func (c *countingPrunable) Prune(now time.Time) (int, error) {
	c.calls = append(c.calls, now)
	return 1, c.err
}

func TestPrunerRunOnce(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ok := &countingPrunable{}
	broken := &countingPrunable{err: errors.New("disk full")}

	p := NewPruner("@every 1h")
	p.now = func() time.Time { return fixed }
	p.Register("delivered", ok)
	p.Register("journal", broken)

	p.RunOnce()

	assert.Equal(t, []time.Time{fixed}, ok.calls)
	assert.Len(t, broken.calls, 1, "one failing store does not stop the others")
}

func TestPrunerRejectsBadSchedule(t *testing.T) {
	p := NewPruner("every now and then")
	assert.Error(t, p.Start())
}

func TestPrunerStartStop(t *testing.T) {
	p := NewPruner("@every 1h")
	p.Register("delivered", &countingPrunable{})
	assert.NoError(t, p.Start())
	p.Stop()
}
