package service

import (
	"context"
	"fmt"
	"time"

	"github.com/reshetovitsme/channel-mirror/internal/modules/delivery/domain"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Dispatcher fans one payload out to many destinations. Every destination gets
// exactly one attempt and its own outcome; a failure never touches the others.
type Dispatcher struct {
	sender  domain.Sender
	stats   *Stats
	limit   int
	timeout time.Duration
}

// NewDispatcher creates a dispatcher running at most limit calls at once,
// each bounded by timeout (zero means no bound).
func NewDispatcher(sender domain.Sender, stats *Stats, limit int, timeout time.Duration) *Dispatcher {
	if limit < 1 {
		limit = 1
	}
	return &Dispatcher{sender: sender, stats: stats, limit: limit, timeout: timeout}
}

// Send delivers out to every target.
func (d *Dispatcher) Send(ctx context.Context, targets []string, out domain.Outgoing) []domain.Outcome {
	return d.fanOut(ctx, domain.OperationSend, targets, func(ctx context.Context, i int) domain.Outcome {
		id, err := d.sender.Send(ctx, targets[i], out)
		return outcome(targets[i], domain.OperationSend, id, err)
	})
}

// Edit rewrites previously delivered copies with out.
func (d *Dispatcher) Edit(ctx context.Context, deliveries []domain.Delivery, out domain.Outgoing) []domain.Outcome {
	return d.fanOut(ctx, domain.OperationEdit, targetsOf(deliveries), func(ctx context.Context, i int) domain.Outcome {
		err := d.sender.Edit(ctx, deliveries[i].Target, deliveries[i].MessageID, out)
		return outcome(deliveries[i].Target, domain.OperationEdit, deliveries[i].MessageID, err)
	})
}

// Delete removes previously delivered copies.
func (d *Dispatcher) Delete(ctx context.Context, deliveries []domain.Delivery) []domain.Outcome {
	return d.fanOut(ctx, domain.OperationDelete, targetsOf(deliveries), func(ctx context.Context, i int) domain.Outcome {
		err := d.sender.Delete(ctx, deliveries[i].Target, deliveries[i].MessageID)
		return outcome(deliveries[i].Target, domain.OperationDelete, deliveries[i].MessageID, err)
	})
}

func (d *Dispatcher) fanOut(ctx context.Context, op domain.Operation, targets []string, attempt func(context.Context, int) domain.Outcome) []domain.Outcome {
	outcomes := make([]domain.Outcome, len(targets))

	var g errgroup.Group
	g.SetLimit(d.limit)
	for i := range targets {
		g.Go(func() error {
			outcomes[i] = d.attempt(ctx, op, targets[i], i, attempt)
			if d.stats != nil {
				d.stats.Record(outcomes[i])
			}
			return nil
		})
	}
	_ = g.Wait() // attempts never return errors

	return outcomes
}

func (d *Dispatcher) attempt(ctx context.Context, op domain.Operation, target string, i int, fn func(context.Context, int) domain.Outcome) (o domain.Outcome) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			o = domain.Outcome{Target: target, Operation: op, Reason: fmt.Sprintf("panic: %v", r)}
		}
	}()
	return fn(ctx, i)
}

func targetsOf(deliveries []domain.Delivery) []string {
	return lo.Map(deliveries, func(d domain.Delivery, _ int) string { return d.Target })
}

func outcome(target string, op domain.Operation, messageID int, err error) domain.Outcome {
	o := domain.Outcome{Target: target, Operation: op, OK: err == nil, MessageID: messageID}
	if err != nil {
		o.Reason = err.Error()
	}
	return o
}
