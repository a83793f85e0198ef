package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	deliveryDomain "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/domain"
	deliveryRepo "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/repository"
	filterService "github.com/reshetovitsme/channel-mirror/internal/modules/filter/service"
	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
	routingService "github.com/reshetovitsme/channel-mirror/internal/modules/routing/service"
	settings "github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	transformService "github.com/reshetovitsme/channel-mirror/internal/modules/transform/service"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Reasons an event produced no delivery
const (
	SkipDisabled     = "forwarding disabled"
	SkipSyncDisabled = "sync disabled"
	SkipNoMatch      = "no matching source"
	SkipFiltered     = "filtered"
	SkipEmpty        = "nothing left to send"
	SkipNotDelivered = "no delivered copies recorded"
)

// SettingsReader gives a fresh view of the configuration documents
type SettingsReader interface {
	Snapshot() (*settings.Snapshot, error)
}

// Dispatcher fans payloads out to destinations
type Dispatcher interface {
	Send(ctx context.Context, targets []string, out deliveryDomain.Outgoing) []deliveryDomain.Outcome
	Edit(ctx context.Context, deliveries []deliveryDomain.Delivery, out deliveryDomain.Outgoing) []deliveryDomain.Outcome
	Delete(ctx context.Context, deliveries []deliveryDomain.Delivery) []deliveryDomain.Outcome
}

// Journal records successfully mirrored posts
type Journal interface {
	RecordDeliveries(ev *message.Event, out deliveryDomain.Outgoing, outcomes []deliveryDomain.Outcome, at time.Time) error
}

// Result summarises what happened to one event
type Result struct {
	BatchID  string                   `json:"batch_id"`
	Skipped  string                   `json:"skipped,omitempty"`
	Stage    string                   `json:"stage,omitempty"`
	Targets  []string                 `json:"targets,omitempty"`
	Outcomes []deliveryDomain.Outcome `json:"outcomes,omitempty"`
}

// Service is the worker: it turns inbound events into outbound operations.
// Every event reads the settings afresh, so control edits apply to the next event.
type Service struct {
	settings   SettingsReader
	dispatcher Dispatcher
	delivered  deliveryRepo.Repository
	journal    Journal
	now        func() time.Time

	// events are handled one at a time, whichever transport they came from
	mu sync.Mutex
}

// New creates a new pipeline; journal may be nil
func New(settings SettingsReader, dispatcher Dispatcher, delivered deliveryRepo.Repository, journal Journal) *Service {
	return &Service{
		settings:   settings,
		dispatcher: dispatcher,
		delivered:  delivered,
		journal:    journal,
		now:        time.Now,
	}
}

// Handle routes an event by kind. Calls are serialized.
func (s *Service) Handle(ctx context.Context, ev *message.Event) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case message.EventKindEdited:
		return s.HandleEdited(ctx, ev)
	case message.EventKindDeleted:
		return s.HandleDeleted(ctx, ev)
	default:
		return s.HandleNew(ctx, ev)
	}
}

// HandleNew mirrors a new message to every matched destination
func (s *Service) HandleNew(ctx context.Context, ev *message.Event) (*Result, error) {
	res := &Result{BatchID: uuid.NewString()}
	snap, err := s.snapshot(ev)
	if err != nil {
		return nil, err
	}
	if !snap.Forwarding.Forwarding {
		return s.skip(ev, res, SkipDisabled), nil
	}

	out, ok := s.prepare(ev, snap, res)
	if !ok {
		return res, nil
	}

	res.Outcomes = s.dispatcher.Send(ctx, res.Targets, out)
	s.logOutcomes(ev, res)

	if snap.Forwarding.EditSync || snap.Forwarding.DeleteSync {
		s.recordDelivered(sourceKeys(ev, snap.Aliases), res.Outcomes)
	}
	if s.journal != nil {
		if err := s.journal.RecordDeliveries(ev, out, res.Outcomes, s.now()); err != nil {
			slog.Warn("Failed to journal deliveries", "batch_id", res.BatchID, "source", ev.Key(), "error", err)
		}
	}

	return res, nil
}

// HandleEdited rewrites the copies of an edited message
func (s *Service) HandleEdited(ctx context.Context, ev *message.Event) (*Result, error) {
	res := &Result{BatchID: uuid.NewString()}
	snap, err := s.snapshot(ev)
	if err != nil {
		return nil, err
	}
	if !snap.Forwarding.Forwarding {
		return s.skip(ev, res, SkipDisabled), nil
	}
	if !snap.Forwarding.EditSync {
		return s.skip(ev, res, SkipSyncDisabled), nil
	}

	out, ok := s.prepare(ev, snap, res)
	if !ok {
		return res, nil
	}

	deliveries := s.lookup(ev, sourceKeys(ev, snap.Aliases))
	// copies on destinations no longer routed to are left alone
	deliveries = lo.Filter(deliveries, func(d deliveryDomain.Delivery, _ int) bool {
		return lo.ContainsBy(res.Targets, func(t string) bool { return identity.Equal(t, d.Target) })
	})
	if len(deliveries) == 0 {
		return s.skip(ev, res, SkipNotDelivered), nil
	}

	res.Outcomes = s.dispatcher.Edit(ctx, deliveries, out)
	s.logOutcomes(ev, res)
	return res, nil
}

// HandleDeleted removes the copies of a deleted message
func (s *Service) HandleDeleted(ctx context.Context, ev *message.Event) (*Result, error) {
	res := &Result{BatchID: uuid.NewString()}
	snap, err := s.snapshot(ev)
	if err != nil {
		return nil, err
	}
	if !snap.Forwarding.Forwarding {
		return s.skip(ev, res, SkipDisabled), nil
	}
	if !snap.Forwarding.DeleteSync {
		return s.skip(ev, res, SkipSyncDisabled), nil
	}

	keys := sourceKeys(ev, snap.Aliases)
	deliveries := s.lookup(ev, keys)
	if len(deliveries) == 0 {
		return s.skip(ev, res, SkipNotDelivered), nil
	}
	res.Targets = lo.Map(deliveries, func(d deliveryDomain.Delivery, _ int) string { return d.Target })

	res.Outcomes = s.dispatcher.Delete(ctx, deliveries)
	s.logOutcomes(ev, res)

	for _, key := range keys {
		if err := s.delivered.Forget(key); err != nil {
			slog.Warn("Failed to forget delivered copies", "batch_id", res.BatchID, "source", key, "error", err)
		}
	}
	return res, nil
}

func (s *Service) snapshot(ev *message.Event) (*settings.Snapshot, error) {
	snap, err := s.settings.Snapshot()
	if err != nil {
		return nil, oops.With("source", ev.Key(), "context", "failed to read settings").Wrap(err)
	}
	return snap, nil
}

// prepare runs match, filter and transform. It fills res and reports whether
// there is anything to deliver.
func (s *Service) prepare(ev *message.Event, snap *settings.Snapshot, res *Result) (deliveryDomain.Outgoing, bool) {
	res.Targets = routingService.Match(ev.Origin, snap.Routing, snap.Aliases)
	if len(res.Targets) == 0 {
		s.skip(ev, res, SkipNoMatch)
		return deliveryDomain.Outgoing{}, false
	}

	verdict := filterService.Apply(ev, snap.Filters, snap.Blacklist)
	if verdict.Drop {
		res.Stage = verdict.Stage
		slog.Debug("Message filtered", "batch_id", res.BatchID, "source", ev.Key(), "stage", verdict.Stage, "reason", verdict.Reason)
		res.Skipped = SkipFiltered
		return deliveryDomain.Outgoing{}, false
	}

	out := deliveryDomain.Outgoing{
		Text:  transformService.Apply(verdict.Text, snap.Replacements),
		Media: ev.Media,
	}
	if out.Empty() {
		s.skip(ev, res, SkipEmpty)
		return deliveryDomain.Outgoing{}, false
	}
	return out, true
}

// sourceKeys lists every key the source message may be filed under: one per
// identity of the origin, plus what the alias table resolves each identity to.
func sourceKeys(ev *message.Event, aliases identity.Aliases) []string {
	ids := lo.FlatMap(ev.Origin.Candidates(), func(id string, _ int) []string {
		return []string{id, aliases.Canonical(id)}
	})
	return lo.Map(lo.Uniq(ids), func(id string, _ int) string {
		return message.SourceKey(id, ev.MessageID)
	})
}

func (s *Service) lookup(ev *message.Event, keys []string) []deliveryDomain.Delivery {
	var deliveries []deliveryDomain.Delivery
	for _, key := range keys {
		found, err := s.delivered.Lookup(key)
		if err != nil {
			slog.Warn("Failed to look up delivered copies", "source", key, "error", err)
			continue
		}
		deliveries = append(deliveries, found...)
	}
	deliveries = lo.Uniq(deliveries)
	if len(deliveries) == 0 {
		slog.Info("No delivered copies recorded", "kind", ev.Kind, "keys", keys)
	}
	return deliveries
}

func (s *Service) recordDelivered(keys []string, outcomes []deliveryDomain.Outcome) {
	deliveries := lo.FilterMap(outcomes, func(o deliveryDomain.Outcome, _ int) (deliveryDomain.Delivery, bool) {
		return deliveryDomain.Delivery{Target: o.Target, MessageID: o.MessageID}, o.OK && o.MessageID != 0
	})
	if len(deliveries) == 0 {
		return
	}
	at := s.now()
	for _, key := range keys {
		if err := s.delivered.Record(key, at, deliveries); err != nil {
			slog.Warn("Failed to record delivered copies", "source", key, "error", err)
		}
	}
}

func (s *Service) skip(ev *message.Event, res *Result, reason string) *Result {
	res.Skipped = reason
	slog.Debug("Event skipped", "batch_id", res.BatchID, "kind", ev.Kind, "source", ev.Key(), "reason", reason)
	return res
}

func (s *Service) logOutcomes(ev *message.Event, res *Result) {
	for _, o := range res.Outcomes {
		if o.OK {
			slog.Info("Delivered", "batch_id", res.BatchID, "operation", o.Operation, "source", ev.Key(), "target", o.Target, "message_id", o.MessageID)
			continue
		}
		slog.Warn("Delivery failed", "batch_id", res.BatchID, "operation", o.Operation, "source", ev.Key(), "target", o.Target, "reason", o.Reason)
	}
}
