package repository

import (
	"sort"
	"time"

	"github.com/reshetovitsme/channel-mirror/internal/modules/delivery/domain"
	settingsDomain "github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	settingsRepo "github.com/reshetovitsme/channel-mirror/internal/modules/settings/repository"
	"github.com/samber/lo"
)

// DocumentStorage implements Repository on top of the "delivered" settings document
type DocumentStorage struct {
	store      settingsRepo.Repository
	ttl        time.Duration
	maxEntries int
}

// NewDocumentStorage creates a delivered-message map bounded by ttl and maxEntries.
// A zero bound disables that bound.
func NewDocumentStorage(store settingsRepo.Repository, ttl time.Duration, maxEntries int) *DocumentStorage {
	return &DocumentStorage{store: store, ttl: ttl, maxEntries: maxEntries}
}

func (s *DocumentStorage) Record(sourceKey string, at time.Time, deliveries []domain.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}
	return settingsRepo.Update(s.store, settingsDomain.DocumentDelivered, func(m *settingsDomain.DeliveredMap) error {
		if m.Entries == nil {
			m.Entries = map[string]settingsDomain.DeliveredEntry{}
		}
		entry, ok := m.Entries[sourceKey]
		if !ok || entry.Targets == nil {
			entry = settingsDomain.DeliveredEntry{Targets: map[string]int{}}
		}
		entry.At = at
		for _, d := range deliveries {
			entry.Targets[d.Target] = d.MessageID
		}
		m.Entries[sourceKey] = entry
		return nil
	})
}

func (s *DocumentStorage) Lookup(sourceKey string) ([]domain.Delivery, error) {
	m, err := settingsRepo.Get[settingsDomain.DeliveredMap](s.store, settingsDomain.DocumentDelivered)
	if err != nil {
		return nil, err
	}
	entry, ok := m.Entries[sourceKey]
	if !ok {
		return nil, nil
	}

	deliveries := lo.MapToSlice(entry.Targets, func(target string, id int) domain.Delivery {
		return domain.Delivery{Target: target, MessageID: id}
	})
	sort.Slice(deliveries, func(i, j int) bool { return deliveries[i].Target < deliveries[j].Target })
	return deliveries, nil
}

func (s *DocumentStorage) Forget(sourceKey string) error {
	return settingsRepo.Update(s.store, settingsDomain.DocumentDelivered, func(m *settingsDomain.DeliveredMap) error {
		delete(m.Entries, sourceKey)
		return nil
	})
}

// Prune drops entries older than the ttl, then the oldest entries beyond maxEntries.
func (s *DocumentStorage) Prune(now time.Time) (int, error) {
	var removed int
	err := settingsRepo.Update(s.store, settingsDomain.DocumentDelivered, func(m *settingsDomain.DeliveredMap) error {
		before := len(m.Entries)

		if s.ttl > 0 {
			cutoff := now.Add(-s.ttl)
			for key, entry := range m.Entries {
				if entry.At.Before(cutoff) {
					delete(m.Entries, key)
				}
			}
		}

		if s.maxEntries > 0 && len(m.Entries) > s.maxEntries {
			keys := lo.Keys(m.Entries)
			sort.Slice(keys, func(i, j int) bool {
				return m.Entries[keys[i]].At.After(m.Entries[keys[j]].At)
			})
			for _, key := range keys[s.maxEntries:] {
				delete(m.Entries, key)
			}
		}

		removed = before - len(m.Entries)
		return nil
	})
	return removed, err
}
