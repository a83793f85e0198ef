package service

import (
	"time"

	"github.com/maypok86/otter"
	"github.com/reshetovitsme/channel-mirror/internal/modules/prompt/domain"
	"github.com/samber/oops"
)

const maxPending = 1024

// Store keeps one pending action per operator until it is answered or expires
type Store struct {
	cache otter.Cache[int64, domain.Action]
}

// NewStore creates a prompt store whose entries expire after ttl
func NewStore(ttl time.Duration) (*Store, error) {
	cache, err := otter.MustBuilder[int64, domain.Action](maxPending).
		WithTTL(ttl).
		Build()
	if err != nil {
		return nil, oops.With("ttl", ttl, "context", "failed to create prompt cache").Wrap(err)
	}
	return &Store{cache: cache}, nil
}

// Set replaces any pending action of userID
func (s *Store) Set(userID int64, action domain.Action) {
	s.cache.Set(userID, action)
}

// Take returns and clears the pending action of userID
func (s *Store) Take(userID int64) (domain.Action, bool) {
	action, ok := s.cache.Get(userID)
	if ok {
		s.cache.Delete(userID)
	}
	return action, ok
}

// Cancel drops the pending action of userID
func (s *Store) Cancel(userID int64) {
	s.cache.Delete(userID)
}

func (s *Store) Close() {
	s.cache.Close()
}
