package repository

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/reshetovitsme/channel-mirror/internal/modules/operator/domain"
	"github.com/reshetovitsme/channel-mirror/internal/shared/errors"
	"github.com/reshetovitsme/channel-mirror/internal/shared/storage"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository with a single roster document
type FileStorage struct {
	path string
	mu   sync.RWMutex
}

// NewFileStorage creates a new file-based operator repository
func NewFileStorage(basePath string) (*FileStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create storage directory").Wrap(err)
	}

	return &FileStorage{path: filepath.Join(basePath, "operators.json")}, nil
}

func (s *FileStorage) load() (*domain.Roster, error) {
	var roster domain.Roster
	if _, err := storage.ReadJSON(s.path, &roster); err != nil {
		return nil, oops.With("context", "failed to read operator roster").Wrap(err)
	}
	return &roster, nil
}

func (s *FileStorage) update(fn func(*domain.Roster) (bool, error)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.load()
	if err != nil {
		return false, err
	}
	changed, err := fn(roster)
	if err != nil || !changed {
		return false, err
	}
	if err := storage.WriteJSON(s.path, roster); err != nil {
		return false, oops.With("context", "failed to write operator roster").Wrap(err)
	}
	return true, nil
}

func (s *FileStorage) SaveOperator(op *domain.Operator) error {
	_, err := s.update(func(r *domain.Roster) (bool, error) {
		r.Upsert(*op)
		return true, nil
	})
	return err
}

func (s *FileStorage) ClaimAdmin(op *domain.Operator) (bool, error) {
	return s.update(func(r *domain.Roster) (bool, error) {
		if !r.Claimable() {
			return false, nil
		}
		admin := *op
		admin.IsAdmin = true
		r.Upsert(admin)
		r.ClaimedAt = admin.AddedAt
		return true, nil
	})
}

func (s *FileStorage) GetOperator(userID int64) (*domain.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roster, err := s.load()
	if err != nil {
		return nil, err
	}
	op, ok := roster.Find(userID)
	if !ok {
		return nil, oops.With("user_id", userID).Wrap(errors.ErrOperatorNotFound)
	}
	return &op, nil
}

func (s *FileStorage) GetAllOperators() ([]*domain.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roster, err := s.load()
	if err != nil {
		return nil, err
	}
	return lo.ToSlicePtr(roster.Operators), nil
}
