package repository

import (
	"time"

	"github.com/reshetovitsme/channel-mirror/internal/modules/journal/domain"
)

// Repository defines the interface for journal persistence
type Repository interface {
	SaveEntry(entry *domain.Entry) error
	GetEntries(target string, limit int) ([]*domain.Entry, error)
	GetTargets() ([]string, error)
	Prune(now time.Time) (int, error)
}
