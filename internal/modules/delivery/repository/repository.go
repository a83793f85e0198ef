package repository

import (
	"time"

	"github.com/reshetovitsme/channel-mirror/internal/modules/delivery/domain"
)

// Repository keeps the mapping from source messages to their delivered copies
type Repository interface {
	Record(sourceKey string, at time.Time, deliveries []domain.Delivery) error
	Lookup(sourceKey string) ([]domain.Delivery, error)
	Forget(sourceKey string) error
	Prune(now time.Time) (int, error)
}
