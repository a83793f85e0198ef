package repository

import (
	"github.com/reshetovitsme/channel-mirror/internal/modules/operator/domain"
)

// Repository defines the interface for operator persistence
type Repository interface {
	SaveOperator(op *domain.Operator) error
	GetOperator(userID int64) (*domain.Operator, error)
	GetAllOperators() ([]*domain.Operator, error)
	// ClaimAdmin stores op as admin only while the roster is claimable, and
	// reports whether it did. The check and the write are one step.
	ClaimAdmin(op *domain.Operator) (bool, error)
}
