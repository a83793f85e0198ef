package service

import (
	"time"

	"github.com/reshetovitsme/channel-mirror/internal/modules/operator/domain"
	"github.com/reshetovitsme/channel-mirror/internal/modules/operator/repository"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service handles operator business logic
type Service struct {
	repo    repository.Repository
	allowed []int64
	now     func() time.Time
}

// New creates a new operator service; allowed is the configured allow-list
func New(repo repository.Repository, allowed []int64) *Service {
	return &Service{
		repo:    repo,
		allowed: allowed,
		now:     time.Now,
	}
}

// GetOperator retrieves an operator by ID
func (s *Service) GetOperator(userID int64) (*domain.Operator, error) {
	return s.repo.GetOperator(userID)
}

// GetAllOperators retrieves all operators
func (s *Service) GetAllOperators() ([]*domain.Operator, error) {
	return s.repo.GetAllOperators()
}

// IsAuthorized checks the allow-list first, then the stored operators
func (s *Service) IsAuthorized(userID int64) bool {
	if lo.Contains(s.allowed, userID) {
		return true
	}
	_, err := s.repo.GetOperator(userID)
	return err == nil
}

// Claim authorises the user who sends /start. With no allow-list and an
// unclaimed roster the first claimant becomes admin; everyone after that needs
// to be on the allow-list or already registered.
func (s *Service) Claim(userID int64, username string) (bool, error) {
	if s.IsAuthorized(userID) {
		return true, nil
	}
	if len(s.allowed) > 0 {
		return false, nil
	}

	claimed, err := s.repo.ClaimAdmin(&domain.Operator{
		ID:       userID,
		Username: username,
		AddedAt:  s.now(),
		IsAdmin:  true,
	})
	if err != nil {
		return false, oops.With("user_id", userID, "context", "failed to register first operator").Wrap(err)
	}
	return claimed, nil
}
