package service

import (
	"time"

	deliveryDomain "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/domain"
	"github.com/reshetovitsme/channel-mirror/internal/modules/journal/domain"
	"github.com/reshetovitsme/channel-mirror/internal/modules/journal/repository"
	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
)

// Service handles journal business logic
type Service struct {
	repo repository.Repository
}

// New creates a new journal service
func New(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// RecordDeliveries journals every successful send of one mirrored message
func (s *Service) RecordDeliveries(ev *message.Event, out deliveryDomain.Outgoing, outcomes []deliveryDomain.Outcome, at time.Time) error {
	for _, o := range outcomes {
		if !o.OK || o.Operation != deliveryDomain.OperationSend {
			continue
		}
		entry := &domain.Entry{
			Target:      o.Target,
			MessageID:   o.MessageID,
			SourceKey:   ev.Origin.Key(),
			SourceTitle: ev.Origin.Title,
			Text:        out.Text,
			Date:        at,
			Media:       out.Media,
		}
		if err := s.repo.SaveEntry(entry); err != nil {
			return err
		}
	}
	return nil
}

// GetEntries retrieves the latest entries of a target
func (s *Service) GetEntries(target string, limit int) ([]*domain.Entry, error) {
	return s.repo.GetEntries(target, limit)
}

// GetTargets lists targets with journaled entries
func (s *Service) GetTargets() ([]string, error) {
	return s.repo.GetTargets()
}
