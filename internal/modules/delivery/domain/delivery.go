package domain

import (
	"context"

	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
)

// Outgoing is the final payload emitted to a destination.
type Outgoing struct {
	Text  string
	Media *message.Media
}

// Empty reports whether there is nothing to deliver.
func (o Outgoing) Empty() bool {
	return o.Text == "" && o.Media == nil
}

// Outcome is the result of one attempt against one destination.
type Outcome struct {
	Target    string    `json:"target"`
	Operation Operation `json:"operation"`
	OK        bool      `json:"ok"`
	Reason    string    `json:"reason,omitempty"`
	// MessageID is the delivered message on the destination, for sends.
	MessageID int `json:"message_id,omitempty"`
}

// Delivery points at a message previously delivered to Target.
type Delivery struct {
	Target    string
	MessageID int
}

// Sender performs single outbound calls against the platform.
type Sender interface {
	Send(ctx context.Context, target string, out Outgoing) (int, error)
	Edit(ctx context.Context, target string, messageID int, out Outgoing) error
	Delete(ctx context.Context, target string, messageID int) error
}
