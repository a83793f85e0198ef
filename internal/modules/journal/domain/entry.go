package domain

import (
	"time"

	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
)

// Entry is one message mirrored to a destination
type Entry struct {
	Target      string         `json:"target"`
	MessageID   int            `json:"message_id"`
	SourceKey   string         `json:"source_key"`
	SourceTitle string         `json:"source_title"`
	Text        string         `json:"text"`
	Date        time.Time      `json:"date"`
	Media       *message.Media `json:"media,omitempty"`
}
