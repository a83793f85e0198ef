package domain

import (
	"fmt"
	"strings"

	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
)

// Media describes the non-text part of a message.
type Media struct {
	Kind     ContentKind `json:"kind"`
	FileID   string      `json:"file_id"`
	MimeType string      `json:"mime_type,omitempty"`
}

// Event is a single inbound platform event.
type Event struct {
	Kind      EventKind       `json:"kind"`
	Origin    identity.Origin `json:"origin"`
	MessageID int             `json:"message_id"`
	Text      string          `json:"text"`
	Media     *Media          `json:"media,omitempty"`
	// Links holds URLs the platform reported as entities (text links, url entities).
	Links []string `json:"links,omitempty"`
}

// ContentKind reports the tag of the message payload.
func (e *Event) ContentKind() ContentKind {
	if e.Media == nil {
		return ContentKindText
	}
	return e.Media.Kind
}

// IsImage reports whether the payload is a photo or an image sent as a file.
func (e *Event) IsImage() bool {
	switch e.ContentKind() {
	case ContentKindPhoto:
		return true
	case ContentKindFile:
		return mimeFamily(e.Media.MimeType) == "image"
	}
	return false
}

// IsVideo reports whether the payload is a video or a video sent as a file.
func (e *Event) IsVideo() bool {
	switch e.ContentKind() {
	case ContentKindVideo:
		return true
	case ContentKindFile:
		return mimeFamily(e.Media.MimeType) == "video"
	}
	return false
}

// Key identifies the source message by the most specific identity of its origin.
func (e *Event) Key() string {
	return SourceKey(e.Origin.Key(), e.MessageID)
}

// SourceKey identifies message messageID of the channel known as originKey.
func SourceKey(originKey string, messageID int) string {
	return fmt.Sprintf("%s:%d", originKey, messageID)
}

func mimeFamily(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	family, _, _ := strings.Cut(mime, "/")
	return family
}
