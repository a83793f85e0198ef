package telegram

import (
	"unicode/utf16"

	"github.com/go-telegram/bot/models"
	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
)

// EventFromMessage converts a Bot API message into a pipeline event
func EventFromMessage(kind message.EventKind, msg *models.Message) *message.Event {
	text := msg.Text
	entities := msg.Entities
	if text == "" {
		text = msg.Caption
		entities = msg.CaptionEntities
	}

	return &message.Event{
		Kind: kind,
		Origin: identity.Origin{
			ChatID:   msg.Chat.ID,
			Username: msg.Chat.Username,
			Title:    msg.Chat.Title,
		},
		MessageID: msg.ID,
		Text:      text,
		Media:     extractMedia(msg),
		Links:     extractLinks(text, entities),
	}
}

func extractMedia(msg *models.Message) *message.Media {
	switch {
	case len(msg.Photo) > 0:
		// the last size is the largest
		return &message.Media{Kind: message.ContentKindPhoto, FileID: msg.Photo[len(msg.Photo)-1].FileID}
	case msg.Video != nil:
		return &message.Media{Kind: message.ContentKindVideo, FileID: msg.Video.FileID, MimeType: msg.Video.MimeType}
	case msg.Animation != nil:
		return &message.Media{Kind: message.ContentKindFile, FileID: msg.Animation.FileID, MimeType: msg.Animation.MimeType}
	case msg.Sticker != nil:
		return &message.Media{Kind: message.ContentKindSticker, FileID: msg.Sticker.FileID}
	case msg.Document != nil:
		return &message.Media{Kind: message.ContentKindFile, FileID: msg.Document.FileID, MimeType: msg.Document.MimeType}
	case msg.Audio != nil:
		return &message.Media{Kind: message.ContentKindFile, FileID: msg.Audio.FileID, MimeType: msg.Audio.MimeType}
	case msg.Voice != nil:
		return &message.Media{Kind: message.ContentKindFile, FileID: msg.Voice.FileID, MimeType: msg.Voice.MimeType}
	}
	return nil
}

// extractLinks collects url and text_link entities. Entity offsets count UTF-16 code units.
func extractLinks(text string, entities []models.MessageEntity) []string {
	var links []string
	var units []uint16
	for _, e := range entities {
		switch e.Type {
		case models.MessageEntityTypeTextLink:
			if e.URL != "" {
				links = append(links, e.URL)
			}
		case models.MessageEntityTypeURL:
			if units == nil {
				units = utf16.Encode([]rune(text))
			}
			if e.Offset < 0 || e.Length <= 0 || e.Offset+e.Length > len(units) {
				continue
			}
			links = append(links, string(utf16.Decode(units[e.Offset:e.Offset+e.Length])))
		}
	}
	return links
}
