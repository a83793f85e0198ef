package telegram

import (
	"testing"

	"github.com/go-telegram/bot/models"
	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFromTextPost(t *testing.T) {
	msg := &models.Message{
		ID:   42,
		Chat: models.Chat{ID: -100123, Type: models.ChatTypeChannel, Username: "news", Title: "News"},
		Text: "привет https://example.com and more",
		Entities: []models.MessageEntity{
			{Type: models.MessageEntityTypeURL, Offset: 7, Length: 19},
			{Type: models.MessageEntityTypeTextLink, Offset: 0, Length: 6, URL: "https://hidden.example"},
		},
	}

	ev := EventFromMessage(message.EventKindNew, msg)
	assert.Equal(t, message.EventKindNew, ev.Kind)
	assert.Equal(t, int64(-100123), ev.Origin.ChatID)
	assert.Equal(t, "news", ev.Origin.Username)
	assert.Equal(t, "News", ev.Origin.Title)
	assert.Equal(t, 42, ev.MessageID)
	assert.Nil(t, ev.Media)
	assert.Equal(t, []string{"https://example.com", "https://hidden.example"}, ev.Links)
}

func TestEventFromCaptionedPhoto(t *testing.T) {
	msg := &models.Message{
		ID:      1,
		Chat:    models.Chat{ID: -100123, Type: models.ChatTypeChannel},
		Caption: "look",
		Photo: []models.PhotoSize{
			{FileID: "small"},
			{FileID: "large"},
		},
	}

	ev := EventFromMessage(message.EventKindEdited, msg)
	assert.Equal(t, "look", ev.Text)
	require.NotNil(t, ev.Media)
	assert.Equal(t, message.ContentKindPhoto, ev.Media.Kind)
	assert.Equal(t, "large", ev.Media.FileID)
}

func TestExtractMedia(t *testing.T) {
	tests := []struct {
		name     string
		msg      *models.Message
		wantKind message.ContentKind
		image    bool
		video    bool
	}{
		{name: "video", msg: &models.Message{Video: &models.Video{FileID: "v", MimeType: "video/mp4"}}, wantKind: message.ContentKindVideo, video: true},
		{name: "image document", msg: &models.Message{Document: &models.Document{FileID: "d", MimeType: "image/png"}}, wantKind: message.ContentKindFile, image: true},
		{name: "pdf document", msg: &models.Message{Document: &models.Document{FileID: "d", MimeType: "application/pdf"}}, wantKind: message.ContentKindFile},
		{name: "animation", msg: &models.Message{Animation: &models.Animation{FileID: "a", MimeType: "video/mp4"}}, wantKind: message.ContentKindFile, video: true},
		{name: "sticker", msg: &models.Message{Sticker: &models.Sticker{FileID: "s"}}, wantKind: message.ContentKindSticker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EventFromMessage(message.EventKindNew, tt.msg)
			require.NotNil(t, ev.Media)
			assert.Equal(t, tt.wantKind, ev.ContentKind())
			assert.Equal(t, tt.image, ev.IsImage())
			assert.Equal(t, tt.video, ev.IsVideo())
		})
	}
}

func TestExtractLinksIgnoresBadOffsets(t *testing.T) {
	links := extractLinks("short", []models.MessageEntity{{Type: models.MessageEntityTypeURL, Offset: 3, Length: 10}})
	assert.Empty(t, links)
}
