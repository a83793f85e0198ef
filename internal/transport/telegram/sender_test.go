package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	deliveryDomain "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/domain"
	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
	sharedErrors "github.com/reshetovitsme/channel-mirror/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAliases identity.Aliases

func (a staticAliases) Aliases() (identity.Aliases, error) {
	return identity.Aliases(a), nil
}

func TestSendPicksMethodByContent(t *testing.T) {
	tests := []struct {
		name       string
		out        deliveryDomain.Outgoing
		wantMethod string
	}{
		{name: "text", out: deliveryDomain.Outgoing{Text: "hi"}, wantMethod: "sendMessage"},
		{name: "photo", out: deliveryDomain.Outgoing{Text: "cap", Media: &message.Media{Kind: message.ContentKindPhoto, FileID: "p"}}, wantMethod: "sendPhoto"},
		{name: "video", out: deliveryDomain.Outgoing{Media: &message.Media{Kind: message.ContentKindVideo, FileID: "v"}}, wantMethod: "sendVideo"},
		{name: "file", out: deliveryDomain.Outgoing{Media: &message.Media{Kind: message.ContentKindFile, FileID: "d", MimeType: "application/pdf"}}, wantMethod: "sendDocument"},
		{name: "sticker", out: deliveryDomain.Outgoing{Media: &message.Media{Kind: message.ContentKindSticker, FileID: "s"}}, wantMethod: "sendSticker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			sender := NewSender(api, nil, 0)

			id, err := sender.Send(context.Background(), "@mirror", tt.out)
			require.NoError(t, err)
			assert.Equal(t, 101, id)

			calls := api.recorded()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantMethod, calls[0].method)
			assert.Equal(t, "@mirror", calls[0].chatID)
			if tt.out.Media != nil {
				assert.Equal(t, tt.out.Media.FileID, calls[0].fileID)
			}
		})
	}
}

func TestNumericTargetsUseIntegerChatID(t *testing.T) {
	api := newFakeAPI()
	sender := NewSender(api, nil, 0)

	_, err := sender.Send(context.Background(), "-100123", deliveryDomain.Outgoing{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(-100123), api.recorded()[0].chatID)
}

func TestInviteTargetsNeedAlias(t *testing.T) {
	api := newFakeAPI()
	aliases := identity.Aliases{}
	sender := NewSender(api, staticAliases(aliases), 0)

	_, err := sender.Send(context.Background(), "AbCdEfGhIjKl", deliveryDomain.Outgoing{Text: "x"})
	assert.ErrorIs(t, err, sharedErrors.ErrInviteNotResolvable)

	aliases.Set("https://t.me/+AbCdEfGhIjKl", -100777)
	_, err = sender.Send(context.Background(), "https://t.me/+AbCdEfGhIjKl", deliveryDomain.Outgoing{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(-100777), api.recorded()[0].chatID)
}

func TestEditUsesCaptionForMedia(t *testing.T) {
	api := newFakeAPI()
	sender := NewSender(api, nil, 0)
	ctx := context.Background()

	require.NoError(t, sender.Edit(ctx, "@mirror", 5, deliveryDomain.Outgoing{Text: "new"}))
	require.NoError(t, sender.Edit(ctx, "@mirror", 6, deliveryDomain.Outgoing{Text: "cap", Media: &message.Media{Kind: message.ContentKindPhoto}}))
	require.NoError(t, sender.Delete(ctx, "@mirror", 7))

	calls := api.recorded()
	require.Len(t, calls, 3)
	assert.Equal(t, apiCall{method: "editMessageText", chatID: "@mirror", text: "new", msgID: 5}, calls[0])
	assert.Equal(t, apiCall{method: "editMessageCaption", chatID: "@mirror", text: "cap", msgID: 6}, calls[1])
	assert.Equal(t, apiCall{method: "deleteMessage", chatID: "@mirror", msgID: 7}, calls[2])
}

func TestSendErrorsAreReturned(t *testing.T) {
	api := newFakeAPI()
	api.fail = errors.New("Forbidden: bot is not a member of the channel chat")
	sender := NewSender(api, nil, 0)

	_, err := sender.Send(context.Background(), "@mirror", deliveryDomain.Outgoing{Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Forbidden")
}

func TestPacingPerChat(t *testing.T) {
	api := newFakeAPI()
	// one message per 100ms per chat
	sender := NewSender(api, nil, 600)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := sender.Send(ctx, "@a", deliveryDomain.Outgoing{Text: "x"})
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)

	// another chat has its own budget
	start = time.Now()
	_, err := sender.Send(ctx, "@b", deliveryDomain.Outgoing{Text: "x"})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestPacingHonoursContext(t *testing.T) {
	api := newFakeAPI()
	sender := NewSender(api, nil, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := sender.Send(ctx, "@a", deliveryDomain.Outgoing{Text: "x"})
	require.NoError(t, err)
	_, err = sender.Send(ctx, "@a", deliveryDomain.Outgoing{Text: "x"})
	assert.Error(t, err)
	assert.Len(t, api.recorded(), 1)
}
