package telegram

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/puzpuzpuz/xsync/v4"
	deliveryDomain "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/domain"
	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
	"github.com/reshetovitsme/channel-mirror/internal/shared/errors"
	"github.com/samber/oops"
	"golang.org/x/time/rate"
)

// AliasSource provides the alias table used to address invite-link targets
type AliasSource interface {
	Aliases() (identity.Aliases, error)
}

// Sender performs single Bot API calls against destinations. Calls to one
// chat are paced to stay under Telegram's per-chat flood limit; nothing is retried.
type Sender struct {
	api       API
	aliases   AliasSource
	perMinute int
	limiters  *xsync.Map[string, *rate.Limiter]
}

// NewSender creates a sender allowing perMinute messages per chat (zero disables pacing)
func NewSender(api API, aliases AliasSource, perMinute int) *Sender {
	return &Sender{
		api:       api,
		aliases:   aliases,
		perMinute: perMinute,
		limiters:  xsync.NewMap[string, *rate.Limiter](),
	}
}

var _ deliveryDomain.Sender = (*Sender)(nil)

func (s *Sender) Send(ctx context.Context, target string, out deliveryDomain.Outgoing) (int, error) {
	chatID, err := s.prepare(ctx, target)
	if err != nil {
		return 0, err
	}

	var msg *models.Message
	switch media := out.Media; {
	case media == nil:
		msg, err = s.api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: out.Text})
	case media.Kind == message.ContentKindPhoto:
		msg, err = s.api.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:  chatID,
			Photo:   &models.InputFileString{Data: media.FileID},
			Caption: out.Text,
		})
	case media.Kind == message.ContentKindVideo:
		msg, err = s.api.SendVideo(ctx, &bot.SendVideoParams{
			ChatID:  chatID,
			Video:   &models.InputFileString{Data: media.FileID},
			Caption: out.Text,
		})
	case media.Kind == message.ContentKindSticker:
		// stickers carry no caption
		msg, err = s.api.SendSticker(ctx, &bot.SendStickerParams{
			ChatID:  chatID,
			Sticker: &models.InputFileString{Data: media.FileID},
		})
	default:
		msg, err = s.api.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:   chatID,
			Document: &models.InputFileString{Data: media.FileID},
			Caption:  out.Text,
		})
	}
	if err != nil {
		return 0, oops.With("target", target, "context", "send failed").Wrap(err)
	}
	return msg.ID, nil
}

func (s *Sender) Edit(ctx context.Context, target string, messageID int, out deliveryDomain.Outgoing) error {
	chatID, err := s.prepare(ctx, target)
	if err != nil {
		return err
	}

	if out.Media != nil {
		_, err = s.api.EditMessageCaption(ctx, &bot.EditMessageCaptionParams{
			ChatID:    chatID,
			MessageID: messageID,
			Caption:   out.Text,
		})
	} else {
		_, err = s.api.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: messageID,
			Text:      out.Text,
		})
	}
	if err != nil {
		return oops.With("target", target, "message_id", messageID, "context", "edit failed").Wrap(err)
	}
	return nil
}

func (s *Sender) Delete(ctx context.Context, target string, messageID int) error {
	chatID, err := s.prepare(ctx, target)
	if err != nil {
		return err
	}

	if _, err := s.api.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: chatID, MessageID: messageID}); err != nil {
		return oops.With("target", target, "message_id", messageID, "context", "delete failed").Wrap(err)
	}
	return nil
}

// prepare resolves the chat to address and waits for its pacing slot
func (s *Sender) prepare(ctx context.Context, target string) (any, error) {
	chatID, err := s.chatID(target)
	if err != nil {
		return nil, err
	}
	if s.perMinute > 0 {
		limiter, _ := s.limiters.LoadOrCompute(identity.Normalize(target), func() (*rate.Limiter, bool) {
			return rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMinute)), 1), false
		})
		if err := limiter.Wait(ctx); err != nil {
			return nil, oops.With("target", target, "context", "rate limit wait aborted").Wrap(err)
		}
	}
	return chatID, nil
}

// chatID maps a normalized target to the Bot API chat_id parameter
func (s *Sender) chatID(target string) (any, error) {
	ref := identity.Classify(target)
	key := ref.Key
	if ref.Kind == identity.RefKindInvite && s.aliases != nil {
		aliases, err := s.aliases.Aliases()
		if err != nil {
			return nil, err
		}
		key = aliases.Canonical(key)
	}

	if id, ok := identity.ParseID(key); ok {
		return id, nil
	}
	switch ref.Kind {
	case identity.RefKindHandle:
		return key, nil
	case identity.RefKindInvite:
		return nil, oops.With("target", target).Wrap(errors.ErrInviteNotResolvable)
	default:
		return nil, oops.With("target", target).Wrap(errors.ErrInvalidRef)
	}
}
