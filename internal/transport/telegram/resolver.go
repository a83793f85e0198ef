package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	"github.com/reshetovitsme/channel-mirror/internal/shared/errors"
	"github.com/samber/oops"
)

// Resolver looks channels up with getChat. The bot must be able to see the chat.
type Resolver struct {
	api API
}

func NewResolver(api API) *Resolver {
	return &Resolver{api: api}
}

var _ identity.Resolver = (*Resolver)(nil)

func (r *Resolver) Resolve(ctx context.Context, ref string) (int64, error) {
	parsed := identity.Classify(ref)

	var chatID any
	switch parsed.Kind {
	case identity.RefKindId:
		id, ok := identity.ParseID(parsed.Key)
		if !ok {
			return 0, oops.With("ref", ref).Wrap(errors.ErrInvalidRef)
		}
		chatID = id
	case identity.RefKindHandle:
		chatID = parsed.Key
	case identity.RefKindInvite:
		return 0, oops.With("ref", ref).Wrap(errors.ErrInviteNotResolvable)
	default:
		return 0, oops.With("ref", ref).Wrap(errors.ErrInvalidRef)
	}

	chat, err := r.api.GetChat(ctx, &bot.GetChatParams{ChatID: chatID})
	if err != nil {
		return 0, oops.With("ref", ref, "context", "getChat failed").Wrap(err)
	}
	return chat.ID, nil
}
