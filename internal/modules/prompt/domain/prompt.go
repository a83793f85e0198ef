package domain

import (
	"strings"

	"github.com/reshetovitsme/channel-mirror/internal/shared/errors"
)

// ParsePair splits "from|to" operator input. Only the first separator counts,
// so the replacement itself may contain "|".
func ParsePair(text string) (string, string, error) {
	from, to, ok := strings.Cut(text, "|")
	if !ok {
		return "", "", errors.ErrMissingSeparator
	}
	from = strings.TrimSpace(from)
	if from == "" {
		return "", "", errors.ErrEmptyKey
	}
	return from, strings.TrimSpace(to), nil
}

// Prompt text shown when an action waits for input
func (a Action) Prompt() string {
	switch a {
	case ActionEditWord, ActionEditLink, ActionEditMention:
		return "✍️ Send in format from|to (one per message)"
	case ActionBlacklistWords:
		return "✍️ Send blacklisted words, comma separated"
	default:
		return "✍️ Send a channel: @handle, t.me link, invite link or numeric ID"
	}
}
