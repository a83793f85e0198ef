package domain

import (
	"strings"

	"github.com/samber/lo"
)

// Origin identifies the channel an inbound event came from.
type Origin struct {
	ChatID      int64  `json:"chat_id"`
	Username    string `json:"username,omitempty"`
	InviteToken string `json:"invite_token,omitempty"`
	Title       string `json:"title,omitempty"`
}

// Key is the most specific identity of the origin.
func (o Origin) Key() string {
	if o.ChatID != 0 {
		return FormatID(o.ChatID)
	}
	if o.Username != "" {
		return Normalize("@" + strings.TrimPrefix(o.Username, "@"))
	}
	return Normalize(o.InviteToken)
}

// Candidates lists every key the origin may have been registered under.
func (o Origin) Candidates() []string {
	var keys []string
	if o.ChatID != 0 {
		keys = append(keys, FormatID(o.ChatID))
	}
	if o.Username != "" {
		keys = append(keys, Normalize("@"+strings.TrimPrefix(o.Username, "@")))
	}
	if token := strings.TrimSpace(o.InviteToken); token != "" {
		keys = append(keys, Normalize(token))
	}
	return lo.Uniq(keys)
}

// Aliases maps a handle or invite token key to the numeric key it was resolved to.
type Aliases map[string]string

// Canonical returns the resolved key for key, or key itself when unresolved.
func (a Aliases) Canonical(key string) string {
	if target, ok := a[strings.ToLower(key)]; ok && target != "" {
		return target
	}
	return key
}

// Set records that ref denotes the channel with the given ID.
func (a Aliases) Set(ref string, id int64) {
	a[strings.ToLower(Normalize(ref))] = FormatID(id)
}
