package domain

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// ChannelIDPrefix marks channel and supergroup IDs in the Bot API.
const ChannelIDPrefix = "-100"

var (
	inviteLinkRe = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?(?:t|telegram)\.(?:me|dog)/(?:\+|joinchat/)([A-Za-z0-9_-]+)`)
	tgJoinRe     = regexp.MustCompile(`(?i)^tg://join\?invite=([A-Za-z0-9_-]+)`)
	bareInviteRe = regexp.MustCompile(`^\+([A-Za-z0-9_-]{10,})$`)
	privatePost  = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?(?:t|telegram)\.(?:me|dog)/c/(\d+)`)
	publicLinkRe = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?(?:t|telegram)\.(?:me|dog)/(?:s/)?([A-Za-z0-9_]+)`)
	tgResolveRe  = regexp.MustCompile(`(?i)^tg://resolve\?domain=([A-Za-z0-9_]+)`)
	handleRe     = regexp.MustCompile(`^@([A-Za-z0-9_]+)$`)
	numericRe    = regexp.MustCompile(`^-?\d+$`)
)

// Ref is a classified channel reference.
type Ref struct {
	Raw  string  `json:"raw"`
	Key  string  `json:"key"`
	Kind RefKind `json:"kind"`
}

// Classify normalizes raw and reports which form it was written in.
// It performs no I/O.
func Classify(raw string) Ref {
	s := strings.TrimSpace(raw)

	if m := firstMatch(s, inviteLinkRe, tgJoinRe, bareInviteRe); m != "" {
		return Ref{Raw: raw, Key: m, Kind: RefKindInvite}
	}

	if m := privatePost.FindStringSubmatch(s); m != nil {
		return Ref{Raw: raw, Key: ChannelIDPrefix + m[1], Kind: RefKindId}
	}

	if m := firstMatch(s, publicLinkRe, tgResolveRe, handleRe); m != "" {
		return Ref{Raw: raw, Key: "@" + strings.ToLower(m), Kind: RefKindHandle}
	}

	if numericRe.MatchString(s) {
		return Ref{Raw: raw, Key: canonicalID(s), Kind: RefKindId}
	}

	return Ref{Raw: raw, Key: s, Kind: RefKindUnknown}
}

// Normalize maps any accepted form of a channel reference to its comparison key.
func Normalize(raw string) string {
	return Classify(raw).Key
}

// Equal compares two references by their normalized keys, ignoring case.
func Equal(a, b string) bool {
	return strings.EqualFold(Normalize(a), Normalize(b))
}

// FormatID renders a numeric chat ID as a normalized key.
func FormatID(id int64) string {
	return canonicalID(strconv.FormatInt(id, 10))
}

// ParseID returns the numeric chat ID behind a normalized key, if it is one.
func ParseID(key string) (int64, bool) {
	if !numericRe.MatchString(key) {
		return 0, false
	}
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func canonicalID(s string) string {
	s = strings.TrimLeft(s, "+")
	if strings.HasPrefix(s, "-") {
		return s
	}
	// a bare magnitude is a channel ID written without its prefix
	return ChannelIDPrefix + s
}

func firstMatch(s string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return ""
}

// Resolver turns a handle or ID into the numeric chat ID it currently denotes.
// Resolution talks to the platform and may fail; invite tokens are only
// resolvable after joining, which a Resolver never does implicitly.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (int64, error)
}
