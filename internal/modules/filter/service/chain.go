package service

import (
	"regexp"
	"strings"

	message "github.com/reshetovitsme/channel-mirror/internal/modules/message/domain"
	settings "github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
)

// Stages of the chain, in the order they run.
const (
	StageMedia     = "media"
	StageMentions  = "mentions"
	StageBlacklist = "blacklist"
)

var linkRe = regexp.MustCompile(`(?i)(?:https?://|www\.|t\.me/)\S+`)

// Verdict is the result of running the chain over one message.
type Verdict struct {
	Drop   bool
	Stage  string
	Reason string
	// Text is the message text after the chain, valid when Drop is false.
	Text string
}

// Apply runs the media-type, mention and blacklist stages over ev.
// The first stage that drops the message stops the chain.
func Apply(ev *message.Event, filters settings.FilterSet, blacklist settings.Blacklist) Verdict {
	if reason, ok := passesMedia(ev, filters); !ok {
		return Verdict{Drop: true, Stage: StageMedia, Reason: reason}
	}

	if filters.BlockMentions && strings.Contains(ev.Text, "@") {
		return Verdict{Drop: true, Stage: StageMentions, Reason: "text contains a mention"}
	}

	text := ev.Text
	if blacklist.Enabled {
		var word string
		var hit bool
		text, word, hit = applyBlacklist(text, blacklist)
		if hit && blacklist.Mode == settings.BlacklistModeReject {
			return Verdict{Drop: true, Stage: StageBlacklist, Reason: "blacklisted word " + word}
		}
	}

	return Verdict{Text: text}
}

func passesMedia(ev *message.Event, f settings.FilterSet) (string, bool) {
	if f.OnlyText && ev.ContentKind() != message.ContentKindText {
		return "only text is forwarded", false
	}
	if f.OnlyImage && !ev.IsImage() {
		return "only images are forwarded", false
	}
	if f.OnlyVideo && !ev.IsVideo() {
		return "only videos are forwarded", false
	}
	if f.OnlyLink && !HasLink(ev) {
		return "only messages with links are forwarded", false
	}
	return "", true
}

// HasLink reports whether the message carries a link in its text or entities.
func HasLink(ev *message.Event) bool {
	return len(ev.Links) > 0 || linkRe.MatchString(ev.Text)
}

// applyBlacklist strips every blacklisted word from text. It also reports the
// first word found, which is all reject mode needs.
func applyBlacklist(text string, b settings.Blacklist) (string, string, bool) {
	var first string
	for _, word := range b.Words {
		if word == "" || !strings.Contains(text, word) {
			continue
		}
		if first == "" {
			first = word
			if b.Mode == settings.BlacklistModeReject {
				return text, first, true
			}
		}
		text = strings.ReplaceAll(text, word, "")
	}
	return text, first, first != ""
}
