package service

import (
	"strings"

	settings "github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
)

// Apply rewrites text with the word rules, then the link rules, then the
// mention rules, each namespace in insertion order. Keys are literal text.
func Apply(text string, r settings.Replacements) string {
	for _, rules := range [][]settings.Replacement{r.Words, r.Links, r.Mentions} {
		for _, rule := range rules {
			if rule.From == "" {
				continue
			}
			text = strings.ReplaceAll(text, rule.From, rule.To)
		}
	}
	return text
}
