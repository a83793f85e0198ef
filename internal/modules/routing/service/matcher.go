package service

import (
	"strings"

	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	settings "github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	"github.com/samber/lo"
)

// Match returns the destinations an event from origin must be delivered to,
// deduplicated by normalized key in first-seen order. Sources are compared
// against every identity of the origin, after resolving aliases on both sides.
func Match(origin identity.Origin, routing settings.Routing, aliases identity.Aliases) []string {
	candidates := make(map[string]struct{})
	for _, key := range origin.Candidates() {
		candidates[strings.ToLower(key)] = struct{}{}
		candidates[strings.ToLower(aliases.Canonical(key))] = struct{}{}
	}
	if len(candidates) == 0 {
		return nil
	}

	matches := func(source string) bool {
		key := identity.Normalize(source)
		if _, ok := candidates[strings.ToLower(key)]; ok {
			return true
		}
		_, ok := candidates[strings.ToLower(aliases.Canonical(key))]
		return ok
	}

	var targets []string
	for _, rule := range routing.Rules {
		if matches(rule.Source) {
			targets = append(targets, rule.Targets...)
		}
	}
	if lo.SomeBy(routing.Sources, matches) {
		targets = append(targets, routing.Targets...)
	}

	return lo.UniqBy(lo.Map(targets, func(t string, _ int) string {
		return identity.Normalize(t)
	}), strings.ToLower)
}
