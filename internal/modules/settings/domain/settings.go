package domain

import (
	"strings"
	"time"

	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	"github.com/samber/lo"
)

// RoutingRule feeds every message of Source to each of Targets.
type RoutingRule struct {
	Source  string   `json:"source"`
	Targets []string `json:"targets"`
}

// Routing holds per-source rules plus a broadcast set in which all sources feed all targets.
type Routing struct {
	Rules   []RoutingRule `json:"rules"`
	Sources []string      `json:"source_channels"`
	Targets []string      `json:"target_channels"`
}

// Replacement is one literal substitution.
type Replacement struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Replacements keeps each namespace in insertion order.
type Replacements struct {
	Words    []Replacement `json:"words"`
	Links    []Replacement `json:"links"`
	Mentions []Replacement `json:"mentions"`
}

// Blacklist lists forbidden substrings.
type Blacklist struct {
	Enabled bool          `json:"enabled"`
	Mode    BlacklistMode `json:"mode"`
	Words   []string      `json:"words"`
}

// FilterSet holds the content filter switches. Enabled switches are ANDed.
type FilterSet struct {
	OnlyText      bool `json:"only_text"`
	OnlyImage     bool `json:"only_image"`
	OnlyVideo     bool `json:"only_video"`
	OnlyLink      bool `json:"only_link"`
	BlockMentions bool `json:"block_mentions"`
}

// ForwardingStatus holds the process-wide pipeline switches.
type ForwardingStatus struct {
	Forwarding bool `json:"forwarding"`
	EditSync   bool `json:"edit_sync"`
	DeleteSync bool `json:"delete_sync"`
}

// AliasTable persists resolved channel identities.
type AliasTable struct {
	Entries identity.Aliases `json:"entries"`
}

// DeliveredEntry records where one source message was delivered.
type DeliveredEntry struct {
	At      time.Time      `json:"at"`
	Targets map[string]int `json:"targets"`
}

// DeliveredMap maps "<source key>:<message id>" to its delivered copies.
type DeliveredMap struct {
	Entries map[string]DeliveredEntry `json:"entries"`
}

// Snapshot is a fresh read of everything the pipeline needs for one event.
type Snapshot struct {
	Routing      Routing
	Replacements Replacements
	Blacklist    Blacklist
	Filters      FilterSet
	Forwarding   ForwardingStatus
	Aliases      identity.Aliases
}

// Default returns a pointer to the default value of a document.
func Default(doc Document) any {
	switch doc {
	case DocumentRouting:
		return &Routing{Rules: []RoutingRule{}, Sources: []string{}, Targets: []string{}}
	case DocumentReplacements:
		return &Replacements{Words: []Replacement{}, Links: []Replacement{}, Mentions: []Replacement{}}
	case DocumentBlacklist:
		return &Blacklist{Enabled: true, Mode: BlacklistModeStrip, Words: []string{}}
	case DocumentFilters:
		return &FilterSet{}
	case DocumentForwarding:
		return &ForwardingStatus{Forwarding: true}
	case DocumentAliases:
		return &AliasTable{Entries: identity.Aliases{}}
	case DocumentDelivered:
		return &DeliveredMap{Entries: map[string]DeliveredEntry{}}
	}
	return nil
}

// Namespace returns the rule list for ns.
func (r *Replacements) Namespace(ns Namespace) *[]Replacement {
	switch ns {
	case NamespaceWords:
		return &r.Words
	case NamespaceLinks:
		return &r.Links
	case NamespaceMentions:
		return &r.Mentions
	}
	return nil
}

// Upsert overwrites the value of an existing key in place or appends a new rule.
func Upsert(rules []Replacement, from, to string) []Replacement {
	for i := range rules {
		if rules[i].From == from {
			rules[i].To = to
			return rules
		}
	}
	return append(rules, Replacement{From: from, To: to})
}

// AddRef appends ref unless an equal reference is already present.
func AddRef(refs []string, ref string) ([]string, bool) {
	if lo.ContainsBy(refs, func(r string) bool { return identity.Equal(r, ref) }) {
		return refs, false
	}
	return append(refs, ref), true
}

// RemoveRef drops every reference equal to ref.
func RemoveRef(refs []string, ref string) ([]string, bool) {
	kept := lo.Reject(refs, func(r string, _ int) bool { return identity.Equal(r, ref) })
	return kept, len(kept) != len(refs)
}

// Toggle flips a filter switch and returns its new state.
func (f *FilterSet) Toggle(name FilterName) (bool, bool) {
	var flag *bool
	switch name {
	case FilterNameText:
		flag = &f.OnlyText
	case FilterNameImage:
		flag = &f.OnlyImage
	case FilterNameVideo:
		flag = &f.OnlyVideo
	case FilterNameLink:
		flag = &f.OnlyLink
	case FilterNameMentions:
		flag = &f.BlockMentions
	default:
		return false, false
	}
	*flag = !*flag
	return *flag, true
}

// CleanWords trims, drops empties and dedupes a word list.
func CleanWords(words []string) []string {
	return lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.TrimSpace(w)
		return w, w != ""
	}))
}
