package service

import (
	"context"
	"strings"

	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	"github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	"github.com/reshetovitsme/channel-mirror/internal/modules/settings/repository"
	"github.com/reshetovitsme/channel-mirror/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service exposes the settings documents as typed, idempotent operations
type Service struct {
	repo     repository.Repository
	resolver identity.Resolver
}

// New creates a new settings service
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// SetResolver sets the platform resolver used by Resolve
func (s *Service) SetResolver(r identity.Resolver) {
	s.resolver = r
}

// Bootstrap creates absent documents with their defaults
func (s *Service) Bootstrap() error {
	return s.repo.Bootstrap()
}

// Snapshot reads every document the pipeline needs. It is never cached.
func (s *Service) Snapshot() (*domain.Snapshot, error) {
	routing, err := repository.Get[domain.Routing](s.repo, domain.DocumentRouting)
	if err != nil {
		return nil, err
	}
	replacements, err := repository.Get[domain.Replacements](s.repo, domain.DocumentReplacements)
	if err != nil {
		return nil, err
	}
	blacklist, err := repository.Get[domain.Blacklist](s.repo, domain.DocumentBlacklist)
	if err != nil {
		return nil, err
	}
	filters, err := repository.Get[domain.FilterSet](s.repo, domain.DocumentFilters)
	if err != nil {
		return nil, err
	}
	forwarding, err := repository.Get[domain.ForwardingStatus](s.repo, domain.DocumentForwarding)
	if err != nil {
		return nil, err
	}
	aliases, err := repository.Get[domain.AliasTable](s.repo, domain.DocumentAliases)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Routing:      *routing,
		Replacements: *replacements,
		Blacklist:    *blacklist,
		Filters:      *filters,
		Forwarding:   *forwarding,
		Aliases:      aliases.Entries,
	}, nil
}

// Forwarding reads the forwarding switches
func (s *Service) Forwarding() (*domain.ForwardingStatus, error) {
	return repository.Get[domain.ForwardingStatus](s.repo, domain.DocumentForwarding)
}

// AddSource adds ref to the broadcast sources and returns its normalized key
func (s *Service) AddSource(ref string) (string, bool, error) {
	return s.editRefs(ref, true, func(r *domain.Routing) *[]string { return &r.Sources })
}

// RemoveSource removes ref from the broadcast sources
func (s *Service) RemoveSource(ref string) (string, bool, error) {
	return s.editRefs(ref, false, func(r *domain.Routing) *[]string { return &r.Sources })
}

// AddTarget adds ref to the broadcast targets
func (s *Service) AddTarget(ref string) (string, bool, error) {
	return s.editRefs(ref, true, func(r *domain.Routing) *[]string { return &r.Targets })
}

// RemoveTarget removes ref from the broadcast targets
func (s *Service) RemoveTarget(ref string) (string, bool, error) {
	return s.editRefs(ref, false, func(r *domain.Routing) *[]string { return &r.Targets })
}

func (s *Service) editRefs(ref string, add bool, field func(*domain.Routing) *[]string) (string, bool, error) {
	key := identity.Normalize(ref)
	if key == "" {
		return "", false, oops.With("ref", ref).Wrap(errors.ErrInvalidRef)
	}

	var changed bool
	err := repository.Update(s.repo, domain.DocumentRouting, func(r *domain.Routing) error {
		refs := field(r)
		if add {
			*refs, changed = domain.AddRef(*refs, key)
		} else {
			*refs, changed = domain.RemoveRef(*refs, key)
		}
		return nil
	})
	return key, changed, err
}

// AddRoute adds targets to the rule of source, creating the rule when needed
func (s *Service) AddRoute(source string, targets ...string) (*domain.RoutingRule, error) {
	sourceKey := identity.Normalize(source)
	targetKeys := lo.Uniq(lo.FilterMap(targets, func(t string, _ int) (string, bool) {
		key := identity.Normalize(t)
		return key, key != ""
	}))
	if sourceKey == "" || len(targetKeys) == 0 {
		return nil, oops.With("source", source, "targets", targets).Wrap(errors.ErrInvalidRef)
	}

	var rule domain.RoutingRule
	err := repository.Update(s.repo, domain.DocumentRouting, func(r *domain.Routing) error {
		_, idx, found := lo.FindIndexOf(r.Rules, func(rule domain.RoutingRule) bool {
			return identity.Equal(rule.Source, sourceKey)
		})
		if !found {
			r.Rules = append(r.Rules, domain.RoutingRule{Source: sourceKey})
			idx = len(r.Rules) - 1
		}
		for _, key := range targetKeys {
			r.Rules[idx].Targets, _ = domain.AddRef(r.Rules[idx].Targets, key)
		}
		rule = r.Rules[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// RemoveRoute drops the rule of source
func (s *Service) RemoveRoute(source string) (bool, error) {
	sourceKey := identity.Normalize(source)

	var removed bool
	err := repository.Update(s.repo, domain.DocumentRouting, func(r *domain.Routing) error {
		kept := lo.Reject(r.Rules, func(rule domain.RoutingRule, _ int) bool {
			return identity.Equal(rule.Source, sourceKey)
		})
		removed = len(kept) != len(r.Rules)
		r.Rules = kept
		return nil
	})
	return removed, err
}

// Routing reads the routing document
func (s *Service) Routing() (*domain.Routing, error) {
	return repository.Get[domain.Routing](s.repo, domain.DocumentRouting)
}

// UpsertReplacement sets the replacement of from in namespace ns
func (s *Service) UpsertReplacement(ns domain.Namespace, from, to string) error {
	from, to = replacementPair(ns, from, to)
	if from == "" {
		return errors.ErrEmptyKey
	}

	return repository.Update(s.repo, domain.DocumentReplacements, func(r *domain.Replacements) error {
		rules := r.Namespace(ns)
		if rules == nil {
			return oops.With("namespace", ns).Wrap(errors.ErrUnknownNamespace)
		}
		*rules = domain.Upsert(*rules, from, to)
		return nil
	})
}

// RemoveReplacement drops the replacement of from in namespace ns
func (s *Service) RemoveReplacement(ns domain.Namespace, from string) (bool, error) {
	from, _ = replacementPair(ns, from, "")

	var removed bool
	err := repository.Update(s.repo, domain.DocumentReplacements, func(r *domain.Replacements) error {
		rules := r.Namespace(ns)
		if rules == nil {
			return oops.With("namespace", ns).Wrap(errors.ErrUnknownNamespace)
		}
		kept := lo.Reject(*rules, func(rule domain.Replacement, _ int) bool { return rule.From == from })
		removed = len(kept) != len(*rules)
		*rules = kept
		return nil
	})
	return removed, err
}

// Replacements reads the replacement rules
func (s *Service) Replacements() (*domain.Replacements, error) {
	return repository.Get[domain.Replacements](s.repo, domain.DocumentReplacements)
}

func replacementPair(ns domain.Namespace, from, to string) (string, string) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if ns == domain.NamespaceMentions {
		from = withSigil(from)
		to = withSigil(to)
	}
	return from, to
}

func withSigil(handle string) string {
	if handle == "" || strings.HasPrefix(handle, "@") {
		return handle
	}
	return "@" + handle
}

// SetBlacklist replaces the blacklisted words
func (s *Service) SetBlacklist(words []string) ([]string, error) {
	cleaned := domain.CleanWords(words)
	err := repository.Update(s.repo, domain.DocumentBlacklist, func(b *domain.Blacklist) error {
		b.Words = cleaned
		return nil
	})
	return cleaned, err
}

// SetBlacklistEnabled switches the blacklist stage on or off
func (s *Service) SetBlacklistEnabled(enabled bool) error {
	return repository.Update(s.repo, domain.DocumentBlacklist, func(b *domain.Blacklist) error {
		b.Enabled = enabled
		return nil
	})
}

// SetBlacklistMode chooses between stripping words and rejecting messages
func (s *Service) SetBlacklistMode(mode domain.BlacklistMode) error {
	if !mode.IsValid() {
		return oops.With("mode", mode).Wrap(domain.ErrInvalidBlacklistMode)
	}
	return repository.Update(s.repo, domain.DocumentBlacklist, func(b *domain.Blacklist) error {
		b.Mode = mode
		return nil
	})
}

// Blacklist reads the blacklist
func (s *Service) Blacklist() (*domain.Blacklist, error) {
	return repository.Get[domain.Blacklist](s.repo, domain.DocumentBlacklist)
}

// ToggleFilter flips a content filter and returns its new state
func (s *Service) ToggleFilter(name domain.FilterName) (bool, error) {
	var state bool

	if name == domain.FilterNameBlacklist {
		err := repository.Update(s.repo, domain.DocumentBlacklist, func(b *domain.Blacklist) error {
			b.Enabled = !b.Enabled
			state = b.Enabled
			return nil
		})
		return state, err
	}

	err := repository.Update(s.repo, domain.DocumentFilters, func(f *domain.FilterSet) error {
		var ok bool
		if state, ok = f.Toggle(name); !ok {
			return oops.With("filter", name).Wrap(errors.ErrUnknownFilter)
		}
		return nil
	})
	return state, err
}

// Filters reads the content filter switches
func (s *Service) Filters() (*domain.FilterSet, error) {
	return repository.Get[domain.FilterSet](s.repo, domain.DocumentFilters)
}

// SetForwarding enables or disables the whole pipeline
func (s *Service) SetForwarding(enabled bool) error {
	return s.updateStatus(func(f *domain.ForwardingStatus) { f.Forwarding = enabled })
}

// SetEditSync enables or disables mirroring of edits
func (s *Service) SetEditSync(enabled bool) error {
	return s.updateStatus(func(f *domain.ForwardingStatus) { f.EditSync = enabled })
}

// SetDeleteSync enables or disables mirroring of deletions
func (s *Service) SetDeleteSync(enabled bool) error {
	return s.updateStatus(func(f *domain.ForwardingStatus) { f.DeleteSync = enabled })
}

func (s *Service) updateStatus(fn func(*domain.ForwardingStatus)) error {
	return repository.Update(s.repo, domain.DocumentForwarding, func(f *domain.ForwardingStatus) error {
		fn(f)
		return nil
	})
}

// SetAlias records that ref denotes the channel with the given ID
func (s *Service) SetAlias(ref string, id int64) error {
	if identity.Normalize(ref) == "" || id == 0 {
		return oops.With("ref", ref, "id", id).Wrap(errors.ErrInvalidRef)
	}
	return repository.Update(s.repo, domain.DocumentAliases, func(a *domain.AliasTable) error {
		if a.Entries == nil {
			a.Entries = identity.Aliases{}
		}
		a.Entries.Set(ref, id)
		return nil
	})
}

// Aliases reads the alias table
func (s *Service) Aliases() (identity.Aliases, error) {
	table, err := repository.Get[domain.AliasTable](s.repo, domain.DocumentAliases)
	if err != nil {
		return nil, err
	}
	return table.Entries, nil
}

// Resolve asks the platform for the numeric ID behind ref and stores it as an alias
func (s *Service) Resolve(ctx context.Context, ref string) (int64, error) {
	parsed := identity.Classify(ref)
	switch parsed.Kind {
	case identity.RefKindInvite:
		return 0, oops.With("ref", ref).Wrap(errors.ErrInviteNotResolvable)
	case identity.RefKindUnknown:
		return 0, oops.With("ref", ref).Wrap(errors.ErrInvalidRef)
	}
	if s.resolver == nil {
		return 0, oops.Errorf("resolver not initialized")
	}

	id, err := s.resolver.Resolve(ctx, parsed.Key)
	if err != nil {
		return 0, oops.With("ref", ref, "context", "failed to resolve channel").Wrap(err)
	}
	if parsed.Kind == identity.RefKindHandle {
		if err := s.SetAlias(parsed.Key, id); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// ResetAll clears routing and replacement rules
func (s *Service) ResetAll() error {
	if err := repository.Reset(s.repo, domain.DocumentRouting); err != nil {
		return err
	}
	return repository.Reset(s.repo, domain.DocumentReplacements)
}

// Reset reinitializes one document to its default
func (s *Service) Reset(doc domain.Document) error {
	return repository.Reset(s.repo, doc)
}
