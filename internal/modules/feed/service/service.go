package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/gorilla/feeds"
	journalDomain "github.com/reshetovitsme/channel-mirror/internal/modules/journal/domain"
	"github.com/samber/oops"
)

const feedSize = 50

// EntrySource lists journaled entries of a target
type EntrySource interface {
	GetEntries(target string, limit int) ([]*journalDomain.Entry, error)
}

// Service handles RSS feed generation
type Service struct {
	journal EntrySource
}

// New creates a new feed service
func New(journal EntrySource) *Service {
	return &Service{
		journal: journal,
	}
}

// GenerateFeed generates an RSS feed of the posts mirrored to a target
func (s *Service) GenerateFeed(target string, baseURL string) (*feeds.Feed, error) {
	entries, err := s.journal.GetEntries(target, feedSize)
	if err != nil {
		return nil, oops.With("target", target, "context", "failed to get journal entries").Wrap(err)
	}

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("%s - mirrored posts", target),
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/rss/%s", baseURL, target)},
		Description: fmt.Sprintf("Posts mirrored to %s", target),
		Author:      &feeds.Author{Name: target},
	}

	if len(entries) > 0 {
		feed.Updated = entries[0].Date
		feed.Created = entries[len(entries)-1].Date
	}

	for _, entry := range entries {
		feed.Items = append(feed.Items, entryToFeedItem(entry))
	}

	return feed, nil
}

func entryToFeedItem(entry *journalDomain.Entry) *feeds.Item {
	description := entry.Text
	if description == "" {
		description = "No text content"
	}
	if entry.Media != nil {
		description += fmt.Sprintf("\n\nMedia: %s %s", entry.Media.Kind, entry.Media.FileID)
	}

	content := fmt.Sprintf("<p>%s</p>", strings.ReplaceAll(html.EscapeString(entry.Text), "\n", "<br>"))
	if entry.Media != nil {
		content += fmt.Sprintf("<p><strong>Media:</strong> %s</p>", entry.Media.Kind)
	}

	source := entry.SourceTitle
	if source == "" {
		source = entry.SourceKey
	}

	return &feeds.Item{
		Title:       truncate(entry.Text, 100),
		Link:        &feeds.Link{Href: postLink(entry.Target, entry.MessageID)},
		Description: description,
		Content:     content,
		Author:      &feeds.Author{Name: source},
		Created:     entry.Date,
		Id:          fmt.Sprintf("%s-%d", entry.Target, entry.MessageID),
	}
}

// postLink builds the public t.me URL of a post; private chats use the /c/ form
func postLink(target string, messageID int) string {
	if handle, ok := strings.CutPrefix(target, "@"); ok {
		return fmt.Sprintf("https://t.me/%s/%d", handle, messageID)
	}
	return fmt.Sprintf("https://t.me/c/%s/%d", strings.TrimPrefix(target, "-100"), messageID)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
