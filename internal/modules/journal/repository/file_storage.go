package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/reshetovitsme/channel-mirror/internal/modules/journal/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository using file system
type FileStorage struct {
	basePath string
	ttl      time.Duration
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based journal keeping entries for ttl (zero keeps them forever)
func NewFileStorage(basePath string, ttl time.Duration) (*FileStorage, error) {
	journalPath := filepath.Join(basePath, "journal")
	if err := os.MkdirAll(journalPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create journal directory").Wrap(err)
	}

	return &FileStorage{basePath: journalPath, ttl: ttl}, nil
}

func targetDir(target string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(target)
}

func (s *FileStorage) SaveEntry(entry *domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Store entries in target-specific directories
	dir := filepath.Join(s.basePath, targetDir(entry.Target))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return oops.With("entry_dir", dir, "context", "failed to create entry directory").Wrap(err)
	}

	// zero-padded timestamps keep directory order chronological
	path := filepath.Join(dir, fmt.Sprintf("%020d-%d.json", entry.Date.UnixNano(), entry.MessageID))
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return oops.With("target", entry.Target, "message_id", entry.MessageID, "context", "failed to marshal entry").Wrap(err)
	}

	return os.WriteFile(path, data, 0644)
}

func (s *FileStorage) GetEntries(target string, limit int) ([]*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir := filepath.Join(s.basePath, targetDir(target))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Entry{}, nil
		}
		return nil, oops.With("target", target, "entry_dir", dir, "context", "failed to read journal directory").Wrap(err)
	}

	var result []*domain.Entry
	for i := len(entries) - 1; i >= 0 && len(result) < limit; i-- {
		dirEntry := entries[i]
		if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, dirEntry.Name()))
		if err != nil {
			continue
		}

		var entry domain.Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}

		result = append(result, &entry)
	}

	return result, nil
}

func (s *FileStorage) GetTargets() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, oops.With("directory", s.basePath, "context", "failed to read journal directory").Wrap(err)
	}

	return lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), entry.IsDir()
	}), nil
}

// Prune removes entries older than the configured ttl
func (s *FileStorage) Prune(now time.Time) (int, error) {
	if s.ttl <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.ttl)
	removed := 0
	err := filepath.WalkDir(s.basePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		stamp, _, _ := strings.Cut(d.Name(), "-")
		nanos, err := strconv.ParseInt(stamp, 10, 64)
		if err != nil {
			return nil
		}
		if time.Unix(0, nanos).Before(cutoff) {
			if err := os.Remove(path); err == nil {
				removed++
			}
		}
		return nil
	})
	if err != nil {
		return removed, oops.With("directory", s.basePath, "context", "failed to prune journal").Wrap(err)
	}
	return removed, nil
}
