package repository

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	"github.com/reshetovitsme/channel-mirror/internal/shared/errors"
	"github.com/reshetovitsme/channel-mirror/internal/shared/storage"
	"github.com/samber/oops"
)

// FileStorage implements Repository with one JSON file per document
type FileStorage struct {
	basePath string
	locks    *xsync.Map[domain.Document, *sync.Mutex]
}

// NewFileStorage creates a new file-based settings repository
func NewFileStorage(basePath string) (*FileStorage, error) {
	settingsPath := filepath.Join(basePath, "settings")
	if err := os.MkdirAll(settingsPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create settings directory").Wrap(err)
	}

	return &FileStorage{
		basePath: settingsPath,
		locks:    xsync.NewMap[domain.Document, *sync.Mutex](),
	}, nil
}

func (s *FileStorage) path(doc domain.Document) string {
	return filepath.Join(s.basePath, string(doc)+".json")
}

func (s *FileStorage) Load(doc domain.Document, dst any) error {
	if !doc.IsValid() {
		return oops.With("document", doc).Wrap(errors.ErrUnknownDocument)
	}

	if _, err := storage.ReadJSON(s.path(doc), dst); err != nil {
		return oops.With("document", doc).Wrap(err)
	}
	return nil
}

func (s *FileStorage) Save(doc domain.Document, value any) error {
	if !doc.IsValid() {
		return oops.With("document", doc).Wrap(errors.ErrUnknownDocument)
	}

	if err := storage.WriteJSON(s.path(doc), value); err != nil {
		return oops.With("document", doc).Wrap(err)
	}
	return nil
}

func (s *FileStorage) Lock(doc domain.Document) func() {
	mu, _ := s.locks.LoadOrCompute(doc, func() (*sync.Mutex, bool) {
		return &sync.Mutex{}, false
	})
	mu.Lock()
	return mu.Unlock
}

func (s *FileStorage) Bootstrap() error {
	for _, name := range domain.DocumentNames() {
		doc := domain.Document(name)
		if _, err := os.Stat(s.path(doc)); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return oops.With("document", doc, "context", "failed to stat document").Wrap(err)
		}

		if err := s.Save(doc, domain.Default(doc)); err != nil {
			return err
		}
	}
	return nil
}
