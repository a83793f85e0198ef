package repository

import (
	"github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	"github.com/reshetovitsme/channel-mirror/internal/shared/errors"
	"github.com/samber/oops"
)

// Repository persists whole settings documents.
// Writes replace a document atomically; a reader never sees a partial document.
type Repository interface {
	// Load reads doc into dst. An absent document leaves dst untouched.
	Load(doc domain.Document, dst any) error
	// Save replaces doc with value.
	Save(doc domain.Document, value any) error
	// Lock serializes read-modify-write cycles on doc within this process.
	Lock(doc domain.Document) (unlock func())
	// Bootstrap writes the default of every absent document.
	Bootstrap() error
}

// Get reads doc on top of its default value.
func Get[T any](repo Repository, doc domain.Document) (*T, error) {
	value, ok := domain.Default(doc).(*T)
	if !ok {
		return nil, oops.With("document", doc).Wrap(errors.ErrUnknownDocument)
	}
	if err := repo.Load(doc, value); err != nil {
		return nil, err
	}
	return value, nil
}

// Update performs a locked read-modify-write of doc. Nothing is written when fn fails.
func Update[T any](repo Repository, doc domain.Document, fn func(*T) error) error {
	unlock := repo.Lock(doc)
	defer unlock()

	value, err := Get[T](repo, doc)
	if err != nil {
		return err
	}
	if err := fn(value); err != nil {
		return err
	}
	return repo.Save(doc, value)
}

// Reset reinitializes doc to its default value.
func Reset(repo Repository, doc domain.Document) error {
	unlock := repo.Lock(doc)
	defer unlock()

	value := domain.Default(doc)
	if value == nil {
		return oops.With("document", doc).Wrap(errors.ErrUnknownDocument)
	}
	return repo.Save(doc, value)
}
