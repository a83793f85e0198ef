package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/samber/oops"
)

// WriteJSON replaces path with value as indented JSON. Readers see either the
// old or the new content, never a partial write.
func WriteJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return oops.With("path", path, "context", "failed to marshal").Wrap(err)
	}

	// The temp file lives next to the target so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return oops.With("path", path, "context", "failed to create temp file").Wrap(err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return oops.With("path", path, "context", "failed to write temp file").Wrap(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return oops.With("path", path, "context", "failed to sync temp file").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return oops.With("path", path, "context", "failed to close temp file").Wrap(err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return oops.With("path", path, "context", "failed to chmod temp file").Wrap(err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return oops.With("path", path, "context", "atomic replace").Wrap(err)
	}
	return nil
}

// ReadJSON decodes path into dst. A missing file leaves dst untouched and reports false.
func ReadJSON(path string, dst any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, oops.With("path", path, "context", "failed to read").Wrap(err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, oops.With("path", path, "context", "failed to unmarshal").Wrap(err)
	}
	return true, nil
}
