// Package snapshot persists the full item set as a single JSON file.
// Writes go to a temp file in the same directory and are renamed over the
// artifact, so a crash mid-write never leaves a truncated snapshot behind.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"itemkeeper/internal/domain/item"

	"golang.org/x/exp/slog"
)

// ErrMalformed means the snapshot exists but cannot be decoded. Startup must
// treat this as fatal rather than default to an empty store.
var ErrMalformed = errors.New("snapshot is malformed")

type File struct {
	path string
	log  *slog.Logger
}

func New(path string, log *slog.Logger) *File {
	return &File{
		path: path,
		log:  log.With("component", "snapshot"),
	}
}

// Load reads the snapshot. An absent file is a first run and yields an empty
// set; an unreadable or undecodable file is an error.
func (f *File) Load(_ context.Context) ([]item.Item, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.log.Info("no snapshot found, starting empty", "path", f.path)
		return []item.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var items []item.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	f.log.Info("snapshot loaded", "path", f.path, "items", len(items))
	return items, nil
}

// Save replaces the artifact with the full current set.
func (f *File) Save(_ context.Context, items []item.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot: %w", err)
	}

	f.log.Debug("snapshot saved", "path", f.path, "items", len(items))
	return nil
}
