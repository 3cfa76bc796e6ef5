// Package jsonstore persists orders and activity logs as JSON files in the
// data directory. One file holds one collection; every write rewrites the
// whole file through a temp file and an atomic rename, so readers never see a
// partially written collection even if the process dies mid-write.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStore serializes access to one JSON collection file. The mutex guards
// the whole read-modify-write cycle, which also serializes concurrent updates
// to the same record.
type fileStore struct {
	path string
	mu   sync.RWMutex
}

func newFileStore(path string) *fileStore {
	return &fileStore{path: path}
}

// load decodes the collection into v. A missing file is an empty collection
// and leaves v untouched. Callers must hold the mutex.
func (s *fileStore) load(v any) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return nil
	}

	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	return nil
}

// save writes the collection durably: encode to a temp file in the same
// directory, fsync, then rename over the target. Callers must hold the mutex.
func (s *fileStore) save(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", s.path, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	return nil
}
