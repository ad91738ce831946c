package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Storage keys, one JSON file per key. The names are kept compatible with
// the original web app's localStorage layout so exported data can be
// dropped into the data directory file-for-file.
const (
	KeyProfile    = "jinsei_os_profile"
	KeyStrategy   = "jinsei_os_strategy"
	KeyPrinciples = "jinsei_os_principles"
	KeyRoutines   = "jinsei_os_routines"
	KeyTimetable  = "jinsei_os_timetable"
	KeySession    = "jinsei_os_session"
)

// ErrCorrupt reports that a key's file existed but did not contain valid
// JSON for the requested type. The file is backed up before this is
// returned, so a subsequent write starts clean.
var ErrCorrupt = errors.New("corrupt stored data")

// DefaultDir returns the root data directory (~/.lifeos).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".lifeos"), nil
}

// Store is a string-keyed durable store backed by one JSON file per key.
type Store struct {
	dir string
	log *zap.Logger
}

// New returns a Store rooted at dir. A nil logger is replaced with a no-op.
func New(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the raw bytes stored under key, or nil with no error if the
// key has never been written.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", s.path(key), err)
	}
	return data, nil
}

// Put atomically writes data under key: write to a temp file, then rename.
func (s *Store) Put(key string, data []byte) error {
	path := s.path(key)
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("storage error creating directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// Delete removes the key's file. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage error deleting %s: %w", s.path(key), err)
	}
	return nil
}

// GetJSON decodes the value stored under key into v. A missing key leaves
// v untouched and returns false. A file that fails to decode is backed up
// to <file>.corrupt and reported as ErrCorrupt.
func (s *Store) GetJSON(key string, v any) (bool, error) {
	data, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		// Back up the corrupt file so the next write starts clean.
		path := s.path(key)
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		s.log.Warn("corrupt stored data backed up",
			zap.String("key", key),
			zap.String("backup", backupPath),
			zap.Error(err))
		return false, fmt.Errorf("%w at key %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// PutJSON stores v under key as indented JSON.
func (s *Store) PutJSON(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	return s.Put(key, data)
}
