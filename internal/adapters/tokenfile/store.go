package tokenfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store keeps tokens in a small JSON object on disk, one entry per key.
type Store struct {
	path string
	key  string
}

func New(path, key string) *Store {
	return &Store{path: path, key: key}
}

func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	entries := map[string]string{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *Store) write(entries map[string]string) error {
	if len(entries) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) Load(ctx context.Context) (string, error) {
	entries, err := s.read()
	if err != nil {
		return "", err
	}
	return entries[s.key], nil
}

func (s *Store) Save(ctx context.Context, token string) error {
	entries, err := s.read()
	if err != nil {
		entries = map[string]string{}
	}
	entries[s.key] = token
	return s.write(entries)
}

func (s *Store) Clear(ctx context.Context) error {
	entries, err := s.read()
	if err != nil {
		// unreadable file: nothing trustworthy is left in it
		return os.Remove(s.path)
	}
	delete(entries, s.key)
	return s.write(entries)
}
