package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/spacedeck/internal/logger"
)

const fileVersion = 1

// file is the on-disk layout of preferences.json.
type file struct {
	Version int    `json:"version"`
	Theme   string `json:"theme"`
}

// Store persists user preferences between sessions. It is safe for
// concurrent use.
type Store struct {
	path string
	log  *logger.Logger

	mu    sync.RWMutex
	theme Theme
}

// Open loads the preferences at path. A missing file yields the defaults.
// A corrupt file or an unknown theme also yields the defaults and is logged.
func Open(ctx context.Context, path string, log *logger.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("preferences path is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Store{path: path, log: log, theme: DefaultTheme}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		log.Warn(ctx, "ignoring unreadable preferences file", "path", path, "error", err)
		return s, nil
	}

	theme, err := ParseTheme(f.Theme)
	if err != nil {
		log.Warn(ctx, "ignoring unknown theme preference", "path", path, "theme", f.Theme)
		return s, nil
	}
	s.theme = theme
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Set stores theme and writes it through to disk.
func (s *Store) Set(theme Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q", theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(theme); err != nil {
		return err
	}
	s.theme = theme
	return nil
}

// Toggle flips between dark and light, writes through and returns the new theme.
func (s *Store) Toggle() (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.theme.Toggled()
	if err := s.save(next); err != nil {
		return s.theme, err
	}
	s.theme = next
	return next, nil
}

// save writes the file atomically. Callers hold mu.
func (s *Store) save(theme Theme) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(file{Version: fileVersion, Theme: string(theme)}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
