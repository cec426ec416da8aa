// Package filestore persists profiles as TOML files on local disk.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/repository"
	"github.com/osse101/HamsterHaven_Go/internal/save"
)

// Store keeps one TOML file per profile in a directory
type Store struct {
	dir string
	mu  sync.Mutex
}

var _ repository.Profile = (*Store)(nil)

// New creates a store rooted at dir
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgInvalidProfileID, id)
	}
	return filepath.Join(s.dir, id+FileExt), nil
}

// Load reads a profile from disk
func (s *Store) Load(ctx context.Context, id string) (*save.Profile, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRead, err)
	}

	var p save.Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecode, err)
	}
	if p.ID == "" {
		p.ID = id
	}
	p.Normalize()
	return &p, nil
}

// Save writes a profile atomically: temp file then rename
func (s *Store) Save(ctx context.Context, p *save.Profile) error {
	path, err := s.path(p.ID)
	if err != nil {
		return err
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncode, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, DirPerm); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateDir, err)
	}

	tmp := path + TempFileExt
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWrite, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", ErrMsgFailedToWrite, err)
	}
	return nil
}

// List returns the IDs of every stored profile
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToList, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), FileExt))
	}
	sort.Strings(ids)
	return ids, nil
}

// Ping reports whether the save directory can be created and written to
func (s *Store) Ping(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, DirPerm); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateDir, err)
	}
	f, err := os.CreateTemp(s.dir, ".ping-*")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWrite, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
