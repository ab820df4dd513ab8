package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rotisserie/eris"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

// JSONFileStore keeps custom compounds in a single JSON document keyed by
// compound name. Zero setup, suitable for a single workstation.
type JSONFileStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONFile creates a store backed by the file at path. The file is
// created lazily on first save.
func NewJSONFile(path string) (*JSONFileStore, error) {
	if path == "" {
		return nil, eris.New("jsonfile: empty path")
	}
	return &JSONFileStore{path: path}, nil
}

// Migrate creates the parent directory if needed.
func (s *JSONFileStore) Migrate(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	if dir == "." {
		return nil
	}
	return eris.Wrapf(os.MkdirAll(dir, 0o755), "jsonfile: mkdir %s", dir)
}

func (s *JSONFileStore) Close() error { return nil }

func (s *JSONFileStore) Load(ctx context.Context) ([]model.CompoundRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName, err := s.read()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]model.CompoundRecord, 0, len(names))
	for _, name := range names {
		records = append(records, byName[name])
	}
	return records, nil
}

func (s *JSONFileStore) Save(ctx context.Context, rec model.CompoundRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName, err := s.read()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if prev, ok := byName[rec.Name]; ok && !prev.CreatedAt.IsZero() {
		rec.CreatedAt = prev.CreatedAt
	} else if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	byName[rec.Name] = rec

	return s.write(byName)
}

func (s *JSONFileStore) SaveAll(ctx context.Context, recs []model.CompoundRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName, err := s.read()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, rec := range recs {
		if prev, ok := byName[rec.Name]; ok && !prev.CreatedAt.IsZero() {
			rec.CreatedAt = prev.CreatedAt
		} else if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		rec.UpdatedAt = now
		byName[rec.Name] = rec
	}

	return s.write(byName)
}

func (s *JSONFileStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := byName[name]; !ok {
		return eris.Wrapf(model.ErrCompoundNotFound, "%q", name)
	}
	delete(byName, name)

	return s.write(byName)
}

// read loads the document. A missing file is an empty store.
func (s *JSONFileStore) read() (map[string]model.CompoundRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]model.CompoundRecord{}, nil
		}
		return nil, eris.Wrapf(err, "jsonfile: read %s", s.path)
	}

	byName := map[string]model.CompoundRecord{}
	if len(data) == 0 {
		return byName, nil
	}
	if err := json.Unmarshal(data, &byName); err != nil {
		return nil, eris.Wrapf(err, "jsonfile: unmarshal %s", s.path)
	}
	return byName, nil
}

// write replaces the document atomically via a temp file and rename.
func (s *JSONFileStore) write(byName map[string]model.CompoundRecord) error {
	data, err := json.MarshalIndent(byName, "", "  ")
	if err != nil {
		return eris.Wrap(err, "jsonfile: marshal")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return eris.Wrapf(err, "jsonfile: write %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return eris.Wrapf(err, "jsonfile: rename %s", s.path)
	}
	return nil
}
