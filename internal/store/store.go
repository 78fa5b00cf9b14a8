// Package store persists exported Hamiltonian metadata documents under a
// data directory, one JSON file per export with a timestamped ID.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hamforge/hamforge/internal/metadata"
)

// ErrNotFound indicates an export ID with no document on disk.
var ErrNotFound = errors.New("store: export not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Save writes the document and returns its export ID.
func (s *Store) Save(doc metadata.Document) (string, error) {
	data, err := doc.EncodeJSON()
	if err != nil {
		return "", err
	}
	id := fmt.Sprintf("%s_%d", doc.Model, time.Now().Unix())
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(s.path(id), data, 0644); err != nil {
		return "", err
	}
	return id, nil
}

// Load reads a previously saved document by ID.
func (s *Store) Load(id string) (metadata.Document, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return metadata.Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return metadata.Document{}, err
	}
	return metadata.DecodeJSON(data)
}

// List returns all export IDs in lexicographic order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}
