// path: store/file.go
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pestreport/models"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps every submission in a single pretty-printed JSON array.
// External processes racing on the file are an accepted hazard; the mutex
// only serialises callers inside this process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Append(rec models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.readUnlocked()
	if err != nil {
		return err
	}
	return s.writeUnlocked(append(recs, rec))
}

// ReadAll returns all records in append order. A missing file is an empty
// store, not an error.
func (s *FileStore) ReadAll() ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readUnlocked()
}

func (s *FileStore) ReplaceAll(recs []models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeUnlocked(recs)
}

func (s *FileStore) readUnlocked() ([]models.Submission, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Submission{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var recs []models.Submission
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCorrupt, s.path, err)
	}
	return recs, nil
}

func (s *FileStore) writeUnlocked(recs []models.Submission) error {
	if recs == nil {
		recs = []models.Submission{}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
