// Package highscore persists the single best score between runs.
package highscore

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Store loads and saves one integer high score.
type Store interface {
	// Load returns the stored score, or 0 when nothing usable is stored.
	Load() int
	Save(score int) error
}

type record struct {
	Score int `toml:"score"`
}

// FileStore keeps the score in a small TOML file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the file. A missing, unreadable or malformed file, or a
// negative score, yields 0.
func (s *FileStore) Load() int {
	var r record
	if _, err := toml.DecodeFile(s.Path, &r); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("highscore: ignoring %s: %v", s.Path, err)
		}
		return 0
	}
	if r.Score < 0 {
		return 0
	}
	return r.Score
}

// Save writes the score through a temp file and rename so a crash never
// leaves a half-written file behind.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		score = 0
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create score directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("failed to create temp score file: %w", err)
	}
	if err := toml.NewEncoder(tmp).Encode(record{Score: score}); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp score file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace score file: %w", err)
	}
	return nil
}

// MemoryStore keeps the score in memory. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

// Load returns the last saved score.
func (m *MemoryStore) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Save stores score, flooring negatives at 0.
func (m *MemoryStore) Save(score int) error {
	if score < 0 {
		score = 0
	}
	m.mu.Lock()
	m.score = score
	m.mu.Unlock()
	return nil
}

// Submit saves score only if it beats the stored one and returns the best.
func Submit(s Store, score int) (int, error) {
	best := s.Load()
	if score <= best {
		return best, nil
	}
	if err := s.Save(score); err != nil {
		return best, err
	}
	return score, nil
}
