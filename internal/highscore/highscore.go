// Package highscore persists the single best score of a game as a bare
// integer in a small file. A missing file means no score has been stored.
package highscore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ErrMalformed is wrapped when the stored data is not a non-negative integer.
var ErrMalformed = errors.New("highscore: malformed data")

// Store reads and writes one high-score file.
type Store struct {
	path string
}

// Open returns a store for the given path. A leading ~ expands to the home
// directory. The file is not touched until Load or Save.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if path == "" {
		return nil, errors.New("highscore: empty path")
	}
	return &Store{path: path}, nil
}

// DefaultDir holds one high-score file per game.
const DefaultDir = "~/.arcade/high_score"

// PathFor returns the high-score file of a game inside dir.
func PathFor(dir, gameID string) string {
	if dir == "" {
		dir = DefaultDir
	}
	return filepath.Join(dir, gameID+".json")
}

// OpenFor opens the high-score file of a game inside dir.
func OpenFor(dir, gameID string) (*Store, error) {
	return Open(PathFor(dir, gameID))
}

// Path returns the file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored score. A missing file yields 0 and no error.
// Anything other than a single non-negative integer wraps ErrMalformed.
func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}
	return parse(s.path, data)
}

func parse(path string, data []byte) (int, error) {
	text := string(bytes.TrimSpace(data))
	if text == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrMalformed, path)
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s holds negative score %d", ErrMalformed, path, n)
	}
	return n, nil
}

// Save writes the score, creating parent directories as needed.
// The file is replaced atomically.
func (s *Store) Save(score int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// SaveIfHigher writes score only when it beats the stored value and reports
// whether it did. Malformed stored data is overwritten by any positive score.
func (s *Store) SaveIfHigher(score int) (bool, error) {
	stored, err := s.Load()
	if err != nil && !errors.Is(err, ErrMalformed) {
		return false, err
	}
	if score <= stored {
		return false, nil
	}
	if err := s.Save(score); err != nil {
		return false, err
	}
	return true, nil
}
