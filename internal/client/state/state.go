// Package state persists what the terminal client remembers between runs:
// the session cookie and the pomodoro preference.
package state

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/pomokeeper/internal/filex"
)

type State struct {
	Session  string `toml:"session"`
	Pomodoro bool   `toml:"pomodoro"`
}

// Store reads and writes State as a TOML file readable only by its owner.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the saved state. A missing file yields a zero State.
func (s *Store) Load() (*State, error) {
	st := &State{}
	if _, err := toml.DecodeFile(s.path, st); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return nil, fmt.Errorf("read state %s: %w", s.path, err)
	}
	return st, nil
}

func (s *Store) Save(st *State) error {
	if err := filex.EnsureParentDir(s.path, 0o700); err != nil {
		return err
	}

	err := filex.WriteWith(s.path, 0o600, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(st)
	})
	if err != nil {
		return fmt.Errorf("write state %s: %w", s.path, err)
	}
	return nil
}
