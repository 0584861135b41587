package state

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope", "state.toml"))

	st, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, &State{}, st)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.toml")
	s := NewStore(path)

	require.NoError(t, s.Save(&State{Session: "tok", Pomodoro: true}))

	st, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, &State{Session: "tok", Pomodoro: true}, st)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `session = "tok"`)
	assert.Contains(t, string(raw), "pomodoro = true")
}

func TestSave_OverwritesAndRestrictsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	s := NewStore(path)

	require.NoError(t, s.Save(&State{Session: "a-much-longer-token-value"}))
	require.NoError(t, s.Save(&State{Session: "b"}))

	st, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "b", st.Session)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("session = ["), 0o600))

	_, err := NewStore(path).Load()
	require.Error(t, err)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/x/state.toml", NewStore("/x/state.toml").Path())
}
