package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "credentials.yaml"))
}

func TestLoadAbsent(t *testing.T) {
	s := newStore(t)
	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)
	in := &Credentials{
		Email:     "bb@gmail.com",
		Username:  "bb",
		Password:  "hunter123",
		FirstName: "Bastien",
		LastName:  "Boutonnet",
	}
	require.NoError(t, s.Save(in, false))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveRefusesOverwrite(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(&Credentials{Email: "a@b.c", Username: "a", Password: "one"}, false))

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	err = s.Save(&Credentials{Email: "x@y.z", Username: "x", Password: "two"}, false)
	require.ErrorIs(t, err, ErrAlreadyPopulated)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after, "refused save must not touch the file")
}

func TestSaveOverwrite(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(&Credentials{Email: "a@b.c", Username: "a", Password: "one"}, false))
	require.NoError(t, s.Save(&Credentials{Email: "x@y.z", Username: "x", Password: "two"}, true))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "x@y.z", out.Email)
	assert.Equal(t, "two", out.Password)
}

func TestLoadGarbageIsAbsent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o700))
	require.NoError(t, os.WriteFile(s.Path(), []byte(":\n\t- not yaml"), 0o600))

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotFound)
}
