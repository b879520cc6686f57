package credstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
)

func TestToken_SaveLoadDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, []byte("pw"))
	require.NoError(t, err)
	require.True(t, Exists(dir))

	_, err = s.LoadToken()
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, s.SaveToken("eyJhbGciOi.x.y"))
	got, err := s.LoadToken()
	require.NoError(t, err)
	require.Equal(t, "eyJhbGciOi.x.y", got)

	raw, err := os.ReadFile(filepath.Join(dir, "token.bin"))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "eyJhbGciOi")

	require.NoError(t, s.DeleteToken())
	require.NoError(t, s.DeleteToken())
	_, err = s.LoadToken()
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProfile_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, []byte("pw"))
	require.NoError(t, err)
	p := model.Profile{Subject: "auth0|1", Email: "a@b.c", Name: "Ann", UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.SaveProfile(p))

	s2, err := Open(dir, []byte("pw"))
	require.NoError(t, err)
	got, err := s2.LoadProfile()
	require.NoError(t, err)
	require.Equal(t, p, *got)

	require.NoError(t, s2.DeleteProfile())
	_, err = s2.LoadProfile()
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestOpen_WrongPassphrase(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(dir, []byte("right"))
	require.NoError(t, err)

	_, err = Open(dir, []byte("wrong"))
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = Open(dir, nil)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestEntry_SwappedFileRejected(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s.SaveToken("tok"))
	require.NoError(t, os.Rename(filepath.Join(dir, "token.bin"), filepath.Join(dir, "profile.bin")))

	_, err = s.LoadProfile()
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrNotFound)
}

func TestSealOpen(t *testing.T) {
	t.Parallel()
	key := deriveKEK([]byte("pw"), []byte("salt"))
	ct, err := seal(key, []byte("hello"), []byte("aad"))
	require.NoError(t, err)

	pt, err := open(key, ct, []byte("aad"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), pt)

	_, err = open(key, ct, []byte("other"))
	require.Error(t, err)
	_, err = open(key, []byte{1, 2}, nil)
	require.ErrorIs(t, err, errShort)
}

func TestEntryKey_PerName(t *testing.T) {
	t.Parallel()
	dek, err := randBytes(dekLen)
	require.NoError(t, err)
	a, err := entryKey(dek, "token")
	require.NoError(t, err)
	b, err := entryKey(dek, "profile")
	require.NoError(t, err)
	require.Len(t, a, dekLen)
	require.NotEqual(t, a, b)
}
