package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	base := t.TempDir()

	got, err := Resolve(base, "data")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, filepath.Join(base, "data"), got)
}

func TestEnsureExists_DirPresent(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, EnsureExists(dir, KindDir, false))
}

func TestEnsureExists_DirMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	err := EnsureExists(missing, KindDir, false)
	assert.ErrorIs(t, err, ErrDirNotFound)
}

func TestEnsureExists_DirCreated(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureExists(target, KindDir, true))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureExists_FilePresent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, EnsureExists(file, KindFile, false))
}

func TestEnsureExists_FileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	err := EnsureExists(missing, KindFile, false)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestEnsureExists_DirWhereFileExpected(t *testing.T) {
	dir := t.TempDir()

	err := EnsureExists(dir, KindFile, false)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestEnsureExists_UnknownKind(t *testing.T) {
	err := EnsureExists(t.TempDir(), Kind("socket"), false)
	assert.Error(t, err)
}
