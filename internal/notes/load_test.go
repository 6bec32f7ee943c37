package notes

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultNewsFile), []byte(sampleNews), 0o644))

	lines, err := Load(dir, DefaultNewsFile)
	require.NoError(t, err)
	assert.Equal(t, "fctx NEWS\n", lines[0])
	assert.Equal(t, sampleNews, Text(lines))
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(t.TempDir(), DefaultNewsFile)
	require.Error(t, err)

	var newsErr *NewsError
	require.True(t, errors.As(err, &newsErr))
	assert.Equal(t, "NEWS", newsErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_ReadError(t *testing.T) {
	orig := readFileFn
	t.Cleanup(func() { readFileFn = orig })

	var read string
	readFileFn = func(name string) ([]byte, error) {
		read = name
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrPermission}
	}

	_, err := Load("release", "CHANGES")
	require.Error(t, err)
	assert.Equal(t, filepath.Join("release", "CHANGES"), read)

	var newsErr *NewsError
	require.True(t, errors.As(err, &newsErr))
	assert.Equal(t, "CHANGES", newsErr.Path)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}
