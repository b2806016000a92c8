package filestorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()

	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return ls
}

func TestFullPath(t *testing.T) {
	ls := newTestStorage(t)

	tests := []struct {
		name    string
		relPath string
		want    string
	}{
		{"plain name", "a.pdf", filepath.Join(ls.basePath, "a.pdf")},
		{"nested path", "notes/a.pdf", filepath.Join(ls.basePath, "notes", "a.pdf")},
		{"redundant segments cleaned", "notes/./b/../a.pdf", filepath.Join(ls.basePath, "notes", "a.pdf")},
		{"empty", "", ""},
		{"dot", ".", ""},
		{"parent", "..", ""},
		{"leading parent", "../secrets.txt", ""},
		{"nested escape", "notes/../../secrets.txt", ""},
		{"deep escape", "a/b/../../../secrets.txt", ""},
		{"absolute", "/etc/passwd", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ls.FullPath(tt.relPath))
		})
	}
}

func TestOpen_RejectsEscapingPath(t *testing.T) {
	ls := newTestStorage(t)

	outside := filepath.Join(filepath.Dir(ls.basePath), "secrets.txt")
	require.NoError(t, os.WriteFile(outside, []byte("top secret"), 0o644))

	_, _, err := ls.Open("../secrets.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_ReadsStoredFile(t *testing.T) {
	ls := newTestStorage(t)

	dir := filepath.Join(ls.basePath, "notes")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-1.4"), 0o644))

	f, info, err := ls.Open("notes/a.pdf")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, int64(8), info.Size())
}

func TestDeleteFile(t *testing.T) {
	ls := newTestStorage(t)

	path := filepath.Join(ls.basePath, "a.pdf")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	require.NoError(t, ls.DeleteFile("a.pdf"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op.
	require.NoError(t, ls.DeleteFile("a.pdf"))
}
