package bundle

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		r, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		r.Close()
		require.NoError(t, err)
		entries[f.Name] = string(data)
	}
	return entries
}

func TestWriteArchivesItemsInOrder(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(source, []byte(`{"ok":true}`), 0644))

	out := filepath.Join(dir, "bundles", "support.zip")
	err := Write(Plan{
		OutputPath: out,
		Items: []Item{
			ByteItem{Name: "manifest.json", Data: []byte(`{"kind":"support_bundle"}`)},
			FileItem{Source: source, Name: "state/state.json"},
			ByteItem{Name: "logs/job-1/stdout.log", Data: []byte("hello\n")},
		},
	})
	require.NoError(t, err)

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()

	require.Len(t, zr.File, 3)
	assert.Equal(t, "manifest.json", zr.File[0].Name, "manifest leads the archive")
	assert.Equal(t, "state/state.json", zr.File[1].Name)
	assert.Equal(t, "logs/job-1/stdout.log", zr.File[2].Name)

	entries := readArchive(t, out)
	assert.Equal(t, `{"ok":true}`, entries["state/state.json"])
	assert.Equal(t, "hello\n", entries["logs/job-1/stdout.log"])
}

func TestWriteSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "support.zip")

	err := Write(Plan{
		OutputPath: out,
		Items: []Item{
			FileItem{Source: filepath.Join(dir, "absent.json"), Name: "state/absent.json"},
			ByteItem{Name: "manifest.json", Data: []byte("{}")},
		},
	})
	require.NoError(t, err)

	entries := readArchive(t, out)
	require.Len(t, entries, 1)
	assert.Contains(t, entries, "manifest.json")
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	out := filepath.Join(t.TempDir(), "a", "b", "c.zip")
	require.NoError(t, Write(Plan{OutputPath: out, Items: []Item{ByteItem{Name: "x", Data: nil}}}))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestSanitizeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"job-123", "job-123"},
		{"stdout", "stdout"},
		{"a/b\\c", "a_b_c"},
		{"weird name!", "weird_name_"},
		{"", "_"},
		{"héllo", "h_llo"},
		{"..", "__"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeComponent(tt.in), "input %q", tt.in)
	}
}
