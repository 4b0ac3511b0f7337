package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".pdf"))
	assert.True(t, AllowedExt(".JPG"))
	assert.True(t, AllowedExt("png"))
	assert.False(t, AllowedExt(".txt"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/a/.DS_Store"))
	assert.True(t, IsHidden(".env"))
	assert.False(t, IsHidden("/a/invoice.pdf"))
}

func TestListInvoiceFiles(t *testing.T) {
	dir := t.TempDir()
	touch := func(rel string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	touch("b.pdf")
	touch("a.jpg")
	touch("notes.txt")
	touch(".hidden.pdf")
	touch("nested/c.png")
	touch(".cache/d.pdf")

	files, err := ListInvoiceFiles(dir, true)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "nested", "c.png"),
	}
	assert.Equal(t, want, files)
}

func TestListInvoiceFilesIncludesHiddenWhenAsked(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.pdf"), []byte("x"), 0o644))

	files, err := ListInvoiceFiles(dir, false)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
