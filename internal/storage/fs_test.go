package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreUpload(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFSStore(dir, "http://localhost:8080/documents")
	require.NoError(t, err)

	url, err := s.Upload("Jamie_Ortega_Fall_Testing_Results.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/documents/"))
	assert.True(t, strings.HasSuffix(url, "_Jamie_Ortega_Fall_Testing_Results.pdf"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))
}

func TestFSStoreUploadFreshURLPerSave(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), "http://files.local")
	require.NoError(t, err)

	first, err := s.Upload("Results.pdf", []byte("one"))
	require.NoError(t, err)
	second, err := s.Upload("Results.pdf", []byte("two"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestFSStoreUploadEmptyName(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), "http://files.local")
	require.NoError(t, err)
	_, err = s.Upload("", []byte("x"))
	assert.Error(t, err)
}
