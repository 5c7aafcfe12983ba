package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages_MissingFile(t *testing.T) {
	ex := NewExtractor()

	pages, err := ex.Pages(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Nil(t, pages)
	assert.NotErrorIs(t, err, ErrProtected)
}

func TestPages_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is plain text, not a pdf"), 0o644))

	ex := NewExtractor()
	pages, err := ex.Pages(path)
	require.Error(t, err)
	assert.Nil(t, pages)
	assert.NotErrorIs(t, err, ErrProtected)
}

func TestPages_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ex := NewExtractor()
	_, err := ex.Pages(path)
	assert.Error(t, err)
}
