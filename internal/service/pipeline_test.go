package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarushdubey/Guardian-PDF/internal/chunker"
	"github.com/aarushdubey/Guardian-PDF/internal/dedup"
)

// fakeExtractor serves canned pages keyed by path.
type fakeExtractor struct {
	pages map[string][]string
	err   error
}

func (f *fakeExtractor) Pages(path string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[path], nil
}

func newTestPipeline(t *testing.T, ex *fakeExtractor, dedupEnabled bool) *PipelineImpl {
	t.Helper()
	ch, err := chunker.NewWordChunker(5, 1)
	require.NoError(t, err)
	return NewPipeline(ex, ch, dedup.New(0.9, dedup.DefaultNGramSize), dedupEnabled)
}

func writeTxt(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcess_TxtDocuments(t *testing.T) {
	dir := t.TempDir()
	one := writeTxt(t, dir, "one.txt", "alpha beta gamma")
	two := writeTxt(t, dir, "two.txt", "alpha beta gamma")

	p := newTestPipeline(t, &fakeExtractor{}, true)
	report, err := p.Process([]string{one, two})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Files)
	assert.Equal(t, 2, report.Pages)
	// Identical file contents produce identical chunks; one survives.
	assert.Equal(t, []string{"alpha beta gamma"}, report.Chunks)
	assert.Equal(t, 2, report.Stats.OriginalCount)
	assert.Equal(t, 1, report.Stats.DuplicatesRemoved)
}

func TestProcess_PDFGoesThroughExtractor(t *testing.T) {
	ex := &fakeExtractor{pages: map[string][]string{
		"doc.pdf": {"page one words here", "page two words here"},
	}}

	p := newTestPipeline(t, ex, true)
	report, err := p.Process([]string{"doc.pdf"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Files)
	assert.Equal(t, 2, report.Pages)
	assert.Equal(t, []string{"page one words here", "page two words here"}, report.Chunks)
}

func TestProcess_GlobExpansion(t *testing.T) {
	dir := t.TempDir()
	writeTxt(t, dir, "a.txt", "first document text")
	writeTxt(t, dir, "b.txt", "second document text")
	writeTxt(t, dir, "skip.md", "not a supported extension")

	p := newTestPipeline(t, &fakeExtractor{}, true)
	report, err := p.Process([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Files)
}

func TestProcess_NoSupportedDocuments(t *testing.T) {
	p := newTestPipeline(t, &fakeExtractor{}, true)

	_, err := p.Process([]string{"nothing.md"})
	assert.Error(t, err)
}

func TestProcess_ExtractorFailureAborts(t *testing.T) {
	wantErr := errors.New("document is password protected")
	p := newTestPipeline(t, &fakeExtractor{err: wantErr}, true)

	_, err := p.Process([]string{"locked.pdf"})
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestProcess_DedupDisabledPassesChunksThrough(t *testing.T) {
	dir := t.TempDir()
	one := writeTxt(t, dir, "one.txt", "same chunk text")
	two := writeTxt(t, dir, "two.txt", "same chunk text")

	p := newTestPipeline(t, &fakeExtractor{}, false)
	report, err := p.Process([]string{one, two})
	require.NoError(t, err)

	assert.Equal(t, []string{"same chunk text", "same chunk text"}, report.Chunks)
	assert.Equal(t, 2, report.Stats.OriginalCount)
	assert.Equal(t, 2, report.Stats.UniqueCount)
	assert.Equal(t, 0, report.Stats.DuplicatesRemoved)
}

func TestProcess_EmptyPagesYieldNoChunks(t *testing.T) {
	ex := &fakeExtractor{pages: map[string][]string{
		"blank.pdf": {"", "   ", ""},
	}}

	p := newTestPipeline(t, ex, true)
	report, err := p.Process([]string{"blank.pdf"})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Pages)
	assert.Empty(t, report.Chunks)
	assert.Equal(t, 0, report.Stats.OriginalCount)
}
