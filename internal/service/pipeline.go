package service

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/aarushdubey/Guardian-PDF/internal/domain"
)

// PipelineImpl runs the extract → chunk → deduplicate pipeline over a set
// of input files.
type PipelineImpl struct {
	extractor    domain.PageExtractor
	chunker      domain.Chunker
	deduplicator domain.Deduplicator
	dedupEnabled bool
}

// NewPipeline assembles a pipeline from its components. Deduplication can
// be switched off; chunks then pass through unchanged.
func NewPipeline(extractor domain.PageExtractor, chunker domain.Chunker, deduplicator domain.Deduplicator, dedupEnabled bool) *PipelineImpl {
	return &PipelineImpl{
		extractor:    extractor,
		chunker:      chunker,
		deduplicator: deduplicator,
		dedupEnabled: dedupEnabled,
	}
}

// Process loads the given files (globs allowed), chunks every page
// independently and deduplicates the combined chunk sequence. The first
// failing document aborts the run.
func (s *PipelineImpl) Process(paths []string) (*domain.Report, error) {
	documents, err := s.loadDocuments(paths)
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no .pdf or .txt documents found")
	}

	report := &domain.Report{Files: len(documents)}
	var chunks []string
	for _, doc := range documents {
		docChunks := s.chunker.ChunkAll(doc.Pages)
		report.Pages += len(doc.Pages)
		chunks = append(chunks, docChunks...)
		log.Info("chunked document", "path", doc.Path, "pages", len(doc.Pages), "chunks", len(docChunks))
	}

	if s.dedupEnabled {
		report.Chunks, report.Stats = s.deduplicator.Deduplicate(chunks)
		log.Info("deduplicated chunks",
			"original", report.Stats.OriginalCount,
			"unique", report.Stats.UniqueCount,
			"removed", report.Stats.DuplicatesRemoved)
	} else {
		report.Chunks = chunks
		report.Stats = domain.DeduplicationStats{
			OriginalCount: len(chunks),
			UniqueCount:   len(chunks),
		}
	}
	return report, nil
}

// loadDocuments resolves paths and globs into documents. PDF files go
// through the page extractor; plain .txt files count as one page.
func (s *PipelineImpl) loadDocuments(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			switch strings.ToLower(filepath.Ext(m)) {
			case ".pdf":
				pages, err := s.extractor.Pages(m)
				if err != nil {
					return nil, err
				}
				documents = append(documents, domain.Document{ID: hashString(m), Path: m, Pages: pages})
			case ".txt":
				data, err := os.ReadFile(m)
				if err != nil {
					return nil, err
				}
				documents = append(documents, domain.Document{ID: hashString(m), Path: m, Pages: []string{string(data)}})
			default:
				continue
			}
		}
	}
	return documents, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
