package domain

// Document represents a single source file loaded into the pipeline.
type Document struct {
	ID    string
	Path  string
	Pages []string
}

// DeduplicationStats describes one deduplication run over a chunk sequence.
type DeduplicationStats struct {
	OriginalCount      int
	UniqueCount        int
	DuplicatesRemoved  int
	DeduplicationRatio float64
}

// Report is the result of processing a set of input files.
type Report struct {
	Files  int
	Pages  int
	Chunks []string
	Stats  DeduplicationStats
}

// PageExtractor yields the ordered per-page texts of a source document.
type PageExtractor interface {
	Pages(path string) ([]string, error)
}

// Chunker splits page text into fixed-size overlapping word windows.
type Chunker interface {
	Chunk(text string) []string
	ChunkAll(texts []string) []string
}

// Deduplicator removes near-duplicate chunks and reports statistics.
type Deduplicator interface {
	Deduplicate(chunks []string) ([]string, DeduplicationStats)
}

// Pipeline defines the operations exposed by the application core.
type Pipeline interface {
	Process(paths []string) (*Report, error)
}
