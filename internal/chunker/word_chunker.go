package chunker

import (
	"fmt"
	"strings"
)

// Default window geometry, in words.
const (
	DefaultChunkSize   = 500
	DefaultOverlapSize = 50
)

// ConfigError reports a rejected chunker configuration.
type ConfigError struct {
	ChunkSize   int
	OverlapSize int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("chunker: invalid window geometry chunk=%d overlap=%d (need chunk size > overlap size >= 0)",
		e.ChunkSize, e.OverlapSize)
}

// Tokenize splits text into whitespace-delimited word tokens.
// Empty or whitespace-only input yields no tokens.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// WordChunker splits text into fixed-size word windows with overlap.
// It holds only immutable configuration and is safe for concurrent use.
type WordChunker struct {
	chunkSize   int
	overlapSize int
}

// NewWordChunker validates the window geometry once, up front. The invariant
// chunkSize > overlapSize >= 0 must hold or no chunker is produced.
func NewWordChunker(chunkSize, overlapSize int) (*WordChunker, error) {
	if chunkSize < 1 || overlapSize < 0 || overlapSize >= chunkSize {
		return nil, &ConfigError{ChunkSize: chunkSize, OverlapSize: overlapSize}
	}
	return &WordChunker{chunkSize: chunkSize, overlapSize: overlapSize}, nil
}

// Chunk splits text into windows of at most chunkSize words, advancing by
// chunkSize-overlapSize words between windows so consecutive chunks share
// overlapSize words at their boundary. Tokens keep their original form;
// each chunk is the single-space join of its window.
//
// A trailing run no longer than the overlap width is treated as already
// covered by the previous window and does not get a chunk of its own.
func (c *WordChunker) Chunk(text string) []string {
	words := Tokenize(text)
	if len(words) == 0 {
		return nil
	}

	stride := c.chunkSize - c.overlapSize
	var chunks []string

	for pos := 0; pos < len(words); pos += stride {
		end := pos + c.chunkSize
		if end > len(words) {
			end = len(words)
		}
		if chunk := strings.Join(words[pos:end], " "); chunk != "" {
			chunks = append(chunks, chunk)
		}
		// Short tail: the next window would start inside the previous
		// one's overlap region, so stop without emitting it.
		next := pos + stride
		if next < len(words) && next+c.overlapSize >= len(words) {
			break
		}
	}

	return chunks
}

// ChunkAll applies Chunk to each text independently, in order, and
// concatenates the results. Windows never span two texts.
func (c *WordChunker) ChunkAll(texts []string) []string {
	var all []string
	for _, text := range texts {
		all = append(all, c.Chunk(text)...)
	}
	return all
}
