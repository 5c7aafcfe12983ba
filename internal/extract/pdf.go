package extract

import (
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ErrProtected marks documents that cannot be read because they are
// password protected, as opposed to ordinary I/O or parse failures.
var ErrProtected = errors.New("document is password protected")

// Extractor reads the per-page text of a PDF document. The underlying file
// handle is owned for the duration of a single Pages call and released on
// every exit path.
type Extractor struct{}

// NewExtractor creates a PDF page extractor.
func NewExtractor() *Extractor { return &Extractor{} }

// Pages returns one text blob per page, in page order. A page whose content
// cannot be decoded yields an empty string rather than failing the whole
// document. Access-protected files fail with ErrProtected; anything else
// that prevents opening the document is wrapped and returned as-is.
func (e *Extractor) Pages(path string) (pages []string, err error) {
	// The parser panics on some malformed files; turn that into an error.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("parse pdf %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, fmt.Errorf("%w: %s", ErrProtected, path)
		}
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, textErr := page.GetPlainText(nil)
		if textErr != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
