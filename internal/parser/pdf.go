package parser

import (
	"fmt"
	"strings"

	"github.com/basuhimanish/challenge1a/internal/document"
	pdflib "github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// DocumentError marks a file that could not be opened or read as a PDF
// (corrupt, encrypted, not a PDF at all). The batch runner skips such files
// instead of aborting.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// Extractor reads positioned text spans from PDF files.
type Extractor struct{}

// ExtractPages opens the PDF at path and hands each page's spans to fn in
// page order. fn returning false stops the walk early, which is how the
// per-document time budget is enforced. The returned count is the page
// count of the document, even when the walk stopped early.
func (e *Extractor) ExtractPages(path string, fn func(page int, spans []document.Span) bool) (int, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return 0, &DocumentError{Path: path, Err: err}
	}
	defer f.Close()

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if !fn(i, pageSpans(page, i)) {
			break
		}
	}
	return numPages, nil
}

// pageSpans converts one page's raw text runs into spans. The underlying
// library panics on some malformed content streams; such a page yields no
// spans rather than killing the document.
func pageSpans(page pdflib.Page, pageNum int) (spans []document.Span) {
	defer func() {
		if recover() != nil {
			spans = nil
		}
	}()

	for _, t := range page.Content().Text {
		text := normalizeText(t.S)
		if strings.TrimSpace(text) == "" {
			continue
		}
		spans = append(spans, document.Span{
			Text:     text,
			FontSize: t.FontSize,
			Bold:     isBoldFont(t.Font),
			X:        t.X,
			Y:        t.Y,
			W:        t.W,
			Page:     pageNum,
		})
	}
	return spans
}

// normalizeText applies NFKC so ligatures and width variants compare equal
// across fonts. Interior whitespace is preserved; the line assembler
// collapses it after joining.
func normalizeText(s string) string {
	return norm.NFKC.String(s)
}

// isBoldFont reports whether a font name indicates a bold face.
// "Black" weights count as bold.
func isBoldFont(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "bold") || strings.Contains(n, "black")
}
