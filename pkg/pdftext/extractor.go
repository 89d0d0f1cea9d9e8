package pdftext

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page is the plain text of a single PDF page. Number is 1-based.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Extractor defines PDF text extraction.
type Extractor interface {
	// ExtractFromFile returns the text of every page of the file, concatenated in document order.
	ExtractFromFile(ctx context.Context, path string) (string, error)

	// ExtractFromReader does the same for an in-memory document.
	ExtractFromReader(ctx context.Context, r io.ReaderAt, size int64) (string, error)

	// ExtractPages returns the text of each non-empty page object.
	ExtractPages(ctx context.Context, path string) ([]Page, error)
}

// LedongthucExtractor implements Extractor using github.com/ledongthuc/pdf
type LedongthucExtractor struct{}

var _ Extractor = (*LedongthucExtractor)(nil)

func NewLedongthucExtractor() *LedongthucExtractor {
	return &LedongthucExtractor{}
}

func (e *LedongthucExtractor) ExtractFromFile(ctx context.Context, path string) (string, error) {
	pages, err := e.ExtractPages(ctx, path)
	if err != nil {
		return "", err
	}
	return JoinPages(pages), nil
}

func (e *LedongthucExtractor) ExtractFromReader(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	pages, err := e.readPages(ctx, reader)
	if err != nil {
		return "", err
	}
	return JoinPages(pages), nil
}

func (e *LedongthucExtractor) ExtractPages(ctx context.Context, path string) ([]Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file %s: %w", path, err)
	}
	defer f.Close()

	return e.readPages(ctx, reader)
}

// readPages walks the page tree. The library panics on some malformed
// content streams, so a panic is reported as an extraction error.
func (e *LedongthucExtractor) readPages(ctx context.Context, r *pdf.Reader) (pages []Page, err error) {
	current := 0
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("failed to extract text from page %d: %v", current, rec)
		}
	}()

	total := r.NumPage()
	pages = make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current = i
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		pages = append(pages, Page{Number: i, Text: pageText(p.Content().Text)})
	}

	return pages, nil
}

// pageText rebuilds text lines from glyphs in content stream order. A change
// of baseline starts a new line and a horizontal gap inside a line becomes a
// space. Every line, including the last, ends with "\n".
func pageText(glyphs []pdf.Text) string {
	var b strings.Builder
	var prev *pdf.Text
	for i := range glyphs {
		g := &glyphs[i]
		if g.S == "" || g.S == "\n" {
			continue
		}

		if prev != nil {
			switch {
			case newBaseline(prev, g):
				b.WriteByte('\n')
			case wordGap(prev, g):
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		prev = g
	}

	if prev != nil {
		b.WriteByte('\n')
	}
	return b.String()
}

func newBaseline(prev, g *pdf.Text) bool {
	tolerance := math.Max(prev.FontSize/2, 1)
	return math.Abs(g.Y-prev.Y) > tolerance
}

func wordGap(prev, g *pdf.Text) bool {
	if isBlank(prev.S) || isBlank(g.S) {
		return false
	}
	return g.X-(prev.X+prev.W) > prev.FontSize/4
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// JoinPages concatenates page texts verbatim, without separators.
func JoinPages(pages []Page) string {
	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p.Text)
	}
	return b.String()
}
