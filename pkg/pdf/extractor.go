// Package pdf extracts plain text from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

// ErrInvalidPDF indicates the payload could not be read as a PDF document.
var ErrInvalidPDF = errors.New("invalid pdf document")

// Extractor turns PDF bytes into text.
type Extractor interface {
	Extract(ctx context.Context, payload []byte) (string, error)
}

// TextExtractor is the Extractor backed by github.com/ledongthuc/pdf.
type TextExtractor struct {
	maxChars int
}

// NewTextExtractor builds an extractor. maxChars bounds the returned text; zero
// means unbounded.
func NewTextExtractor(maxChars int) *TextExtractor {
	if maxChars < 0 {
		maxChars = 0
	}
	return &TextExtractor{maxChars: maxChars}
}

// Extract reads every page's plain text. The parser panics on some corrupt
// inputs, so panics are converted into ErrInvalidPDF.
func (e *TextExtractor) Extract(ctx context.Context, payload []byte) (text string, err error) {
	if len(payload) == 0 {
		return "", ErrInvalidPDF
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrInvalidPDF, r)
		}
	}()

	reader, err := lpdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	var source io.Reader = plain
	if e.maxChars > 0 {
		// bytes, not runes; the trailing partial rune is trimmed below
		source = io.LimitReader(plain, int64(e.maxChars)*4)
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(source); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	out := strings.TrimSpace(buf.String())
	if e.maxChars > 0 {
		runes := []rune(out)
		if len(runes) > e.maxChars {
			out = strings.TrimSpace(string(runes[:e.maxChars]))
		}
	}

	return out, nil
}
