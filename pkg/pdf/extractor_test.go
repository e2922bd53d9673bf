package pdf

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractRejectsEmptyPayload(t *testing.T) {
	_, err := NewTextExtractor(0).Extract(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidPDF)
}

func TestExtractRejectsNonPDF(t *testing.T) {
	_, err := NewTextExtractor(0).Extract(context.Background(), []byte("this is just a text file"))
	require.ErrorIs(t, err, ErrInvalidPDF)
}

func TestExtractRejectsTruncatedPDF(t *testing.T) {
	_, err := NewTextExtractor(0).Extract(context.Background(), []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n"))
	require.ErrorIs(t, err, ErrInvalidPDF)
}

func TestNewTextExtractorClampsNegativeLimit(t *testing.T) {
	require.Equal(t, 0, NewTextExtractor(-5).maxChars)
}

// onePagePDF renders text on a single Helvetica page with a valid xref table.
func onePagePDF(t *testing.T, text string) []byte {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestExtractReadsPageText(t *testing.T) {
	text, err := NewTextExtractor(0).Extract(context.Background(), onePagePDF(t, "Sum the list of grades"))
	require.NoError(t, err)
	require.Equal(t, "Sum the list of grades", text)
}

func TestExtractTruncatesToMaxChars(t *testing.T) {
	text, err := NewTextExtractor(5).Extract(context.Background(), onePagePDF(t, "Sum the list of grades"))
	require.NoError(t, err)
	require.Equal(t, "Sum t", text)
}

func TestExtractHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTextExtractor(0).Extract(ctx, onePagePDF(t, "Sum the list of grades"))
	require.ErrorIs(t, err, context.Canceled)
}
