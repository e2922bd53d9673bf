package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/autota-go-api/internal/dto"
	"github.com/noah-isme/autota-go-api/internal/observability"
	"github.com/noah-isme/autota-go-api/pkg/pdf"
)

var (
	// ErrPDFRequired indicates the upload is missing or is not a PDF.
	ErrPDFRequired = errors.New("PDF file required")
	// ErrPDFTooLarge indicates the upload exceeded the configured limit.
	ErrPDFTooLarge = errors.New("file exceeds maximum allowed size")
	// ErrPDFExtraction indicates the PDF could not be turned into text.
	ErrPDFExtraction = errors.New("failed to extract PDF text")
)

const pdfMime = "application/pdf"

// DocumentService extracts assignment descriptions from uploaded documents.
type DocumentService interface {
	ExtractPDF(ctx context.Context, file *multipart.FileHeader) (dto.ExtractPDFResponse, error)
}

type documentService struct {
	extractor pdf.Extractor
	maxSize   int64
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewDocumentService constructs the document service.
func NewDocumentService(extractor pdf.Extractor, maxSizeMB int, logger zerolog.Logger) DocumentService {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &documentService{
		extractor: extractor,
		maxSize:   int64(maxSizeMB) * 1024 * 1024,
		logger:    logger.With().Str("component", "document_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/autota-go-api/internal/service/document"),
	}
}

// ExtractPDF validates that the upload really is a PDF (by content, not by the
// client supplied content type) and returns its trimmed text.
func (s *documentService) ExtractPDF(ctx context.Context, file *multipart.FileHeader) (dto.ExtractPDFResponse, error) {
	ctx, span := s.tracer.Start(ctx, "document.extract_pdf")
	defer span.End()

	fail := func(outcome string, err error) (dto.ExtractPDFResponse, error) {
		observability.PDFExtractions().WithLabelValues(outcome).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return dto.ExtractPDFResponse{}, err
	}

	if file == nil {
		return fail("missing", ErrPDFRequired)
	}
	span.SetAttributes(
		attribute.String("document.name", strings.TrimSpace(file.Filename)),
		attribute.Int64("document.request_size", file.Size),
	)

	if file.Size > s.maxSize {
		return fail("too_large", ErrPDFTooLarge)
	}

	handle, err := file.Open()
	if err != nil {
		return fail("open", fmt.Errorf("open upload: %w", err))
	}
	defer handle.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, io.LimitReader(handle, s.maxSize+1)); err != nil {
		return fail("read", fmt.Errorf("read upload: %w", err))
	}
	if int64(buf.Len()) > s.maxSize {
		return fail("too_large", ErrPDFTooLarge)
	}

	detected := mimetype.Detect(buf.Bytes())
	span.SetAttributes(attribute.String("document.detected_mime", detected.String()))
	if !detected.Is(pdfMime) {
		return fail("type", ErrPDFRequired)
	}

	if s.extractor == nil {
		return fail("extract", ErrPDFExtraction)
	}

	text, err := s.extractor.Extract(ctx, buf.Bytes())
	if err != nil {
		s.logger.Warn().Err(err).Int("size_bytes", buf.Len()).Msg("pdf extraction failed")
		return fail("extract", fmt.Errorf("%w: %v", ErrPDFExtraction, err))
	}

	observability.PDFExtractions().WithLabelValues("success").Inc()
	span.SetAttributes(attribute.Int("document.text_length", len(text)))
	span.SetStatus(codes.Ok, "extracted")

	return dto.ExtractPDFResponse{Text: strings.TrimSpace(text)}, nil
}
