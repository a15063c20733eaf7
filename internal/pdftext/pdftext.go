package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/fhofer/invoice-assistant/internal/extract"
)

// Extractor reads born-digital PDFs and returns their text, pages concatenated
// in document order with no guaranteed separator.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract implements extract.TextExtractor. The pdf library can panic on
// malformed files, so the panic is converted into an error here.
func (e *Extractor) Extract(ctx context.Context, path string) (res extract.TextResult, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("pdf reader panicked", "path", path, "panic", r)
			err = fmt.Errorf("read pdf %s: %v", path, r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return extract.TextResult{}, fmt.Errorf("read pdf %s: %w", path, err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return extract.TextResult{}, fmt.Errorf("open pdf reader: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return extract.TextResult{}, fmt.Errorf("extract plain text: %w", err)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		return extract.TextResult{}, fmt.Errorf("read plain text: %w", err)
	}

	res = extract.TextResult{
		Text:     string(text),
		Pages:    reader.NumPage(),
		Duration: time.Since(start),
	}
	e.logger.Debug("pdf text extracted", "path", path, "pages", res.Pages, "bytes", len(res.Text))
	return res, nil
}
