package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fhofer/invoice-assistant/internal/ledger"
)

// ReviewSheetPath places the review workbook next to the invoice, named after
// the invoice file.
func ReviewSheetPath(invoicePath string) string {
	base := strings.TrimSuffix(filepath.Base(invoicePath), filepath.Ext(invoicePath))
	return filepath.Join(filepath.Dir(invoicePath), base+"_posting.xlsx")
}

// WriteReviewSheet writes a one-row XLSX workbook describing a posting so the
// operator keeps a local copy of what was (or would be) sent to the ledger.
func WriteReviewSheet(path string, doc ledger.PostingDocument, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Posting"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Posting Date",
		"Narration",
		"Amount",
		"Debit Account",
		"Credit Account",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	values := []string{doc.Date, doc.NarrationText, doc.Amount, doc.DebitAccount, doc.CreditAccount}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheet, cell, v)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save review sheet: %w", err)
	}

	logger.Info("review sheet written", "path", path, "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}
