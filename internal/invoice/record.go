package invoice

import (
	"fmt"
	"os"
	"time"

	"github.com/fhofer/invoice-assistant/constants"
	"github.com/fhofer/invoice-assistant/internal/common"
	"github.com/fhofer/invoice-assistant/internal/dates"
	"github.com/fhofer/invoice-assistant/internal/extract"
)

// Record is the mutable state for one invoice session. It is owned exclusively
// by the workflow and discarded when the session ends.
type Record struct {
	SourceText      string
	Date            time.Time
	InvoiceNumber   string
	Amount          string // raw matched string in source locale format, never parsed
	Subject         string
	CurrentFileName string
}

// Assemble extracts and normalizes the mandatory fields from the document
// text. A record exists only if all three fields matched and the date parsed;
// any failure here aborts the session before the workflow is entered.
func Assemble(path, text string) (*Record, error) {
	fields, err := extract.Fields(text)
	if err != nil {
		return nil, err
	}
	day, err := dates.Normalize(fields[extract.FieldDate])
	if err != nil {
		return nil, err
	}
	return &Record{
		SourceText:      text,
		Date:            day,
		InvoiceNumber:   fields[extract.FieldInvoiceNumber],
		Amount:          fields[extract.FieldAmount],
		CurrentFileName: path,
	}, nil
}

// SuggestedFileName is {yyyy_mm_dd}_{subject}_{invoiceNumber}.pdf, with the
// subject segment omitted while it is empty.
func (r *Record) SuggestedFileName() string {
	day := r.Date.Format(constants.FileNameDateLayout)
	if r.Subject == "" {
		return fmt.Sprintf("%s_%s.pdf", day, r.InvoiceNumber)
	}
	return fmt.Sprintf("%s_%s_%s.pdf", day, r.Subject, r.InvoiceNumber)
}

// Rename moves the file on disk and updates CurrentFileName. The mutation is
// atomic: on any failure the record still points at the old name. An existing
// target counts as a collision since os.Rename would silently replace it.
func (r *Record) Rename(newName string) error {
	if newName == r.CurrentFileName {
		return nil
	}
	if _, err := os.Stat(newName); err == nil {
		return common.NewAppError("RENAME_COLLISION", fmt.Sprintf("%s already exists", newName), common.ErrRename)
	}
	if err := os.Rename(r.CurrentFileName, newName); err != nil {
		return common.NewAppError("RENAME_FAILED", err.Error(), common.ErrRename)
	}
	r.CurrentFileName = newName
	return nil
}
