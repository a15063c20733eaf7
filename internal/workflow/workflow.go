package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/fhofer/invoice-assistant/constants"
	"github.com/fhofer/invoice-assistant/internal/common"
	"github.com/fhofer/invoice-assistant/internal/dates"
	"github.com/fhofer/invoice-assistant/internal/export"
	"github.com/fhofer/invoice-assistant/internal/invoice"
	"github.com/fhofer/invoice-assistant/internal/ledger"
	"github.com/fhofer/invoice-assistant/internal/transport"
)

// LedgerPoster submits one posting document and reports success or failure.
type LedgerPoster interface {
	Post(ctx context.Context, doc ledger.PostingDocument) error
}

// Operator-facing action labels. Quit terminates the session; everything else
// returns to the ready state whether it succeeded or not.
const (
	actionDisplay    = "Show invoice data"
	actionSetSubject = "Set subject"
	actionRename     = "Rename file"
	actionUpload     = "Upload to server"
	actionPost       = "Post ledger entry"
	actionExport     = "Export review sheet"
	actionQuit       = "Quit"
)

var actions = []string{
	actionDisplay,
	actionSetSubject,
	actionRename,
	actionUpload,
	actionPost,
	actionExport,
	actionQuit,
}

const sourcePreviewBytes = 1200

// Session drives one invoice through the interactive workflow. It owns the
// record exclusively; no action runs while another is in flight.
type Session struct {
	record    *invoice.Record
	prompter  Prompter
	uploader  transport.Uploader
	poster    LedgerPoster
	dirBooked string
	dirClosed string
	logger    *slog.Logger
}

func New(rec *invoice.Record, p Prompter, up transport.Uploader, lp LedgerPoster, dirBooked, dirClosed string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		record:    rec,
		prompter:  p,
		uploader:  up,
		poster:    lp,
		dirBooked: dirBooked,
		dirClosed: dirClosed,
		logger:    logger,
	}
}

// Run loops until the operator quits. Action failures are reported and never
// escape the loop; a dismissed prompt inside an action is a silent no-op.
func (s *Session) Run(ctx context.Context) error {
	for {
		choice, err := s.prompter.Choose("Action", actions)
		if err != nil {
			if errors.Is(err, common.ErrCancelled) {
				return nil
			}
			return err
		}

		switch choice {
		case actionQuit:
			return nil
		case actionDisplay:
			s.display()
		case actionSetSubject:
			s.report(choice, s.setSubject())
		case actionRename:
			s.report(choice, s.rename())
		case actionUpload:
			s.report(choice, s.upload())
		case actionPost:
			s.report(choice, s.postLedgerEntry(ctx))
		case actionExport:
			s.report(choice, s.exportReviewSheet())
		}
	}
}

// report surfaces an action failure to the operator and logs it. Cancellation
// is the normal outcome of a dismissed prompt, not an error.
func (s *Session) report(action string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, common.ErrCancelled) {
		s.logger.Debug("action cancelled", "action", action)
		return
	}
	s.logger.Error("action failed", "action", action, "error", err)
	s.prompter.Show("Error", err.Error())
}

func (s *Session) display() {
	preview := s.record.SourceText
	if len(preview) > sourcePreviewBytes {
		preview = preview[:sourcePreviewBytes] + "..."
	}
	s.prompter.Show("Invoice data", fmt.Sprintf(
		"File:           %s\nDate:           %s\nInvoice number: %s\nAmount:         %s\nSubject:        %s\n\n%s",
		s.record.CurrentFileName,
		s.record.Date.Format(constants.LedgerDateLayout),
		s.record.InvoiceNumber,
		s.record.Amount,
		s.record.Subject,
		preview,
	))
}

// setSubject replaces the subject unconditionally on confirmation; an empty
// string is a valid replacement.
func (s *Session) setSubject() error {
	subject, err := s.prompter.Input("Subject", s.record.Subject)
	if err != nil {
		return err
	}
	s.record.Subject = subject
	return nil
}

func (s *Session) rename() error {
	suggested := filepath.Join(filepath.Dir(s.record.CurrentFileName), s.record.SuggestedFileName())
	name, err := s.prompter.Input("New file name", suggested)
	if err != nil {
		return err
	}
	if err := s.record.Rename(name); err != nil {
		return err
	}
	s.prompter.Show("Renamed", fmt.Sprintf("Renamed to %s", name))
	return nil
}

// upload offers the two approved remote directories as a binary choice; free
// remote paths are intentionally not accepted.
func (s *Session) upload() error {
	dir, err := s.prompter.Choose("Remote directory", []string{s.dirBooked, s.dirClosed})
	if err != nil {
		return err
	}
	remote := path.Join(dir, filepath.Base(s.record.CurrentFileName))
	if err := s.uploader.Upload(s.record.CurrentFileName, remote); err != nil {
		return err
	}
	s.prompter.Show("Uploaded", fmt.Sprintf("Uploaded to %s", remote))
	return nil
}

// promptPosting collects direction, invoice type and posting date, then builds
// the posting document. Dismissing any prompt cancels the whole action with no
// partial effect.
func (s *Session) promptPosting() (ledger.PostingDocument, error) {
	direction, err := s.prompter.Choose("Posting direction",
		[]string{string(constants.DirectionDebit), string(constants.DirectionCredit)})
	if err != nil {
		return ledger.PostingDocument{}, err
	}
	isDebitSide := direction == string(constants.DirectionDebit)

	invoiceType, err := s.prompter.Choose("Invoice type", constants.InvoiceTypesAsStringSlice())
	if err != nil {
		return ledger.PostingDocument{}, err
	}

	rawDate, err := s.prompter.Input("Posting date", s.record.Date.Format(constants.LedgerDateLayout))
	if err != nil {
		return ledger.PostingDocument{}, err
	}
	postingDate, err := dates.Normalize(rawDate)
	if err != nil {
		return ledger.PostingDocument{}, err
	}

	return ledger.BuildPosting(s.record, postingDate, isDebitSide, constants.InvoiceType(invoiceType))
}

func (s *Session) postLedgerEntry(ctx context.Context) error {
	doc, err := s.promptPosting()
	if err != nil {
		return err
	}
	if err := s.poster.Post(ctx, doc); err != nil {
		return err
	}
	s.prompter.Show("Posted", fmt.Sprintf("Ledger entry created: %s", doc.NarrationText))
	return nil
}

func (s *Session) exportReviewSheet() error {
	doc, err := s.promptPosting()
	if err != nil {
		return err
	}
	target := export.ReviewSheetPath(s.record.CurrentFileName)
	if err := export.WriteReviewSheet(target, doc, s.logger); err != nil {
		return err
	}
	s.prompter.Show("Exported", fmt.Sprintf("Review sheet written to %s", target))
	return nil
}
