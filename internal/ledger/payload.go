package ledger

import (
	"fmt"
	"time"

	"github.com/fhofer/invoice-assistant/constants"
	"github.com/fhofer/invoice-assistant/internal/common"
	"github.com/fhofer/invoice-assistant/internal/invoice"
)

// PostingDocument is the JSON body for one ledger posting. The wire keys are
// what the bookkeeping endpoint expects.
type PostingDocument struct {
	Date          string `json:"date"`
	NarrationText string `json:"rechnungstext"`
	Amount        string `json:"betrag"`
	DebitAccount  string `json:"konto1"`
	CreditAccount string `json:"konto2"`
}

// BuildPosting assembles the posting document for a record. It is pure: no
// I/O, deterministic for a given input.
func BuildPosting(rec *invoice.Record, postingDate time.Time, isDebitSide bool, invoiceType constants.InvoiceType) (PostingDocument, error) {
	debit, credit, err := accountsFor(isDebitSide, invoiceType)
	if err != nil {
		return PostingDocument{}, err
	}
	return PostingDocument{
		Date:          postingDate.Format(constants.LedgerDateLayout),
		NarrationText: fmt.Sprintf("%s RN %s %s", invoiceType, rec.InvoiceNumber, rec.Subject),
		Amount:        rec.Amount,
		DebitAccount:  debit,
		CreditAccount: credit,
	}, nil
}

// accountsFor is the exhaustive account-code table. A debit-side posting books
// the expense against the clearing account; the credit side reverses through
// the bank account and is the same for either invoice type. Debit-side
// postings with an invoice type outside the table are rejected.
func accountsFor(isDebitSide bool, invoiceType constants.InvoiceType) (debit, credit string, err error) {
	if !isDebitSide {
		return constants.AccountClearing, constants.AccountBank, nil
	}
	switch invoiceType {
	case constants.InvoiceTypeOperatingSupplies:
		return constants.AccountOperatingSupplies, constants.AccountClearing, nil
	case constants.InvoiceTypeOfficeSupplies:
		return constants.AccountOfficeSupplies, constants.AccountClearing, nil
	default:
		return "", "", common.NewAppError("UNKNOWN_INVOICE_TYPE", string(invoiceType), common.ErrUnknownInvoiceType)
	}
}
