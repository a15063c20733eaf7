package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhofer/invoice-assistant/constants"
	"github.com/fhofer/invoice-assistant/internal/common"
	"github.com/fhofer/invoice-assistant/internal/invoice"
)

func testRecord() *invoice.Record {
	return &invoice.Record{
		InvoiceNumber: "RE-2023-99",
		Amount:        "123,45",
		Subject:       "Amazon",
	}
}

func TestBuildPostingAccountTable(t *testing.T) {
	tests := []struct {
		name        string
		isDebitSide bool
		invoiceType constants.InvoiceType
		wantDebit   string
		wantCredit  string
	}{
		{
			name:        "debit side operating supplies",
			isDebitSide: true,
			invoiceType: constants.InvoiceTypeOperatingSupplies,
			wantDebit:   "4980",
			wantCredit:  "90000",
		},
		{
			name:        "debit side office supplies",
			isDebitSide: true,
			invoiceType: constants.InvoiceTypeOfficeSupplies,
			wantDebit:   "4930",
			wantCredit:  "90000",
		},
		{
			name:        "credit side operating supplies",
			isDebitSide: false,
			invoiceType: constants.InvoiceTypeOperatingSupplies,
			wantDebit:   "90000",
			wantCredit:  "1200",
		},
		{
			name:        "credit side office supplies",
			isDebitSide: false,
			invoiceType: constants.InvoiceTypeOfficeSupplies,
			wantDebit:   "90000",
			wantCredit:  "1200",
		},
	}

	day := time.Date(2023, time.April, 3, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := BuildPosting(testRecord(), day, tt.isDebitSide, tt.invoiceType)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebit, doc.DebitAccount)
			assert.Equal(t, tt.wantCredit, doc.CreditAccount)
		})
	}
}

func TestBuildPostingDocument(t *testing.T) {
	day := time.Date(2023, time.April, 3, 0, 0, 0, 0, time.UTC)
	doc, err := BuildPosting(testRecord(), day, true, constants.InvoiceTypeOperatingSupplies)
	require.NoError(t, err)

	assert.Equal(t, "03.04.2023", doc.Date)
	assert.Equal(t, "operating supplies RN RE-2023-99 Amazon", doc.NarrationText)
	assert.Equal(t, "123,45", doc.Amount)
}

func TestBuildPostingDeterministic(t *testing.T) {
	day := time.Date(2023, time.April, 3, 0, 0, 0, 0, time.UTC)
	a, err := BuildPosting(testRecord(), day, true, constants.InvoiceTypeOfficeSupplies)
	require.NoError(t, err)
	b, err := BuildPosting(testRecord(), day, true, constants.InvoiceTypeOfficeSupplies)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildPostingUnknownType(t *testing.T) {
	day := time.Date(2023, time.April, 3, 0, 0, 0, 0, time.UTC)
	_, err := BuildPosting(testRecord(), day, true, constants.InvoiceType("groceries"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownInvoiceType)

	// Unknown types are only rejected on the debit side; the credit side does
	// not consult the type at all.
	_, err = BuildPosting(testRecord(), day, false, constants.InvoiceType("groceries"))
	assert.NoError(t, err)
}

func TestValidatePosting(t *testing.T) {
	day := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	doc, err := BuildPosting(testRecord(), day, true, constants.InvoiceTypeOperatingSupplies)
	require.NoError(t, err)
	assert.NoError(t, ValidatePosting(doc))
}

func TestValidatePostingRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PostingDocument)
	}{
		{name: "bad date layout", mutate: func(d *PostingDocument) { d.Date = "2023-06-01" }},
		{name: "empty narration", mutate: func(d *PostingDocument) { d.NarrationText = "" }},
		{name: "non-numeric account", mutate: func(d *PostingDocument) { d.DebitAccount = "cash" }},
		{name: "amount with currency suffix", mutate: func(d *PostingDocument) { d.Amount = "12,00 EUR" }},
	}

	day := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := BuildPosting(testRecord(), day, true, constants.InvoiceTypeOperatingSupplies)
			require.NoError(t, err)
			tt.mutate(&doc)
			assert.Error(t, ValidatePosting(doc))
		})
	}
}
