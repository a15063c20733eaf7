package constants

// InvoiceType classifies an invoice for account-code assignment.
type InvoiceType string

// Stable values (these exact strings appear in the posting narration).
const (
	InvoiceTypeOperatingSupplies InvoiceType = "operating supplies"
	InvoiceTypeOfficeSupplies    InvoiceType = "office supplies"
)

var allInvoiceTypes = []InvoiceType{
	InvoiceTypeOperatingSupplies,
	InvoiceTypeOfficeSupplies,
}

// InvoiceTypesAsStringSlice returns the fixed set of invoice types offered to
// the operator.
func InvoiceTypesAsStringSlice() []string {
	result := make([]string, len(allInvoiceTypes))
	for i, t := range allInvoiceTypes {
		result[i] = string(t)
	}
	return result
}

// PostingDirection is whether a ledger entry books an invoice in or reverses it.
type PostingDirection string

const (
	DirectionDebit  PostingDirection = "Hinbuchung"  // initial booking, debit-first
	DirectionCredit PostingDirection = "Rückbuchung" // reversal, credit-first
)

// Date layouts used across the tool.
const (
	FileNameDateLayout = "2006_01_02"
	LedgerDateLayout   = "02.01.2006"
)
