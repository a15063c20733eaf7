package constants

// Bookkeeping account codes (SKR03 chart). The posting table in the ledger
// package is defined exhaustively over these.
const (
	AccountOperatingSupplies = "4980" // Betriebsbedarf expense account
	AccountOfficeSupplies    = "4930" // Bürobedarf expense account
	AccountClearing          = "90000"
	AccountBank              = "1200"
)

// Upload stages: the two approved remote directories represent pipeline stages
// for processed invoices. Uploads are restricted to these by policy.
const (
	StageBooked = "booked"
	StageClosed = "closed"
)
