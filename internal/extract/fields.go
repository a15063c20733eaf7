package extract

import (
	"regexp"

	"github.com/fhofer/invoice-assistant/internal/common"
)

// Stage 2: text -> named raw field values.

// Field names reported in MissingField errors.
const (
	FieldDate          = "date"
	FieldInvoiceNumber = "invoice_number"
	FieldAmount        = "amount"
)

// fieldPatterns is the canonical label vocabulary seen on German and English
// supplier invoices. Matching is case-insensitive and only the first match per
// field is consulted. The date pattern accepts dot/hyphen/slash-separated
// numeric dates as well as spelled-out month names, with an optional
// "/Lieferdatum" qualifier after the label. The amount capture deliberately
// excludes the currency suffix.
var fieldPatterns = map[string]*regexp.Regexp{
	FieldDate: regexp.MustCompile(
		`(?i)(?:Rechnungsdatum|Datum)\s*(?:/\s*Lieferdatum)?\s*:?\s*((?:\d{1,2}[-./]\d{1,2}[-./]\d{2,4})|(?:\d{1,2}\.?\s+\p{L}+\s+\d{2,4}))`),
	FieldInvoiceNumber: regexp.MustCompile(
		`(?i)(?:Rechnungsnummer|Rechnungs-Nr\.|Rechnungsnr\.|Fakturanummer|Invoice No\.)\s*:?\s*([A-Za-z0-9\-_]+)`),
	FieldAmount: regexp.MustCompile(
		`(?i)(?:Zahlbetrag|Gesamtbetrag|Rechnungsbetrag|Total)\s*:?\s*([\d.,]+)\s*(?:€|EUR)?`),
}

// Fields runs every pattern against text and returns the raw matched value per
// field. All three fields are mandatory; the first one that does not match
// fails the call with an error naming that field. Invoice formats missing a
// label are not auto-correctable, so callers treat this as fatal for the
// document.
func Fields(text string) (map[string]string, error) {
	fields := make(map[string]string, len(fieldPatterns))
	for _, name := range []string{FieldDate, FieldInvoiceNumber, FieldAmount} {
		m := fieldPatterns[name].FindStringSubmatch(text)
		if m == nil {
			return nil, common.NewMissingFieldError(name)
		}
		fields[name] = m[1]
	}
	return fields, nil
}
