package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fhofer/invoice-assistant/internal/ledger"
)

func TestReviewSheetPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/data", "2023_06_01_RE123_posting.xlsx"),
		ReviewSheetPath(filepath.Join("/data", "2023_06_01_RE123.pdf")))
}

func TestWriteReviewSheet(t *testing.T) {
	doc := ledger.PostingDocument{
		Date:          "03.04.2023",
		NarrationText: "operating supplies RN RE-2023-99 Amazon",
		Amount:        "123,45",
		DebitAccount:  "4980",
		CreditAccount: "90000",
	}

	path := filepath.Join(t.TempDir(), "posting.xlsx")
	require.NoError(t, WriteReviewSheet(path, doc, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	for cell, want := range map[string]string{
		"A1": "Posting Date",
		"A2": "03.04.2023",
		"B2": "operating supplies RN RE-2023-99 Amazon",
		"C2": "123,45",
		"D2": "4980",
		"E2": "90000",
	} {
		got, err := f.GetCellValue("Posting", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}
