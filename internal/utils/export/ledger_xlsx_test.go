package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

func TestLedgerWorkbook(t *testing.T) {
	ledger := &domain.UserLedger{
		UserID: "user-1",
		Summary: domain.LedgerSummary{
			Balance:     decimal.NewFromInt(300),
			TotalCredit: decimal.NewFromInt(500),
			TotalDebit:  decimal.NewFromInt(200),
		},
		Entries: []domain.LedgerEntry{
			{
				TransactionID:   "RBC-2025-JANE-EMP-IMP-001",
				Type:            domain.Imprest,
				From:            "Ravi Kumar",
				To:              "Jane Doe",
				Credit:          decimal.NewFromInt(500),
				Debit:           decimal.Zero,
				PaymentMethod:   domain.PaymentBank,
				Remark:          "site advance",
				EntryDate:       time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
				TransactionDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	f, err := LedgerWorkbook(ledger)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	get := func(cell string) string {
		v, err := f.GetCellValue(ledgerSheet, cell)
		require.NoError(t, err)
		return v
	}

	// Summary block.
	assert.Equal(t, "User", get("A1"))
	assert.Equal(t, "user-1", get("B1"))
	assert.Equal(t, "300", get("B2"))
	assert.Equal(t, "500", get("B3"))
	assert.Equal(t, "200", get("B4"))

	// Header row sits below the summary with one blank row between.
	assert.Equal(t, "Transaction ID", get("A6"))
	assert.Equal(t, "Entry Date", get("J6"))

	// Entry row: transaction date in column B, entry date in column J.
	assert.Equal(t, "RBC-2025-JANE-EMP-IMP-001", get("A7"))
	assert.Equal(t, "2025-03-10", get("B7"))
	assert.Equal(t, "2025-03-09", get("J7"))
	assert.Equal(t, "500", get("F7"))
}
