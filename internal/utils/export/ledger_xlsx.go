// Package export renders ledger views as spreadsheet workbooks for download.
package export

import (
	"fmt"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const ledgerSheet = "Ledger"

var ledgerHeader = []string{
	"Transaction ID", "Date", "Type", "From", "To",
	"Credit", "Debit", "Payment Method", "Remark", "Entry Date",
}

// LedgerWorkbook renders a user's ledger as an .xlsx workbook: a summary
// block on top, then one row per entry in the ledger's own order (most
// recent first).
func LedgerWorkbook(ledger *domain.UserLedger) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), ledgerSheet); err != nil {
		return nil, fmt.Errorf("failed to name ledger sheet: %w", err)
	}

	summaryRows := [][]any{
		{"User", ledger.UserID},
		{"Balance", ledger.Summary.Balance.String()},
		{"Total Credit", ledger.Summary.TotalCredit.String()},
		{"Total Debit", ledger.Summary.TotalDebit.String()},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute summary cell: %w", err)
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	headerRow := len(summaryRows) + 2
	cell, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return nil, fmt.Errorf("failed to compute header cell: %w", err)
	}
	if err := f.SetSheetRow(ledgerSheet, cell, &ledgerHeader); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, entry := range ledger.Entries {
		row := []any{
			entry.TransactionID,
			entry.TransactionDate.Format("2006-01-02"),
			string(entry.Type),
			entry.From,
			entry.To,
			entry.Credit.String(),
			entry.Debit.String(),
			string(entry.PaymentMethod),
			entry.Remark,
			entry.EntryDate.Format("2006-01-02"),
		}
		cell, err := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err != nil {
			return nil, fmt.Errorf("failed to compute entry cell: %w", err)
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write entry row: %w", err)
		}
	}

	return f, nil
}
