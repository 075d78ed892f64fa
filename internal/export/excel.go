// Package export renders a user's transaction history as an xlsx workbook,
// one row per transaction, for the chat transport to send as a document.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"catatkas/internal/core"
)

// SheetName is the single worksheet holding the exported rows.
const SheetName = "Laporan"

var header = []string{"type", "amount", "category", "date"}

// WriteWorkbook writes laporan_<user>.xlsx under dir and returns its path.
// The columns mirror the stored transaction attributes.
func WriteWorkbook(dir, user string, transactions []core.Transaction) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("drop default sheet: %w", err)
	}

	for col, name := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
	}

	for row, t := range transactions {
		values := []any{string(t.Kind), t.Amount, string(t.Category), t.Date.String()}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return "", fmt.Errorf("write row %d: %w", row+1, err)
			}
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("laporan_%s.xlsx", user))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}
