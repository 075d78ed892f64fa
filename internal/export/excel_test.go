package export

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"catatkas/internal/core"
)

func TestWriteWorkbook(t *testing.T) {
	transactions := []core.Transaction{
		{Kind: core.Expense, Amount: 50000, Category: core.Food, Date: core.NewDate(2025, 9, 1)},
		{Kind: core.Income, Amount: 100000, Category: core.Other, Date: core.NewDate(2025, 9, 2)},
	}

	path, err := WriteWorkbook(t.TempDir(), "7", transactions)
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}

	want := [][]string{
		{"type", "amount", "category", "date"},
		{"pengeluaran", "50000", "makanan", "2025-09-01"},
		{"pemasukan", "100000", "lainnya", "2025-09-02"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows:\ngot  %v\nwant %v", rows, want)
	}
}
