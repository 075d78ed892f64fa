package telegram

import (
	"testing"

	"catatkas/internal/core"
)

func TestCategoryKeyboard(t *testing.T) {
	kb := categoryKeyboard()

	if len(kb.InlineKeyboard) != len(core.Categories()) {
		t.Fatalf("expected %d rows, got %d", len(core.Categories()), len(kb.InlineKeyboard))
	}
	for i, c := range core.Categories() {
		row := kb.InlineKeyboard[i]
		if len(row) != 1 {
			t.Fatalf("row %d: expected one button, got %d", i, len(row))
		}
		btn := row[0]
		if btn.CallbackData == nil || *btn.CallbackData != string(c) {
			t.Fatalf("row %d: payload mismatch for %s: %+v", i, c, btn)
		}
		// Every payload must survive the round trip through the parser.
		if _, err := core.ParseCategory(*btn.CallbackData); err != nil {
			t.Fatalf("row %d: payload %q not parseable: %v", i, *btn.CallbackData, err)
		}
	}
}

func TestFormatConfirmation(t *testing.T) {
	tx := core.Transaction{
		Kind:     core.Expense,
		Amount:   50000,
		Category: core.Food,
		Date:     core.NewDate(2025, 9, 1),
	}
	want := "✅ Catatan ditambahkan: pengeluaran 50000 (makanan)"
	if got := formatConfirmation(tx); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatSummary(t *testing.T) {
	s := core.Summary{
		Period:       core.PeriodDay,
		TotalIncome:  100000,
		TotalExpense: 50000,
		Balance:      50000,
	}
	want := "📊 Laporan hari:\nPemasukan: 100000\nPengeluaran: 50000\nSaldo: 50000"
	if got := formatSummary("hari", s); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
