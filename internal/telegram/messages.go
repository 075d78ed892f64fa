package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"catatkas/internal/core"
)

const (
	msgHelp = "Halo! Bot UMKM lengkap siap pakai.\n\n" +
		"Gunakan /add pengeluaran untuk tambah transaksi.\n" +
		"Gunakan /add pemasukan untuk tambah transaksi.\n" +
		"Gunakan /laporan hari atau /laporan bulan untuk laporan.\n" +
		"Gunakan /export untuk export laporan ke Excel."

	msgBadFormat       = "Format salah. Contoh: /add pengeluaran 50000"
	msgBadAmount       = "Jumlah harus angka. Contoh: /add pengeluaran 50000"
	msgChooseCategory  = "Pilih kategori:"
	msgPendingNotFound = "Transaksi tidak ditemukan. Silakan /add lagi."
	msgNoTransactions  = "Belum ada transaksi."
	msgInternalError   = "Terjadi kesalahan, coba lagi nanti."
)

// Display labels for the category buttons.
var categoryLabels = map[core.Category]string{
	core.Shopping:  "Belanja",
	core.Food:      "Makanan",
	core.Transport: "Transport",
	core.Other:     "Lainnya",
}

// categoryKeyboard renders the fixed category set as one button per row,
// with the category token as the callback payload.
func categoryKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range core.Categories() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(categoryLabels[c], string(c)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func formatConfirmation(t core.Transaction) string {
	return fmt.Sprintf("✅ Catatan ditambahkan: %s %d (%s)", t.Kind, t.Amount, t.Category)
}

func formatSummary(period string, s core.Summary) string {
	return fmt.Sprintf("📊 Laporan %s:\nPemasukan: %d\nPengeluaran: %d\nSaldo: %d",
		period, s.TotalIncome, s.TotalExpense, s.Balance)
}
