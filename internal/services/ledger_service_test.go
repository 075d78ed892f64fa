package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"catatkas/internal/core"
	"catatkas/internal/store"
)

func newService(t *testing.T) *LedgerService {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	return NewLedgerService(s).WithClock(func() time.Time { return now })
}

func TestStageValidation(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"no args", nil, core.ErrMissingArguments},
		{"one arg", []string{"pengeluaran"}, core.ErrMissingArguments},
		{"bad kind", []string{"belanja", "50000"}, core.ErrUnknownKind},
		{"bad amount", []string{"pengeluaran", "lima"}, core.ErrInvalidAmount},
	}
	for _, tc := range cases {
		if _, err := svc.Stage("7", tc.args); !errors.Is(err, tc.err) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
	}
}

func TestStageThenChooseCategory(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Stage("7", []string{"pengeluaran", "50000"}); err != nil {
		t.Fatalf("stage: %v", err)
	}

	tx, err := svc.ChooseCategory("7", "makanan")
	if err != nil {
		t.Fatalf("choose category: %v", err)
	}
	if tx.Kind != core.Expense || tx.Amount != 50000 || tx.Category != core.Food {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if tx.Date.String() != "2025-09-01" {
		t.Fatalf("expected today's date, got %s", tx.Date.String())
	}

	summary, err := svc.Summarize("7", "semua")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.TotalIncome != 0 || summary.TotalExpense != 50000 || summary.Balance != -50000 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestChooseCategoryWithoutPending(t *testing.T) {
	svc := newService(t)

	if _, err := svc.ChooseCategory("7", "makanan"); !errors.Is(err, core.ErrNoPendingTransaction) {
		t.Fatalf("expected ErrNoPendingTransaction, got %v", err)
	}
	if _, err := svc.ChooseCategory("7", "hiburan"); !errors.Is(err, core.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestSummarizeNoTransactions(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Summarize("7", "hari"); !errors.Is(err, core.ErrNoTransactions) {
		t.Fatalf("expected ErrNoTransactions, got %v", err)
	}

	// A staged-but-uncommitted entry is still "no transactions".
	if _, err := svc.Stage("7", []string{"pemasukan", "1000"}); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if _, err := svc.Summarize("7", "hari"); !errors.Is(err, core.ErrNoTransactions) {
		t.Fatalf("expected ErrNoTransactions with only a pending entry, got %v", err)
	}
}

func TestSummarizeEmptyWindowIsNotAnError(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Stage("7", []string{"pemasukan", "1000"}); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if _, err := svc.ChooseCategory("7", "lainnya"); err != nil {
		t.Fatalf("choose category: %v", err)
	}

	// Move the clock to another day; the day window is empty but valid.
	svc.WithClock(func() time.Time { return time.Date(2025, 10, 2, 10, 0, 0, 0, time.UTC) })

	summary, err := svc.Summarize("7", "hari")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.TotalIncome != 0 || summary.TotalExpense != 0 || summary.Balance != 0 {
		t.Fatalf("expected zero-totals summary, got %+v", summary)
	}
}

func TestPerUserIsolation(t *testing.T) {
	svc := newService(t)

	for _, user := range []string{"a", "b"} {
		if _, err := svc.Stage(user, []string{"pemasukan", "10000"}); err != nil {
			t.Fatalf("stage %s: %v", user, err)
		}
		if _, err := svc.ChooseCategory(user, "lainnya"); err != nil {
			t.Fatalf("choose %s: %v", user, err)
		}
	}

	summary, err := svc.Summarize("b", "semua")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.TotalIncome != 10000 {
		t.Fatalf("user b must not see user a's transactions: %+v", summary)
	}
}

func TestExport(t *testing.T) {
	svc := newService(t)
	dir := t.TempDir()

	if _, err := svc.Export("7", dir); !errors.Is(err, core.ErrNoTransactions) {
		t.Fatalf("expected ErrNoTransactions, got %v", err)
	}

	if _, err := svc.Stage("7", []string{"pengeluaran", "50000"}); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if _, err := svc.ChooseCategory("7", "belanja"); err != nil {
		t.Fatalf("choose category: %v", err)
	}

	path, err := svc.Export("7", dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != "laporan_7.xlsx" {
		t.Fatalf("unexpected export file name: %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}
