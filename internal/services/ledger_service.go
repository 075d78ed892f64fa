// Package services orchestrates the two-step transaction entry flow and the
// report queries over the ledger store.
package services

import (
	"fmt"
	"log/slog"
	"time"

	"catatkas/internal/core"
	"catatkas/internal/export"
	"catatkas/internal/store"
)

// LedgerService ties command input to the ledger store. Each user moves
// through a two-step flow: Stage parks a kind+amount as the pending entry,
// ChooseCategory completes and commits it.
type LedgerService struct {
	store *store.Store
	now   func() time.Time
}

func NewLedgerService(store *store.Store) *LedgerService {
	return &LedgerService{store: store, now: time.Now}
}

// WithClock overrides the process clock. Test hook.
func (s *LedgerService) WithClock(now func() time.Time) *LedgerService {
	s.now = now
	return s
}

// Stage validates the /add arguments and stages a pending transaction for
// the user. A previously staged entry is overwritten, last stage wins.
func (s *LedgerService) Stage(user string, args []string) (core.PendingTransaction, error) {
	if len(args) < 2 {
		return core.PendingTransaction{}, core.ErrMissingArguments
	}

	kind, err := core.ParseKind(args[0])
	if err != nil {
		return core.PendingTransaction{}, err
	}
	amount, err := core.ParseAmount(args[1])
	if err != nil {
		return core.PendingTransaction{}, err
	}

	p := core.PendingTransaction{Kind: kind, Amount: amount}
	if err := s.store.Stage(user, p); err != nil {
		return core.PendingTransaction{}, fmt.Errorf("stage transaction: %w", err)
	}

	slog.Info("Transaction staged", "user", user, "kind", kind, "amount", amount)
	return p, nil
}

// ChooseCategory commits the user's pending transaction under the chosen
// category, dated today. Returns the committed transaction for confirmation
// rendering. core.ErrNoPendingTransaction passes through when nothing is
// staged; the ledger is unchanged.
func (s *LedgerService) ChooseCategory(user, payload string) (core.Transaction, error) {
	category, err := core.ParseCategory(payload)
	if err != nil {
		return core.Transaction{}, err
	}

	t, err := s.store.Commit(user, category, core.Today(s.now()))
	if err != nil {
		return core.Transaction{}, err
	}

	slog.Info("Transaction committed",
		"user", user,
		"kind", t.Kind,
		"amount", t.Amount,
		"category", t.Category,
		"date", t.Date.String())
	return t, nil
}

// Summarize computes the report for the given period token. The period
// defaults are the caller's concern; unknown tokens aggregate everything.
// core.ErrNoTransactions is returned for a user with an empty history.
func (s *LedgerService) Summarize(user, period string) (core.Summary, error) {
	transactions := s.store.Transactions(user)
	if len(transactions) == 0 {
		return core.Summary{}, core.ErrNoTransactions
	}
	return core.Summarize(transactions, core.ParsePeriod(period), s.now()), nil
}

// Export writes the user's full history as an xlsx workbook under dir and
// returns the file path. core.ErrNoTransactions for an empty history.
func (s *LedgerService) Export(user, dir string) (string, error) {
	transactions := s.store.Transactions(user)
	if len(transactions) == 0 {
		return "", core.ErrNoTransactions
	}

	path, err := export.WriteWorkbook(dir, user, transactions)
	if err != nil {
		return "", fmt.Errorf("export workbook: %w", err)
	}

	slog.Info("Ledger exported", "user", user, "path", path, "rows", len(transactions))
	return path, nil
}
