// Package store persists the full user-to-ledger mapping as a single JSON
// document, rewritten in its entirety after every mutation. Last full write
// wins; there is no incremental log.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"catatkas/internal/core"
)

// Wire shapes of the persisted document: an object keyed by user id, each
// value holding the committed transactions and the optional staged entry.
type (
	transactionDoc struct {
		Type     string `json:"type"`
		Amount   int64  `json:"amount"`
		Category string `json:"category"`
		Date     string `json:"date"`
	}

	pendingDoc struct {
		Type   string `json:"type"`
		Amount int64  `json:"amount"`
	}

	ledgerDoc struct {
		Transactions []transactionDoc `json:"transactions"`
		Temp         *pendingDoc      `json:"temp,omitempty"`
	}
)

type ledger struct {
	transactions []core.Transaction
	pending      *core.PendingTransaction
}

// Store is the process-wide ledger mapping. All access goes through one
// mutex so mutate-then-persist is serialized and readers never observe a
// half-written user.
type Store struct {
	mu      sync.Mutex
	path    string
	ledgers map[string]*ledger
}

// Open loads the document at path. A missing, unreadable or corrupt document
// degrades to an empty store with a warning; it is never an open error.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	s := &Store{path: path, ledgers: make(map[string]*ledger)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Ledger document unreadable, starting empty", "path", path, "error", err)
		}
		return s, nil
	}

	var doc map[string]ledgerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("Ledger document corrupt, starting empty", "path", path, "error", err)
		return s, nil
	}

	for user, ld := range doc {
		l := &ledger{}
		for _, td := range ld.Transactions {
			t, err := decodeTransaction(td)
			if err != nil {
				slog.Warn("Skipping malformed transaction", "user", user, "error", err)
				continue
			}
			l.transactions = append(l.transactions, t)
		}
		if ld.Temp != nil {
			l.pending = &core.PendingTransaction{
				Kind:   core.Kind(ld.Temp.Type),
				Amount: ld.Temp.Amount,
			}
		}
		s.ledgers[user] = l
	}

	slog.Info("Ledger store loaded", "path", path, "users", len(s.ledgers))
	return s, nil
}

// Stage overwrites the user's pending transaction, creating the ledger on
// first contact, and persists. A prior staged entry is silently replaced.
func (s *Store) Stage(user string, p core.PendingTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.getOrCreate(user)
	l.pending = &p
	return s.persist()
}

// Commit completes the user's pending transaction with the given category
// and date, appends it to the history, clears the pending slot and persists.
// Returns core.ErrNoPendingTransaction if nothing is staged; the ledger is
// left untouched in that case.
func (s *Store) Commit(user string, c core.Category, date core.Date) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.ledgers[user]
	if !ok || l.pending == nil {
		return core.Transaction{}, core.ErrNoPendingTransaction
	}

	t := l.pending.Commit(c, date)
	l.transactions = append(l.transactions, t)
	l.pending = nil

	if err := s.persist(); err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

// Transactions returns a copy of the user's committed history, in append order.
func (s *Store) Transactions(user string) []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.ledgers[user]
	if !ok || len(l.transactions) == 0 {
		return nil
	}
	return append([]core.Transaction(nil), l.transactions...)
}

// Pending returns the user's staged transaction, if any.
func (s *Store) Pending(user string) (core.PendingTransaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.ledgers[user]
	if !ok || l.pending == nil {
		return core.PendingTransaction{}, false
	}
	return *l.pending, true
}

// Users returns every known user id, sorted for deterministic iteration.
func (s *Store) Users() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]string, 0, len(s.ledgers))
	for user := range s.ledgers {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}

func (s *Store) getOrCreate(user string) *ledger {
	l, ok := s.ledgers[user]
	if !ok {
		l = &ledger{}
		s.ledgers[user] = l
	}
	return l
}

// persist rewrites the whole document. Callers must hold the mutex. The
// write goes to a temp file in the same directory and is renamed over the
// old document, so a crash mid-write leaves the previous state intact.
func (s *Store) persist() error {
	doc := make(map[string]ledgerDoc, len(s.ledgers))
	for user, l := range s.ledgers {
		ld := ledgerDoc{Transactions: make([]transactionDoc, 0, len(l.transactions))}
		for _, t := range l.transactions {
			ld.Transactions = append(ld.Transactions, transactionDoc{
				Type:     string(t.Kind),
				Amount:   t.Amount,
				Category: string(t.Category),
				Date:     t.Date.String(),
			})
		}
		if l.pending != nil {
			ld.Temp = &pendingDoc{Type: string(l.pending.Kind), Amount: l.pending.Amount}
		}
		doc[user] = ld
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write ledger document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace ledger document: %w", err)
	}
	return nil
}

func decodeTransaction(td transactionDoc) (core.Transaction, error) {
	date, err := core.ParseDate(td.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse date %q: %w", td.Date, err)
	}
	return core.Transaction{
		Kind:     core.Kind(td.Type),
		Amount:   td.Amount,
		Category: core.Category(td.Category),
		Date:     date,
	}, nil
}
