package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// Transaction kinds, wire and command tokens.
	Income  Kind = "pemasukan"
	Expense Kind = "pengeluaran"
)

const (
	Shopping  Category = "belanja"
	Food      Category = "makanan"
	Transport Category = "transport"
	Other     Category = "lainnya"
)

// DateLayout is the day-precision format transactions are stored and compared with.
const DateLayout = "2006-01-02"

type (
	Kind     string
	Category string

	Date struct {
		time.Time
	}

	// Transaction is a committed ledger entry. Immutable once appended.
	Transaction struct {
		Kind     Kind
		Amount   int64
		Category Category
		Date     Date
	}

	// PendingTransaction is a staged entry awaiting category selection.
	// It lives only in the temp slot of its owning ledger.
	PendingTransaction struct {
		Kind   Kind
		Amount int64
	}
)

var (
	ErrMissingArguments     = errors.New("missing arguments")
	ErrUnknownKind          = errors.New("unknown transaction kind")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrNoPendingTransaction = errors.New("no pending transaction")
	ErrNoTransactions       = errors.New("no transactions")
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{Shopping, Food, Transport, Other}
}

// ParseKind maps a command token to a transaction kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.TrimSpace(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	}
	return "", ErrUnknownKind
}

// ParseAmount parses a whole-unit amount from user text. The integer parse is
// the only contract: non-numeric text fails, a literal negative integer passes.
func ParseAmount(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseCategory maps a callback payload to a category from the fixed set.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// NewDate creates a day-precision date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today truncates now to day precision.
func Today(now time.Time) Date {
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// ParseDate parses a stored date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Commit completes a pending transaction with its category and date.
func (p PendingTransaction) Commit(c Category, date Date) Transaction {
	return Transaction{
		Kind:     p.Kind,
		Amount:   p.Amount,
		Category: c,
		Date:     date,
	}
}
