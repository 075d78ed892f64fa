// Package core holds the ledger domain model and the report aggregation rules.
package core

import "time"

const (
	PeriodDay   Period = "hari"
	PeriodMonth Period = "bulan"
	PeriodAll   Period = "semua"
)

type (
	Period string

	// Summary holds the aggregated totals for one report window.
	Summary struct {
		Period       Period
		TotalIncome  int64
		TotalExpense int64
		Balance      int64
	}
)

// ParsePeriod maps a report argument to a period. Unrecognized tokens fall
// back to the all-time window rather than erroring, matching the command's
// historical behavior.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay:
		return PeriodDay
	case PeriodMonth:
		return PeriodMonth
	}
	return PeriodAll
}

// InWindow reports whether t falls inside the period as seen from now.
// The month window compares the month component only, irrespective of year:
// a December entry from any year matches a December report. Kept as-is for
// compatibility with existing ledgers.
func InWindow(t Transaction, p Period, now time.Time) bool {
	switch p {
	case PeriodDay:
		return t.Date.String() == Today(now).String()
	case PeriodMonth:
		return t.Date.Month() == now.Month()
	default:
		return true
	}
}

// Summarize aggregates the transactions falling inside the period window.
// An empty filtered set yields a zero-totals summary, not an error.
func Summarize(transactions []Transaction, p Period, now time.Time) Summary {
	s := Summary{Period: p}
	for _, t := range transactions {
		if !InWindow(t, p, now) {
			continue
		}
		switch t.Kind {
		case Income:
			s.TotalIncome += t.Amount
		case Expense:
			s.TotalExpense += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}
