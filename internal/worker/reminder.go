// Package worker runs the periodic reminder fan-out to every known user.
package worker

import (
	"context"
	"log/slog"
	"time"
)

// Notifier delivers a reminder text to one user.
type Notifier interface {
	Notify(user, text string) error
}

// UserLister enumerates the user ids currently known to the ledger store.
type UserLister interface {
	Users() []string
}

// ReminderText is the daily nudge sent to every user.
const ReminderText = "🔔 Jangan lupa catat transaksi hari ini!"

// ReminderWorker fires on a fixed interval and sends the reminder to each
// user. There is no last-reminded state and no per-user opt-out.
type ReminderWorker struct {
	users    UserLister
	notifier Notifier
	interval time.Duration
}

func NewReminderWorker(users UserLister, notifier Notifier, interval time.Duration) *ReminderWorker {
	return &ReminderWorker{
		users:    users,
		notifier: notifier,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled. The first firing happens one full
// interval after start, not at a fixed wall-clock time.
func (w *ReminderWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("Reminder worker started", "interval", w.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker stopped", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single fan-out pass. A delivery failure to one user
// (blocked bot, dead chat) is logged and skipped; the remaining users still
// get their attempt and the next cycle is unaffected.
func (w *ReminderWorker) RunOnce(ctx context.Context) {
	users := w.users.Users()
	sent := 0
	for _, user := range users {
		if ctx.Err() != nil {
			return
		}
		if err := w.notifier.Notify(user, ReminderText); err != nil {
			slog.Warn("Reminder delivery failed", "user", user, "error", err)
			continue
		}
		sent++
	}
	slog.Info("Reminder cycle complete", "users", len(users), "sent", sent)
}
