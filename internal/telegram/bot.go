// Package telegram is the chat transport: it turns bot commands and inline
// keyboard callbacks into ledger operations and renders the replies.
package telegram

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"catatkas/internal/core"
	"catatkas/internal/services"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	service   *services.LedgerService
	exportDir string
}

func NewBot(token string, service *services.LedgerService, exportDir string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:       api,
		service:   service,
		exportDir: exportDir,
	}, nil
}

// Run polls for updates until ctx is cancelled. Commands and callbacks are
// handled inline on this loop, which also serializes per-user read-modify-
// write against the reminder worker going through the same store mutex.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	slog.Info("Bot polling started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			slog.Info("Bot polling stopped", "reason", ctx.Err())
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.CallbackQuery != nil {
				b.handleCallback(update.CallbackQuery)
			} else if update.Message != nil && update.Message.IsCommand() {
				b.handleCommand(update.Message)
			}
		}
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	user := strconv.FormatInt(msg.From.ID, 10)
	args := strings.Fields(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		b.send(msg.Chat.ID, msgHelp)

	case "add":
		b.handleAdd(msg.Chat.ID, user, args)

	case "laporan":
		b.handleReport(msg.Chat.ID, user, args)

	case "export":
		b.handleExport(msg.Chat.ID, user)
	}
}

func (b *Bot) handleAdd(chatID int64, user string, args []string) {
	_, err := b.service.Stage(user, args)
	switch {
	case errors.Is(err, core.ErrMissingArguments), errors.Is(err, core.ErrUnknownKind):
		b.send(chatID, msgBadFormat)
		return
	case errors.Is(err, core.ErrInvalidAmount):
		b.send(chatID, msgBadAmount)
		return
	case err != nil:
		slog.Error("Stage failed", "user", user, "error", err)
		b.send(chatID, msgInternalError)
		return
	}

	prompt := tgbotapi.NewMessage(chatID, msgChooseCategory)
	prompt.ReplyMarkup = categoryKeyboard()
	if _, err := b.api.Send(prompt); err != nil {
		slog.Error("Send category prompt failed", "user", user, "error", err)
	}
}

func (b *Bot) handleReport(chatID int64, user string, args []string) {
	period := string(core.PeriodDay)
	if len(args) > 0 {
		period = args[0]
	}

	summary, err := b.service.Summarize(user, period)
	if errors.Is(err, core.ErrNoTransactions) {
		b.send(chatID, msgNoTransactions)
		return
	}
	if err != nil {
		slog.Error("Summarize failed", "user", user, "error", err)
		b.send(chatID, msgInternalError)
		return
	}

	b.send(chatID, formatSummary(period, summary))
}

func (b *Bot) handleExport(chatID int64, user string) {
	path, err := b.service.Export(user, b.exportDir)
	if errors.Is(err, core.ErrNoTransactions) {
		b.send(chatID, msgNoTransactions)
		return
	}
	if err != nil {
		slog.Error("Export failed", "user", user, "error", err)
		b.send(chatID, msgInternalError)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	if _, err := b.api.Send(doc); err != nil {
		slog.Error("Send document failed", "user", user, "path", path, "error", err)
		b.send(chatID, msgInternalError)
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	// Ack first so the client stops its spinner regardless of the outcome.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		slog.Warn("Callback ack failed", "error", err)
	}

	if cb.Message == nil {
		return
	}

	user := strconv.FormatInt(cb.From.ID, 10)
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	t, err := b.service.ChooseCategory(user, cb.Data)
	switch {
	case errors.Is(err, core.ErrNoPendingTransaction):
		b.edit(chatID, messageID, msgPendingNotFound)
		return
	case errors.Is(err, core.ErrUnknownCategory):
		// Stale or foreign payload, leave the prompt alone.
		slog.Warn("Unknown category payload", "user", user, "payload", cb.Data)
		return
	case err != nil:
		slog.Error("Commit failed", "user", user, "error", err)
		b.edit(chatID, messageID, msgInternalError)
		return
	}

	b.edit(chatID, messageID, formatConfirmation(t))
}

// Notify implements worker.Notifier. The user id is the chat id in string
// form, as keyed by the ledger store.
func (b *Bot) Notify(user, text string) error {
	chatID, err := strconv.ParseInt(user, 10, 64)
	if err != nil {
		return err
	}
	_, err = b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		slog.Error("Send message failed", "chat", chatID, "error", err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		slog.Error("Edit message failed", "chat", chatID, "error", err)
	}
}
