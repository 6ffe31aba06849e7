// Package notify delivers back-office notifications.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageRunes is Telegram's limit for a single text message.
const maxMessageRunes = 4096

// sender is the part of *tgbotapi.BotAPI the notifier uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts plain-text messages to one chat.
type TelegramNotifier struct {
	bot    sender
	chatID int64
}

var _ portsrepo.Notifier = (*TelegramNotifier)(nil)

// NewTelegramNotifier authenticates the bot token with Telegram.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("telegram bot token and chat id are required")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect telegram bot: %w", err)
	}
	slog.Info("Telegram bot authorised", slog.String("bot", bot.Self.UserName))
	return newTelegramNotifier(bot, chatID), nil
}

func newTelegramNotifier(bot sender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

// Notify sends message, splitting it when it exceeds Telegram's size limit.
func (n *TelegramNotifier) Notify(ctx context.Context, message string) error {
	for _, part := range split(message, maxMessageRunes) {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := tgbotapi.NewMessage(n.chatID, part)
		msg.DisableWebPagePreview = true
		if _, err := n.bot.Send(msg); err != nil {
			return fmt.Errorf("failed to send telegram message: %w", err)
		}
	}
	return nil
}

// split cuts s into chunks of at most limit runes, preferring line breaks.
func split(s string, limit int) []string {
	r := []rune(s)
	var parts []string
	for len(r) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if r[i-1] == '\n' {
				cut = i
				break
			}
		}
		parts = append(parts, string(r[:cut]))
		r = r[cut:]
	}
	if len(r) > 0 || len(parts) == 0 {
		parts = append(parts, string(r))
	}
	return parts
}
