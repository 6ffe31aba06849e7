package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestNotify_SendsToChat(t *testing.T) {
	bot := &fakeSender{}
	n := newTelegramNotifier(bot, 42)

	require.NoError(t, n.Notify(context.Background(), "Upcoming renewals (next 7 days): 1"))

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Equal(t, "Upcoming renewals (next 7 days): 1", bot.sent[0].Text)
}

func TestNotify_SplitsLongMessages(t *testing.T) {
	bot := &fakeSender{}
	n := newTelegramNotifier(bot, 42)
	line := strings.Repeat("x", 99) + "\n"

	require.NoError(t, n.Notify(context.Background(), strings.Repeat(line, 100)))

	require.Len(t, bot.sent, 3)
	for _, m := range bot.sent {
		assert.LessOrEqual(t, len([]rune(m.Text)), maxMessageRunes)
		assert.True(t, strings.HasSuffix(m.Text, "\n"))
	}
}

func TestNotify_SendError(t *testing.T) {
	n := newTelegramNotifier(&fakeSender{err: errors.New("chat not found")}, 42)

	err := n.Notify(context.Background(), "hello")

	assert.ErrorContains(t, err, "chat not found")
}

func TestNewTelegramNotifier_RequiresConfig(t *testing.T) {
	_, err := NewTelegramNotifier("", 42)
	assert.Error(t, err)
}
