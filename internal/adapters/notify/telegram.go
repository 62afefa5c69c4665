package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"luxe_haven/internal/adapters/observability"
	"luxe_haven/internal/domain"
)

// Telegram posts a short booking summary to the front-desk chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	return NewTelegramWithEndpoint(token, chatID, tgbotapi.APIEndpoint, &http.Client{Timeout: 10 * time.Second})
}

// NewTelegramWithEndpoint is NewTelegram against a custom Bot API endpoint ("…/bot%s/%s").
func NewTelegramWithEndpoint(token string, chatID int64, endpoint string, hc *http.Client) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("telegram token and chat id are required")
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, hc)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) BookingCreated(ctx context.Context, r domain.BookingReceipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	_, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, Summary(r)))
	status := http.StatusOK
	if err != nil {
		status = http.StatusBadGateway
	}
	observability.ObserveExternal("telegram", "sendMessage", status, time.Since(start))
	observability.ObserveNotification("telegram", err)
	return err
}
