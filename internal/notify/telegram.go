package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier mirrors notifications to a Telegram chat, so logout
// summaries and reminder confirmations also reach a phone.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] telegram mirror authorized on account %s", api.Self.UserName)

	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

func (t *TelegramNotifier) Send(n Notification) error {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("%s\n%s", n.Title, n.Message))
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
