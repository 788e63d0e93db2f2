package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autocare/internal/models"
)

// TelegramService pushes new-lead notifications to the operations chat so
// the sales team sees inquiries without watching the dashboard.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramService returns nil when no token is configured; callers treat
// a nil notifier as "integration disabled".
func NewTelegramService(botToken string, chatID int64) (*TelegramService, error) {
	if botToken == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramService{bot: bot, chatID: chatID}, nil
}

func (t *TelegramService) NotifyNewLead(lead *models.Lead) error {
	if t == nil || t.bot == nil {
		return nil
	}
	text := fmt.Sprintf(
		"🚗 New lead #%d\n%s — %s\nCity: %s\nVehicle: %s\nIssue: %s",
		lead.ID, lead.Name, lead.Phone, lead.City, lead.Vehicle, lead.Issue,
	)
	msg := tgbotapi.NewMessage(t.chatID, text)
	_, err := t.bot.Send(msg)
	return err
}
