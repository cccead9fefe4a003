package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"dorm-backend/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Notifier pushes short messages to the admins' Telegram chat. A nil
// Notifier is valid and does nothing, so the feature is opt-in via env.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifierFromEnv builds a Notifier from TELEGRAM_BOT_TOKEN and
// TELEGRAM_ADMIN_CHAT_ID, or nil when either is unset.
func NewNotifierFromEnv() *Notifier {
	token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	chatRaw := strings.TrimSpace(os.Getenv("TELEGRAM_ADMIN_CHAT_ID"))
	if token == "" || chatRaw == "" {
		return nil
	}

	chatID, err := strconv.ParseInt(chatRaw, 10, 64)
	if err != nil {
		log.Warn().Err(err).Msg("TELEGRAM_ADMIN_CHAT_ID is not a number; notifications disabled")
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Warn().Err(err).Msg("telegram bot init failed; notifications disabled")
		return nil
	}
	return &Notifier{bot: bot, chatID: chatID}
}

func (n *Notifier) send(text string) {
	if n == nil {
		return
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		log.Warn().Err(err).Msg("telegram send failed")
	}
}

// PaymentSubmitted tells admins a new slip is waiting for review.
func (n *Notifier) PaymentSubmitted(p *models.Payment) {
	target := "booking"
	if p.UtilityBillID != nil {
		target = "utility bill"
	}
	n.send(fmt.Sprintf("New %s payment slip #%d (%.2f) awaiting verification", target, p.ID, p.Amount))
}

// AnnouncementPublished mirrors a new announcement to the chat.
func (n *Notifier) AnnouncementPublished(a *models.Announcement) {
	n.send(fmt.Sprintf("Announcement published [%s]: %s", a.Priority, a.Title))
}
