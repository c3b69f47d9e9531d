package services

import (
	"context"
	"fmt"
	"html"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"traites/internal/models"
	"traites/internal/utils"
)

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts plan events to the treasury chat.
type TelegramNotifier struct {
	bot    botAPI
	chatID int64
}

// NewTelegramNotifier returns a NopNotifier when the bot is not configured.
func NewTelegramNotifier(token string, chatID int64) (Notifier, error) {
	if token == "" || chatID == 0 {
		log.Printf("[tg][skip] token or chatID empty (token? %v chatID=%d)", token != "", chatID)
		return NopNotifier{}, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) PlanCreated(_ context.Context, plan *models.InstallmentPlan) {
	kind := "Client"
	if plan.PartyKind == models.PartySupplier {
		kind = "Fournisseur"
	}
	text := fmt.Sprintf("<b>Nouvel échéancier</b>\n%s: %s\nMontant: %s\nTraites: %d, première échéance %s",
		kind,
		html.EscapeString(plan.Counterparty.Name),
		utils.FormatAmount(plan.TotalAmount),
		plan.InstallmentCount,
		utils.FormatDate(plan.FirstDueDate),
	)
	if plan.ReferenceInvoiceNumber != "" {
		text += "\nFacture: " + html.EscapeString(plan.ReferenceInvoiceNumber)
	}
	t.send(text)
}

func (t *TelegramNotifier) OperationFailed(_ context.Context, operation string, planID uuid.UUID, err error) {
	text := fmt.Sprintf("<b>Échec %s</b>\nPlan: <code>%s</code>\n%s",
		html.EscapeString(operation), planID, html.EscapeString(err.Error()))
	t.send(text)
}

func (t *TelegramNotifier) send(text string) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	log.Printf("[tg][send] chatID=%d text=%q", t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][send][err] %v", err)
	}
}
