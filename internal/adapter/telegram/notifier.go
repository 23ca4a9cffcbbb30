// Package telegram alerts the back office about customer activity.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dzinstall/storefront/internal/domain/model"
)

// Sender is the part of the bot API the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier posts order events to one admin chat.
type Notifier struct {
	api    Sender
	chatID int64
	logger *slog.Logger
}

// NewNotifier creates a notifier on an already authorized bot.
func NewNotifier(api Sender, chatID int64, logger *slog.Logger) *Notifier {
	return &Notifier{api: api, chatID: chatID, logger: logger}
}

// Connect authorizes token against endpoint, a tgbotapi endpoint format
// such as tgbotapi.APIEndpoint.
func Connect(token, endpoint string, chatID int64, logger *slog.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("authorize telegram bot: %w", err)
	}
	logger.Info("telegram bot authorized", slog.String("bot", api.Self.UserName))
	return NewNotifier(api, chatID, logger), nil
}

func (n *Notifier) OrderPlaced(ctx context.Context, order model.Order) error {
	return n.send(ctx, orderPlacedText(order))
}

func (n *Notifier) DeliveryInfoSubmitted(ctx context.Context, order model.Order) error {
	return n.send(ctx, deliveryInfoText(order))
}

// send honours ctx only before the request; the bot API has no context support.
func (n *Notifier) send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.api.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

func orderPlacedText(o model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 طلب تقسيط جديد #%s\n", shortID(o.ID))
	fmt.Fprintf(&b, "الزبون: %s (%s)\n", o.CustomerName, o.CustomerPhone)
	fmt.Fprintf(&b, "الولاية: %s\n", o.Wilaya)
	fmt.Fprintf(&b, "المنتج: %s\n", o.ProductName)
	fmt.Fprintf(&b, "القسط: %d دج × %d أشهر", o.MonthlyPrice, o.Months)
	return b.String()
}

func deliveryInfoText(o model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 معلومات إرسال الملفات للطلب #%s\n", shortID(o.ID))
	fmt.Fprintf(&b, "الزبون: %s (%s)\n", o.CustomerName, o.CustomerPhone)
	fmt.Fprintf(&b, "شركة التوصيل: %s\n", o.DeliveryCompany)
	fmt.Fprintf(&b, "رقم التتبع: %s", o.TrackingNumber)
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// NopNotifier drops every event. It is used when no bot is configured.
type NopNotifier struct{}

func (NopNotifier) OrderPlaced(context.Context, model.Order) error           { return nil }
func (NopNotifier) DeliveryInfoSubmitted(context.Context, model.Order) error { return nil }
