package telegram

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"

	"github.com/dzinstall/storefront/internal/config"
	"github.com/dzinstall/storefront/internal/usecase"
)

// Module exposes the Telegram notifier to the fx graph as `name:"admin"`.
var Module = fx.Provide(
	fx.Annotate(newNotifier, fx.ResultTags(`name:"admin"`)),
)

var apiEndpoint = tgbotapi.APIEndpoint

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// newNotifier falls back to a no-op when the bot is not configured or cannot
// be authorized.
func newNotifier(p notifierParams) usecase.Notifier {
	if p.Config.TelegramToken == "" || p.Config.TelegramChatID == 0 {
		p.Logger.Info("telegram notifications disabled")
		return NopNotifier{}
	}

	notifier, err := Connect(p.Config.TelegramToken, apiEndpoint, p.Config.TelegramChatID, p.Logger)
	if err != nil {
		p.Logger.Warn("telegram notifications disabled", slog.String("error", err.Error()))
		return NopNotifier{}
	}
	return notifier
}
