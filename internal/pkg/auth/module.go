package auth

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/dzinstall/storefront/internal/config"
)

// Module provides the bcrypt PasswordHasher and the HMAC token Strategy.
var Module = fx.Options(
	fx.Provide(
		func() PasswordHasher { return NewBcryptHasher(0) },
		newTokenStrategy,
	),
)

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger `optional:"true"`
}

func newTokenStrategy(p strategyParams) Strategy {
	if p.Logger != nil && (p.Config.AuthSecret == "" || p.Config.AuthSecret == config.DefaultAuthSecret) {
		p.Logger.Warn("auth tokens are signed with the default secret; set AUTH_SECRET")
	}
	return NewHMACStrategy(p.Config.AuthSecret, Options{TTL: p.Config.TokenTTL})
}
