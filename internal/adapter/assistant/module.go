package assistant

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/dzinstall/storefront/internal/config"
	"github.com/dzinstall/storefront/internal/usecase"
)

// Module exposes the Gemini product advisor to the fx graph.
var Module = fx.Provide(newAdvisor)

type advisorParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newAdvisor(p advisorParams) (usecase.ProductAdvisor, error) {
	if p.Config.GeminiAPIKey == "" {
		p.Logger.Warn("gemini api key not set, product assistant disabled")
	}
	return NewGeminiClient(p.Ctx, Options{
		APIKey:  p.Config.GeminiAPIKey,
		BaseURL: p.Config.GeminiBaseURL,
		Model:   p.Config.GeminiModel,
	}, p.Logger)
}
