// Package assistant answers shopper questions through the Gemini API.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/dzinstall/storefront/internal/domain/model"
)

const (
	replyUnavailable = "عذراً، خدمة الذكاء الاصطناعي غير متوفرة حالياً."
	replyFailed      = "حدث خطأ في الاتصال، يرجى المحاولة لاحقاً."
	replyEmpty       = "لم أستطع الحصول على إجابة، يرجى المحاولة لاحقاً."

	requestTimeout = 20 * time.Second
	apiVersion     = "v1beta"
)

var errEmptyAnswer = errors.New("empty answer")

// Options configures the Gemini endpoint.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
}

// GeminiClient implements the product advisor over generateContent.
// models is nil when no API key is configured.
type GeminiClient struct {
	model  string
	models *genai.Models
	logger *slog.Logger
}

// NewGeminiClient creates a client. An empty API key is allowed; every
// question then gets the unavailable reply.
func NewGeminiClient(ctx context.Context, opts Options, logger *slog.Logger) (*GeminiClient, error) {
	parsed, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gemini url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gemini url must be absolute")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("gemini model is required")
	}

	c := &GeminiClient{model: opts.Model, logger: logger}
	if opts.APIKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: requestTimeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    strings.TrimSuffix(parsed.String(), "/") + "/",
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.models = client.Models
	return c, nil
}

// Ask never fails: upstream problems are logged and answered with a canned reply.
func (c *GeminiClient) Ask(ctx context.Context, product model.Product, question string) string {
	if c.models == nil {
		return replyUnavailable
	}

	answer, err := c.generate(ctx, Prompt(product, question))
	switch {
	case errors.Is(err, errEmptyAnswer):
		return replyEmpty
	case err != nil:
		c.logger.Error("gemini request failed",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		return replyFailed
	}
	return answer
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errEmptyAnswer
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	answer := strings.TrimSpace(b.String())
	if answer == "" {
		return "", errEmptyAnswer
	}
	return answer, nil
}

// Prompt renders the sales assistant instructions for product.
func Prompt(product model.Product, question string) string {
	var b strings.Builder
	b.WriteString("أنت مساعد مبيعات ذكي في تطبيق \"DzInstallments\" في الجزائر.\n\n")
	b.WriteString("المنتج الحالي:\n")
	fmt.Fprintf(&b, "الاسم: %s\n", product.Name)
	fmt.Fprintf(&b, "الماركة: %s\n", product.Brand)
	fmt.Fprintf(&b, "الوصف: %s\n", product.Description)
	fmt.Fprintf(&b, "السعر الإجمالي: %d دج\n", product.TotalPrice)
	fmt.Fprintf(&b, "خطة التقسيط: %d دج لمدة %d أشهر\n", product.Plan.MonthlyPrice, product.Plan.Months)
	fmt.Fprintf(&b, "المميزات: %s\n\n", strings.Join(product.Features, ", "))
	fmt.Fprintf(&b, "سؤال العميل: %s\n\n", question)
	b.WriteString("أجب باختصار وباللهجة الجزائرية البيضاء المهذبة أو العربية الفصحى المبسطة. ركز على إقناع الزبون.")
	return b.String()
}
