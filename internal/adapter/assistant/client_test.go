package assistant

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dzinstall/storefront/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testProduct() model.Product {
	return model.Product{
		ID:          "p1",
		Name:        "Galaxy S24",
		Brand:       "Samsung",
		Description: "هاتف ذكي",
		TotalPrice:  120000,
		Plan:        model.InstallmentPlan{Months: 12, MonthlyPrice: 10000},
		Features:    []string{"5G", "AMOLED"},
	}
}

func newTestClient(t *testing.T, key, baseURL string) *GeminiClient {
	t.Helper()
	client, err := NewGeminiClient(context.Background(), Options{APIKey: key, BaseURL: baseURL, Model: "gemini-2.5-flash"}, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewGeminiClientValidatesOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "bad url", opts: Options{BaseURL: "://bad", Model: "m"}},
		{name: "relative url", opts: Options{BaseURL: "/relative", Model: "m"}},
		{name: "no model", opts: Options{BaseURL: "http://example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGeminiClient(context.Background(), tt.opts, testLogger()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestAskWithoutKeyReturnsUnavailable(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	got := newTestClient(t, "", server.URL).Ask(context.Background(), testProduct(), "كم الضمان؟")
	if got != replyUnavailable {
		t.Fatalf("unexpected reply %q", got)
	}
	if called {
		t.Fatal("expected no upstream call without api key")
	}
}

type sentRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func TestAskSendsPromptAndReturnsAnswer(t *testing.T) {
	var (
		gotPath string
		gotKey  string
		gotBody sentRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"  الضمان سنتين  "}]}}]}`)
	}))
	defer server.Close()

	got := newTestClient(t, "secret", server.URL).Ask(context.Background(), testProduct(), "كم الضمان؟")
	if got != "الضمان سنتين" {
		t.Fatalf("unexpected reply %q", got)
	}
	if !strings.HasSuffix(gotPath, "/v1beta/models/gemini-2.5-flash:generateContent") {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "secret" {
		t.Fatalf("unexpected key %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request body %+v", gotBody)
	}
	prompt := gotBody.Contents[0].Parts[0].Text
	for _, want := range []string{"Galaxy S24", "Samsung", "120000 دج", "10000 دج لمدة 12 أشهر", "5G, AMOLED", "كم الضمان؟"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAskFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, want: replyEmpty},
		{name: "blank text", status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`, want: replyEmpty},
		{name: "no content", status: http.StatusOK, body: `{"candidates":[{"finishReason":"SAFETY"}]}`, want: replyEmpty},
		{name: "api error", status: http.StatusForbidden, body: `{"error":{"message":"bad key"}}`, want: replyFailed},
		{name: "malformed json", status: http.StatusOK, body: `{`, want: replyFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			got := newTestClient(t, "secret", server.URL).Ask(context.Background(), testProduct(), "سؤال")
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAskTransportErrorReturnsFailedReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	got := newTestClient(t, "secret", url).Ask(context.Background(), testProduct(), "سؤال")
	if got != replyFailed {
		t.Fatalf("unexpected reply %q", got)
	}
}
