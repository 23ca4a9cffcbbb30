package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func encodedSubject(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func signedToken(s *HMACStrategy, payload string) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", payload, s.sign(payload))))
}

func TestNewHMACStrategy_Defaults(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != defaultTTL {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
	if strategy.now == nil {
		t.Fatal("expected clock")
	}
}

func TestHMACStrategy_IssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken("0550123456")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	subject, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if subject != "0550123456" {
		t.Fatalf("unexpected subject: %q", subject)
	}
}

func TestHMACStrategy_SubjectWithSeparator(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	token, err := strategy.IssueToken("a:b:c")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if subject, err := strategy.ParseToken(token); err != nil || subject != "a:b:c" {
		t.Fatalf("unexpected parse result %q %v", subject, err)
	}
}

func TestHMACStrategy_IssueEmptySubject(t *testing.T) {
	if _, err := NewHMACStrategy("secret", Options{}).IssueToken(""); err == nil {
		t.Fatal("expected error")
	}
}

func TestHMACStrategy_ParseInvalid(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	future := time.Now().Add(time.Minute).Unix()

	cases := map[string]string{
		"not base64":    "not-base64",
		"two parts":     base64.StdEncoding.EncodeToString([]byte("only:two")),
		"bad subject":   signedToken(strategy, fmt.Sprintf("%%%%:%d", future)),
		"empty subject": signedToken(strategy, fmt.Sprintf(":%d", future)),
		"bad expiry":    signedToken(strategy, encodedSubject("0550")+":not-a-number"),
		"expired":       signedToken(strategy, fmt.Sprintf("%s:%d", encodedSubject("0550"), time.Now().Add(-time.Minute).Unix())),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestHMACStrategy_ParseTamperedSignature(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken("0661987654")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	raw, _ := base64.StdEncoding.DecodeString(token)
	parts := strings.Split(string(raw), ":")
	parts[2] = "tampered"
	tampered := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, ":")))
	if _, err := strategy.ParseToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	other := NewHMACStrategy("other-secret", Options{})
	if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestHMACStrategy_ExpiresWithClock(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour, Now: func() time.Time { return now }})
	token, err := strategy.IssueToken("0770112233")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	now = now.Add(59 * time.Minute)
	if _, err := strategy.ParseToken(token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestHMACStrategy_Name(t *testing.T) {
	if NewHMACStrategy("secret", Options{}).Name() != "hmac" {
		t.Fatal("unexpected name")
	}
}
