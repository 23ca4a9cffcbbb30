package auth

import "time"

// Strategy issues and verifies bearer tokens bound to a subject (the user's phone1).
type Strategy interface {
	IssueToken(subject string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	Now func() time.Time
}

const defaultTTL = 24 * time.Hour
