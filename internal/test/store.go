package test

import (
	"io"
	"log/slog"

	"github.com/dzinstall/storefront/internal/storage/memory"
	"github.com/dzinstall/storefront/internal/store"
)

// DiscardLogger returns a logger that writes nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// NewMemoryStore returns a typed store over a fresh in-memory backend.
func NewMemoryStore() *store.Store {
	return store.New(memory.New(), DiscardLogger())
}
