package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"webscout/internal/domain"
)

// Kind identifies a search backend implementation. The backend is resolved
// once at configuration time, never per call.
type Kind string

const (
	// KindGoogle is the general web search backend (Google Custom Search).
	KindGoogle Kind = "google"
	// KindMetaphor is the content-discovery backend (Metaphor API).
	KindMetaphor Kind = "metaphor"
)

// ParseKind converts a config string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindGoogle:
		return KindGoogle, nil
	case KindMetaphor:
		return KindMetaphor, nil
	}
	return "", fmt.Errorf("unknown search backend %q (want: google, metaphor)", s)
}

// Backend abstracts one external search provider.
// Implementations are pure adapters: a single attempt per call, no retries,
// no caching, no rate limiting. Errors propagate to the caller.
type Backend interface {
	// Search returns up to numResults provider-native hits for query,
	// in the provider's relevance order.
	Search(ctx context.Context, query string, numResults int) ([]domain.RawHit, error)
	// Name returns the backend identifier (e.g. "metaphor").
	Name() string
}

// New builds the backend for the given kind.
func New(kind Kind, client *http.Client, logger *slog.Logger) (Backend, error) {
	switch kind {
	case KindGoogle:
		return NewGoogleBackend(client, logger), nil
	case KindMetaphor:
		return NewMetaphorBackend(client, logger), nil
	}
	return nil, fmt.Errorf("unknown search backend %q", kind)
}
