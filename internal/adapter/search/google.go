package search

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"webscout/internal/domain"
)

const (
	googleEndpoint    = "https://www.googleapis.com/customsearch/v1"
	maxSearchBodySize = 512 * 1024 // 512KB
)

// googleResponse models the relevant portion of the Custom Search JSON API
// response.
type googleResponse struct {
	Items []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"items"`
}

// GoogleBackend performs general web searches via the Google Custom Search
// JSON API. Credentials are read from GOOGLE_API_KEY and GOOGLE_CSE_ID at
// call time, not cached.
type GoogleBackend struct {
	client   *http.Client
	endpoint string
	logger   *slog.Logger
}

// NewGoogleBackend creates a Google Custom Search backend.
func NewGoogleBackend(client *http.Client, logger *slog.Logger) *GoogleBackend {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &GoogleBackend{
		client:   client,
		endpoint: googleEndpoint,
		logger:   logger,
	}
}

func (b *GoogleBackend) Name() string { return "google" }

func (b *GoogleBackend) Search(ctx context.Context, query string, numResults int) ([]domain.RawHit, error) {
	const op = "GoogleBackend.Search"

	apiKey := os.Getenv("GOOGLE_API_KEY")
	cseID := os.Getenv("GOOGLE_CSE_ID")
	if apiKey == "" || cseID == "" {
		return nil, domain.NewDomainError(op, domain.ErrConfigMissing,
			"GOOGLE_API_KEY and GOOGLE_CSE_ID must be set")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint, nil)
	if err != nil {
		return nil, domain.WrapOp(op, err)
	}

	q := req.URL.Query()
	q.Set("key", apiKey)
	q.Set("cx", cseID)
	q.Set("q", query)
	q.Set("num", strconv.Itoa(numResults))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, domain.NewDomainError(op, domain.ErrUpstream, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSearchBodySize))
	if err != nil {
		return nil, domain.NewDomainError(op, domain.ErrUpstream, "read response: "+err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewDomainError(op, domain.ErrUpstream,
			"HTTP "+strconv.Itoa(resp.StatusCode)+": "+string(body))
	}

	var parsed googleResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, domain.NewDomainError(op, domain.ErrUpstream, "parse response: "+err.Error())
	}
	if parsed.Items == nil {
		return nil, domain.NewDomainError(op, domain.ErrUpstream, "response missing items field")
	}

	hits := make([]domain.RawHit, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if len(hits) >= numResults {
			break
		}
		hits = append(hits, domain.RawHit{Title: item.Title, URL: item.Link})
	}

	b.logger.Debug("google search completed", "query", query, "hits", len(hits))
	return hits, nil
}
