package search

import (
	"bytes"
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

const metaphorEndpoint = "https://api.metaphor.systems/search"

// metaphorRequest is the wire format of a Metaphor search call.
type metaphorRequest struct {
	Query      string `json:"query"`
	NumResults int    `json:"numResults"`
}

// metaphorResponse models the relevant portion of the Metaphor response.
type metaphorResponse struct {
	Results []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"results"`
}

// MetaphorBackend performs content-discovery searches via the Metaphor API.
// The API key is read from METAPHOR_API_KEY at call time and checked before
// any network I/O.
type MetaphorBackend struct {
	client   *http.Client
	endpoint string
	logger   *slog.Logger
}

// NewMetaphorBackend creates a Metaphor search backend.
func NewMetaphorBackend(client *http.Client, logger *slog.Logger) *MetaphorBackend {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &MetaphorBackend{
		client:   client,
		endpoint: metaphorEndpoint,
		logger:   logger,
	}
}

func (b *MetaphorBackend) Name() string { return "metaphor" }

func (b *MetaphorBackend) Search(ctx context.Context, query string, numResults int) ([]domain.RawHit, error) {
	const op = "MetaphorBackend.Search"

	apiKey := os.Getenv("METAPHOR_API_KEY")
	if apiKey == "" {
		return nil, domain.NewDomainError(op, domain.ErrConfigMissing,
			"METAPHOR_API_KEY must be set")
	}

	payload, err := json.Marshal(metaphorRequest{Query: query, NumResults: numResults})
	if err != nil {
		return nil, domain.WrapOp(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, domain.WrapOp(op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", apiKey)

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

	var parsed metaphorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, domain.NewDomainError(op, domain.ErrUpstream, "parse response: "+err.Error())
	}
	if parsed.Results == nil {
		return nil, domain.NewDomainError(op, domain.ErrUpstream, "response missing results field")
	}

	hits := make([]domain.RawHit, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if len(hits) >= numResults {
			break
		}
		hits = append(hits, domain.RawHit{Title: r.Title, URL: r.URL})
	}

	b.logger.Debug("metaphor search completed", "query", query, "hits", len(hits))
	return hits, nil
}
