package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/trace"

	"webscout/internal/adapter/search"
	"webscout/internal/domain"
	"webscout/internal/infra/tracer"
)

const (
	defaultNumResults = 5
	maxNumResults     = 20
)

// WebSearchTool runs a query against a search backend, fetches each hit and
// extracts its visible text, and renders the results as an agent-readable
// text block.
type WebSearchTool struct {
	backend    search.Backend
	normalizer *search.Normalizer
	logger     *slog.Logger
}

// NewWebSearchTool creates a search tool bound to one backend.
func NewWebSearchTool(backend search.Backend, normalizer *search.Normalizer, logger *slog.Logger) *WebSearchTool {
	return &WebSearchTool{
		backend:    backend,
		normalizer: normalizer,
		logger:     logger,
	}
}

type webSearchParams struct {
	Query      string `json:"query"`
	NumResults int    `json:"num_results"`
}

// Name returns the capability name exposed to the agent. The Metaphor
// backend keeps its own name so agents can target it explicitly.
func (t *WebSearchTool) Name() string {
	if t.backend.Name() == string(search.KindMetaphor) {
		return "metaphor_search"
	}
	return "web_search"
}

func (t *WebSearchTool) Description() string {
	return "Search the web and return up to num_results links relevant to the given query. " +
		"Each result includes the page title, link, and a summary of the page content. " +
		"When using this tool, ONLY show the required JSON, nothing else."
}

func (t *WebSearchTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {
					"type": "string",
					"description": "The search query"
				},
				"num_results": {
					"type": "integer",
					"description": "Number of results to return",
					"minimum": 1,
					"maximum": 20
				}
			},
			"required": ["query", "num_results"]
		}`),
	}
}

func (t *WebSearchTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, t.Name(), t.logger, params,
		func(ctx context.Context, span trace.Span, p webSearchParams) (any, error) {
			query := strings.TrimSpace(p.Query)
			if err := RequireField("query", query); err != nil {
				return ErrResult("%v", err)
			}

			numResults := p.NumResults
			if numResults == 0 {
				numResults = defaultNumResults
			}
			if err := ValidatePositive("num_results", numResults); err != nil {
				return ErrResult("%v", err)
			}
			if numResults > maxNumResults {
				numResults = maxNumResults
			}

			searchID := ulid.Make().String()
			span.SetAttributes(
				tracer.StringAttr("search.id", searchID),
				tracer.StringAttr("search.backend", t.backend.Name()),
				tracer.StringAttr("search.query", query),
				tracer.IntAttr("search.num_results", numResults),
			)
			log := t.logger.With("search_id", searchID, "backend", t.backend.Name())
			log.Info("running web search", "query", query, "num_results", numResults)

			hits, err := t.backend.Search(ctx, query, numResults)
			if err != nil {
				return nil, err
			}
			if len(hits) > numResults {
				hits = hits[:numResults]
			}

			results := make([]domain.WebSearchResult, 0, len(hits))
			for _, hit := range hits {
				res, err := t.normalizer.Normalize(ctx, hit)
				if err != nil {
					log.Warn("skipping search hit", "url", hit.URL, "error", err)
					continue
				}
				results = append(results, res)
			}

			span.SetAttributes(tracer.IntAttr("search.results", len(results)))
			if len(results) == 0 {
				return TextResult(fmt.Sprintf("No search results found for %q.", query)), nil
			}
			return domain.RenderResults(results), nil
		})
}
