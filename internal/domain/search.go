package domain

import "strings"

// Default truncation limits for normalized search results, in runes.
const (
	DefaultMaxContentLength = 3500
	DefaultMaxSummaryLength = 300
)

// RawHit is a provider-native search record before normalization.
// Title may be empty if the provider omits it; URL is always set.
type RawHit struct {
	Title string
	URL   string
}

// WebSearchResult is the uniform entity built from one search hit.
// Summary is always a prefix of FullContent; both respect the truncation
// limits they were normalized with. Immutable after construction.
type WebSearchResult struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	FullContent string `json:"full_content"`
	Summary     string `json:"summary"`
}

// String renders the result in the text format handed to the agent runtime.
func (r WebSearchResult) String() string {
	return "Title: " + r.Title + "\nLink: " + r.Link + "\nSummary: " + r.Summary
}

// RenderResults serializes results into a single text block, one record per
// result separated by a blank line. Input order is preserved because callers
// rely on the backend's relevance ranking.
func RenderResults(results []WebSearchResult) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.String()
	}
	return strings.Join(parts, "\n\n")
}
