package search

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"webscout/internal/domain"
)

const (
	defaultFetchTimeout = 10 * time.Second
	maxFetchBodySize    = 2 << 20 // 2MB
	defaultUserAgent    = "webscout/1.0"
)

// Normalizer converts raw search hits into WebSearchResult entities by
// fetching each linked page and extracting its visible text. One outbound
// request per hit, no caching across calls. Failures are classified
// domain.ErrFetch so the caller can skip the hit and continue the batch.
type Normalizer struct {
	client     *http.Client
	userAgent  string
	maxContent int
	maxSummary int
	logger     *slog.Logger
}

// NewNormalizer creates a result normalizer. A nil client gets a default
// with a bounded timeout; non-positive limits fall back to the defaults.
// The summary limit is capped at the content limit.
func NewNormalizer(client *http.Client, maxContent, maxSummary int, logger *slog.Logger) *Normalizer {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	if maxContent <= 0 {
		maxContent = domain.DefaultMaxContentLength
	}
	if maxSummary <= 0 {
		maxSummary = domain.DefaultMaxSummaryLength
	}
	if maxSummary > maxContent {
		maxSummary = maxContent
	}
	return &Normalizer{
		client:     client,
		userAgent:  defaultUserAgent,
		maxContent: maxContent,
		maxSummary: maxSummary,
		logger:     logger,
	}
}

// SetUserAgent overrides the User-Agent header sent on page fetches.
// Empty values are ignored.
func (n *Normalizer) SetUserAgent(ua string) {
	if ua != "" {
		n.userAgent = ua
	}
}

// Normalize fetches hit.URL, extracts the page's visible text, and builds
// the uniform result. The summary is a prefix of the full content, never
// fetched independently.
func (n *Normalizer) Normalize(ctx context.Context, hit domain.RawHit) (domain.WebSearchResult, error) {
	const op = "Normalizer.Normalize"

	if hit.URL == "" {
		return domain.WebSearchResult{}, domain.NewDomainError(op, domain.ErrInvalidInput, "hit has no URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, hit.URL, nil)
	if err != nil {
		return domain.WebSearchResult{}, domain.NewDomainError(op, domain.ErrFetch, err.Error())
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain")

	resp, err := n.client.Do(req)
	if err != nil {
		return domain.WebSearchResult{}, domain.NewDomainError(op, domain.ErrFetch, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return domain.WebSearchResult{}, domain.NewDomainError(op, domain.ErrFetch,
			"HTTP "+resp.Status+" for "+hit.URL)
	}
	if ct := resp.Header.Get("Content-Type"); !isTextContent(ct) {
		return domain.WebSearchResult{}, domain.NewDomainError(op, domain.ErrFetch,
			"non-text content type "+ct)
	}

	text, err := ExtractText(io.LimitReader(resp.Body, maxFetchBodySize))
	if err != nil {
		return domain.WebSearchResult{}, domain.NewDomainError(op, domain.ErrFetch,
			"parse page: "+err.Error())
	}

	full := truncateRunes(text, n.maxContent)
	summary := truncateRunes(full, n.maxSummary)

	n.logger.Debug("normalized search hit", "url", hit.URL, "content_len", len(full))
	return domain.WebSearchResult{
		Title:       hit.Title,
		Link:        hit.URL,
		FullContent: full,
		Summary:     summary,
	}, nil
}

// ExtractText returns the human-visible text of an HTML document: script,
// style and template subtrees are dropped, remaining text nodes are trimmed
// and joined with single spaces.
func ExtractText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript, template").Remove()

	var parts []string
	for _, node := range doc.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " "), nil
}

// collectText appends the whitespace-collapsed content of every text node
// under n, in document order.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if fields := strings.Fields(n.Data); len(fields) > 0 {
			*parts = append(*parts, strings.Join(fields, " "))
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// isTextContent reports whether a Content-Type header names a parseable
// text document. An absent header is accepted.
func isTextContent(ct string) bool {
	if ct == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case mediaType == "application/xhtml+xml", mediaType == "application/xml":
		return true
	}
	return false
}

// truncateRunes cuts s to at most max runes. Limits are specified in
// characters, not bytes.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
