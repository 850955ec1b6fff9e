package search

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// roundTripFunc lets tests stub HTTP transports.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

// countingTransport counts outbound calls before delegating.
type countingTransport struct {
	calls int
	next  roundTripFunc
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	return c.next(req)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("google")
	require.NoError(t, err)
	require.Equal(t, KindGoogle, k)

	k, err = ParseKind("metaphor")
	require.NoError(t, err)
	require.Equal(t, KindMetaphor, k)

	_, err = ParseKind("bing")
	require.Error(t, err)
}

func TestNewBackendByKind(t *testing.T) {
	logger := newTestLogger()

	b, err := New(KindGoogle, nil, logger)
	require.NoError(t, err)
	require.Equal(t, "google", b.Name())

	b, err = New(KindMetaphor, nil, logger)
	require.NoError(t, err)
	require.Equal(t, "metaphor", b.Name())

	_, err = New(Kind("redis"), nil, logger)
	require.Error(t, err)
}
