package client

import (
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ledgerTransport decorates outbound requests: it paces them through a
// client-side rate limiter, tags each with a correlation ID, and attaches
// credentials when an API key is configured.
type ledgerTransport struct {
	apiKey  string
	limiter *rate.Limiter
	base    http.RoundTripper
}

func newLedgerTransport(apiKey string, requestsPerSecond, burst int) *ledgerTransport {
	return &ledgerTransport{
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		base:    http.DefaultTransport,
	}
}

func (t *ledgerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	req = req.Clone(req.Context())

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	return t.base.RoundTrip(req)
}
