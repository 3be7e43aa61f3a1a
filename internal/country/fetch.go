package country

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTableURL is the countries_codes_and_coordinates gist that the
	// reference table is published at.
	DefaultTableURL = "https://gist.githubusercontent.com/tadast/8827699/raw/countries_codes_and_coordinates.csv"

	// DefaultFetchTimeout bounds a single table download.
	DefaultFetchTimeout = 30 * time.Second

	// fetchRateLimit keeps repeated fetches polite to the gist host.
	fetchRateLimit = 1.0

	// maxTableBytes caps the download size; the real table is ~20 KB.
	maxTableBytes = 4 << 20
)

// Fetcher downloads the reference table over HTTP.
type Fetcher struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	url        string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.httpClient = hc
	}
}

// WithURL sets a custom table URL (for testing and mirrors).
func WithURL(url string) FetcherOption {
	return func(f *Fetcher) {
		f.url = url
	}
}

// NewFetcher creates a reference table fetcher. The table URL can be
// overridden via the COMENTION_COUNTRIES_URL environment variable.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: DefaultFetchTimeout},
		limiter:    rate.NewLimiter(rate.Limit(fetchRateLimit), 1),
		url:        DefaultTableURL,
	}

	if url := os.Getenv("COMENTION_COUNTRIES_URL"); url != "" {
		f.url = url
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the reference table, validates that it parses, and
// writes it to dest. Returns the number of countries in the table.
// Nothing is written when the download is malformed, so a previously
// cached table survives a bad fetch.
func (f *Fetcher) Fetch(ctx context.Context, dest string) (int, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching reference table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetching reference table: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTableBytes))
	if err != nil {
		return 0, fmt.Errorf("reading response: %w", err)
	}

	table, err := ParseTable(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("validating downloaded table: %w", err)
	}

	if err := os.WriteFile(dest, data, 0644); err != nil {
		return 0, fmt.Errorf("writing reference table: %w", err)
	}
	return table.Len(), nil
}
