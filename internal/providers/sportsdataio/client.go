package sportsdataio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/metrics"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers"
)

const (
	nflBaseURL = "https://api.sportsdata.io/v3/nfl/scores/json"
	nbaBaseURL = "https://api.sportsdata.io/v3/nba/scores/json"
)

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

// fetchJSON performs an uncached upstream GET and returns the raw body.
// SportsDataIO responses are passed through to clients provider-shaped.
func fetchJSON(ctx context.Context, httpClient *http.Client, provider, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s upstream: %w", provider, err)
	}
	defer resp.Body.Close()

	metrics.ProviderRequests.WithLabelValues(provider, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return nil, &providers.UpstreamError{Provider: provider, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s body: %w", provider, err)
	}
	return json.RawMessage(body), nil
}
