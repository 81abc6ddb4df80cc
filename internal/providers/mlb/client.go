package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/cache"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/metrics"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/pkg/models"
)

const defaultBaseURL = "https://statsapi.mlb.com/api/v1"

// Client fetches MLB Stats API data through the edge cache and maps it
// into normalized models.
type Client struct {
	baseURL string
	http    *cache.Client
	now     func() time.Time
}

// NewClient constructs an MLB client. An empty baseURL uses the public
// Stats API.
func NewClient(baseURL string, cached *cache.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    cached,
		now:     time.Now,
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	entry, err := c.http.Get(ctx, c.baseURL+path)
	if err != nil {
		return fmt.Errorf("mlb: fetching %s: %w", path, err)
	}
	metrics.ProviderRequests.WithLabelValues(providerName, strconv.Itoa(entry.Status)).Inc()

	if entry.Status != http.StatusOK {
		return &providers.UpstreamError{Provider: providerName, StatusCode: entry.Status}
	}
	if err := json.Unmarshal(entry.Body, out); err != nil {
		return fmt.Errorf("mlb: decoding %s: %w", path, err)
	}
	return nil
}

// Standings returns league standings for a season, grouped by league and
// division.
func (c *Client) Standings(ctx context.Context, season int) ([]models.Standing, error) {
	var payload standingsResponse
	path := fmt.Sprintf("/standings?leagueId=103,104&season=%d", season)
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	return mapStandings(payload, season, c.now()), nil
}

// Schedule returns the flattened game list for a single day.
func (c *Client) Schedule(ctx context.Context, date string) ([]models.Game, error) {
	var payload scheduleResponse
	path := fmt.Sprintf("/schedule?sportId=1&date=%s", url.QueryEscape(date))
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	return mapSchedule(payload), nil
}

// Teams returns the active team list.
func (c *Client) Teams(ctx context.Context) ([]models.TeamSummary, error) {
	var payload teamsResponse
	if err := c.get(ctx, "/teams?sportId=1&activeStatus=Yes", &payload); err != nil {
		return nil, err
	}
	teams := make([]models.TeamSummary, 0, len(payload.Teams))
	for _, team := range payload.Teams {
		teams = append(teams, mapTeamSummary(team))
	}
	return teams, nil
}

// Team fetches team metadata and its roster concurrently. If either fetch
// fails the whole lookup fails.
func (c *Client) Team(ctx context.Context, id int) (*models.TeamWithRoster, error) {
	var (
		teamPayload   teamsResponse
		rosterPayload rosterResponse
		teamErr       error
		rosterErr     error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		teamErr = c.get(ctx, fmt.Sprintf("/teams/%d", id), &teamPayload)
	}()
	go func() {
		defer wg.Done()
		rosterErr = c.get(ctx, fmt.Sprintf("/teams/%d/roster", id), &rosterPayload)
	}()
	wg.Wait()

	if teamErr != nil {
		return nil, teamErr
	}
	if rosterErr != nil {
		return nil, rosterErr
	}
	return mapTeamWithRoster(teamPayload, rosterPayload), nil
}

// Player fetches a person with hydrated season/career stat groups.
// season of 0 keeps all seasons.
func (c *Client) Player(ctx context.Context, id, season int) (*models.PlayerProfile, error) {
	hydrate := "stats(group=[hitting,pitching,fielding],type=[season,career,gameLog]"
	if season > 0 {
		hydrate += fmt.Sprintf(",season=%d", season)
	}
	hydrate += ")"

	var payload playerResponse
	path := fmt.Sprintf("/people/%d?hydrate=%s", id, url.QueryEscape(hydrate))
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}
	return mapPlayer(payload, season)
}
