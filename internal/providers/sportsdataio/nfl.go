package sportsdataio

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/httpx"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/ratelimit"
)

var weekPattern = regexp.MustCompile(`^[0-9]+$`)

// NFLConfig configures the football handler.
type NFLConfig struct {
	SportsDataKey string
	SportradarKey string
	BaseURL       string
	HTTPClient    *http.Client
	Limiter       *ratelimit.Limiter
	Logger        *zap.Logger
}

// NFLHandler serves the /v1/football routes as a SportsDataIO pass-through.
type NFLHandler struct {
	sportsDataKey string
	sportradarKey string
	baseURL       string
	httpClient    *http.Client
	limiter       *ratelimit.Limiter
	logger        *zap.Logger
	now           func() time.Time
}

// NewNFLHandler creates the football handler.
func NewNFLHandler(cfg NFLConfig) *NFLHandler {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = nflBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = defaultHTTPClient()
	}
	return &NFLHandler{
		sportsDataKey: cfg.SportsDataKey,
		sportradarKey: cfg.SportradarKey,
		baseURL:       baseURL,
		httpClient:    httpClient,
		limiter:       cfg.Limiter,
		logger:        cfg.Logger,
		now:           time.Now,
	}
}

// configured rejects requests before any network call when no usable
// credential exists. A Sportradar key alone is not enough: that
// integration is not implemented yet.
func (h *NFLHandler) configured(w http.ResponseWriter) bool {
	if h.sportsDataKey == "" && h.sportradarKey == "" {
		httpx.RespondError(w, httpx.NotConfigured("NFL provider not configured"))
		return false
	}
	if h.sportsDataKey == "" {
		httpx.RespondError(w, httpx.NotConfigured("Sportradar integration not yet implemented"))
		return false
	}
	return true
}

func (h *NFLHandler) allow(w http.ResponseWriter, r *http.Request) bool {
	if apiErr := h.limiter.Check(r.Context(), "nfl:"+httpx.ClientIP(r)); apiErr != nil {
		httpx.RespondError(w, apiErr)
		return false
	}
	return true
}

func (h *NFLHandler) respondErr(w http.ResponseWriter, err error) {
	if upErr, ok := providers.AsUpstreamError(err); ok {
		httpx.RespondError(w, httpx.Upstream(upErr.StatusCode, "NFL upstream error"))
		return
	}
	h.logger.Error("nfl request failed", zap.Error(err))
	httpx.RespondError(w, httpx.Upstream(http.StatusBadGateway, "NFL upstream error"))
}

// GetStandings handles GET /v1/football/standings?season=YYYY
func (h *NFLHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	if !h.allow(w, r) {
		return
	}

	season := seasonOrCurrent(r, h.now)
	target := fmt.Sprintf("%s/Standings/%s?key=%s", h.baseURL, url.PathEscape(season), url.QueryEscape(h.sportsDataKey))
	data, err := fetchJSON(r.Context(), h.httpClient, "NFL", target)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, data)
}

// GetSchedule handles GET /v1/football/schedule?season=YYYY&week=N
func (h *NFLHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	if !h.allow(w, r) {
		return
	}

	season := seasonOrCurrent(r, h.now)
	week := r.URL.Query().Get("week")
	if week == "" {
		week = "1"
	}
	if !weekPattern.MatchString(week) {
		httpx.RespondError(w, httpx.BadRequest("week must be numeric"))
		return
	}

	target := fmt.Sprintf("%s/ScoresByWeek/%s/%s?key=%s", h.baseURL, url.PathEscape(season), week, url.QueryEscape(h.sportsDataKey))
	data, err := fetchJSON(r.Context(), h.httpClient, "NFL", target)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, data)
}

func seasonOrCurrent(r *http.Request, now func() time.Time) string {
	if season := r.URL.Query().Get("season"); season != "" {
		return season
	}
	return fmt.Sprintf("%d", now().Year())
}
