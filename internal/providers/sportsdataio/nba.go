package sportsdataio

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/httpx"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/ratelimit"
)

// NBAConfig configures the basketball handler.
type NBAConfig struct {
	SportsDataKey string
	SportradarKey string
	BaseURL       string
	HTTPClient    *http.Client
	Limiter       *ratelimit.Limiter
	Logger        *zap.Logger
}

// NBAHandler serves the /v1/basketball routes as a SportsDataIO pass-through.
type NBAHandler struct {
	sportsDataKey string
	sportradarKey string
	baseURL       string
	httpClient    *http.Client
	limiter       *ratelimit.Limiter
	logger        *zap.Logger
	now           func() time.Time
}

// NewNBAHandler creates the basketball handler.
func NewNBAHandler(cfg NBAConfig) *NBAHandler {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = nbaBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = defaultHTTPClient()
	}
	return &NBAHandler{
		sportsDataKey: cfg.SportsDataKey,
		sportradarKey: cfg.SportradarKey,
		baseURL:       baseURL,
		httpClient:    httpClient,
		limiter:       cfg.Limiter,
		logger:        cfg.Logger,
		now:           time.Now,
	}
}

func (h *NBAHandler) configured(w http.ResponseWriter) bool {
	if h.sportsDataKey == "" && h.sportradarKey == "" {
		httpx.RespondError(w, httpx.NotConfigured("NBA provider not configured"))
		return false
	}
	if h.sportsDataKey == "" {
		httpx.RespondError(w, httpx.NotConfigured("Sportradar integration not yet implemented"))
		return false
	}
	return true
}

func (h *NBAHandler) allow(w http.ResponseWriter, r *http.Request) bool {
	if apiErr := h.limiter.Check(r.Context(), "nba:"+httpx.ClientIP(r)); apiErr != nil {
		httpx.RespondError(w, apiErr)
		return false
	}
	return true
}

func (h *NBAHandler) respondErr(w http.ResponseWriter, err error) {
	if upErr, ok := providers.AsUpstreamError(err); ok {
		httpx.RespondError(w, httpx.Upstream(upErr.StatusCode, "NBA upstream error"))
		return
	}
	h.logger.Error("nba request failed", zap.Error(err))
	httpx.RespondError(w, httpx.Upstream(http.StatusBadGateway, "NBA upstream error"))
}

// GetStandings handles GET /v1/basketball/standings?season=YYYY
func (h *NBAHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	if !h.allow(w, r) {
		return
	}

	season := seasonOrCurrent(r, h.now)
	target := fmt.Sprintf("%s/Standings/%s?key=%s", h.baseURL, url.PathEscape(season), url.QueryEscape(h.sportsDataKey))
	data, err := fetchJSON(r.Context(), h.httpClient, "NBA", target)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, data)
}

// GetSchedule handles GET /v1/basketball/schedule?date=YYYY-MM-DD
func (h *NBAHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	if !h.allow(w, r) {
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		httpx.RespondError(w, httpx.BadRequest("date is required (YYYY-MM-DD)"))
		return
	}

	target := fmt.Sprintf("%s/GamesByDate/%s?key=%s", h.baseURL, url.PathEscape(date), url.QueryEscape(h.sportsDataKey))
	data, err := fetchJSON(r.Context(), h.httpClient, "NBA", target)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, data)
}
