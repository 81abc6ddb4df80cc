package mlb

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/httpx"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/ratelimit"
)

// Handler serves the /v1/baseball routes.
type Handler struct {
	client  *Client
	limiter *ratelimit.Limiter
	logger  *zap.Logger
	now     func() time.Time
}

// NewHandler creates the baseball handler.
func NewHandler(client *Client, limiter *ratelimit.Limiter, logger *zap.Logger) *Handler {
	return &Handler{
		client:  client,
		limiter: limiter,
		logger:  logger,
		now:     time.Now,
	}
}

func (h *Handler) allow(w http.ResponseWriter, r *http.Request) bool {
	if apiErr := h.limiter.Check(r.Context(), "mlb:"+httpx.ClientIP(r)); apiErr != nil {
		httpx.RespondError(w, apiErr)
		return false
	}
	return true
}

// respondErr maps provider failures onto the error taxonomy: missing
// player to 404, upstream failures to 502, everything else to 500.
func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	if errors.Is(err, providers.ErrPlayerNotFound) {
		httpx.RespondError(w, httpx.NotFound("Player not found"))
		return
	}
	if upErr, ok := providers.AsUpstreamError(err); ok {
		httpx.RespondError(w, httpx.Upstream(http.StatusBadGateway, upErr.Error()))
		return
	}
	h.logger.Error("mlb request failed", zap.Error(err))
	httpx.RespondError(w, httpx.Internal(err.Error()))
}

// GetStandings handles GET /v1/baseball/standings?season=YYYY
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	season := h.now().Year()
	if raw := r.URL.Query().Get("season"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			season = parsed
		}
	}

	standings, err := h.client.Standings(r.Context(), season)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, standings)
}

// GetSchedule handles GET /v1/baseball/schedule?date=YYYY-MM-DD
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		httpx.RespondError(w, httpx.BadRequest("date is required (YYYY-MM-DD)"))
		return
	}

	games, err := h.client.Schedule(r.Context(), date)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, games)
}

// GetTeams handles GET /v1/baseball/teams
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	teams, err := h.client.Teams(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, teams)
}

// GetTeam handles GET /v1/baseball/team/{teamID}
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil {
		httpx.RespondError(w, httpx.BadRequest("teamId must be numeric"))
		return
	}

	team, err := h.client.Team(r.Context(), teamID)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, team)
}

// GetPlayer handles GET /v1/baseball/player/{playerID}?season=YYYY
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	playerID, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		httpx.RespondError(w, httpx.BadRequest("playerId must be numeric"))
		return
	}

	season := 0
	if raw := r.URL.Query().Get("season"); raw != "" {
		if parsed, parseErr := strconv.Atoi(raw); parseErr == nil {
			season = parsed
		}
	}

	player, err := h.client.Player(r.Context(), playerID, season)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, player)
}
