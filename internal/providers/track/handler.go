package track

import (
	"net/http"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/httpx"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/ratelimit"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/pkg/models"
)

// Handler serves the /v1/track routes. The upstream integration does not
// exist yet: requests are validated and answered with an empty stub
// payload so the route contract is already in place.
type Handler struct {
	apiKey  string
	limiter *ratelimit.Limiter
}

// NewHandler creates the track handler.
func NewHandler(apiKey string, limiter *ratelimit.Limiter) *Handler {
	return &Handler{apiKey: apiKey, limiter: limiter}
}

// GetMeets handles GET /v1/track/meets?date=YYYY-MM-DD
func (h *Handler) GetMeets(w http.ResponseWriter, r *http.Request) {
	if h.apiKey == "" {
		httpx.RespondError(w, httpx.NotConfigured("Track provider not configured"))
		return
	}

	if apiErr := h.limiter.Check(r.Context(), "track:"+httpx.ClientIP(r)); apiErr != nil {
		httpx.RespondError(w, apiErr)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		httpx.RespondError(w, httpx.BadRequest("date is required"))
		return
	}

	httpx.RespondJSON(w, http.StatusOK, models.TrackMeets{
		Provider: "stub",
		Date:     date,
		Items:    []models.TrackMeet{},
	})
}
