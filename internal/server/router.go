package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/config"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/httpx"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/middleware"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers/mlb"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers/sportsdataio"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers/track"
)

// Handlers bundles the per-sport route handlers.
type Handlers struct {
	MLB   *mlb.Handler
	NFL   *sportsdataio.NFLHandler
	NBA   *sportsdataio.NBAHandler
	Track *track.Handler
}

// NewRouter assembles the chi router: middleware stack, liveness routes,
// the /v1 sport subrouters, and a structured 404 for everything else.
func NewRouter(cfg config.Config, logger *zap.Logger, h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondError(w, httpx.NotFound("Route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondError(w, httpx.NotFound("Route not found"))
	})

	r.Get("/", health)
	r.Get("/health", health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/baseball", func(r chi.Router) {
			r.Get("/standings", h.MLB.GetStandings)
			r.Get("/schedule", h.MLB.GetSchedule)
			r.Get("/teams", h.MLB.GetTeams)
			r.Get("/team/{teamID}", h.MLB.GetTeam)
			r.Get("/player/{playerID}", h.MLB.GetPlayer)
		})

		r.Route("/football", func(r chi.Router) {
			r.Get("/standings", h.NFL.GetStandings)
			r.Get("/schedule", h.NFL.GetSchedule)
		})

		r.Route("/basketball", func(r chi.Router) {
			r.Get("/standings", h.NBA.GetStandings)
			r.Get("/schedule", h.NBA.GetSchedule)
		})

		r.Get("/track/meets", h.Track.GetMeets)
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"ok": true,
		"ts": time.Now().UTC().Format(time.RFC3339),
	})
}
