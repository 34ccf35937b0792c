package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/punchcards/backend/internal/handler"
	"github.com/itchan-dev/punchcards/shared/config"
	mw "github.com/itchan-dev/punchcards/shared/middleware"
	"github.com/itchan-dev/punchcards/shared/middleware/metrics"
)

// New creates the chi router with the middleware stack and every route.
func New(h *handler.Handler, cfg *config.Public) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders(cfg.SecureHeaders, mw.APIContentSecurityPolicy))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", mw.RequestIDHeader},
			ExposedHeaders: []string{mw.RequestIDHeader},
			MaxAge:         300,
		}))
	}

	// Probes
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/persons", h.GetPersons)
	r.Post("/person", h.CreatePerson)

	r.Get("/cards", h.GetCards)
	r.Post("/card", h.CreateCard)
	r.Delete("/card/{id}", h.DeleteCard)

	r.Post("/punch", h.CreatePunch)

	return r
}
