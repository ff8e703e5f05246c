package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yog-patel/home-designer-ai-app/internal/http/handlers"
	"github.com/yog-patel/home-designer-ai-app/internal/infra"
	"github.com/yog-patel/home-designer-ai-app/internal/middleware"
)

// NewRouter assembles the HTTP API surface.
func NewRouter(cfg *infra.Config, app *handlers.App, countries middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(app.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMin))
	r.Use(middleware.Locale(countries))

	r.Get("/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/design-types", app.ListDesignTypes)
			r.Get("/palettes", app.ListPalettes)
			r.Get("/paint-colors", app.ListPaintColors)
			r.Get("/{type}/areas", app.ListAreas)
			r.Get("/{type}/styles", app.ListStyles)
		})

		r.Route("/designs", func(r chi.Router) {
			r.Post("/generate", app.GenerateDesign)
			r.Get("/", app.ListDesigns)
			r.Get("/{id}", app.GetDesign)
			r.Delete("/{id}", app.DeleteDesign)
		})

		r.Route("/usage", func(r chi.Router) {
			r.Get("/", app.GetUsage)
			r.Post("/reset", app.ResetUsage)
		})
	})

	return r
}
