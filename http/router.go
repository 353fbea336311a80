package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"membrane-calculator/metrics"
)

// NewRouter wires the calculator routes. Only the POST routes are rate limited.
func NewRouter(
	logger *zap.Logger,
	savings *SavingsHandler,
	reports *ReportHandler,
	limiter *RateLimiter,
) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		RequestLogger(logger, "http"),
		middleware.Recoverer,
	)

	router.Get("/membrane/defaults", savings.Defaults)
	router.Get("/membrane/presets", savings.ListPresets)
	router.Get("/membrane/presets/{name}/evaluate", savings.EvaluatePreset)

	router.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware(limiter))
		r.Post("/membrane/evaluate", savings.Evaluate)
		r.Post("/membrane/report", reports.Generate)
	})

	router.Handle("/metrics", metrics.Handler())

	return router
}
