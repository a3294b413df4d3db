package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"linkrotator/internal/handlers"
)

// Routes bundles the handlers mounted by RegisterRoutes.
type Routes struct {
	Redirect *handlers.RedirectHandler
	Health   *handlers.HealthHandler
	Gatherer prometheus.Gatherer
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(r Routes) {
	s.App.Get("/healthz", r.Health.Health)

	if r.Gatherer != nil && s.Cfg.MetricsPath != "" {
		s.App.Get(s.Cfg.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(r.Gatherer, promhttp.HandlerOpts{})))
	}

	// Redirect routes
	s.App.Get("/api/redirect", r.Redirect.Redirect)
	s.App.Get("/", r.Redirect.Redirect)
}
