package handler

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts every API endpoint on a fresh chi router.
// Cross-cutting middleware (request IDs, logging, CORS, body limits) is
// applied by the caller in main — the router only knows about paths.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", s.handlePaymentCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handlePaymentGet)
				r.Put("/", s.handlePaymentUpdate)
				r.Delete("/", s.handlePaymentDelete)
			})
		})

		r.Get("/goal", s.handleGoalGet)
		r.Put("/goal", s.handleGoalSet)

		r.Get("/users", s.handleUserList)

		r.Route("/trip", func(r chi.Router) {
			r.Get("/", s.handleTripState)
			r.Post("/start", s.handleTripStart)
			r.Post("/pause", s.handleTripPause)
			r.Post("/resume", s.handleTripResume)
			r.Post("/finish", s.handleTripFinish)
			r.Post("/position", s.handleTripPosition)
		})
		r.Get("/trips", s.handleTripHistory)

		r.Get("/fuel-price", s.handleFuelPrice)
		r.Get("/fuel-settings", s.handleFuelSettingsGet)
		r.Put("/fuel-settings", s.handleFuelSettingsSet)

		r.Get("/export", s.handleExport)
	})

	return r
}
