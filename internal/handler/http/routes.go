package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization: the login bootstrap and its siblings.
	// verify parses the bearer token itself to control the envelope codes.
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/change-password", h.changePassword)
		r.Post("/api/auth/verify", h.verify)
		r.Post("/api/auth/logout", h.logout)
	})

	// everything else requires a valid session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/reset-password/{usuario_id}", h.resetPassword)

		r.Route("/api/comunidades", func(r chi.Router) {
			r.Get("/", h.listCommunities)
			r.Post("/", h.createCommunity)
			r.Get("/{id}", h.getCommunity)
			r.Put("/{id}", h.updateCommunity)
			r.Delete("/{id}", h.deleteCommunity)
		})

		r.Route("/api/pastorais", func(r chi.Router) {
			r.Get("/", h.listPastorals)
			r.Post("/", h.createPastoral)
			r.Get("/{id}", h.getPastoral)
			r.Put("/{id}", h.updatePastoral)
			r.Delete("/{id}", h.deletePastoral)
		})

		r.Route("/api/pessoas", func(r chi.Router) {
			r.Get("/", h.listPeople)
			r.Post("/", h.createPerson)
			r.Get("/{id}", h.getPerson)
			r.Put("/{id}", h.updatePerson)
			r.Delete("/{id}", h.deletePerson)
		})

		r.Route("/api/locais", func(r chi.Router) {
			r.Get("/", h.listVenues)
			r.Post("/", h.createVenue)
			r.Get("/{id}", h.getVenue)
			r.Put("/{id}", h.updateVenue)
			r.Delete("/{id}", h.deleteVenue)
		})

		r.Route("/api/acoes", func(r chi.Router) {
			r.Get("/", h.listActions)
			r.Post("/", h.createAction)
			r.Post("/sugerir-objetivo", h.suggestObjective)
			r.Get("/{id}", h.getAction)
			r.Put("/{id}", h.updateAction)
			r.Delete("/{id}", h.deleteAction)
		})

		r.Route("/api/eventos", func(r chi.Router) {
			r.Get("/", h.listEvents)
			r.Post("/", h.createEvent)
			r.Get("/{id}", h.getEvent)
			r.Put("/{id}", h.updateEvent)
			r.Delete("/{id}", h.deleteEvent)
		})

		r.Get("/api/dashboard/resumo", h.dashboardSummary)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
