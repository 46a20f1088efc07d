package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Get("/", h.health)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/user/login", h.loginUser)
		r.Post("/admin/login", h.loginAdmin)

		// creating further admins requires an existing admin session
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/admin/create", h.createAdmin)
		})
	})

	router.Route("/api/user-management", func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/admin/create-user", h.createUser)
		r.Delete("/admin/delete-user", h.deleteUser)
		r.Put("/admin/update-user-credits", h.updateUserCredits)
		r.Post("/admin/get-user", h.getUser)
		r.Get("/admin/get-all-users", h.getAllUsers)
		r.Post("/admin/search-users-by-username", h.searchUsersByUsername)
	})

	router.Route("/api/box-selection", func(r chi.Router) {
		r.Get("/boxes", h.getBoxes)
		r.Get("/box", h.getBox)
		r.Post("/submit-selected-boxes", h.submitSelectedBoxes)
		r.Put("/set-all-boxes-to-unselected", h.setAllBoxesToUnselected)
		r.Get("/box-color", h.getBoxColor)
		r.Get("/login-page-text", h.getLoginPageText)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Put("/admin/set-box-color", h.setBoxColor)
			r.Put("/admin/update-login-page-text", h.updateLoginPageText)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
