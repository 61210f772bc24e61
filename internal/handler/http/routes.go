// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.Post("/activate", h.requestActivation)
			r.Post("/reset", h.requestReset)
			r.With(h.refreshAuth, h.csrf).Post("/refresh", h.refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth, h.csrf)

			r.Route("/bread", func(r chi.Router) {
				r.Get("/", h.listOrderDates)
				r.Get("/type", h.breadTypes)
				r.Patch("/all", h.addOrdersAll)
				r.Delete("/all", h.deleteOrdersAll)
				r.Patch("/{dateID}", h.addOrders)
				r.Delete("/{dateID}", h.deleteOrders)
			})

			r.Route("/kotbar", func(r chi.Router) {
				r.Get("/", h.listKotbar)
				r.Post("/", h.reserveKotbar)
				r.Delete("/{id}", h.deleteKotbar)
			})

			r.Route("/materiaal", func(r chi.Router) {
				r.Get("/", h.listMaterial)
				r.Post("/", h.reserveMaterial)
				r.Get("/type", h.materialTypes)
				r.Delete("/{id}", h.deleteMaterial)
			})

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", h.profile)
				r.Get("/all", h.roster)
				r.Post("/edit", h.editProfile)
				r.Post("/edit/secure", h.editSecure)
			})
		})
	})

	// server-rendered pages reached from mails and bookmarks
	router.Route("/token", func(r chi.Router) {
		r.Get("/activate/{token}", h.activateAccount)
		r.Get("/reset/{token}", h.resetForm)
		r.Post("/reset/{token}", h.resetPassword)
		r.Get("/kotbar_reservations/{adminToken}", h.kotbarOverview)
		r.Get("/bread_reservations/{adminToken}", h.breadOverview)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
