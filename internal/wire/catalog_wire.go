package wire

import (
	"umrah-booking/internal/adaptor"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/middleware"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalog mounts cities, facilities and hotels: public reads, admin writes.
func wireCatalog(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/cities", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", handler.City.List)
		r.Get("/{id}", handler.City.Get)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, repo.User, log))
			r.Use(middleware.Admin(log))

			r.Post("/", handler.City.Create)
			r.Put("/{id}", handler.City.Update)
			r.Delete("/{id}", handler.City.Delete)
		})
	})

	r.Route("/api/facilities", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", handler.Facility.List)
		r.Get("/{id}", handler.Facility.Get)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, repo.User, log))
			r.Use(middleware.Admin(log))

			r.Post("/", handler.Facility.Create)
			r.Put("/{id}", handler.Facility.Update)
			r.Delete("/{id}", handler.Facility.Delete)
		})
	})

	r.Route("/api/hotels", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", handler.Hotel.List)
		r.Get("/{id}", handler.Hotel.Get)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, repo.User, log))
			r.Use(middleware.Admin(log))

			r.Post("/", handler.Hotel.Create)
			r.Put("/{id}", handler.Hotel.Update)
			r.Delete("/{id}", handler.Hotel.Delete)
		})
	})
}
