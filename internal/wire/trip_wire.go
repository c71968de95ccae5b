package wire

import (
	"umrah-booking/internal/adaptor"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/middleware"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTrip(
	r chi.Router,
	tripHandler *adaptor.TripHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/trips", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// staff with a token also see inactive trips
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(repo.Session, repo.User, log))

			r.Get("/", tripHandler.List)
			r.Get("/{id}", tripHandler.Get)
		})

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, repo.User, log))
			r.Use(middleware.Admin(log))

			r.Post("/", tripHandler.Create)
			r.Put("/{id}", tripHandler.Update)
			r.Delete("/{id}", tripHandler.Delete)
		})
	})
}

func wireHeroImage(
	r chi.Router,
	heroHandler *adaptor.HeroImageHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/hero-images", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(repo.Session, repo.User, log))

			r.Get("/", heroHandler.List)
			r.Get("/{id}", heroHandler.Get)
		})

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, repo.User, log))
			r.Use(middleware.Admin(log))

			r.Post("/", heroHandler.Create)
			r.Put("/{id}", heroHandler.Update)
			r.Delete("/{id}", heroHandler.Delete)
		})
	})
}
