package wire

import (
	"umrah-booking/internal/adaptor"
	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/middleware"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/reservations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", reservationHandler.List)
		r.Get("/{id}", reservationHandler.Get)

		r.With(middleware.RequireRole(log, entity.RoleUser)).Post("/", reservationHandler.Create)
		r.Put("/{id}", reservationHandler.UpdateStatus)
	})
}
