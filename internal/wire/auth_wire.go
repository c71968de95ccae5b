package wire

import (
	"umrah-booking/internal/adaptor"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/middleware"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", authHandler.Register)
		r.Post("/verify-account", authHandler.VerifyAccount)
		r.Post("/login", authHandler.Login)
		r.Post("/forget-password", authHandler.ForgetPassword)
		r.Post("/resend-code", authHandler.ResendCode)
		r.Post("/verify-reset-password", authHandler.VerifyResetPassword)

		// ==================== PROTECTED ROUTES ====================
		r.With(middleware.AuthSession(repo.Session, repo.User, log)).Post("/logout", authHandler.Logout)
	})
}
