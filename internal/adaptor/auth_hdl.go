package adaptor

import (
	"net/http"

	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/usecase"
	"umrah-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful. A verification code has been sent to your email.", response)
}

// VerifyAccount handles POST /api/auth/verify-account
func (h *AuthHandler) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.VerifyAccount(r.Context(), &req, clientInfo(r))
	if err != nil {
		handleServiceError(w, h.log, err, "verify account")
		return
	}

	utils.ResponseSuccess(w, "Account verified", response)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.Login(r.Context(), &req, clientInfo(r))
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// ForgetPassword handles POST /api/auth/forget-password
func (h *AuthHandler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.EmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ForgetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "forget password")
		return
	}

	// same answer whether or not the email exists
	utils.ResponseSuccess(w, "If the email is registered, a reset code has been sent", nil)
}

// ResendCode handles POST /api/auth/resend-code
func (h *AuthHandler) ResendCode(w http.ResponseWriter, r *http.Request) {
	var req request.EmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ResendCode(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "resend code")
		return
	}

	utils.ResponseSuccess(w, "If the email is registered, a new code has been sent", nil)
}

// VerifyResetPassword handles POST /api/auth/verify-reset-password
func (h *AuthHandler) VerifyResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.VerifyResetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password has been reset. Please log in again.", nil)
}
