package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/dto/response"
	"umrah-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientInfo is recorded on the session created at login.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	VerifyAccount(ctx context.Context, req *request.VerifyAccountRequest, client ClientInfo) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	ForgetPassword(ctx context.Context, req *request.EmailRequest) error
	ResendCode(ctx context.Context, req *request.EmailRequest) error
	VerifyResetPassword(ctx context.Context, req *request.VerifyResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository // grouping user, session, profile & verification repos
	codes  *codeIssuer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, codes *codeIssuer, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		codes:  codes,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
		Role:         entity.RoleUser,
		IsVerified:   false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if err := s.codes.issue(ctx, user, user.Email, nil, "Verify your account"); err != nil {
		return nil, err
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user, nil)
	return &resp, nil
}

func (s *authService) VerifyAccount(ctx context.Context, req *request.VerifyAccountRequest, client ClientInfo) (*response.AuthResponse, error) {
	user, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return nil, ErrAlreadyVerified
	}

	if _, err := s.codes.check(ctx, user.ID, req.Code); err != nil {
		return nil, err
	}

	var session *entity.Session
	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user.IsVerified = true
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			return err
		}
		if err := s.codes.consume(ctx, user.ID); err != nil {
			return err
		}

		var err error
		session, err = s.createSession(ctx, user.ID, client)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Account verified", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, nil, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Failed login attempt", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, ErrAccountNotVerified
	}

	session, err := s.createSession(ctx, user.ID, client)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, profile, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return err
	}

	s.log.Info("User logged out")
	return nil
}

// ForgetPassword mails a reset code. Unknown emails succeed silently so the endpoint
// cannot be used to discover accounts.
func (s *authService) ForgetPassword(ctx context.Context, req *request.EmailRequest) error {
	user, err := s.repo.User.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return err
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email")
		return nil
	}

	return s.codes.issue(ctx, user, user.Email, nil, "Reset your password")
}

func (s *authService) ResendCode(ctx context.Context, req *request.EmailRequest) error {
	user, err := s.repo.User.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	return s.codes.issue(ctx, user, user.Email, nil, "Verify your account")
}

func (s *authService) VerifyResetPassword(ctx context.Context, req *request.VerifyResetPasswordRequest) error {
	user, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if _, err := s.codes.check(ctx, user.ID, req.Code); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.User.UpdatePassword(ctx, user.ID, hashed); err != nil {
			return err
		}
		if err := s.codes.consume(ctx, user.ID); err != nil {
			return err
		}
		return s.repo.Session.RevokeAllUserSessions(ctx, user.ID)
	})
	if err != nil {
		return err
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.repo.User.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, client ClientInfo) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		UserAgent: optional(client.UserAgent),
		IPAddress: optional(client.IPAddress),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
