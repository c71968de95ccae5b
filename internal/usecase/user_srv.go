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

type UserService interface {
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentToken string, req *request.ChangePasswordRequest) error
	// UpdateProfile reports contactPending when an email change is waiting for verify-contact.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (resp *response.UserResponse, contactPending bool, err error)
	VerifyContact(ctx context.Context, userID uuid.UUID, req *request.VerifyContactRequest) (*response.UserResponse, error)
}

type userService struct {
	repo  *repository.Repository
	codes *codeIssuer
	log   *zap.Logger
}

func NewUserService(repo *repository.Repository, codes *codeIssuer, log *zap.Logger) UserService {
	return &userService{
		repo:  repo,
		codes: codes,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user, profile)
	return &resp, nil
}

// ChangePassword keeps the caller's session and revokes every other one.
func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, currentToken string, req *request.ChangePasswordRequest) error {
	user, _, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}
	if req.CurrentPassword == req.NewPassword {
		return ErrSamePassword
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.User.UpdatePassword(ctx, userID, hashed); err != nil {
			return err
		}
		return s.repo.Session.RevokeOtherSessions(ctx, userID, currentToken)
	})
	if err != nil {
		return err
	}

	s.log.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, bool, error) {
	user, profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	var newEmail *string
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			owner, err := s.repo.User.FindByEmail(ctx, email)
			if err != nil {
				return nil, false, err
			}
			if owner != nil {
				return nil, false, ErrEmailTaken
			}
			newEmail = &email
		}
	}

	now := time.Now()
	if profile == nil {
		profile = &entity.Profile{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			UserID: userID,
		}
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.Address != nil {
		profile.Address = req.Address
	}
	profile.UpdatedAt = now

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	user.UpdatedAt = now

	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.User.Update(ctx, user); err != nil {
			return err
		}
		return s.repo.Profile.Upsert(ctx, profile)
	})
	if err != nil {
		return nil, false, err
	}

	// the new address has to prove ownership before it replaces the current one
	if newEmail != nil {
		if err := s.codes.issue(ctx, user, *newEmail, newEmail, "Confirm your new email"); err != nil {
			return nil, false, err
		}
	}

	resp := response.UserToResponse(user, profile)
	return &resp, newEmail != nil, nil
}

func (s *userService) VerifyContact(ctx context.Context, userID uuid.UUID, req *request.VerifyContactRequest) (*response.UserResponse, error) {
	user, profile, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	v, err := s.codes.check(ctx, userID, req.Code)
	if err != nil {
		return nil, err
	}
	if v.NewContact == nil {
		return nil, ErrNoPendingContact
	}

	user.Email = *v.NewContact
	user.UpdatedAt = time.Now()

	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.User.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrEmailTaken
			}
			return err
		}
		return s.codes.consume(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Contact verified", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(user, profile)
	return &resp, nil
}

func (s *userService) load(ctx context.Context, userID uuid.UUID) (*entity.User, *entity.Profile, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, profile, nil
}
