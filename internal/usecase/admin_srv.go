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

// AdminService manages admin accounts. Every method is reserved to super_admin by routing.
type AdminService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	Create(ctx context.Context, req *request.CreateAdminRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, actor Actor, adminID string) error
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	admins, err := s.repo.User.FindAllByRole(ctx, entity.RoleAdmin, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.User.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	items := make([]response.UserResponse, 0, len(admins))
	for _, admin := range admins {
		items = append(items, response.UserToResponse(admin, nil))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *adminService) Create(ctx context.Context, req *request.CreateAdminRequest) (*response.UserResponse, error) {
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
		return nil, err
	}

	now := time.Now()
	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
		Role:         entity.RoleAdmin,
		IsVerified:   true,
	}

	if err := s.repo.User.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info("Admin created", zap.String("admin_id", admin.ID.String()))

	resp := response.UserToResponse(admin, nil)
	return &resp, nil
}

func (s *adminService) Delete(ctx context.Context, actor Actor, adminID string) error {
	id, err := parseID(adminID, ErrAdminNotFound)
	if err != nil {
		return err
	}
	if id == actor.ID {
		return ErrCannotDeleteSelf
	}

	target, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if target == nil || target.Role == entity.RoleUser {
		return ErrAdminNotFound
	}
	if target.Role == entity.RoleSuperAdmin {
		return ErrCannotDeleteSuperAdmin
	}

	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Session.RevokeAllUserSessions(ctx, id); err != nil {
			return err
		}
		return s.repo.User.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("Admin deleted",
		zap.String("admin_id", id.String()),
		zap.String("deleted_by", actor.ID.String()),
	)
	return nil
}
