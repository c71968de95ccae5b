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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FacilityService interface {
	List(ctx context.Context) ([]response.FacilityResponse, error)
	Get(ctx context.Context, facilityID string) (*response.FacilityResponse, error)
	Create(ctx context.Context, req *request.NameRequest) (*response.FacilityResponse, error)
	Update(ctx context.Context, facilityID string, req *request.NameRequest) (*response.FacilityResponse, error)
	Delete(ctx context.Context, facilityID string) error
}

type facilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFacilityService(repo *repository.Repository, log *zap.Logger) FacilityService {
	return &facilityService{
		repo: repo,
		log:  log.With(zap.String("service", "facility")),
	}
}

func (s *facilityService) List(ctx context.Context) ([]response.FacilityResponse, error) {
	facilities, err := s.repo.Facility.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.FacilitiesToResponse(facilities), nil
}

func (s *facilityService) Get(ctx context.Context, facilityID string) (*response.FacilityResponse, error) {
	facility, err := s.find(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	resp := response.FacilityToResponse(facility)
	return &resp, nil
}

func (s *facilityService) Create(ctx context.Context, req *request.NameRequest) (*response.FacilityResponse, error) {
	name := strings.TrimSpace(req.Name)

	existing, err := s.repo.Facility.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFacilityNameTaken
	}

	now := time.Now()
	facility := &entity.Facility{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: name,
	}

	if err := s.repo.Facility.Create(ctx, facility); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrFacilityNameTaken
		}
		return nil, err
	}

	resp := response.FacilityToResponse(facility)
	return &resp, nil
}

func (s *facilityService) Update(ctx context.Context, facilityID string, req *request.NameRequest) (*response.FacilityResponse, error) {
	facility, err := s.find(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	existing, err := s.repo.Facility.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != facility.ID {
		return nil, ErrFacilityNameTaken
	}

	facility.Name = name
	facility.UpdatedAt = time.Now()

	if err := s.repo.Facility.Update(ctx, facility); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrFacilityNameTaken
		}
		return nil, err
	}

	resp := response.FacilityToResponse(facility)
	return &resp, nil
}

func (s *facilityService) Delete(ctx context.Context, facilityID string) error {
	facility, err := s.find(ctx, facilityID)
	if err != nil {
		return err
	}
	return s.repo.Facility.Delete(ctx, facility.ID)
}

func (s *facilityService) find(ctx context.Context, facilityID string) (*entity.Facility, error) {
	id, err := parseID(facilityID, ErrFacilityNotFound)
	if err != nil {
		return nil, err
	}

	facility, err := s.repo.Facility.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}
	return facility, nil
}
