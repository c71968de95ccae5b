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

type CityService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CityResponse], error)
	Get(ctx context.Context, cityID string) (*response.CityResponse, error)
	Create(ctx context.Context, req *request.NameRequest) (*response.CityResponse, error)
	Update(ctx context.Context, cityID string, req *request.NameRequest) (*response.CityResponse, error)
	Delete(ctx context.Context, cityID string) error
}

type cityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCityService(repo *repository.Repository, log *zap.Logger) CityService {
	return &cityService{
		repo: repo,
		log:  log.With(zap.String("service", "city")),
	}
}

func (s *cityService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CityResponse], error) {
	cities, err := s.repo.City.FindAll(ctx, req.Search, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.City.Count(ctx, req.Search)
	if err != nil {
		return nil, err
	}

	items := make([]response.CityResponse, 0, len(cities))
	for _, city := range cities {
		items = append(items, response.CityToResponse(city))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *cityService) Get(ctx context.Context, cityID string) (*response.CityResponse, error) {
	city, err := s.find(ctx, cityID)
	if err != nil {
		return nil, err
	}

	resp := response.CityToResponse(city)
	return &resp, nil
}

func (s *cityService) Create(ctx context.Context, req *request.NameRequest) (*response.CityResponse, error) {
	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(ctx, name, uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now()
	city := &entity.City{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: name,
	}

	if err := s.repo.City.Create(ctx, city); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCityNameTaken
		}
		return nil, err
	}

	resp := response.CityToResponse(city)
	return &resp, nil
}

func (s *cityService) Update(ctx context.Context, cityID string, req *request.NameRequest) (*response.CityResponse, error) {
	city, err := s.find(ctx, cityID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(ctx, name, city.ID); err != nil {
		return nil, err
	}

	city.Name = name
	city.UpdatedAt = time.Now()

	if err := s.repo.City.Update(ctx, city); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCityNameTaken
		}
		return nil, err
	}

	resp := response.CityToResponse(city)
	return &resp, nil
}

func (s *cityService) Delete(ctx context.Context, cityID string) error {
	city, err := s.find(ctx, cityID)
	if err != nil {
		return err
	}

	inUse, err := s.repo.City.HasHotels(ctx, city.ID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCityInUse
	}

	return s.repo.City.Delete(ctx, city.ID)
}

func (s *cityService) find(ctx context.Context, cityID string) (*entity.City, error) {
	id, err := parseID(cityID, ErrCityNotFound)
	if err != nil {
		return nil, err
	}

	city, err := s.repo.City.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, ErrCityNotFound
	}
	return city, nil
}

func (s *cityService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.repo.City.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return ErrCityNameTaken
	}
	return nil
}
