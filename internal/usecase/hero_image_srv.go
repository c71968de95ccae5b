package usecase

import (
	"context"
	"strings"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/dto/response"
	"umrah-booking/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const heroImageFolder = "hero-images"

type HeroImageService interface {
	List(ctx context.Context, actor Actor) ([]response.HeroImageResponse, error)
	Get(ctx context.Context, actor Actor, heroID string) (*response.HeroImageResponse, error)
	Create(ctx context.Context, req *request.HeroImageRequest, images []storage.Upload) (*response.HeroImageResponse, error)
	Update(ctx context.Context, heroID string, req *request.HeroImageUpdateRequest, images []storage.Upload) (*response.HeroImageResponse, error)
	Delete(ctx context.Context, heroID string) error
}

type heroImageService struct {
	repo  *repository.Repository
	media *MediaManager
	log   *zap.Logger
}

func NewHeroImageService(repo *repository.Repository, media *MediaManager, log *zap.Logger) HeroImageService {
	return &heroImageService{
		repo:  repo,
		media: media,
		log:   log.With(zap.String("service", "hero_image")),
	}
}

// List returns active hero images only, unless the caller is staff.
func (s *heroImageService) List(ctx context.Context, actor Actor) ([]response.HeroImageResponse, error) {
	heroes, err := s.repo.HeroImage.FindAll(ctx, !actor.IsStaff())
	if err != nil {
		return nil, err
	}

	items := make([]response.HeroImageResponse, 0, len(heroes))
	for _, hero := range heroes {
		images, err := s.repo.Image.FindByOwner(ctx, entity.ImageableHeroImage, hero.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.HeroImageToResponse(hero, images, s.media.URL))
	}

	return items, nil
}

func (s *heroImageService) Get(ctx context.Context, actor Actor, heroID string) (*response.HeroImageResponse, error) {
	hero, err := s.find(ctx, heroID)
	if err != nil {
		return nil, err
	}
	if !hero.IsActive && !actor.IsStaff() {
		return nil, ErrHeroImageNotFound
	}

	return s.detail(ctx, hero)
}

func (s *heroImageService) Create(ctx context.Context, req *request.HeroImageRequest, images []storage.Upload) (*response.HeroImageResponse, error) {
	if len(images) == 0 {
		return nil, ErrImageRequired
	}

	now := time.Now()
	hero := &entity.HeroImage{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:    strings.TrimSpace(req.Title),
		IsActive: req.IsActive == nil || *req.IsActive,
	}

	err := s.media.Transact(ctx, heroImageFolder, images, func(ctx context.Context, stored []string) ([]string, error) {
		if err := s.repo.HeroImage.Create(ctx, hero); err != nil {
			return nil, err
		}
		return nil, s.media.Attach(ctx, entity.ImageableHeroImage, hero.ID, stored)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Hero image created", zap.String("hero_image_id", hero.ID.String()))
	return s.detail(ctx, hero)
}

func (s *heroImageService) Update(ctx context.Context, heroID string, req *request.HeroImageUpdateRequest, images []storage.Upload) (*response.HeroImageResponse, error) {
	hero, err := s.find(ctx, heroID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		hero.Title = strings.TrimSpace(*req.Title)
	}
	if req.IsActive != nil {
		hero.IsActive = *req.IsActive
	}
	hero.UpdatedAt = time.Now()

	deleteIDs, err := parseIDs(req.DeletedImageIDs)
	if err != nil {
		return nil, ErrUnauthorizedDelete
	}

	err = s.media.Transact(ctx, heroImageFolder, images, func(ctx context.Context, stored []string) ([]string, error) {
		if err := s.repo.HeroImage.Update(ctx, hero); err != nil {
			return nil, err
		}
		return s.media.SyncMany(ctx, entity.ImageableHeroImage, hero.ID, deleteIDs, stored, true)
	})
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, hero)
}

func (s *heroImageService) Delete(ctx context.Context, heroID string) error {
	hero, err := s.find(ctx, heroID)
	if err != nil {
		return err
	}

	return s.media.Transact(ctx, heroImageFolder, nil, func(ctx context.Context, _ []string) ([]string, error) {
		released, err := s.media.DetachAll(ctx, entity.ImageableHeroImage, hero.ID)
		if err != nil {
			return nil, err
		}
		return released, s.repo.HeroImage.Delete(ctx, hero.ID)
	})
}

func (s *heroImageService) find(ctx context.Context, heroID string) (*entity.HeroImage, error) {
	id, err := parseID(heroID, ErrHeroImageNotFound)
	if err != nil {
		return nil, err
	}

	hero, err := s.repo.HeroImage.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, ErrHeroImageNotFound
	}
	return hero, nil
}

func (s *heroImageService) detail(ctx context.Context, hero *entity.HeroImage) (*response.HeroImageResponse, error) {
	images, err := s.repo.Image.FindByOwner(ctx, entity.ImageableHeroImage, hero.ID)
	if err != nil {
		return nil, err
	}

	resp := response.HeroImageToResponse(hero, images, s.media.URL)
	return &resp, nil
}
