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

const hotelFolder = "hotels"

type HotelService interface {
	List(ctx context.Context, req *request.HotelFilterRequest) (*response.PaginatedResponse[response.HotelResponse], error)
	Get(ctx context.Context, hotelID string) (*response.HotelResponse, error)
	Create(ctx context.Context, req *request.HotelRequest, images []storage.Upload) (*response.HotelResponse, error)
	Update(ctx context.Context, hotelID string, req *request.HotelUpdateRequest, images []storage.Upload) (*response.HotelResponse, error)
	Delete(ctx context.Context, hotelID string) error
}

type hotelService struct {
	repo  *repository.Repository
	media *MediaManager
	log   *zap.Logger
}

func NewHotelService(repo *repository.Repository, media *MediaManager, log *zap.Logger) HotelService {
	return &hotelService{
		repo:  repo,
		media: media,
		log:   log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) List(ctx context.Context, req *request.HotelFilterRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	filter := repository.HotelFilter{
		Search: req.Search,
		Limit:  req.Limit(),
		Offset: req.Offset(),
	}
	if req.CityID != "" {
		cityID, err := uuid.Parse(req.CityID)
		if err != nil {
			return nil, ErrCityNotFound
		}
		filter.CityID = &cityID
	}

	hotels, err := s.repo.Hotel.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Hotel.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]response.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		primary, err := s.repo.Image.FindLatestByOwner(ctx, entity.ImageableHotel, hotel.ID)
		if err != nil {
			return nil, err
		}

		var images []*entity.Image
		if primary != nil {
			images = []*entity.Image{primary}
		}
		items = append(items, response.HotelToResponse(hotel, images, nil, s.media.URL))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *hotelService) Get(ctx context.Context, hotelID string) (*response.HotelResponse, error) {
	hotel, err := s.find(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, hotel)
}

func (s *hotelService) Create(ctx context.Context, req *request.HotelRequest, images []storage.Upload) (*response.HotelResponse, error) {
	if len(images) == 0 {
		return nil, ErrImageRequired
	}

	cityID, err := s.ensureCity(ctx, req.CityID)
	if err != nil {
		return nil, err
	}

	facilityIDs, err := s.ensureFacilities(ctx, req.FacilityIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hotel := &entity.Hotel{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CityID:      cityID,
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Stars:       req.Stars,
		Description: req.Description,
	}

	err = s.media.Transact(ctx, hotelFolder, images, func(ctx context.Context, stored []string) ([]string, error) {
		if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
			return nil, err
		}
		if err := s.repo.Hotel.SyncFacilities(ctx, hotel.ID, facilityIDs); err != nil {
			return nil, err
		}
		return nil, s.media.Attach(ctx, entity.ImageableHotel, hotel.ID, stored)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Hotel created", zap.String("hotel_id", hotel.ID.String()), zap.Int("images", len(images)))

	// reload for the joined city name
	return s.Get(ctx, hotel.ID.String())
}

func (s *hotelService) Update(ctx context.Context, hotelID string, req *request.HotelUpdateRequest, images []storage.Upload) (*response.HotelResponse, error) {
	hotel, err := s.find(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	if req.CityID != nil {
		if hotel.CityID, err = s.ensureCity(ctx, *req.CityID); err != nil {
			return nil, err
		}
	}
	if req.Name != nil {
		hotel.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		hotel.Address = req.Address
	}
	if req.Stars != nil {
		hotel.Stars = *req.Stars
	}
	if req.Description != nil {
		hotel.Description = req.Description
	}
	hotel.UpdatedAt = time.Now()

	var facilityIDs []uuid.UUID
	if req.FacilityIDs != nil {
		if facilityIDs, err = s.ensureFacilities(ctx, req.FacilityIDs); err != nil {
			return nil, err
		}
	}

	deleteIDs, err := parseIDs(req.DeletedImageIDs)
	if err != nil {
		return nil, ErrUnauthorizedDelete
	}

	err = s.media.Transact(ctx, hotelFolder, images, func(ctx context.Context, stored []string) ([]string, error) {
		if err := s.repo.Hotel.Update(ctx, hotel); err != nil {
			return nil, err
		}
		if req.FacilityIDs != nil {
			if err := s.repo.Hotel.SyncFacilities(ctx, hotel.ID, facilityIDs); err != nil {
				return nil, err
			}
		}
		return s.media.SyncMany(ctx, entity.ImageableHotel, hotel.ID, deleteIDs, stored, true)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Hotel updated", zap.String("hotel_id", hotel.ID.String()))
	return s.Get(ctx, hotel.ID.String())
}

func (s *hotelService) Delete(ctx context.Context, hotelID string) error {
	hotel, err := s.find(ctx, hotelID)
	if err != nil {
		return err
	}

	err = s.media.Transact(ctx, hotelFolder, nil, func(ctx context.Context, _ []string) ([]string, error) {
		// checked inside the tx so a trip created meanwhile cannot slip past
		inUse, err := s.repo.Hotel.IsReferencedByTrip(ctx, hotel.ID)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, ErrHotelInUse
		}

		released, err := s.media.DetachAll(ctx, entity.ImageableHotel, hotel.ID)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Hotel.SyncFacilities(ctx, hotel.ID, nil); err != nil {
			return nil, err
		}
		return released, s.repo.Hotel.Delete(ctx, hotel.ID)
	})
	if err != nil {
		return err
	}

	s.log.Info("Hotel deleted", zap.String("hotel_id", hotel.ID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *hotelService) find(ctx context.Context, hotelID string) (*entity.Hotel, error) {
	id, err := parseID(hotelID, ErrHotelNotFound)
	if err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}
	return hotel, nil
}

func (s *hotelService) detail(ctx context.Context, hotel *entity.Hotel) (*response.HotelResponse, error) {
	images, err := s.repo.Image.FindByOwner(ctx, entity.ImageableHotel, hotel.ID)
	if err != nil {
		return nil, err
	}

	facilities, err := s.repo.Facility.FindByHotelID(ctx, hotel.ID)
	if err != nil {
		return nil, err
	}
	if facilities == nil {
		facilities = []*entity.Facility{}
	}

	resp := response.HotelToResponse(hotel, images, facilities, s.media.URL)
	return &resp, nil
}

func (s *hotelService) ensureCity(ctx context.Context, cityID string) (uuid.UUID, error) {
	id, err := parseID(cityID, ErrCityNotFound)
	if err != nil {
		return uuid.Nil, err
	}

	city, err := s.repo.City.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if city == nil {
		return uuid.Nil, ErrCityNotFound
	}
	return city.ID, nil
}

func (s *hotelService) ensureFacilities(ctx context.Context, ids []string) ([]uuid.UUID, error) {
	parsed, err := parseIDs(ids)
	if err != nil {
		return nil, ErrFacilityNotFound
	}
	parsed = uniqueIDs(parsed)
	if len(parsed) == 0 {
		return parsed, nil
	}

	found, err := s.repo.Facility.FindByIDs(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if len(found) != len(parsed) {
		return nil, ErrFacilityNotFound
	}
	return parsed, nil
}
