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
	"umrah-booking/pkg/storage"
	"umrah-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tripFolder = "trips"

type TripService interface {
	List(ctx context.Context, actor Actor, req *request.TripFilterRequest) (*response.PaginatedResponse[response.TripResponse], error)
	Get(ctx context.Context, actor Actor, tripID string) (*response.TripResponse, error)
	Create(ctx context.Context, req *request.CreateTripRequest, cover *storage.Upload) (*response.TripResponse, error)
	Update(ctx context.Context, tripID string, req *request.UpdateTripRequest, cover *storage.Upload) (*response.TripResponse, error)
	Delete(ctx context.Context, tripID string) error
}

type tripService struct {
	repo  *repository.Repository
	media *MediaManager
	log   *zap.Logger
}

func NewTripService(repo *repository.Repository, media *MediaManager, log *zap.Logger) TripService {
	return &tripService{
		repo:  repo,
		media: media,
		log:   log.With(zap.String("service", "trip")),
	}
}

// List shows only active trips to the public and to users. Staff may filter on is_active.
func (s *tripService) List(ctx context.Context, actor Actor, req *request.TripFilterRequest) (*response.PaginatedResponse[response.TripResponse], error) {
	filter := repository.TripFilter{
		IsActive: req.IsActive,
		Search:   req.Search,
		Limit:    req.Limit(),
		Offset:   req.Offset(),
	}
	if !actor.IsStaff() {
		active := true
		filter.IsActive = &active
	}

	trips, err := s.repo.Trip.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Trip.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]response.TripResponse, 0, len(trips))
	for _, trip := range trips {
		cover, err := s.repo.Image.FindLatestByOwner(ctx, entity.ImageableTrip, trip.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.TripToResponse(trip, cover, nil, s.media.URL))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *tripService) Get(ctx context.Context, actor Actor, tripID string) (*response.TripResponse, error) {
	trip, err := s.find(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.IsActive && !actor.IsStaff() {
		return nil, ErrTripNotFound
	}

	return s.detail(ctx, trip)
}

func (s *tripService) Create(ctx context.Context, req *request.CreateTripRequest, cover *storage.Upload) (*response.TripResponse, error) {
	if cover == nil {
		return nil, ErrImageRequired
	}

	start, end, err := parseTripDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(ctx, name, uuid.Nil); err != nil {
		return nil, err
	}

	hotels, err := s.resolveHotels(ctx, req.Hotels)
	if err != nil {
		return nil, err
	}

	if err := validateNights(start, end, hotels); err != nil {
		return nil, err
	}

	now := time.Now()
	trip := &entity.Trip{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        name,
		Price:       req.Price,
		IsActive:    req.IsActive == nil || *req.IsActive,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
	}

	err = s.media.Transact(ctx, tripFolder, []storage.Upload{*cover}, func(ctx context.Context, stored []string) ([]string, error) {
		if err := s.repo.Trip.Create(ctx, trip); err != nil {
			return nil, s.mapDuplicate(err)
		}
		if err := s.repo.Trip.SyncHotels(ctx, trip.ID, hotels); err != nil {
			return nil, err
		}
		return nil, s.media.Attach(ctx, entity.ImageableTrip, trip.ID, stored)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.Int("hotels", len(hotels)),
		zap.Int("nights", trip.Days()),
	)

	return s.detail(ctx, trip)
}

// Update is partial. When the dates move without a new hotel list, the stored list is
// checked against the new dates.
func (s *tripService) Update(ctx context.Context, tripID string, req *request.UpdateTripRequest, cover *storage.Upload) (*response.TripResponse, error) {
	trip, err := s.find(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := s.ensureNameFree(ctx, name, trip.ID); err != nil {
			return nil, err
		}
		trip.Name = name
	}
	if req.Price != nil {
		trip.Price = *req.Price
	}
	if req.IsActive != nil {
		trip.IsActive = *req.IsActive
	}
	if req.Description != nil {
		trip.Description = req.Description
	}

	startValue := trip.StartDate.Format(utils.DateLayout)
	endValue := trip.EndDate.Format(utils.DateLayout)
	if req.StartDate != nil {
		startValue = *req.StartDate
	}
	if req.EndDate != nil {
		endValue = *req.EndDate
	}

	start, end, err := parseTripDates(startValue, endValue)
	if err != nil {
		return nil, err
	}
	datesChanged := !start.Equal(trip.StartDate) || !end.Equal(trip.EndDate)
	trip.StartDate, trip.EndDate = start, end

	var hotels []entity.TripHotel
	switch {
	case req.Hotels != nil:
		if hotels, err = s.resolveHotels(ctx, req.Hotels); err != nil {
			return nil, err
		}
		if err := validateNights(start, end, hotels); err != nil {
			return nil, err
		}
	case datesChanged:
		stored, err := s.repo.Trip.FindHotels(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		current := make([]entity.TripHotel, 0, len(stored))
		for _, h := range stored {
			current = append(current, h.TripHotel)
		}
		if err := validateNights(start, end, current); err != nil {
			return nil, err
		}
	}

	trip.UpdatedAt = time.Now()

	var uploads []storage.Upload
	if cover != nil {
		uploads = []storage.Upload{*cover}
	}

	err = s.media.Transact(ctx, tripFolder, uploads, func(ctx context.Context, stored []string) ([]string, error) {
		if err := s.repo.Trip.Update(ctx, trip); err != nil {
			return nil, s.mapDuplicate(err)
		}
		if req.Hotels != nil {
			if err := s.repo.Trip.SyncHotels(ctx, trip.ID, hotels); err != nil {
				return nil, err
			}
		}
		if len(stored) == 0 {
			return nil, nil
		}
		return s.media.ReplaceSingle(ctx, entity.ImageableTrip, trip.ID, stored[0])
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Trip updated", zap.String("trip_id", trip.ID.String()))
	return s.detail(ctx, trip)
}

// Delete refuses trips whose start date has passed.
func (s *tripService) Delete(ctx context.Context, tripID string) error {
	trip, err := s.find(ctx, tripID)
	if err != nil {
		return err
	}

	if trip.HasStarted(time.Now()) {
		return ErrTripStarted
	}

	err = s.media.Transact(ctx, tripFolder, nil, func(ctx context.Context, _ []string) ([]string, error) {
		if err := s.repo.Trip.DeleteHotels(ctx, trip.ID); err != nil {
			return nil, err
		}
		released, err := s.media.DetachAll(ctx, entity.ImageableTrip, trip.ID)
		if err != nil {
			return nil, err
		}
		return released, s.repo.Trip.Delete(ctx, trip.ID)
	})
	if err != nil {
		return err
	}

	s.log.Info("Trip deleted", zap.String("trip_id", trip.ID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

// validateNights enforces that the hotel stays cover every night between the two dates.
func validateNights(start, end time.Time, hotels []entity.TripHotel) error {
	expected := utils.DaysBetween(start, end)
	if given := entity.TotalNights(hotels); given != expected {
		return ErrNightMismatch.WithDetails(map[string]any{
			"expected_nights": expected,
			"given_nights":    given,
		})
	}
	return nil
}

func parseTripDates(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(startValue)
	if err != nil {
		return time.Time{}, time.Time{}, ErrTripDateOrder.WithDetails(map[string]any{"start_date": "invalid date"})
	}
	end, err := utils.ParseDate(endValue)
	if err != nil {
		return time.Time{}, time.Time{}, ErrTripDateOrder.WithDetails(map[string]any{"end_date": "invalid date"})
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrTripDateOrder
	}
	return start, end, nil
}

// resolveHotels turns the request rows into pivot rows, rejecting duplicates and unknown hotels.
func (s *tripService) resolveHotels(ctx context.Context, rows []request.TripHotelRequest) ([]entity.TripHotel, error) {
	hotels := make([]entity.TripHotel, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]bool, len(rows))

	for _, row := range rows {
		id, err := parseID(row.ID, ErrHotelNotFound)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, ErrDuplicateHotel.WithDetails(map[string]any{"hotel_id": id.String()})
		}
		seen[id] = true

		ids = append(ids, id)
		hotels = append(hotels, entity.TripHotel{
			HotelID:        id,
			NumberOfNights: row.NumberOfNights,
			Description:    row.Description,
		})
	}

	found, err := s.repo.Hotel.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		known := make(map[uuid.UUID]bool, len(found))
		for _, h := range found {
			known[h.ID] = true
		}
		for _, id := range ids {
			if !known[id] {
				return nil, ErrHotelNotFound.WithDetails(map[string]any{"hotel_id": id.String()})
			}
		}
	}

	return hotels, nil
}

func (s *tripService) find(ctx context.Context, tripID string) (*entity.Trip, error) {
	id, err := parseID(tripID, ErrTripNotFound)
	if err != nil {
		return nil, err
	}

	trip, err := s.repo.Trip.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

func (s *tripService) detail(ctx context.Context, trip *entity.Trip) (*response.TripResponse, error) {
	cover, err := s.repo.Image.FindLatestByOwner(ctx, entity.ImageableTrip, trip.ID)
	if err != nil {
		return nil, err
	}

	hotels, err := s.repo.Trip.FindHotels(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	resp := response.TripToResponse(trip, cover, hotels, s.media.URL)
	return &resp, nil
}

func (s *tripService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.repo.Trip.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return ErrTripNameTaken
	}
	return nil
}

func (s *tripService) mapDuplicate(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrTripNameTaken
	}
	return err
}
