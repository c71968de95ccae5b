package usecase

import (
	"context"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	List(ctx context.Context, actor Actor, req *request.ReservationFilterRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	Get(ctx context.Context, actor Actor, reservationID string) (*response.ReservationResponse, error)
	Create(ctx context.Context, actor Actor, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error)
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) List(ctx context.Context, actor Actor, req *request.ReservationFilterRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	filter := repository.ReservationFilter{
		Limit:  req.Limit(),
		Offset: req.Offset(),
	}
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		filter.UserID = &id
	}
	if req.TripID != "" {
		id, err := uuid.Parse(req.TripID)
		if err != nil {
			return nil, ErrTripNotFound
		}
		filter.TripID = &id
	}
	if req.Status != "" {
		status := entity.ReservationStatus(req.Status)
		filter.Status = &status
	}

	strategyFor(actor).scope(&filter)

	reservations, err := s.repo.Reservation.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Reservation.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]response.ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, response.ReservationToResponse(res))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *reservationService) Get(ctx context.Context, actor Actor, reservationID string) (*response.ReservationResponse, error) {
	id, err := parseID(reservationID, ErrReservationNotFound)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil || !strategyFor(actor).visible(res) {
		return nil, ErrReservationNotFound
	}

	resp := response.ReservationToResponse(res)
	return &resp, nil
}

// Create books tickets on an active trip that has not started yet.
func (s *reservationService) Create(ctx context.Context, actor Actor, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	tripID, err := parseID(req.TripID, ErrTripNotFound)
	if err != nil {
		return nil, err
	}

	trip, err := s.repo.Trip.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}

	now := time.Now()
	if !trip.IsActive || trip.HasStarted(now) {
		return nil, ErrTripNotBookable
	}

	res := &entity.Reservation{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          actor.ID,
		TripID:          trip.ID,
		Status:          entity.ReservationPending,
		NumberOfTickets: req.NumberOfTickets,
	}

	if err := s.repo.Reservation.Create(ctx, res); err != nil {
		return nil, err
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", res.ID.String()),
		zap.String("user_id", actor.ID.String()),
		zap.String("trip_id", trip.ID.String()),
		zap.Int("tickets", res.NumberOfTickets),
	)

	return s.Get(ctx, actor, res.ID.String())
}

// UpdateStatus applies the actor's strategy under a row lock so concurrent edits serialize.
func (s *reservationService) UpdateStatus(ctx context.Context, actor Actor, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error) {
	id, err := parseID(reservationID, ErrReservationNotFound)
	if err != nil {
		return nil, err
	}

	target := entity.ReservationStatus(req.Status)
	if !target.Valid() {
		return nil, ErrUnknownStatus
	}

	strategy := strategyFor(actor)

	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		res, err := s.repo.Reservation.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if res == nil || !strategy.visible(res) {
			return ErrReservationNotFound
		}

		canceledBy, err := strategy.transition(res, target)
		if err != nil {
			return err
		}

		return s.repo.Reservation.UpdateStatus(ctx, res.ID, target, canceledBy, time.Now())
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Reservation status updated",
		zap.String("reservation_id", id.String()),
		zap.String("status", string(target)),
		zap.String("actor_id", actor.ID.String()),
		zap.String("actor_role", string(actor.Role)),
	)

	return s.Get(ctx, actor, id.String())
}
