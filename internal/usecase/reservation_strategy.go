package usecase

import (
	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"

	"github.com/google/uuid"
)

// reservationStrategy holds the role-dependent rules for reading and changing reservations.
type reservationStrategy interface {
	// scope narrows a listing filter to what the actor may see.
	scope(filter *repository.ReservationFilter)
	visible(res *entity.Reservation) bool
	// transition checks the status change and returns the canceler to record, if any.
	transition(res *entity.Reservation, target entity.ReservationStatus) (*uuid.UUID, error)
}

func strategyFor(actor Actor) reservationStrategy {
	if actor.IsStaff() {
		return adminStrategy{actor: actor}
	}
	return userStrategy{actor: actor}
}

type userStrategy struct {
	actor Actor
}

func (s userStrategy) scope(filter *repository.ReservationFilter) {
	id := s.actor.ID
	filter.UserID = &id
}

func (s userStrategy) visible(res *entity.Reservation) bool {
	return res.UserID == s.actor.ID
}

func (s userStrategy) transition(res *entity.Reservation, target entity.ReservationStatus) (*uuid.UUID, error) {
	if res.Status != entity.ReservationPending {
		return nil, ErrReservationNotPending
	}
	if target != entity.ReservationCanceled {
		return nil, ErrUserCanOnlyCancel
	}

	id := s.actor.ID
	return &id, nil
}

type adminStrategy struct {
	actor Actor
}

func (s adminStrategy) scope(*repository.ReservationFilter) {}

func (s adminStrategy) visible(*entity.Reservation) bool {
	return true
}

func (s adminStrategy) transition(res *entity.Reservation, target entity.ReservationStatus) (*uuid.UUID, error) {
	if res.CanceledByUser() {
		return nil, ErrAdminUserCanceled
	}

	if target == entity.ReservationCanceled && res.CanceledBy == nil {
		id := s.actor.ID
		return &id, nil
	}
	return nil, nil
}
