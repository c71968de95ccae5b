package entity

import "github.com/google/uuid"

type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationInProgress ReservationStatus = "in_progress"
	ReservationCanceled   ReservationStatus = "canceled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationInProgress, ReservationCanceled:
		return true
	}
	return false
}

type Reservation struct {
	BaseNoDelete
	UserID          uuid.UUID         `db:"user_id"`
	TripID          uuid.UUID         `db:"trip_id"`
	Status          ReservationStatus `db:"status"`
	NumberOfTickets int               `db:"number_of_tickets"`
	CanceledBy      *uuid.UUID        `db:"canceled_by"`

	// Loaded through joins, not columns of reservations.
	CanceledByRole *UserRole
	TripName       string
	TripPrice      float64
	UserName       string
}

// CanceledByUser reports whether the reservation was canceled by a customer account.
func (r *Reservation) CanceledByUser() bool {
	return r.CanceledBy != nil && r.CanceledByRole != nil && *r.CanceledByRole == RoleUser
}
