package response

import (
	"time"

	"umrah-booking/internal/data/entity"
)

type ReservationResponse struct {
	ID              string                   `json:"id"`
	UserID          string                   `json:"user_id"`
	UserName        string                   `json:"user_name"`
	TripID          string                   `json:"trip_id"`
	TripName        string                   `json:"trip_name"`
	Status          entity.ReservationStatus `json:"status"`
	NumberOfTickets int                      `json:"number_of_tickets"`
	TotalPrice      float64                  `json:"total_price"`
	CanceledBy      *string                  `json:"canceled_by,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func ReservationToResponse(r *entity.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:              r.ID.String(),
		UserID:          r.UserID.String(),
		UserName:        r.UserName,
		TripID:          r.TripID.String(),
		TripName:        r.TripName,
		Status:          r.Status,
		NumberOfTickets: r.NumberOfTickets,
		TotalPrice:      r.TripPrice * float64(r.NumberOfTickets),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if r.CanceledBy != nil {
		id := r.CanceledBy.String()
		resp.CanceledBy = &id
	}

	return resp
}
