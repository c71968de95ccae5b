package request

type CreateReservationRequest struct {
	TripID          string `json:"trip_id" validate:"required,uuid"`
	NumberOfTickets int    `json:"number_of_tickets" validate:"required,min=1,max=50"`
}

type UpdateReservationRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_progress canceled"`
}

type ReservationFilterRequest struct {
	PaginatedRequest
	UserID string `json:"user_id" validate:"omitempty,uuid"`
	TripID string `json:"trip_id" validate:"omitempty,uuid"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed in_progress canceled"`
}
