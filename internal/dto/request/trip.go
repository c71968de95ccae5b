package request

import (
	"bytes"
	"encoding/json"
)

type TripHotelRequest struct {
	ID             string  `json:"id" validate:"required,uuid"`
	NumberOfNights int     `json:"number_of_nights" validate:"required,min=1"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// TripHotels is a JSON array in both JSON bodies and multipart fields.
type TripHotels []TripHotelRequest

func (h *TripHotels) UnmarshalJSON(data []byte) error {
	var rows []TripHotelRequest
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	*h = rows
	return nil
}

func (h *TripHotels) UnmarshalText(text []byte) error {
	if len(bytes.TrimSpace(text)) == 0 {
		*h = nil
		return nil
	}
	return h.UnmarshalJSON(text)
}

type CreateTripRequest struct {
	Name        string     `json:"name" form:"name" validate:"required,min=3,max=150"`
	Price       float64    `json:"price" form:"price" validate:"required,gt=0"`
	IsActive    *bool      `json:"is_active,omitempty" form:"is_active"`
	StartDate   string     `json:"start_date" form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string     `json:"end_date" form:"end_date" validate:"required,datetime=2006-01-02"`
	Description *string    `json:"description,omitempty" form:"description"`
	Hotels      TripHotels `json:"hotels" form:"hotels" validate:"required,min=1,dive"`
}

type UpdateTripRequest struct {
	Name        *string    `json:"name,omitempty" form:"name" validate:"omitempty,min=3,max=150"`
	Price       *float64   `json:"price,omitempty" form:"price" validate:"omitempty,gt=0"`
	IsActive    *bool      `json:"is_active,omitempty" form:"is_active"`
	StartDate   *string    `json:"start_date,omitempty" form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string    `json:"end_date,omitempty" form:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description *string    `json:"description,omitempty" form:"description"`
	Hotels      TripHotels `json:"hotels,omitempty" form:"hotels" validate:"omitempty,min=1,dive"`
}

type TripFilterRequest struct {
	PaginatedRequest
	IsActive *bool `json:"is_active"`
}
