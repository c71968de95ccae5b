package response

import (
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/pkg/utils"
)

type TripHotelResponse struct {
	HotelID        string  `json:"hotel_id"`
	HotelName      string  `json:"hotel_name"`
	Stars          int     `json:"stars"`
	CityName       string  `json:"city_name"`
	NumberOfNights int     `json:"number_of_nights"`
	Description    *string `json:"description,omitempty"`
}

type TripResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Price       float64             `json:"price"`
	IsActive    bool                `json:"is_active"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Days        int                 `json:"days"`
	Description *string             `json:"description,omitempty"`
	Image       *ImageResponse      `json:"image,omitempty"`
	Hotels      []TripHotelResponse `json:"hotels,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func TripToResponse(t *entity.Trip, cover *entity.Image, hotels []entity.TripHotelDetail, url URLFunc) TripResponse {
	resp := TripResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Price:       t.Price,
		IsActive:    t.IsActive,
		StartDate:   t.StartDate.Format(utils.DateLayout),
		EndDate:     t.EndDate.Format(utils.DateLayout),
		Days:        t.Days(),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}

	if cover != nil {
		img := ImageToResponse(cover, url)
		resp.Image = &img
	}

	for _, h := range hotels {
		resp.Hotels = append(resp.Hotels, TripHotelResponse{
			HotelID:        h.HotelID.String(),
			HotelName:      h.HotelName,
			Stars:          h.Stars,
			CityName:       h.CityName,
			NumberOfNights: h.NumberOfNights,
			Description:    h.Description,
		})
	}

	return resp
}
