package response

import (
	"time"

	"umrah-booking/internal/data/entity"
)

// URLFunc turns a stored image path into a public URL.
type URLFunc func(path string) string

type CityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type FacilityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ImageResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type HotelResponse struct {
	ID          string             `json:"id"`
	CityID      string             `json:"city_id"`
	CityName    string             `json:"city_name"`
	Name        string             `json:"name"`
	Address     *string            `json:"address,omitempty"`
	Stars       int                `json:"stars"`
	Description *string            `json:"description,omitempty"`
	Image       *ImageResponse     `json:"image,omitempty"`
	Images      []ImageResponse    `json:"images,omitempty"`
	Facilities  []FacilityResponse `json:"facilities,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type HeroImageResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	IsActive  bool            `json:"is_active"`
	Images    []ImageResponse `json:"images"`
	CreatedAt time.Time       `json:"created_at"`
}

func CityToResponse(city *entity.City) CityResponse {
	return CityResponse{
		ID:        city.ID.String(),
		Name:      city.Name,
		CreatedAt: city.CreatedAt,
	}
}

func FacilityToResponse(f *entity.Facility) FacilityResponse {
	return FacilityResponse{ID: f.ID.String(), Name: f.Name}
}

func FacilitiesToResponse(facilities []*entity.Facility) []FacilityResponse {
	resp := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		resp = append(resp, FacilityToResponse(f))
	}
	return resp
}

func ImageToResponse(img *entity.Image, url URLFunc) ImageResponse {
	return ImageResponse{
		ID:        img.ID.String(),
		URL:       url(img.Path),
		CreatedAt: img.CreatedAt,
	}
}

func ImagesToResponse(images []*entity.Image, url URLFunc) []ImageResponse {
	resp := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, ImageToResponse(img, url))
	}
	return resp
}

// HotelToResponse fills the primary image from the first entry of images, which is the latest.
func HotelToResponse(h *entity.Hotel, images []*entity.Image, facilities []*entity.Facility, url URLFunc) HotelResponse {
	resp := HotelResponse{
		ID:          h.ID.String(),
		CityID:      h.CityID.String(),
		CityName:    h.CityName,
		Name:        h.Name,
		Address:     h.Address,
		Stars:       h.Stars,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
	}

	if len(images) > 0 {
		primary := ImageToResponse(images[0], url)
		resp.Image = &primary
		resp.Images = ImagesToResponse(images, url)
	}
	if facilities != nil {
		resp.Facilities = FacilitiesToResponse(facilities)
	}

	return resp
}

func HeroImageToResponse(h *entity.HeroImage, images []*entity.Image, url URLFunc) HeroImageResponse {
	return HeroImageResponse{
		ID:        h.ID.String(),
		Title:     h.Title,
		IsActive:  h.IsActive,
		Images:    ImagesToResponse(images, url),
		CreatedAt: h.CreatedAt,
	}
}
