package request

// NameRequest is the body of city and facility create/update.
type NameRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type HotelRequest struct {
	CityID      string   `json:"city_id" form:"city_id" validate:"required,uuid"`
	Name        string   `json:"name" form:"name" validate:"required,min=2,max=150"`
	Address     *string  `json:"address,omitempty" form:"address" validate:"omitempty,max=500"`
	Stars       int      `json:"stars" form:"stars" validate:"required,min=1,max=5"`
	Description *string  `json:"description,omitempty" form:"description"`
	FacilityIDs []string `json:"facility_ids" form:"facility_ids" validate:"unique,dive,uuid"`
}

type HotelUpdateRequest struct {
	CityID          *string  `json:"city_id,omitempty" form:"city_id" validate:"omitempty,uuid"`
	Name            *string  `json:"name,omitempty" form:"name" validate:"omitempty,min=2,max=150"`
	Address         *string  `json:"address,omitempty" form:"address" validate:"omitempty,max=500"`
	Stars           *int     `json:"stars,omitempty" form:"stars" validate:"omitempty,min=1,max=5"`
	Description     *string  `json:"description,omitempty" form:"description"`
	FacilityIDs     []string `json:"facility_ids,omitempty" form:"facility_ids" validate:"omitempty,unique,dive,uuid"`
	DeletedImageIDs []string `json:"deleted_image_ids,omitempty" form:"deleted_image_ids" validate:"omitempty,unique,dive,uuid"`
}

type HeroImageRequest struct {
	Title    string `json:"title" form:"title" validate:"required,min=2,max=150"`
	IsActive *bool  `json:"is_active,omitempty" form:"is_active"`
}

type HeroImageUpdateRequest struct {
	Title           *string  `json:"title,omitempty" form:"title" validate:"omitempty,min=2,max=150"`
	IsActive        *bool    `json:"is_active,omitempty" form:"is_active"`
	DeletedImageIDs []string `json:"deleted_image_ids,omitempty" form:"deleted_image_ids" validate:"omitempty,unique,dive,uuid"`
}

type HotelFilterRequest struct {
	PaginatedRequest
	CityID string `json:"city_id" validate:"omitempty,uuid"`
}
