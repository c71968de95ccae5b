package entity

import "github.com/google/uuid"

type ImageableType string

const (
	ImageableHotel     ImageableType = "hotel"
	ImageableTrip      ImageableType = "trip"
	ImageableHeroImage ImageableType = "hero_image"
)

// Image is polymorphic: (ImageableType, ImageableID) names the owner row.
type Image struct {
	BaseSimple
	ImageableID   uuid.UUID     `db:"imageable_id"`
	ImageableType ImageableType `db:"imageable_type"`
	Path          string        `db:"path"`
}

type HeroImage struct {
	BaseNoDelete
	Title    string `db:"title"`
	IsActive bool   `db:"is_active"`
}
