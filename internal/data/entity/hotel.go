package entity

import "github.com/google/uuid"

type Hotel struct {
	BaseNoDelete
	CityID      uuid.UUID `db:"city_id"`
	Name        string    `db:"name"`
	Address     *string   `db:"address"`
	Stars       int       `db:"stars"`
	Description *string   `db:"description"`

	CityName string
}
