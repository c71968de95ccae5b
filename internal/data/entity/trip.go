package entity

import (
	"time"

	"umrah-booking/pkg/utils"

	"github.com/google/uuid"
)

type Trip struct {
	BaseNoDelete
	Name        string    `db:"name"`
	Price       float64   `db:"price"`
	IsActive    bool      `db:"is_active"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Description *string   `db:"description"`
}

// Days is the trip length in nights.
func (t *Trip) Days() int {
	return utils.DaysBetween(t.StartDate, t.EndDate)
}

// HasStarted reports whether the start date is already behind now.
func (t *Trip) HasStarted(now time.Time) bool {
	return t.StartDate.Before(now)
}

// TripHotel is a row of the trip_hotels pivot.
type TripHotel struct {
	TripID         uuid.UUID `db:"trip_id"`
	HotelID        uuid.UUID `db:"hotel_id"`
	NumberOfNights int       `db:"number_of_nights"`
	Description    *string   `db:"description"`
}

// TripHotelDetail joins a pivot row with its hotel and city.
type TripHotelDetail struct {
	TripHotel
	HotelName string
	Stars     int
	CityName  string
}

// TotalNights sums number_of_nights across pivot rows.
func TotalNights(rows []TripHotel) int {
	total := 0
	for _, r := range rows {
		total += r.NumberOfNights
	}
	return total
}
