package repository

import (
	"errors"

	"umrah-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert or update hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

const uniqueViolation = "23505"

func wrapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

type Repository struct {
	Tx           database.Transactor
	User         UserRepository
	Profile      ProfileRepository
	Session      SessionRepository
	Verification VerificationRepository
	City         CityRepository
	Facility     FacilityRepository
	Hotel        HotelRepository
	Trip         TripRepository
	Reservation  ReservationRepository
	Image        ImageRepository
	HeroImage    HeroImageRepository
	Dashboard    DashboardRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:           database.NewTransactor(db, log),
		User:         NewUserRepository(db, log),
		Profile:      NewProfileRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Verification: NewVerificationRepository(db, log),
		City:         NewCityRepository(db, log),
		Facility:     NewFacilityRepository(db, log),
		Hotel:        NewHotelRepository(db, log),
		Trip:         NewTripRepository(db, log),
		Reservation:  NewReservationRepository(db, log),
		Image:        NewImageRepository(db, log),
		HeroImage:    NewHeroImageRepository(db, log),
		Dashboard:    NewDashboardRepository(db, log),
	}
}
