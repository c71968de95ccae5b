package usecase

import (
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/cache"
	"umrah-booking/pkg/mailer"
	"umrah-booking/pkg/storage"
	"umrah-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Admin       AdminService
	City        CityService
	Facility    FacilityService
	Hotel       HotelService
	Trip        TripService
	Reservation ReservationService
	HeroImage   HeroImageService
	Dashboard   DashboardService
}

func NewService(
	repo *repository.Repository,
	store storage.Storage,
	mail mailer.Mailer,
	c cache.Cache,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	codes := newCodeIssuer(repo, mail, config, log)
	media := NewMediaManager(repo, store, log)

	return &Service{
		Auth:        NewAuthService(repo, codes, config, log),
		User:        NewUserService(repo, codes, log),
		Admin:       NewAdminService(repo, log),
		City:        NewCityService(repo, log),
		Facility:    NewFacilityService(repo, log),
		Hotel:       NewHotelService(repo, media, log),
		Trip:        NewTripService(repo, media, log),
		Reservation: NewReservationService(repo, log),
		HeroImage:   NewHeroImageService(repo, media, log),
		Dashboard:   NewDashboardService(repo, c, config.Cache.DashboardTTL, log),
	}
}
