package usecase

import "umrah-booking/pkg/apperror"

// ==================== AUTH & ACCOUNT ====================
var (
	ErrInvalidCredentials = apperror.Unauthorized(apperror.Auth, "invalid credentials")
	ErrAccountNotVerified = apperror.Forbidden(apperror.Auth, "account is not verified")
	ErrEmailTaken         = apperror.Conflict(apperror.Auth, "email already registered")
	ErrUserNotFound       = apperror.NotFound(apperror.Auth, "user not found")

	ErrAlreadyVerified  = apperror.Conflict(apperror.Verification, "account already verified")
	ErrInvalidCode      = apperror.Unprocessable(apperror.Verification, "invalid verification code")
	ErrCodeExpired      = apperror.Unprocessable(apperror.Verification, "verification code expired")
	ErrNoPendingContact = apperror.Unprocessable(apperror.Verification, "no contact change to verify")

	ErrWrongPassword = apperror.Unprocessable(apperror.UserProfile, "current password is incorrect")
	ErrSamePassword  = apperror.Unprocessable(apperror.UserProfile, "new password must differ from the current one")

	ErrAdminNotFound          = apperror.NotFound(apperror.Admin, "admin not found")
	ErrCannotDeleteSelf       = apperror.Forbidden(apperror.Admin, "cannot delete your own account")
	ErrCannotDeleteSuperAdmin = apperror.Forbidden(apperror.Admin, "cannot delete a super admin")
)

// ==================== CATALOG ====================
var (
	ErrCityNotFound  = apperror.NotFound(apperror.City, "city not found")
	ErrCityNameTaken = apperror.Conflict(apperror.City, "city name already taken")
	ErrCityInUse     = apperror.Conflict(apperror.City, "city still has hotels")

	ErrFacilityNotFound  = apperror.NotFound(apperror.Facility, "facility not found")
	ErrFacilityNameTaken = apperror.Conflict(apperror.Facility, "facility name already taken")

	ErrHotelNotFound = apperror.NotFound(apperror.Hotel, "hotel not found")
	ErrHotelInUse    = apperror.Conflict(apperror.Hotel, "cannot delete a hotel used by a trip")

	ErrHeroImageNotFound = apperror.NotFound(apperror.HeroImage, "hero image not found")
)

// ==================== TRIP ====================
var (
	ErrTripNotFound   = apperror.NotFound(apperror.Trip, "trip not found")
	ErrTripNameTaken  = apperror.Conflict(apperror.Trip, "trip name already taken")
	ErrTripDateOrder  = apperror.Unprocessable(apperror.Trip, "end date must be after start date")
	ErrNightMismatch  = apperror.Unprocessable(apperror.Trip, "night count inconsistent")
	ErrDuplicateHotel = apperror.Unprocessable(apperror.Trip, "hotel listed more than once")
	ErrTripStarted    = apperror.Unprocessable(apperror.Trip, "cannot delete this trip")
)

// ==================== RESERVATION ====================
var (
	ErrReservationNotFound   = apperror.NotFound(apperror.Reservation, "reservation not found")
	ErrReservationNotPending = apperror.Unprocessable(apperror.Reservation, "reservation is no longer pending")
	ErrUserCanOnlyCancel     = apperror.Forbidden(apperror.Reservation, "users can only cancel a reservation")
	ErrAdminUserCanceled     = apperror.Forbidden(apperror.Reservation, "admin cannot update a user-canceled reservation")
	ErrTripNotBookable       = apperror.Unprocessable(apperror.Reservation, "trip is not open for reservation")
	ErrUnknownStatus         = apperror.BadRequest(apperror.Reservation, "unknown reservation status")
)

// ==================== MEDIA ====================
var (
	ErrImageRequired      = apperror.Unprocessable(apperror.Media, "at least one image is required")
	ErrUnauthorizedDelete = apperror.Forbidden(apperror.Media, "unauthorized delete")
	ErrDeleteAllImages    = apperror.Unprocessable(apperror.Media, "can't delete all images")
)
