package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/usecase"
	"umrah-booking/pkg/apperror"
	"umrah-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Admin       *AdminHandler
	City        *CityHandler
	Facility    *FacilityHandler
	Hotel       *HotelHandler
	Trip        *TripHandler
	Reservation *ReservationHandler
	HeroImage   *HeroImageHandler
	Dashboard   *DashboardHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	maxMemory := config.App.MaxUploadMB << 20

	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Admin:       NewAdminHandler(service.Admin, log),
		City:        NewCityHandler(service.City, log),
		Facility:    NewFacilityHandler(service.Facility, log),
		Hotel:       NewHotelHandler(service.Hotel, maxMemory, log),
		Trip:        NewTripHandler(service.Trip, maxMemory, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		HeroImage:   NewHeroImageHandler(service.HeroImage, maxMemory, log),
		Dashboard:   NewDashboardHandler(service.Dashboard, log),
	}
}

// handleServiceError maps typed domain errors onto the envelope. Anything else is a 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr, ok := apperror.As(err)
	if !ok {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" rejected",
		zap.String("context", string(appErr.Context)),
		zap.String("reason", appErr.Message),
		zap.Int("status", appErr.Status),
	)

	var details any
	if len(appErr.Details) > 0 {
		details = appErr.Details
	}
	utils.ResponseJSON(w, appErr.Status, false, appErr.Message, nil, details)
}

// decodeAndValidate reads a JSON body into dst. It writes the error response itself and
// reports false when the handler should stop.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	return validate(w, dst)
}

func validate(w http.ResponseWriter, dst any) bool {
	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

// actorFrom returns the authenticated caller, or usecase.Anonymous on public routes.
func actorFrom(r *http.Request) usecase.Actor {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Anonymous
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	return usecase.Actor{ID: userID, Role: entity.UserRole(role)}
}

func clientInfo(r *http.Request) usecase.ClientInfo {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}
	return usecase.ClientInfo{UserAgent: r.UserAgent(), IPAddress: ip}
}

func paginated(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	req := request.NewPaginatedRequest(query.Get("page"), query.Get("per_page"))
	req.Search = query.Get("search")
	return req
}
