package adaptor

import (
	"net/http"

	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/usecase"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// List handles GET /api/reservations. Users only ever see their own.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.ReservationFilterRequest{
		PaginatedRequest: paginated(r),
		UserID:           query.Get("user_id"),
		TripID:           query.Get("trip_id"),
		Status:           query.Get("status"),
	}
	if !validate(w, &req) {
		return
	}

	reservations, err := h.service.List(r.Context(), actorFrom(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}

// Get handles GET /api/reservations/{id}
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.service.Get(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation retrieved successfully", reservation)
}

// Create handles POST /api/reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reservation, err := h.service.Create(r.Context(), actorFrom(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "Reservation created successfully", reservation)
}

// UpdateStatus handles PUT /api/reservations/{id}
func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateReservationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reservation, err := h.service.UpdateStatus(r.Context(), actorFrom(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation updated successfully", reservation)
}
