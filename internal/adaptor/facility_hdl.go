package adaptor

import (
	"net/http"

	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/usecase"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FacilityHandler struct {
	service usecase.FacilityService
	log     *zap.Logger
}

func NewFacilityHandler(service usecase.FacilityService, log *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "facility")),
	}
}

// List handles GET /api/facilities
func (h *FacilityHandler) List(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list facilities")
		return
	}

	utils.ResponseSuccess(w, "Facilities retrieved successfully", facilities)
}

// Get handles GET /api/facilities/{id}
func (h *FacilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	facility, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get facility")
		return
	}

	utils.ResponseSuccess(w, "Facility retrieved successfully", facility)
}

// Create handles POST /api/facilities
func (h *FacilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	facility, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create facility")
		return
	}

	utils.ResponseCreated(w, "Facility created successfully", facility)
}

// Update handles PUT /api/facilities/{id}
func (h *FacilityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	facility, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update facility")
		return
	}

	utils.ResponseSuccess(w, "Facility updated successfully", facility)
}

// Delete handles DELETE /api/facilities/{id}
func (h *FacilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete facility")
		return
	}

	utils.ResponseSuccess(w, "Facility deleted successfully", nil)
}
