package adaptor

import (
	"net/http"

	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/usecase"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CityHandler struct {
	service usecase.CityService
	log     *zap.Logger
}

func NewCityHandler(service usecase.CityService, log *zap.Logger) *CityHandler {
	return &CityHandler{
		service: service,
		log:     log.With(zap.String("handler", "city")),
	}
}

// List handles GET /api/cities
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	req := paginated(r)
	if !validate(w, &req) {
		return
	}

	cities, err := h.service.List(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list cities")
		return
	}

	utils.ResponseSuccess(w, "Cities retrieved successfully", cities)
}

// Get handles GET /api/cities/{id}
func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	city, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get city")
		return
	}

	utils.ResponseSuccess(w, "City retrieved successfully", city)
}

// Create handles POST /api/cities
func (h *CityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	city, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create city")
		return
	}

	utils.ResponseCreated(w, "City created successfully", city)
}

// Update handles PUT /api/cities/{id}
func (h *CityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	city, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update city")
		return
	}

	utils.ResponseSuccess(w, "City updated successfully", city)
}

// Delete handles DELETE /api/cities/{id}
func (h *CityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete city")
		return
	}

	utils.ResponseSuccess(w, "City deleted successfully", nil)
}
