package adaptor

import (
	"net/http"

	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/usecase"
	"umrah-booking/pkg/storage"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service   usecase.HotelService
	maxMemory int64
	log       *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, maxMemory int64, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service:   service,
		maxMemory: maxMemory,
		log:       log.With(zap.String("handler", "hotel")),
	}
}

// List handles GET /api/hotels
func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	req := request.HotelFilterRequest{
		PaginatedRequest: paginated(r),
		CityID:           r.URL.Query().Get("city_id"),
	}
	if !validate(w, &req) {
		return
	}

	hotels, err := h.service.List(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "Hotels retrieved successfully", hotels)
}

// Get handles GET /api/hotels/{id}
func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel retrieved successfully", hotel)
}

// Create handles POST /api/hotels (multipart, images[] required)
func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.HotelRequest
	var images []storage.Upload

	if isMultipart(r) {
		form, err := parseMultipart(r, h.maxMemory)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}
		if !decodeForm(w, form, &req) {
			return
		}

		var closeAll func()
		images, closeAll, err = formUploads(form, "images")
		if err != nil {
			utils.ResponseBadRequest(w, "Unable to read uploaded images", nil)
			return
		}
		defer closeAll()
	} else if !decodeAndValidate(w, r, &req) {
		return
	}

	hotel, err := h.service.Create(r.Context(), &req, images)
	if err != nil {
		handleServiceError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "Hotel created successfully", hotel)
}

// Update handles PUT /api/hotels/{id}
func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.HotelUpdateRequest
	var images []storage.Upload

	if isMultipart(r) {
		form, err := parseMultipart(r, h.maxMemory)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}
		if !decodeForm(w, form, &req) {
			return
		}

		var closeAll func()
		images, closeAll, err = formUploads(form, "images")
		if err != nil {
			utils.ResponseBadRequest(w, "Unable to read uploaded images", nil)
			return
		}
		defer closeAll()
	} else if !decodeAndValidate(w, r, &req) {
		return
	}

	hotel, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req, images)
	if err != nil {
		handleServiceError(w, h.log, err, "update hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel updated successfully", hotel)
}

// Delete handles DELETE /api/hotels/{id}
func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel deleted successfully", nil)
}
