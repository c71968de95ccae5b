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

type TripHandler struct {
	service   usecase.TripService
	maxMemory int64
	log       *zap.Logger
}

func NewTripHandler(service usecase.TripService, maxMemory int64, log *zap.Logger) *TripHandler {
	return &TripHandler{
		service:   service,
		maxMemory: maxMemory,
		log:       log.With(zap.String("handler", "trip")),
	}
}

// List handles GET /api/trips
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	req := request.TripFilterRequest{PaginatedRequest: paginated(r)}

	if v := r.URL.Query().Get("is_active"); v != "" {
		active := v == "true" || v == "1"
		req.IsActive = &active
	}
	if !validate(w, &req) {
		return
	}

	trips, err := h.service.List(r.Context(), actorFrom(r), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list trips")
		return
	}

	utils.ResponseSuccess(w, "Trips retrieved successfully", trips)
}

// Get handles GET /api/trips/{id}
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	trip, err := h.service.Get(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get trip")
		return
	}

	utils.ResponseSuccess(w, "Trip retrieved successfully", trip)
}

// Create handles POST /api/trips. Multipart bodies carry hotels as a JSON string and the cover as "image".
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTripRequest
	var cover *storage.Upload

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
		cover, closeAll, err = formUpload(form, "image")
		if err != nil {
			utils.ResponseBadRequest(w, "Unable to read uploaded image", nil)
			return
		}
		defer closeAll()
	} else if !decodeAndValidate(w, r, &req) {
		return
	}

	trip, err := h.service.Create(r.Context(), &req, cover)
	if err != nil {
		handleServiceError(w, h.log, err, "create trip")
		return
	}

	utils.ResponseCreated(w, "Trip created successfully", trip)
}

// Update handles PUT /api/trips/{id}
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateTripRequest
	var cover *storage.Upload

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
		cover, closeAll, err = formUpload(form, "image")
		if err != nil {
			utils.ResponseBadRequest(w, "Unable to read uploaded image", nil)
			return
		}
		defer closeAll()
	} else if !decodeAndValidate(w, r, &req) {
		return
	}

	trip, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req, cover)
	if err != nil {
		handleServiceError(w, h.log, err, "update trip")
		return
	}

	utils.ResponseSuccess(w, "Trip updated successfully", trip)
}

// Delete handles DELETE /api/trips/{id}
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete trip")
		return
	}

	utils.ResponseSuccess(w, "Trip deleted successfully", nil)
}
