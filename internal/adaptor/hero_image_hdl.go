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

type HeroImageHandler struct {
	service   usecase.HeroImageService
	maxMemory int64
	log       *zap.Logger
}

func NewHeroImageHandler(service usecase.HeroImageService, maxMemory int64, log *zap.Logger) *HeroImageHandler {
	return &HeroImageHandler{
		service:   service,
		maxMemory: maxMemory,
		log:       log.With(zap.String("handler", "hero_image")),
	}
}

// List handles GET /api/hero-images
func (h *HeroImageHandler) List(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.service.List(r.Context(), actorFrom(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list hero images")
		return
	}

	utils.ResponseSuccess(w, "Hero images retrieved successfully", heroes)
}

// Get handles GET /api/hero-images/{id}
func (h *HeroImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	hero, err := h.service.Get(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get hero image")
		return
	}

	utils.ResponseSuccess(w, "Hero image retrieved successfully", hero)
}

// Create handles POST /api/hero-images (multipart, images[] required)
func (h *HeroImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseMultipart(r, h.maxMemory)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req request.HeroImageRequest
	if !decodeForm(w, form, &req) {
		return
	}

	images, closeAll, err := formUploads(form, "images")
	if err != nil {
		utils.ResponseBadRequest(w, "Unable to read uploaded images", nil)
		return
	}
	defer closeAll()

	hero, err := h.service.Create(r.Context(), &req, images)
	if err != nil {
		handleServiceError(w, h.log, err, "create hero image")
		return
	}

	utils.ResponseCreated(w, "Hero image created successfully", hero)
}

// Update handles PUT /api/hero-images/{id}
func (h *HeroImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.HeroImageUpdateRequest
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

	hero, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req, images)
	if err != nil {
		handleServiceError(w, h.log, err, "update hero image")
		return
	}

	utils.ResponseSuccess(w, "Hero image updated successfully", hero)
}

// Delete handles DELETE /api/hero-images/{id}
func (h *HeroImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete hero image")
		return
	}

	utils.ResponseSuccess(w, "Hero image deleted successfully", nil)
}
