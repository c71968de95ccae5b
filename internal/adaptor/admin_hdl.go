package adaptor

import (
	"net/http"

	"umrah-booking/internal/dto/request"
	"umrah-booking/internal/usecase"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// List handles GET /api/admins
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	req := paginated(r)
	if !validate(w, &req) {
		return
	}

	admins, err := h.service.List(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list admins")
		return
	}

	utils.ResponseSuccess(w, "Admins retrieved successfully", admins)
}

// Create handles POST /api/admins
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAdminRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	admin, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create admin")
		return
	}

	utils.ResponseCreated(w, "Admin created successfully", admin)
}

// Delete handles DELETE /api/admins/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete admin")
		return
	}

	utils.ResponseSuccess(w, "Admin deleted successfully", nil)
}
