// internal/wire/wire.go
package wire

import (
	"net/http"

	"umrah-booking/internal/adaptor"
	"umrah-booking/internal/data/repository"
	"umrah-booking/internal/usecase"
	"umrah-booking/pkg/cache"
	"umrah-booking/pkg/mailer"
	"umrah-booking/pkg/middleware"
	"umrah-booking/pkg/storage"
	"umrah-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

// Deps are the infrastructure clients built in main.
type Deps struct {
	Repo    *repository.Repository
	Storage storage.Storage
	Mailer  mailer.Mailer
	Cache   cache.Cache
}

// Wiring builds services, handlers and routes.
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.Storage, deps.Mailer, deps.Cache, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, deps.Repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))
	r.Use(middleware.MethodOverride(config.App.MaxUploadMB << 20))

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireAdmin(r, handler.Admin, repo, config, logger)
	wireCatalog(r, handler, repo, config, logger)
	wireTrip(r, handler.Trip, repo, config, logger)
	wireReservation(r, handler.Reservation, repo, config, logger)
	wireHeroImage(r, handler.HeroImage, repo, config, logger)
	wireDashboard(r, handler.Dashboard, repo, config, logger)

	// local uploads are served from disk; cloudinary hands out its own URLs
	if config.Storage.Driver == "" || config.Storage.Driver == "local" {
		fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(config.Storage.LocalPath)))
		r.Get("/storage/*", fs.ServeHTTP)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
