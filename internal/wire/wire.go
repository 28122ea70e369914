// internal/wire/wire.go
package wire

import (
	"net/http"
	"time"

	"realtor-listings/internal/adaptor"
	"realtor-listings/internal/data/repository"
	"realtor-listings/internal/usecase"
	"realtor-listings/pkg/middleware"
	"realtor-listings/pkg/token"
	"realtor-listings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Session token issuer, keyed separately from the product-key secret
	tokens := token.NewMaker(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	// Initialize services and handlers
	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, tokens, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Maker,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireAuth(r, handler.Auth, tokens, logger)
	wireHome(r, handler.Home, repo, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
