package wire

import (
	"realtor-listings/internal/adaptor"
	"realtor-listings/internal/data/entity"
	"realtor-listings/internal/data/repository"
	"realtor-listings/pkg/middleware"
	"realtor-listings/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHome(
	r chi.Router,
	homeHandler *adaptor.HomeHandler,
	repo *repository.Repository,
	tokens *token.Maker,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing listings needs no account
	r.Get("/home", homeHandler.GetHomes)
	r.Get("/home/{id}", homeHandler.GetHome)

	// ==================== REALTOR ROUTES ====================
	// Ownership of {id} is enforced by the service after the role check
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, log))
		r.Use(middleware.RequireRoles(repo.User, log, entity.RoleRealtor))

		r.Post("/home", homeHandler.CreateHome)
		r.Patch("/home/{id}", homeHandler.UpdateHome)
		r.Delete("/home/{id}", homeHandler.DeleteHome)
		r.Get("/home/{id}/messages", homeHandler.GetHomeMessages)
	})

	// ==================== BUYER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, log))
		r.Use(middleware.RequireRoles(repo.User, log, entity.RoleBuyer))

		r.Post("/home/{id}/inquire", homeHandler.Inquire)
	})
}
