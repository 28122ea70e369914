package wire

import (
	"realtor-listings/internal/adaptor"
	"realtor-listings/pkg/middleware"
	"realtor-listings/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	tokens *token.Maker,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/signup/{role}", authHandler.SignUp)
	r.Post("/auth/signin", authHandler.SignIn)
	// Product keys are distributed out-of-band by a trusted caller
	r.Post("/auth/key", authHandler.GenerateProductKey)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Authenticate(tokens, log)).Get("/auth/me", authHandler.Me)
}
