package middleware

import (
	"net/http"
	"strings"

	"realtor-listings/internal/data/entity"
	"realtor-listings/internal/data/repository"
	"realtor-listings/pkg/token"
	"realtor-listings/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer session token and threads the resolved
// identity through the request context. A missing or bad token is always
// 401; role problems are a separate, later concern.
func Authenticate(tokens *token.Maker, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			identity, err := tokens.Validate(parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), identity.UserID, identity.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles checks the caller's role against a declared set. The role is
// loaded from the user store, not from the token, so a role change takes
// effect on the next request. An empty set means any authenticated caller.
func RequireRoles(userRepo repository.UserRepository, logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Identity must already be set by Authenticate
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Load the caller
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Role check: failed to get user",
					zap.Error(err), zap.Int64("user_id", userID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Role check: token for missing user", zap.Int64("user_id", userID))
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 3. Role-agnostic route
			if len(roles) == 0 {
				ctx := utils.SetRoleContext(r.Context(), string(user.Role))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// 4. Check against the declared set
			for _, role := range roles {
				if user.Role == role {
					ctx := utils.SetRoleContext(r.Context(), string(user.Role))
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			logger.Warn("Role check: insufficient role",
				zap.Int64("user_id", userID),
				zap.String("role", string(user.Role)),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "Insufficient role for this operation")
		})
	}
}
