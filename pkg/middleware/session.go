package middleware

import (
	"net/http"

	"laundry-booking/internal/data/repository"
	"laundry-booking/pkg/utils"

	"go.uber.org/zap"
)

// Session resolves the X-Session-ID header into a live booking session
// and stores its ID in the request context.
func Session(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(utils.SessionHeader)
			if raw == "" {
				utils.ResponseUnauthorized(w, "Missing "+utils.SessionHeader+" header")
				return
			}

			sessionID, err := utils.ParseUUID(raw)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid session ID format")
				return
			}

			session, err := sessionRepo.FindByID(r.Context(), sessionID)
			if err != nil {
				logger.Error("Failed to look up session",
					zap.String("session_id", raw),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Unknown or expired session", zap.String("session_id", raw))
				utils.ResponseUnauthorized(w, "Unknown or expired session")
				return
			}

			ctx := utils.SetSessionContext(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
