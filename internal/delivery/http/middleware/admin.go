package middleware

import (
	"log/slog"
	"net/http"

	"almocoprodigi/internal/domain"
)

// SessionCookieName is the cookie carrying the signed admin session token.
const SessionCookieName = "admin_session"

// RequireAdmin returns a wrapper that verifies the admin session cookie.
// Anonymous or invalid sessions are redirected to the login page instead of
// receiving an access-denied status.
func RequireAdmin(verifier domain.SessionVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				http.Redirect(w, r, "/admin/login", http.StatusFound)
				return
			}
			if err := verifier.Verify(cookie.Value); err != nil {
				logger.Debug("rejected admin session", "error", err)
				http.Redirect(w, r, "/admin/login", http.StatusFound)
				return
			}
			next(w, r)
		}
	}
}
