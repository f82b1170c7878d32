package admin

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ahmedw/folio/domain/session"
)

// Context keys
type ctxKey string

const ctxUsernameKey ctxKey = "username"

// UsernameFromContext returns the authenticated admin username, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxUsernameKey).(string)
	return v, ok
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse represents a login outcome. Message is set only on
// failure and never reveals which credential factor was wrong.
type LoginResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// Login authenticates the admin and sets the session cookie.
//
//	@Summary		Admin login
//	@Description	Authenticate with username and password; sets the admin_session cookie
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login credentials"
//	@Success		200		{object}	LoginResponse	"Login successful"
//	@Failure		401		{object}	ErrorResponse	"Invalid credentials"
//	@Router			/api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if !h.checkCredentials(req.Username, req.Password) {
		h.logger.Warn().Str("username", req.Username).Msg("failed login attempt")
		if h.metrics != nil {
			h.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		}
		writeJSON(w, http.StatusUnauthorized, LoginResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	token, expiresAt, err := h.tokens.Issue(req.Username, req.RememberMe)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to issue session credential")
		writeError(w, http.StatusInternalServerError, "internal_error", "Could not create session")
		return
	}

	h.setSessionCookie(w, token, session.TTL(req.RememberMe))

	h.logger.Info().Str("username", req.Username).Bool("remember", req.RememberMe).Msg("admin logged in")
	if h.metrics != nil {
		h.metrics.LoginAttempts.WithLabelValues("success").Inc()
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// checkCredentials compares against the configured admin identity.
// Both comparisons run regardless of the username outcome so a wrong
// username and a wrong password are indistinguishable by timing.
func (h *Handler) checkCredentials(username, password string) bool {
	creds := h.credentials()
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(creds.Username)) == 1
	passOK := h.hasher.Compare(creds.PasswordHash, password)
	return userOK && passOK
}

// Logout clears the session cookie. The credential itself stays valid until
// expiry; stateless sessions cannot be revoked server-side.
//
//	@Summary		Admin logout
//	@Description	Clear the session cookie
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Logged out"
//	@Security		CookieAuth
//	@Router			/api/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.production,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me returns the authenticated admin identity.
//
//	@Summary		Current session
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		401	{object}	ErrorResponse
//	@Security		CookieAuth
//	@Router			/api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}

// RequireAuth validates the session cookie on API requests.
// API clients get a 401 JSON body, never a redirect.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
			return
		}

		claims, err := h.tokens.Validate(cookie.Value)
		if err != nil {
			if h.metrics != nil {
				h.metrics.GateDenials.Inc()
			}
			writeError(w, http.StatusUnauthorized, "unauthorized", "Session is invalid or expired")
			return
		}

		ctx := context.WithValue(r.Context(), ctxUsernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.production,
	})
}
