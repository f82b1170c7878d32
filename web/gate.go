package web

import (
	"net/http"

	"github.com/ahmedw/folio/domain/session"
)

// Gate enforces the admin auth policy on page requests.
// Protected pages redirect to the login page when the credential is
// missing or invalid; the login page redirects away when it is valid.
// Pages use 307 so the browser retries with the same method.
func (h *Handler) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class := session.Classify(r.URL.Path)
		if class == session.ClassPublic {
			next.ServeHTTP(w, r)
			return
		}

		authed := h.isAuthenticated(r)

		switch class {
		case session.ClassLogin:
			if authed {
				http.Redirect(w, r, "/admin/dashboard", http.StatusTemporaryRedirect)
				return
			}
		case session.ClassProtected:
			if !authed {
				http.Redirect(w, r, "/admin/login", http.StatusTemporaryRedirect)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) isAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return false
	}
	_, err = h.tokens.Validate(cookie.Value)
	return err == nil
}
