// Package session provides pure session-policy logic: credential lifetimes
// and route classification for the admin auth gate.
// This package has NO dependencies on I/O.
package session

import (
	"strings"
	"time"
)

// CookieName is the cookie carrying the admin session credential.
// The browser cookie is the only durable copy; the server keeps no
// session state.
const CookieName = "admin_session"

const (
	// DefaultTTL is the credential lifetime for a normal login.
	DefaultTTL = 24 * time.Hour

	// RememberTTL is the credential lifetime when "remember me" is set.
	RememberTTL = 30 * 24 * time.Hour
)

// TTL returns the credential lifetime for a login.
func TTL(remember bool) time.Duration {
	if remember {
		return RememberTTL
	}
	return DefaultTTL
}

// RouteClass partitions request paths for the auth gate.
type RouteClass int

const (
	// ClassPublic routes proceed regardless of credential state.
	ClassPublic RouteClass = iota

	// ClassLogin is the login page: authenticated requests are redirected
	// away from it.
	ClassLogin

	// ClassProtected routes require a valid credential.
	ClassProtected
)

// Classify determines the route class of a request path.
// Everything under /admin is protected except the login page itself;
// /api/auth/* stays public so login and logout always work.
func Classify(path string) RouteClass {
	path = strings.TrimSuffix(path, "/")
	if path == "/admin/login" {
		return ClassLogin
	}
	if path == "/admin" || strings.HasPrefix(path, "/admin/") {
		return ClassProtected
	}
	return ClassPublic
}
