package session_test

import (
	"testing"
	"time"

	"github.com/ahmedw/folio/domain/session"
)

func TestTTL(t *testing.T) {
	if got := session.TTL(false); got != 24*time.Hour {
		t.Errorf("TTL(false) = %v, want 24h", got)
	}
	if got := session.TTL(true); got != 30*24*time.Hour {
		t.Errorf("TTL(true) = %v, want 720h", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want session.RouteClass
	}{
		{"/", session.ClassPublic},
		{"/projects", session.ClassPublic},
		{"/projects/3", session.ClassPublic},
		{"/aboutme", session.ClassPublic},
		{"/api/auth/login", session.ClassPublic},
		{"/api/auth/logout", session.ClassPublic},
		{"/admin/login", session.ClassLogin},
		{"/admin/login/", session.ClassLogin},
		{"/admin", session.ClassProtected},
		{"/admin/", session.ClassProtected},
		{"/admin/dashboard", session.ClassProtected},
		{"/admin/anything/nested", session.ClassProtected},
		{"/administrator", session.ClassPublic},
	}

	for _, tt := range tests {
		if got := session.Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
