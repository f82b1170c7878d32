package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ahmedw/folio/adapters/auth"
	"github.com/ahmedw/folio/adapters/clock"
)

func newService(t *testing.T, clk *clock.Fake) *auth.TokenService {
	t.Helper()
	svc, err := auth.NewTokenService("test-signing-secret", clk)
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	return svc
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := auth.NewTokenService("", clock.Real{})
	if err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestIssueAndValidate(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(t, clk)

	token, expiresAt, err := svc.Issue("admin", false)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if want := clk.Now().Add(24 * time.Hour); !expiresAt.Equal(want) {
		t.Errorf("expiresAt = %v, want %v", expiresAt, want)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want admin", claims.Username)
	}
	if claims.Remember {
		t.Error("Remember should be false")
	}
}

func TestValidate_ExpiredAfter24Hours(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(t, clk)

	token, _, err := svc.Issue("admin", false)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	clk.Advance(24*time.Hour + time.Second)

	_, err = svc.Validate(token)
	if !errors.Is(err, auth.ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestValidate_RememberExtendsLifetime(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(t, clk)

	token, _, err := svc.Issue("admin", true)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Still valid past the 24h boundary.
	clk.Advance(24*time.Hour + time.Second)
	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate at 24h+1s failed: %v", err)
	}
	if !claims.Remember {
		t.Error("Remember should be true")
	}

	// Expired after 30 days.
	clk.Set(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(30*24*time.Hour + time.Second))
	if _, err := svc.Validate(token); !errors.Is(err, auth.ErrExpired) {
		t.Errorf("expected ErrExpired after 30d, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	clk := clock.NewFake(time.Now())
	svc := newService(t, clk)

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		if _, err := svc.Validate(token); !errors.Is(err, auth.ErrMalformed) {
			t.Errorf("Validate(%q): expected ErrMalformed, got %v", token, err)
		}
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	clk := clock.NewFake(time.Now())
	svc := newService(t, clk)

	other, err := auth.NewTokenService("a-different-secret", clk)
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}

	token, _, err := other.Issue("admin", false)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, auth.ErrMalformed) {
		t.Errorf("expected ErrMalformed for wrong signature, got %v", err)
	}
}
