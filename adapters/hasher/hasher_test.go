package hasher_test

import (
	"testing"

	"github.com/ahmedw/folio/adapters/hasher"
)

// Low iteration count keeps tests fast.
const testIterations = 1000

func TestNewPBKDF2_EmptySalt(t *testing.T) {
	_, err := hasher.NewPBKDF2("", testIterations)
	if err == nil {
		t.Fatal("expected error for empty salt")
	}
}

func TestPBKDF2_Deterministic(t *testing.T) {
	h, err := hasher.NewPBKDF2("server-salt", testIterations)
	if err != nil {
		t.Fatalf("NewPBKDF2 failed: %v", err)
	}

	d1, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	d2, _ := h.Hash("hunter2")

	if d1 != d2 {
		t.Error("same password should produce the same digest")
	}
	if len(d1) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(d1))
	}
}

func TestPBKDF2_SaltChangesDigest(t *testing.T) {
	h1, _ := hasher.NewPBKDF2("salt-one", testIterations)
	h2, _ := hasher.NewPBKDF2("salt-two", testIterations)

	d1, _ := h1.Hash("hunter2")
	d2, _ := h2.Hash("hunter2")

	if d1 == d2 {
		t.Error("different salts should produce different digests")
	}
}

func TestPBKDF2_Compare(t *testing.T) {
	h, _ := hasher.NewPBKDF2("server-salt", testIterations)

	digest, _ := h.Hash("hunter2")

	if !h.Compare(digest, "hunter2") {
		t.Error("Compare should accept the original password")
	}
	if h.Compare(digest, "hunter3") {
		t.Error("Compare should reject a different password")
	}
	if h.Compare("", "hunter2") {
		t.Error("Compare should reject an empty digest")
	}
}

func TestFake(t *testing.T) {
	h := hasher.Fake{}

	digest, err := h.Hash("plain")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if !h.Compare(digest, "plain") {
		t.Error("Fake Compare should accept matching plaintext")
	}
	if h.Compare(digest, "other") {
		t.Error("Fake Compare should reject mismatched plaintext")
	}
}
