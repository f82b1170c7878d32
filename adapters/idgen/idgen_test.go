package idgen_test

import (
	"testing"

	"github.com/ahmedw/folio/adapters/idgen"
)

func TestUUID_New(t *testing.T) {
	g := idgen.UUID{}

	a := g.New()
	b := g.New()

	if a == b {
		t.Error("consecutive UUIDs should differ")
	}
	if len(a) != 36 {
		t.Errorf("UUID length = %d, want 36", len(a))
	}
}

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("tc_")

	if got := g.New(); got != "tc_1" {
		t.Errorf("first ID = %q, want tc_1", got)
	}
	if got := g.New(); got != "tc_2" {
		t.Errorf("second ID = %q, want tc_2", got)
	}
}
