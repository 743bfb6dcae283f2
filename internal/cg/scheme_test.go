package cg

import (
	"testing"

	"github.com/cwbudde/riemanncg/internal/manifold"
)

func TestSchemeNamesRoundTrip(t *testing.T) {
	for _, scheme := range Schemes() {
		t.Run(scheme.String(), func(t *testing.T) {
			parsed, err := ParseScheme(scheme.String())
			if err != nil {
				t.Fatalf("ParseScheme(%q) failed: %v", scheme.String(), err)
			}
			if parsed != scheme {
				t.Errorf("round trip mismatch: got %v, want %v", parsed, scheme)
			}
		})
	}
}

func TestParseSchemeUnknown(t *testing.T) {
	if _, err := ParseScheme("steepest-descent"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestSchemeFixedAtConstruction(t *testing.T) {
	optimizer := New(manifold.NewEuclidean(), ConjugateDescent)
	if optimizer.Scheme() != ConjugateDescent {
		t.Errorf("Scheme = %v, want %v", optimizer.Scheme(), ConjugateDescent)
	}
}
