package sigil

import (
	"fmt"
	"math"
	"testing"
)

func TestDeriveParamsDeterministic(t *testing.T) {
	a := DeriveParams("consistent_solver")
	b := DeriveParams("consistent_solver")
	if a != b {
		t.Fatalf("derivation not deterministic: %+v vs %+v", a, b)
	}
}

func TestDeriveParamsKnownVector(t *testing.T) {
	// SHA-256("solver123") begins 0x94 0x66 0x09 0xf5 0x89.
	p := DeriveParams("solver123")
	if math.Abs(p.RotationOffset-208.94117647058826) > 1e-9 {
		t.Fatalf("rotation offset = %v", p.RotationOffset)
	}
	if p.LayerCount != 5 {
		t.Fatalf("layer count = %d, want 5", p.LayerCount)
	}
	if p.RayCount != 8 {
		t.Fatalf("ray count = %d, want 8", p.RayCount)
	}
	if p.LineWeight != 1 {
		t.Fatalf("line weight = %d, want 1", p.LineWeight)
	}
	if math.Abs(p.ScaleFactor-1.0223529411764705) > 1e-9 {
		t.Fatalf("scale factor = %v", p.ScaleFactor)
	}
}

func TestDeriveParamsRanges(t *testing.T) {
	for i := 0; i < 512; i++ {
		seed := fmt.Sprintf("solver-%d", i)
		p := DeriveParams(seed)
		if p.RotationOffset < 0 || p.RotationOffset > 360 {
			t.Fatalf("seed %q: rotation offset %v out of range", seed, p.RotationOffset)
		}
		if p.LayerCount < 3 || p.LayerCount > 7 {
			t.Fatalf("seed %q: layer count %d out of range", seed, p.LayerCount)
		}
		if p.RayCount < 6 || p.RayCount > 12 {
			t.Fatalf("seed %q: ray count %d out of range", seed, p.RayCount)
		}
		if p.LineWeight < 1 || p.LineWeight > 5 {
			t.Fatalf("seed %q: line weight %d out of range", seed, p.LineWeight)
		}
		if p.ScaleFactor < 0.7 || p.ScaleFactor > 1.3 {
			t.Fatalf("seed %q: scale factor %v out of range", seed, p.ScaleFactor)
		}
	}
}

func TestDeriveParamsDistinctSeeds(t *testing.T) {
	a := DeriveParams("solver_alpha")
	b := DeriveParams("solver_beta")
	if a == b {
		t.Fatalf("distinct seeds derived identical parameters: %+v", a)
	}
	if a.RotationOffset == b.RotationOffset {
		t.Fatal("distinct seeds derived identical rotation offsets")
	}
}
