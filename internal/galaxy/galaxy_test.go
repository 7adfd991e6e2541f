package galaxy

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"

	"github.com/caloicode/galaxy-generator/internal/config"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(12, 34))
}

// TestGenerateBufferSizes verifies both buffers hold exactly count points
// and stay index-aligned.
func TestGenerateBufferSizes(t *testing.T) {
	for _, count := range []int{100, 1000, 20000} {
		p := config.Default()
		p.Count = count
		ps := Generate(p, testRNG())

		if ps.Count != count {
			t.Errorf("count %d: got Count %d", count, ps.Count)
		}
		if len(ps.Positions) != 3*count {
			t.Errorf("count %d: got %d position components, want %d", count, len(ps.Positions), 3*count)
		}
		if len(ps.Colors) != 3*count {
			t.Errorf("count %d: got %d color components, want %d", count, len(ps.Colors), 3*count)
		}
	}
}

// TestGenerateBounds verifies no point escapes radius plus the maximum
// jitter magnitude on any axis.
func TestGenerateBounds(t *testing.T) {
	p := config.Default()
	p.Count = 5000
	p.Radius = 7
	p.Randomness = 2
	ps := Generate(p, testRNG())

	limit := p.Radius + MaxJitter(p)
	for i := 0; i < ps.Count; i++ {
		x, y, z := ps.Position(i)
		if math32.Abs(x) > limit || math32.Abs(z) > limit {
			t.Fatalf("point %d at (%v, %v, %v) outside horizontal limit %v", i, x, y, z, limit)
		}
		if math32.Abs(y) > MaxJitter(p) {
			t.Fatalf("point %d y=%v exceeds max jitter %v", i, y, MaxJitter(p))
		}
	}
}

// TestBranchAnglePeriodicity verifies that with spin and jitter disabled,
// point angles repeat with period branches in index space.
func TestBranchAnglePeriodicity(t *testing.T) {
	p := config.Default()
	p.Count = 600
	p.Branches = 4
	p.Spin = 0
	p.Randomness = 0
	ps := Generate(p, testRNG())

	for i := 0; i+p.Branches < ps.Count; i++ {
		x1, _, z1 := ps.Position(i)
		x2, _, z2 := ps.Position(i + p.Branches)
		r1 := math32.Hypot(x1, z1)
		r2 := math32.Hypot(x2, z2)
		if r1 < 1e-4 || r2 < 1e-4 {
			continue // angle undefined that close to the core
		}
		a1 := math32.Atan2(z1, x1)
		a2 := math32.Atan2(z2, x2)
		if diff := angleDiff(a1, a2); diff > 1e-4 {
			t.Fatalf("points %d and %d differ in angle by %v", i, i+p.Branches, diff)
		}
	}
}

// TestFiveBranchCircle pins the concrete scenario: five points, five
// branches, no spin, no jitter. Angles are deterministic per index, radii
// stay within bounds, and y is exactly zero.
func TestFiveBranchCircle(t *testing.T) {
	p := config.Default()
	p.Count = 5
	p.Branches = 5
	p.Radius = 10
	p.Spin = 0
	p.Randomness = 0
	ps := Generate(p, testRNG())

	for i := 0; i < 5; i++ {
		x, y, z := ps.Position(i)
		if y != 0 {
			t.Errorf("point %d: y = %v, want 0 with jitter disabled", i, y)
		}
		r := math32.Hypot(x, z)
		if r > p.Radius {
			t.Errorf("point %d: radius %v exceeds %v", i, r, p.Radius)
		}
		if r < 1e-4 {
			continue
		}
		want := float32(i) / 5 * 2 * math32.Pi
		if diff := angleDiff(math32.Atan2(z, x), want); diff > 1e-4 {
			t.Errorf("point %d: angle off by %v from %v", i, diff, want)
		}
	}
}

// TestColorGradient verifies the radial lerp: with a pure red inside and
// pure blue outside, every point's color is (1-t, 0, t) for t = r/radius.
// Spin rotates but preserves radius, so r can be reconstructed from the
// position when jitter is off.
func TestColorGradient(t *testing.T) {
	p := config.Default()
	p.Count = 2000
	p.Radius = 10
	p.Spin = 2
	p.Randomness = 0
	p.InsideColor = "#ff0000"
	p.OutsideColor = "#0000ff"
	ps := Generate(p, testRNG())

	const tol = 1e-3
	for i := 0; i < ps.Count; i++ {
		x, _, z := ps.Position(i)
		tFrac := math32.Hypot(x, z) / p.Radius
		r, g, b := ps.Color(i)
		if math32.Abs(r-(1-tFrac)) > tol || math32.Abs(g) > tol || math32.Abs(b-tFrac) > tol {
			t.Fatalf("point %d at t=%v: color (%v, %v, %v), want (%v, 0, %v)",
				i, tFrac, r, g, b, 1-tFrac, tFrac)
		}
	}
}

// TestColorUniformWhenEndpointsMatch verifies identical gradient endpoints
// produce a flat color regardless of radius.
func TestColorUniformWhenEndpointsMatch(t *testing.T) {
	p := config.Default()
	p.Count = 500
	p.InsideColor = "#30ff60"
	p.OutsideColor = "#30ff60"
	ps := Generate(p, testRNG())

	r0, g0, b0 := ps.Color(0)
	for i := 1; i < ps.Count; i++ {
		r, g, b := ps.Color(i)
		if r != r0 || g != g0 || b != b0 {
			t.Fatalf("point %d color (%v, %v, %v) differs from point 0 (%v, %v, %v)", i, r, g, b, r0, g0, b0)
		}
	}
}

// TestJitterShrinksWithPower verifies raising randomnessPower at fixed
// randomness does not grow the typical jitter magnitude. y is pure jitter,
// so its mean absolute value measures it directly.
func TestJitterShrinksWithPower(t *testing.T) {
	meanAbsY := func(power float32) float32 {
		p := config.Default()
		p.Count = 20000
		p.Randomness = 2
		p.RandomnessPower = power
		ps := Generate(p, testRNG())

		var sum float32
		for i := 0; i < ps.Count; i++ {
			_, y, _ := ps.Position(i)
			sum += math32.Abs(y)
		}
		return sum / float32(ps.Count)
	}

	low := meanAbsY(1)
	high := meanAbsY(8)
	if high >= low {
		t.Errorf("mean |jitter| grew with power: %v at power 1, %v at power 8", low, high)
	}
}

// TestZeroRandomnessDisablesJitter verifies randomness = 0 produces a flat
// disc: every y is exactly zero.
func TestZeroRandomnessDisablesJitter(t *testing.T) {
	p := config.Default()
	p.Count = 1000
	p.Randomness = 0
	ps := Generate(p, testRNG())

	for i := 0; i < ps.Count; i++ {
		if _, y, _ := ps.Position(i); y != 0 {
			t.Fatalf("point %d: y = %v with randomness 0", i, y)
		}
	}
}

// angleDiff returns the absolute angular distance, folded into [0, π].
func angleDiff(a, b float32) float32 {
	d := math32.Mod(math32.Abs(a-b), 2*math32.Pi)
	if d > math32.Pi {
		d = 2*math32.Pi - d
	}
	return d
}
