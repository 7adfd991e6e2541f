// Package galaxy lays out spiral-galaxy point clouds.
//
// Generate is the whole API: it maps a parameter record to a pair of flat,
// index-aligned float32 buffers (positions and colors, three components per
// point). The buffers are rebuilt from scratch on every call; nothing here
// touches the renderer or keeps state between calls.
package galaxy

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/caloicode/galaxy-generator/internal/config"
)

// PointSet is one generated galaxy: Count points as two parallel flat
// buffers, len(Positions) == len(Colors) == 3*Count. Point i occupies
// indices [3i, 3i+3) in both buffers.
type PointSet struct {
	Positions []float32
	Colors    []float32
	Count     int
}

// Position returns point i as (x, y, z).
func (ps *PointSet) Position(i int) (x, y, z float32) {
	return ps.Positions[3*i], ps.Positions[3*i+1], ps.Positions[3*i+2]
}

// Color returns point i as (r, g, b) in [0, 1].
func (ps *PointSet) Color(i int) (r, g, b float32) {
	return ps.Colors[3*i], ps.Colors[3*i+1], ps.Colors[3*i+2]
}

// Generate lays out a new point set for p. The rng drives the per-point
// radius sample and the jitter draws; callers wanting reproducible layouts
// pass a seeded source, the app passes a clock-seeded one.
//
// Per point i:
//
//	r           = uniform(0, Radius)
//	spinAngle   = r * Spin
//	branchAngle = (i mod Branches) / Branches * 2π
//	x           = cos(branchAngle + spinAngle)*r + jitterX
//	y           = jitterY
//	z           = sin(branchAngle + spinAngle)*r + jitterZ
//
// Each jitter term is uniform(0,1)^RandomnessPower with a coin-flip sign,
// scaled by Randomness. Colors lerp from InsideColor at r=0 to OutsideColor
// at r=Radius.
func Generate(p config.Params, rng *rand.Rand) *PointSet {
	ps := &PointSet{
		Positions: make([]float32, 3*p.Count),
		Colors:    make([]float32, 3*p.Count),
		Count:     p.Count,
	}

	// Params are clamped upstream, so the hex parses cannot fail.
	inside, _ := colorful.Hex(p.InsideColor)
	outside, _ := colorful.Hex(p.OutsideColor)

	branches := float32(p.Branches)
	for i := 0; i < p.Count; i++ {
		r := rng.Float32() * p.Radius
		spinAngle := r * p.Spin
		branchAngle := float32(i%p.Branches) / branches * 2 * math32.Pi

		jx := jitter(p, rng)
		jy := jitter(p, rng)
		jz := jitter(p, rng)

		ps.Positions[3*i] = math32.Cos(branchAngle+spinAngle)*r + jx
		ps.Positions[3*i+1] = jy
		ps.Positions[3*i+2] = math32.Sin(branchAngle+spinAngle)*r + jz

		c := inside.BlendRgb(outside, float64(r/p.Radius))
		ps.Colors[3*i] = float32(c.R)
		ps.Colors[3*i+1] = float32(c.G)
		ps.Colors[3*i+2] = float32(c.B)
	}
	return ps
}

// jitter draws one per-axis offset: a power-shaped magnitude in [0,1) with a
// random sign, scaled by the Randomness parameter. RandomnessPower > 1
// biases the magnitude toward zero, so cores stay dense while the rim gets
// sparse symmetric scatter.
func jitter(p config.Params, rng *rand.Rand) float32 {
	if p.Randomness == 0 {
		return 0
	}
	mag := math32.Pow(rng.Float32(), p.RandomnessPower)
	if rng.Float32() < 0.5 {
		mag = -mag
	}
	return mag * p.Randomness
}

// MaxJitter reports the largest possible absolute jitter offset per axis
// for p. No generated coordinate can exceed Radius plus this bound.
func MaxJitter(p config.Params) float32 {
	return p.Randomness
}
