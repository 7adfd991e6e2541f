package render

import (
	"github.com/chewxy/math32"
)

const (
	// Vertical field of view of the perspective projection, radians.
	fov = 50 * math32.Pi / 180

	// Fraction of the remaining distance to the target orbit state covered
	// each tick. Matches the damped feel of typical orbit controls.
	damping = 0.08

	minDistance = 1.0
	maxDistance = 60.0

	// Keep elevation strictly inside ±π/2 so the view never flips.
	maxElevation = math32.Pi/2 - 0.01
)

// Camera is a damped orbit camera circling the origin. Rotate and Zoom move
// the target orbit state; Step eases the actual state toward it once per
// tick, so releasing the mouse leaves the view gliding to rest.
type Camera struct {
	azimuth   float32
	elevation float32
	distance  float32

	targetAzimuth   float32
	targetElevation float32
	targetDistance  float32
}

// NewCamera returns a camera at the given distance, tilted down slightly so
// the galaxy's disc shape reads immediately.
func NewCamera(distance float32) *Camera {
	c := &Camera{
		azimuth:   0,
		elevation: 0.5,
		distance:  distance,
	}
	c.targetAzimuth = c.azimuth
	c.targetElevation = c.elevation
	c.targetDistance = c.distance
	return c
}

// Rotate adds mouse-drag deltas (in radians) to the target orbit angles.
func (c *Camera) Rotate(dAzimuth, dElevation float32) {
	c.targetAzimuth += dAzimuth
	c.targetElevation += dElevation
	if c.targetElevation > maxElevation {
		c.targetElevation = maxElevation
	}
	if c.targetElevation < -maxElevation {
		c.targetElevation = -maxElevation
	}
}

// Zoom scales the target distance; factor < 1 moves in, > 1 moves out.
func (c *Camera) Zoom(factor float32) {
	c.targetDistance *= factor
	if c.targetDistance < minDistance {
		c.targetDistance = minDistance
	}
	if c.targetDistance > maxDistance {
		c.targetDistance = maxDistance
	}
}

// Step advances the damped approach toward the target orbit state. Call once
// per update tick.
func (c *Camera) Step() {
	c.azimuth += (c.targetAzimuth - c.azimuth) * damping
	c.elevation += (c.targetElevation - c.elevation) * damping
	c.distance += (c.targetDistance - c.distance) * damping
}

// Distance reports the current (damped) orbit distance.
func (c *Camera) Distance() float32 { return c.distance }

// Project maps a world-space point to screen coordinates for a w×h viewport.
// depth is the distance from the camera along the view axis, used for point
// size attenuation. ok is false for points at or behind the near plane.
func (c *Camera) Project(x, y, z float32, w, h int) (sx, sy, depth float32, ok bool) {
	sinAz, cosAz := math32.Sincos(c.azimuth)
	sinEl, cosEl := math32.Sincos(c.elevation)

	// Orbit: rotate the world by -azimuth around Y, then -elevation around X.
	x1 := x*cosAz - z*sinAz
	z1 := x*sinAz + z*cosAz
	y2 := y*cosEl - z1*sinEl
	z2 := y*sinEl + z1*cosEl

	depth = c.distance - z2
	if depth <= 0.01 {
		return 0, 0, 0, false
	}

	focal := focalLength(h)
	sx = float32(w)/2 + x1*focal/depth
	sy = float32(h)/2 - y2*focal/depth
	return sx, sy, depth, true
}

// focalLength converts the fixed vertical fov into pixels for a viewport of
// height h.
func focalLength(h int) float32 {
	return float32(h) / (2 * math32.Tan(fov/2))
}
