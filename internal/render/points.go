package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/caloicode/galaxy-generator/internal/galaxy"
)

const (
	// DrawTriangles indexes vertices with uint16, so batches are flushed
	// well below the 65536-vertex ceiling (4 vertices per point).
	chunkPoints = 10000

	dotTextureSize = 16
)

// PointCloud renders one generated galaxy as additively blended point
// sprites. It exclusively owns its vertex buffers and dot texture; Dispose
// releases them, after which Draw is a no-op.
type PointCloud struct {
	points *galaxy.PointSet
	size   float32 // world-space point size

	dot      *ebiten.Image // lazily created on first Draw
	verts    []ebiten.Vertex
	indices  []uint16
	disposed bool
}

// NewPointCloud wraps a generated point set for drawing. size is the
// world-space point size from the parameter record; screen size attenuates
// with depth.
func NewPointCloud(points *galaxy.PointSet, size float32) *PointCloud {
	return &PointCloud{
		points:  points,
		size:    size,
		verts:   make([]ebiten.Vertex, 0, 4*chunkPoints),
		indices: make([]uint16, 0, 6*chunkPoints),
	}
}

// Points exposes the underlying buffers, mainly for tests and the status
// readout.
func (pc *PointCloud) Points() *galaxy.PointSet { return pc.points }

// Disposed reports whether Dispose has run.
func (pc *PointCloud) Disposed() bool { return pc.disposed }

// Dispose releases the dot texture and drops the buffers. Safe to call more
// than once.
func (pc *PointCloud) Dispose() {
	if pc.disposed {
		return
	}
	pc.disposed = true
	if pc.dot != nil {
		pc.dot.Deallocate()
		pc.dot = nil
	}
	pc.points = nil
	pc.verts = nil
	pc.indices = nil
}

// Draw projects every point through cam and draws the visible ones as
// screen-aligned quads with additive blending, batched to respect the
// uint16 index space.
func (pc *PointCloud) Draw(dst *ebiten.Image, cam *Camera) {
	if pc.disposed || pc.points == nil {
		return
	}
	if pc.dot == nil {
		pc.dot = newDotTexture()
	}

	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	sizeScale := focalLength(h) * pc.size

	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = ebiten.BlendLighter

	pc.verts = pc.verts[:0]
	pc.indices = pc.indices[:0]
	quads := 0

	for i := 0; i < pc.points.Count; i++ {
		x, y, z := pc.points.Position(i)
		sx, sy, depth, ok := cam.Project(x, y, z, w, h)
		if !ok {
			continue
		}

		half := sizeScale / depth
		if half < 0.5 {
			half = 0.5
		}
		if sx+half < 0 || sx-half > float32(w) || sy+half < 0 || sy-half > float32(h) {
			continue
		}

		r, g, b := pc.points.Color(i)
		base := uint16(4 * quads)
		pc.verts = append(pc.verts,
			ebiten.Vertex{DstX: sx - half, DstY: sy - half, SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
			ebiten.Vertex{DstX: sx + half, DstY: sy - half, SrcX: dotTextureSize, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
			ebiten.Vertex{DstX: sx + half, DstY: sy + half, SrcX: dotTextureSize, SrcY: dotTextureSize, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
			ebiten.Vertex{DstX: sx - half, DstY: sy + half, SrcX: 0, SrcY: dotTextureSize, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
		)
		pc.indices = append(pc.indices, base, base+1, base+2, base, base+2, base+3)
		quads++

		if quads == chunkPoints {
			dst.DrawTriangles(pc.verts, pc.indices, pc.dot, op)
			pc.verts = pc.verts[:0]
			pc.indices = pc.indices[:0]
			quads = 0
		}
	}
	if quads > 0 {
		dst.DrawTriangles(pc.verts, pc.indices, pc.dot, op)
	}
}

// newDotTexture builds a small white disc with a soft edge; vertex colors
// tint it per point.
func newDotTexture() *ebiten.Image {
	img := ebiten.NewImage(dotTextureSize, dotTextureSize)
	c := float32(dotTextureSize) / 2
	vector.DrawFilledCircle(img, c, c, c-1, color.RGBA{R: 110, G: 110, B: 110, A: 110}, true)
	vector.DrawFilledCircle(img, c, c, c-4, color.White, true)
	return img
}

// Snapshot reads the destination image back into a CPU-side RGBA image,
// used for screenshot export.
func Snapshot(src *ebiten.Image) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	src.ReadPixels(out.Pix)
	return out
}
