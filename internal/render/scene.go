package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the single live point cloud. Installing a new cloud disposes
// the previous one first, so repeated regenerations never accumulate
// buffers or textures.
type Scene struct {
	cloud *PointCloud
}

// NewScene returns an empty scene.
func NewScene() *Scene { return &Scene{} }

// SetCloud replaces the displayed cloud. The old cloud, if any, is disposed
// before the new one is installed.
func (s *Scene) SetCloud(pc *PointCloud) {
	if s.cloud != nil {
		s.cloud.Dispose()
	}
	s.cloud = pc
}

// Cloud returns the currently displayed cloud, or nil.
func (s *Scene) Cloud() *PointCloud { return s.cloud }

// Clear disposes and detaches the current cloud.
func (s *Scene) Clear() {
	s.SetCloud(nil)
}

// Draw renders the scene through cam.
func (s *Scene) Draw(dst *ebiten.Image, cam *Camera) {
	if s.cloud != nil {
		s.cloud.Draw(dst, cam)
	}
}
