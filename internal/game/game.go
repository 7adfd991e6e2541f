// Package game wires the generator, renderer, tweak panel and ambient audio
// into a single ebiten.Game. Everything runs on the update goroutine; a
// regeneration is a plain synchronous call, so no frame can observe a
// half-replaced point cloud.
package game

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/caloicode/galaxy-generator/internal/audio"
	"github.com/caloicode/galaxy-generator/internal/config"
	"github.com/caloicode/galaxy-generator/internal/galaxy"
	"github.com/caloicode/galaxy-generator/internal/render"
	"github.com/caloicode/galaxy-generator/internal/ui"
)

const (
	rotateSpeed = 0.008
	zoomSpeed   = 0.1
)

var backgroundColor = color.RGBA{R: 4, G: 5, B: 11, A: 255}

// Swatch palettes offered for the two gradient endpoints. The defaults from
// config.Default are members of their rows.
var (
	insidePalette  = []string{"#ff6030", "#ff9a3c", "#ffd23c", "#ff3c5f", "#f0f0ff"}
	outsidePalette = []string{"#1b3984", "#123c69", "#3c1b84", "#1b8474", "#501b84"}
)

// Game owns the parameter record and the single displayed point cloud.
type Game struct {
	logger *log.Logger
	params config.Params
	rng    *rand.Rand

	scene   *render.Scene
	camera  *render.Camera
	panel   *ui.Panel
	ambient *audio.Ambient
	mute    bool

	viewDragging bool
	prevCursorX  int
	prevCursorY  int

	lastErr error
}

// New builds the scene, camera and panel for the given parameters and
// generates the initial galaxy.
func New(params config.Params, logger *log.Logger, mute bool) *Game {
	g := &Game{
		logger:  logger,
		params:  params.Clamp(),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		scene:   render.NewScene(),
		camera:  render.NewCamera(1.6 * params.Radius),
		ambient: audio.NewAmbient(),
		mute:    mute,
	}
	g.panel = g.buildPanel()
	g.regenerate()
	return g
}

// buildPanel binds one widget per parameter. Every commit callback mutates
// the game's parameter record and triggers a full regeneration; sliders
// commit on mouse release, swatches on click.
func (g *Game) buildPanel() *ui.Panel {
	p := ui.NewPanel(0, 0, config.PanelWidth, "galaxy")

	p.AddSlider(&ui.Slider{
		Label: "count", Min: config.MinCount, Max: config.MaxCount, Step: 100,
		Value: float64(g.params.Count), Format: "%.0f",
		OnCommit: func(v float64) {
			g.params.Count = int(v)
			g.regenerate()
		},
	})
	p.AddSlider(&ui.Slider{
		Label: "size", Min: config.MinSize, Max: config.MaxSize, Step: 0.001,
		Value: float64(g.params.Size),
		OnCommit: func(v float64) {
			g.params.Size = float32(v)
			g.regenerate()
		},
	})
	p.AddSlider(&ui.Slider{
		Label: "radius", Min: config.MinRadius, Max: config.MaxRadius, Step: 0.01,
		Value: float64(g.params.Radius), Format: "%.2f",
		OnCommit: func(v float64) {
			g.params.Radius = float32(v)
			g.regenerate()
		},
	})
	p.AddSlider(&ui.Slider{
		Label: "branches", Min: config.MinBranches, Max: config.MaxBranches, Step: 1,
		Value: float64(g.params.Branches), Format: "%.0f",
		OnCommit: func(v float64) {
			g.params.Branches = int(v)
			g.regenerate()
		},
	})
	p.AddSlider(&ui.Slider{
		Label: "spin", Min: config.MinSpin, Max: config.MaxSpin, Step: 0.001,
		Value: float64(g.params.Spin),
		OnCommit: func(v float64) {
			g.params.Spin = float32(v)
			g.regenerate()
		},
	})
	p.AddSlider(&ui.Slider{
		Label: "randomness", Min: config.MinRandomness, Max: config.MaxRandomness, Step: 0.001,
		Value: float64(g.params.Randomness),
		OnCommit: func(v float64) {
			g.params.Randomness = float32(v)
			g.regenerate()
		},
	})
	p.AddSlider(&ui.Slider{
		Label: "randomnessPower", Min: config.MinRandPower, Max: config.MaxRandPower, Step: 0.001,
		Value: float64(g.params.RandomnessPower),
		OnCommit: func(v float64) {
			g.params.RandomnessPower = float32(v)
			g.regenerate()
		},
	})
	p.AddSwatchRow(&ui.SwatchRow{
		Label: "insideColor", Swatches: insidePalette,
		Selected: indexOf(insidePalette, g.params.InsideColor),
		OnCommit: func(hex string) {
			g.params.InsideColor = hex
			g.regenerate()
		},
	})
	p.AddSwatchRow(&ui.SwatchRow{
		Label: "outsideColor", Swatches: outsidePalette,
		Selected: indexOf(outsidePalette, g.params.OutsideColor),
		OnCommit: func(hex string) {
			g.params.OutsideColor = hex
			g.regenerate()
		},
	})
	return p
}

// regenerate rebuilds the point cloud from the current parameters. The
// scene disposes the previous cloud before the new one is installed.
func (g *Game) regenerate() {
	start := time.Now()
	points := galaxy.Generate(g.params, g.rng)
	g.scene.SetCloud(render.NewPointCloud(points, g.params.Size))
	g.logger.Debug("regenerated galaxy",
		"points", points.Count,
		"branches", g.params.Branches,
		"elapsed", time.Since(start).Round(time.Microsecond))
}

func (g *Game) Update() error {
	captured := g.panel.Update()
	g.updateCamera(captured)
	g.camera.Step()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && !g.mute {
		if err := g.ambient.Toggle(); err != nil {
			g.lastErr = err
			g.logger.Error("ambient audio", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveScreenshot(); err != nil {
			g.lastErr = err
			g.logger.Error("screenshot", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// updateCamera applies drag-to-orbit and wheel-to-zoom, skipping
// interactions the panel captured.
func (g *Game) updateCamera(panelCaptured bool) {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !panelCaptured {
		g.viewDragging = true
		g.prevCursorX, g.prevCursorY = mx, my
	}
	if g.viewDragging {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !panelCaptured {
			dx := float32(mx - g.prevCursorX)
			dy := float32(my - g.prevCursorY)
			g.camera.Rotate(dx*rotateSpeed, dy*rotateSpeed)
		} else {
			g.viewDragging = false
		}
		g.prevCursorX, g.prevCursorY = mx, my
	}

	if _, wy := ebiten.Wheel(); wy != 0 && !g.panel.Contains(mx, my) {
		factor := 1 - float32(wy)*zoomSpeed
		if factor < 0.5 {
			factor = 0.5
		}
		if factor > 1.5 {
			factor = 1.5
		}
		g.camera.Zoom(factor)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderScene(screen)
	g.panel.Draw(screen)

	status := fmt.Sprintf("%d points | drag: orbit  wheel: zoom  R: regenerate  S: screenshot  M: audio  Q: quit",
		g.params.Count)
	if g.ambient.Playing() {
		status += " | ambient on"
	}
	if g.lastErr != nil {
		status += " | error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.PanelWidth+12, config.WindowHeight-20)
}

// renderScene draws the galaxy into dst. Shared between the on-screen path
// and screenshot capture.
func (g *Game) renderScene(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	g.scene.Draw(dst, g.camera)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func indexOf(palette []string, hex string) int {
	for i, s := range palette {
		if s == hex {
			return i
		}
	}
	return 0
}
