// Package ui implements the in-window tweak panel: labeled sliders and
// color swatch rows drawn with ebiten's vector primitives. Widgets track
// the pointer while dragging but commit a value only when the interaction
// settles (mouse release for sliders, click for swatches), so a bound
// callback fires once per edit, not once per drag tick.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	rowHeight    = 44
	labelOffset  = 4
	trackHeight  = 6
	thumbRadius  = 7
	swatchSize   = 22
	swatchGap    = 6
	titleHeight  = 28
	widgetInsetX = 12
)

var (
	panelBg     = color.RGBA{R: 18, G: 22, B: 32, A: 225}
	panelBorder = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	trackColor  = color.RGBA{R: 50, G: 58, B: 76, A: 255}
	fillColor   = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	thumbColor  = color.RGBA{R: 200, G: 210, B: 230, A: 255}
	thumbHover  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	selectColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// mouse is one tick's worth of pointer state, captured once per update and
// fed to every widget.
type mouse struct {
	x, y         int
	justPressed  bool
	pressed      bool
	justReleased bool
}

type widget interface {
	layout(x, y, w int) (height int)
	handleMouse(m mouse) (captured bool)
	draw(dst *ebiten.Image)
}

// Slider edits one numeric parameter over [Min, Max], snapped to Step.
// OnCommit fires on mouse release, and only if the value changed since the
// drag began.
type Slider struct {
	Label    string
	Min, Max float64
	Step     float64
	Value    float64
	Format   string // fmt verb for the value readout, e.g. "%.0f"
	OnCommit func(float64)

	x, y, w    int
	dragging   bool
	dragOrigin float64
	hovered    bool
}

func (s *Slider) layout(x, y, w int) int {
	s.x, s.y, s.w = x, y, w
	return rowHeight
}

func (s *Slider) trackBounds() (x, y, w, h int) {
	ty := s.y + rowHeight - trackHeight - 10
	return s.x, ty - thumbRadius + trackHeight/2, s.w, 2 * thumbRadius
}

func (s *Slider) handleMouse(m mouse) bool {
	tx, ty, tw, th := s.trackBounds()
	s.hovered = m.x >= tx && m.x <= tx+tw && m.y >= ty && m.y <= ty+th

	if s.hovered && m.justPressed {
		s.dragging = true
		s.dragOrigin = s.Value
	}
	if s.dragging {
		frac := float64(m.x-tx) / float64(tw)
		s.Value = s.snap(s.Min + frac*(s.Max-s.Min))
		if m.justReleased {
			s.dragging = false
			if s.Value != s.dragOrigin && s.OnCommit != nil {
				s.OnCommit(s.Value)
			}
		}
		return true
	}
	return false
}

// snap quantizes v to the step grid and clamps it to [Min, Max].
func (s *Slider) snap(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	if s.Step > 0 {
		steps := int((v-s.Min)/s.Step + 0.5)
		v = s.Min + float64(steps)*s.Step
		if v > s.Max {
			v = s.Max
		}
	}
	return v
}

func (s *Slider) draw(dst *ebiten.Image) {
	format := s.Format
	if format == "" {
		format = "%.3f"
	}
	ebitenutil.DebugPrintAt(dst, s.Label, s.x, s.y+labelOffset)
	readout := fmt.Sprintf(format, s.Value)
	ebitenutil.DebugPrintAt(dst, readout, s.x+s.w-len(readout)*6, s.y+labelOffset)

	ty := float32(s.y + rowHeight - trackHeight - 10)
	vector.DrawFilledRect(dst, float32(s.x), ty, float32(s.w), trackHeight, trackColor, false)

	frac := float32((s.Value - s.Min) / (s.Max - s.Min))
	vector.DrawFilledRect(dst, float32(s.x), ty, float32(s.w)*frac, trackHeight, fillColor, false)

	thumbX := float32(s.x) + float32(s.w)*frac
	tc := thumbColor
	if s.hovered || s.dragging {
		tc = thumbHover
	}
	vector.DrawFilledCircle(dst, thumbX, ty+trackHeight/2, thumbRadius, tc, true)
}

// SwatchRow picks one color out of a fixed hex palette. A click is a
// settled edit, so OnCommit fires immediately.
type SwatchRow struct {
	Label    string
	Swatches []string // hex colors
	Selected int
	OnCommit func(hex string)

	x, y, w int
	hovered int // swatch index under the cursor, -1 otherwise
}

func (sr *SwatchRow) layout(x, y, w int) int {
	sr.x, sr.y, sr.w = x, y, w
	sr.hovered = -1
	return rowHeight
}

func (sr *SwatchRow) swatchAt(mx, my int) int {
	sy := sr.y + rowHeight - swatchSize - 6
	for i := range sr.Swatches {
		sx := sr.x + i*(swatchSize+swatchGap)
		if mx >= sx && mx <= sx+swatchSize && my >= sy && my <= sy+swatchSize {
			return i
		}
	}
	return -1
}

func (sr *SwatchRow) handleMouse(m mouse) bool {
	sr.hovered = sr.swatchAt(m.x, m.y)
	if sr.hovered >= 0 && m.justPressed {
		if sr.hovered != sr.Selected {
			sr.Selected = sr.hovered
			if sr.OnCommit != nil {
				sr.OnCommit(sr.Swatches[sr.Selected])
			}
		}
		return true
	}
	return false
}

func (sr *SwatchRow) draw(dst *ebiten.Image) {
	ebitenutil.DebugPrintAt(dst, sr.Label, sr.x, sr.y+labelOffset)
	sy := float32(sr.y + rowHeight - swatchSize - 6)
	for i, hex := range sr.Swatches {
		sx := float32(sr.x + i*(swatchSize+swatchGap))
		vector.DrawFilledRect(dst, sx, sy, swatchSize, swatchSize, hexToRGBA(hex), false)
		if i == sr.Selected {
			vector.StrokeRect(dst, sx-1, sy-1, swatchSize+2, swatchSize+2, 2, selectColor, false)
		} else if i == sr.hovered {
			vector.StrokeRect(dst, sx, sy, swatchSize, swatchSize, 1, panelBorder, false)
		}
	}
}

// Panel stacks widgets vertically inside a fixed-width column at the left
// edge of the window.
type Panel struct {
	X, Y, W int
	Title   string

	widgets []widget
	height  int
}

// NewPanel returns an empty panel anchored at (x, y) with width w.
func NewPanel(x, y, w int, title string) *Panel {
	return &Panel{X: x, Y: y, W: w, Title: title}
}

// AddSlider appends a slider and returns it so the caller can keep a handle
// for programmatic updates.
func (p *Panel) AddSlider(s *Slider) *Slider {
	p.widgets = append(p.widgets, s)
	return s
}

// AddSwatchRow appends a swatch row.
func (p *Panel) AddSwatchRow(sr *SwatchRow) *SwatchRow {
	p.widgets = append(p.widgets, sr)
	return sr
}

// Contains reports whether the point lies inside the panel rectangle,
// including while a drag that started inside is still in progress.
func (p *Panel) Contains(mx, my int) bool {
	return mx >= p.X && mx <= p.X+p.W && my >= p.Y && my <= p.Y+p.height
}

// Update reads this tick's pointer state and routes it to the widgets.
// It reports whether the panel captured the pointer, in which case the
// camera should ignore the interaction.
func (p *Panel) Update() bool {
	mx, my := ebiten.CursorPosition()
	m := mouse{
		x:            mx,
		y:            my,
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	return p.handleMouse(m)
}

func (p *Panel) handleMouse(m mouse) bool {
	y := p.Y + titleHeight
	for _, w := range p.widgets {
		y += w.layout(p.X+widgetInsetX, y, p.W-2*widgetInsetX)
	}
	p.height = y - p.Y + widgetInsetX

	captured := false
	for _, w := range p.widgets {
		if w.handleMouse(m) {
			captured = true
		}
	}
	return captured || (p.Contains(m.x, m.y) && (m.pressed || m.justPressed))
}

// Draw renders the panel chrome and every widget.
func (p *Panel) Draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.height), panelBg, false)
	vector.StrokeRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.height), 1, panelBorder, false)
	ebitenutil.DebugPrintAt(dst, p.Title, p.X+widgetInsetX, p.Y+8)
	for _, w := range p.widgets {
		w.draw(dst)
	}
}

func hexToRGBA(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
