package ui

import (
	"testing"
)

// TestSliderCommitsOnReleaseOnly verifies the commit callback fires once,
// on mouse release, not on intermediate drag ticks.
func TestSliderCommitsOnReleaseOnly(t *testing.T) {
	var commits []float64
	s := &Slider{
		Label: "radius", Min: 0, Max: 10, Step: 0.5, Value: 2,
		OnCommit: func(v float64) { commits = append(commits, v) },
	}
	s.layout(0, 0, 200)
	_, ty, _, _ := s.trackBounds()

	// Press on the track, drag across it in several ticks.
	s.handleMouse(mouse{x: 40, y: ty + 2, justPressed: true, pressed: true})
	s.handleMouse(mouse{x: 80, y: ty + 2, pressed: true})
	s.handleMouse(mouse{x: 120, y: ty + 2, pressed: true})
	if len(commits) != 0 {
		t.Fatalf("committed %d times during drag, want 0", len(commits))
	}

	s.handleMouse(mouse{x: 160, y: ty + 2, justReleased: true})
	if len(commits) != 1 {
		t.Fatalf("committed %d times after release, want 1", len(commits))
	}
	if commits[0] != 8 {
		t.Errorf("committed %v, want 8 (x=160 of 200 over [0,10])", commits[0])
	}
	if s.Value != 8 {
		t.Errorf("slider value %v, want 8", s.Value)
	}
}

// TestSliderNoCommitWhenUnchanged verifies releasing at the starting value
// does not fire the callback.
func TestSliderNoCommitWhenUnchanged(t *testing.T) {
	commits := 0
	s := &Slider{
		Label: "spin", Min: 0, Max: 10, Step: 0.5, Value: 5,
		OnCommit: func(float64) { commits++ },
	}
	s.layout(0, 0, 200)
	_, ty, _, _ := s.trackBounds()

	// Press at the thumb's current position and release without moving.
	s.handleMouse(mouse{x: 100, y: ty + 2, justPressed: true, pressed: true})
	s.handleMouse(mouse{x: 100, y: ty + 2, justReleased: true})
	if commits != 0 {
		t.Errorf("committed %d times for an unchanged value, want 0", commits)
	}
}

// TestSliderSnapAndClamp verifies step quantization and range clamping.
func TestSliderSnapAndClamp(t *testing.T) {
	s := &Slider{Min: 2, Max: 20, Step: 1}
	cases := []struct {
		in, want float64
	}{
		{1, 2},
		{25, 20},
		{7.4, 7},
		{7.6, 8},
		{2, 2},
	}
	for _, c := range cases {
		if got := s.snap(c.in); got != c.want {
			t.Errorf("snap(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

// TestSliderDragOutsideTrack verifies a drag keeps tracking and clamping
// after the pointer leaves the track rectangle.
func TestSliderDragOutsideTrack(t *testing.T) {
	s := &Slider{Min: 0, Max: 10, Step: 0.5, Value: 5}
	s.layout(0, 0, 200)
	_, ty, _, _ := s.trackBounds()

	s.handleMouse(mouse{x: 100, y: ty + 2, justPressed: true, pressed: true})
	s.handleMouse(mouse{x: 900, y: ty - 300, pressed: true})
	if s.Value != 10 {
		t.Errorf("value %v after dragging far right, want clamped 10", s.Value)
	}
}

// TestSwatchRowCommitsOnClick verifies a click selects and commits in one
// step, and clicking the already-selected swatch stays silent.
func TestSwatchRowCommitsOnClick(t *testing.T) {
	var commits []string
	sr := &SwatchRow{
		Label:    "insideColor",
		Swatches: []string{"#ff0000", "#00ff00", "#0000ff"},
		OnCommit: func(hex string) { commits = append(commits, hex) },
	}
	sr.layout(0, 0, 200)
	sy := sr.y + rowHeight - swatchSize - 6

	secondX := sr.x + (swatchSize + swatchGap) + swatchSize/2
	sr.handleMouse(mouse{x: secondX, y: sy + swatchSize/2, justPressed: true, pressed: true})
	if len(commits) != 1 || commits[0] != "#00ff00" {
		t.Fatalf("commits after click: %v, want [#00ff00]", commits)
	}
	if sr.Selected != 1 {
		t.Errorf("Selected = %d, want 1", sr.Selected)
	}

	sr.handleMouse(mouse{x: secondX, y: sy + swatchSize/2, justPressed: true, pressed: true})
	if len(commits) != 1 {
		t.Errorf("re-clicking the selected swatch committed again: %v", commits)
	}
}

// TestPanelCapturesPointer verifies interactions inside the panel are
// captured and interactions outside are not.
func TestPanelCapturesPointer(t *testing.T) {
	p := NewPanel(0, 0, 280, "galaxy")
	p.AddSlider(&Slider{Label: "count", Min: 100, Max: 100000, Step: 100, Value: 20000})

	// First pass establishes the layout.
	p.handleMouse(mouse{x: -10, y: -10})

	if !p.handleMouse(mouse{x: 100, y: 40, justPressed: true, pressed: true}) {
		t.Error("press inside the panel not captured")
	}
	if p.handleMouse(mouse{x: 800, y: 400, justPressed: true, pressed: true}) {
		t.Error("press far outside the panel captured")
	}
}
