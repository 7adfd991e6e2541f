// Package config holds the galaxy parameter record and window settings.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Tweak panel width in logical pixels
	PanelWidth = 280
)

// Parameter domains. The panel and the TOML loader clamp to these, so the
// generator never sees an out-of-range value.
const (
	MinCount, MaxCount           = 100, 100000
	MinSize, MaxSize             = 0.001, 0.1
	MinRadius, MaxRadius         = 0.01, 20.0
	MinBranches, MaxBranches     = 2, 20
	MinSpin, MaxSpin             = -5.0, 5.0
	MinRandomness, MaxRandomness = 0.0, 2.0
	MinRandPower, MaxRandPower   = 1.0, 10.0
)

// Params is the full parameter set of one galaxy. A single instance is owned
// by the game and passed by value into the generator on every regeneration.
type Params struct {
	Count           int     `toml:"count"`
	Size            float32 `toml:"size"`
	Radius          float32 `toml:"radius"`
	Branches        int     `toml:"branches"`
	Spin            float32 `toml:"spin"`
	Randomness      float32 `toml:"randomness"`
	RandomnessPower float32 `toml:"randomness_power"`
	InsideColor     string  `toml:"inside_color"`
	OutsideColor    string  `toml:"outside_color"`
}

// Default returns the classic warm-core / cold-rim galaxy.
func Default() Params {
	return Params{
		Count:           20000,
		Size:            0.02,
		Radius:          5,
		Branches:        3,
		Spin:            1,
		Randomness:      0.5,
		RandomnessPower: 3,
		InsideColor:     "#ff6030",
		OutsideColor:    "#1b3984",
	}
}

// Clamp returns a copy with every field forced into its domain. Colors that
// do not parse as hex fall back to the defaults.
func (p Params) Clamp() Params {
	p.Count = clampInt(p.Count, MinCount, MaxCount)
	p.Size = clampF32(p.Size, MinSize, MaxSize)
	p.Radius = clampF32(p.Radius, MinRadius, MaxRadius)
	p.Branches = clampInt(p.Branches, MinBranches, MaxBranches)
	p.Spin = clampF32(p.Spin, MinSpin, MaxSpin)
	p.Randomness = clampF32(p.Randomness, MinRandomness, MaxRandomness)
	p.RandomnessPower = clampF32(p.RandomnessPower, MinRandPower, MaxRandPower)

	def := Default()
	if _, err := colorful.Hex(p.InsideColor); err != nil {
		p.InsideColor = def.InsideColor
	}
	if _, err := colorful.Hex(p.OutsideColor); err != nil {
		p.OutsideColor = def.OutsideColor
	}
	return p
}

// Load reads a TOML parameter file. Fields absent from the file keep their
// defaults; all values are clamped on the way in.
func Load(path string) (Params, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse config %s: %w", path, err)
	}
	return p.Clamp(), nil
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampF32(v float32, min, max float64) float32 {
	if float64(v) < min {
		return float32(min)
	}
	if float64(v) > max {
		return float32(max)
	}
	return v
}
