// Package audio provides the optional ambient soundtrack: a quiet
// synthesized drone, generated sample by sample so no asset files are
// needed.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	masterGain = 0.07
)

// droneVoice is one detuned sine layer. A slow tremolo LFO keeps the pad
// from sounding static.
type droneVoice struct {
	freq     float64
	gain     float64
	lfoFreq  float64
	phase    float64
	lfoPhase float64
}

// drone streams an endless layered pad. It implements beep.Streamer and
// never reports completion.
type drone struct {
	voices []droneVoice
}

func newDrone() *drone {
	return &drone{
		voices: []droneVoice{
			{freq: 55.0, gain: 1.0, lfoFreq: 0.061},
			{freq: 82.4, gain: 0.55, lfoFreq: 0.047},
			{freq: 110.3, gain: 0.35, lfoFreq: 0.083},
			{freq: 164.6, gain: 0.18, lfoFreq: 0.029},
		},
	}
}

func (d *drone) Stream(samples [][2]float64) (int, bool) {
	dt := 1.0 / float64(sampleRate)
	for i := range samples {
		var s float64
		for v := range d.voices {
			voice := &d.voices[v]
			lfo := 0.75 + 0.25*math.Sin(2*math.Pi*voice.lfoPhase)
			s += math.Sin(2*math.Pi*voice.phase) * voice.gain * lfo
			voice.phase += voice.freq * dt
			if voice.phase >= 1 {
				voice.phase -= 1
			}
			voice.lfoPhase += voice.lfoFreq * dt
			if voice.lfoPhase >= 1 {
				voice.lfoPhase -= 1
			}
		}
		s *= masterGain
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }

// Ambient owns the drone playback chain. The speaker is initialized lazily
// on the first enable, so a muted session never opens an audio device.
type Ambient struct {
	ctrl    *beep.Ctrl
	started bool
}

// NewAmbient returns a stopped ambient track.
func NewAmbient() *Ambient { return &Ambient{} }

// Playing reports whether the drone is currently audible.
func (a *Ambient) Playing() bool {
	return a.started && a.ctrl != nil && !a.ctrl.Paused
}

// Toggle starts the drone on first use and pauses/resumes it afterwards.
func (a *Ambient) Toggle() error {
	if !a.started {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
			return err
		}
		a.ctrl = &beep.Ctrl{Streamer: newDrone()}
		speaker.Play(a.ctrl)
		a.started = true
		return nil
	}
	speaker.Lock()
	a.ctrl.Paused = !a.ctrl.Paused
	speaker.Unlock()
	return nil
}
