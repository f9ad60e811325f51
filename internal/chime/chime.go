// Package chime plays a short tone when the scroll section changes.
package chime

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	toneDuration = 250 * time.Millisecond
	toneRelease  = 200 * time.Millisecond
	baseFreq     = 440.0
)

// Semitones above baseFreq per section, cycling: a major arpeggio.
var sectionSteps = []int{0, 4, 7, 12}

// Chime owns the speaker mixer. The zero value is silent until Init.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// New creates a chime at the given linear volume (0..1).
func New(volume float64) *Chime {
	return &Chime{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device. Callers treat a failure as "no sound".
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("chime: speaker init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences pending tones.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Play queues the tone of a section. It is a no-op before Init.
func (c *Chime) Play(section int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	tone, err := Tone(section, c.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Frequency returns the pitch of a section's tone in Hz.
func Frequency(section int) float64 {
	n := len(sectionSteps)
	step := sectionSteps[((section%n)+n)%n]
	return baseFreq * math.Pow(2, float64(step)/12)
}

// Tone builds a section's finite tone: a sine with a linear fade-out,
// scaled to volume.
func Tone(section int, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, Frequency(section))
	if err != nil {
		return nil, fmt.Errorf("chime: tone: %w", err)
	}
	total := sampleRate.N(toneDuration)
	shaped := &fade{
		streamer: beep.Take(total, sine),
		total:    total,
		release:  sampleRate.N(toneRelease),
	}
	if volume <= 0 {
		return &effects.Volume{Streamer: shaped, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(math.Min(volume, 1))}, nil
}

// fade ramps the last release samples down to zero.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			vol := float64(f.total-f.position) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
