// Package audio plays short answer feedback sounds.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Feedback reacts to a submitted answer.
type Feedback interface {
	Correct()
	Wrong()
}

// Nop is a silent Feedback.
type Nop struct{}

func (Nop) Correct() {}
func (Nop) Wrong()   {}

// SoundManager mixes feedback sounds onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still queued.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Correct plays a short rising two-note chime.
func (sm *SoundManager) Correct() {
	low, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	high, err := generators.SineTone(sampleRate, 990)
	if err != nil {
		return
	}
	sm.play(beep.Seq(
		beep.Take(sampleRate.N(80*time.Millisecond), low),
		beep.Take(sampleRate.N(120*time.Millisecond), high),
	))
}

// Wrong plays a low buzz.
func (sm *SoundManager) Wrong() {
	sm.play(beep.Take(sampleRate.N(150*time.Millisecond), NewBuzzGenerator(sampleRate, 120)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// BuzzGenerator generates a low-pitch buzz with a short fade in.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// fundamental plus two harmonics
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
