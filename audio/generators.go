package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/neon-drive/constants"
)

// EngineGenerator is the continuous engine hum
// Pitch glides toward a target set from the frame loop while the speaker goroutine streams
type EngineGenerator struct {
	sr     beep.SampleRate
	target atomic.Uint64 // math.Float64bits of the target frequency
	freq   float64
	phase  float64
	sub    float64
}

// NewEngineGenerator creates a hum idling at EngineIdleFreq
func NewEngineGenerator(sr beep.SampleRate) *EngineGenerator {
	g := &EngineGenerator{sr: sr, freq: constants.EngineIdleFreq}
	g.target.Store(math.Float64bits(constants.EngineIdleFreq))
	return g
}

// SetSpeed retargets the pitch for a road speed
func (g *EngineGenerator) SetSpeed(speed float64) {
	g.target.Store(math.Float64bits(EngineFrequency(speed)))
}

// Target returns the frequency the hum is gliding toward
func (g *EngineGenerator) Target() float64 {
	return math.Float64frombits(g.target.Load())
}

// EngineFrequency maps speed linearly onto the idle..top pitch range
func EngineFrequency(speed float64) float64 {
	span := constants.MaxSpeed - constants.MinSpeed
	t := (speed - constants.MinSpeed) / span
	t = math.Min(math.Max(t, 0), 1)
	return constants.EngineIdleFreq + (constants.EngineTopFreq-constants.EngineIdleFreq)*t
}

func (g *EngineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	target := g.Target()
	for i := range samples {
		g.freq += (target - g.freq) * constants.EngineGlide

		// Saw plus a sub-octave sine for body
		saw := waveAt(WaveSaw, g.phase)
		sub := waveAt(WaveSine, g.sub)
		sample := constants.EngineVolume * (0.6*saw + 0.4*sub)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += g.freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.sub += g.freq / 2 / float64(g.sr)
		g.sub -= math.Floor(g.sub)
	}
	return len(samples), true
}

func (g *EngineGenerator) Err() error {
	return nil
}

// bassline is the root of each bar, cycling A-F-C-G
var bassline = [...]float64{110.00, 87.31, 130.81, 98.00}

// SynthwaveGenerator generates a rhythmic synthwave beat
type SynthwaveGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	kickLen int
}

// NewSynthwaveGenerator creates a synthwave beat generator
func NewSynthwaveGenerator(sr beep.SampleRate) *SynthwaveGenerator {
	return &SynthwaveGenerator{
		sr:      sr,
		samples: sr.N(constants.MusicBeatInterval),
		kickLen: sr.N(constants.MusicBeatInterval / 6),
	}
}

func (g *SynthwaveGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.samples
		beat := g.pos / g.samples
		t := float64(beatPos) / float64(g.sr)

		// Kick drum on every beat
		kick := 0.0
		if beatPos < g.kickLen {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kickLen)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.4 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		// Bass changes root every four beats
		root := bassline[(beat/4)%len(bassline)]
		bass := 0.15 * math.Sin(2*math.Pi*root*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SynthwaveGenerator) Err() error {
	return nil
}
