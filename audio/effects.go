package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/neon-drive/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveAt(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveAt evaluates one period-normalized wave at phase in [0, 1)
func waveAt(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over a fixed duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with a linear gain; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CueType identifies a one-shot sound cue
type CueType int

const (
	CueStart CueType = iota
	CueCrash
	CueLane
)

// CreateStartSound generates a rising two-note chime for a new session
func CreateStartSound(rate beep.SampleRate) beep.Streamer {
	half := constants.StartSoundDuration / 2

	n1 := NewEnvelope(NewOscillator(440, half, WaveSquare, rate), half, constants.StartSoundAttack, half/2, rate)
	n2 := NewEnvelope(NewOscillator(880, half, WaveSquare, rate), half, constants.StartSoundAttack, constants.StartSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), constants.StartSoundVolume)
}

// CreateCrashSound generates a noise burst over a low rumble
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	d := constants.CrashSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)
	rumble := NewEnvelope(NewOscillator(60, d, WaveSaw, rate), d, constants.CrashSoundAttack, d, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
	return newVolume(beep.Take(rate.N(d), mixed), constants.CrashSoundVolume)
}

// CreateLaneSound generates a short swish for a lane change
func CreateLaneSound(rate beep.SampleRate) beep.Streamer {
	d := constants.LaneSoundDuration
	swish := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.LaneSoundAttack, constants.LaneSoundRelease, rate)
	return newVolume(swish, constants.LaneSoundVolume)
}

// GetCueSound returns the streamer for a cue
func GetCueSound(cue CueType, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueStart:
		return CreateStartSound(rate)
	case CueCrash:
		return CreateCrashSound(rate)
	case CueLane:
		return CreateLaneSound(rate)
	default:
		return nil
	}
}
