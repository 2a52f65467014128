package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/neon-drive/constants"
)

func TestEngineFrequencyRange(t *testing.T) {
	tests := []struct {
		speed float64
		want  float64
	}{
		{constants.MinSpeed, constants.EngineIdleFreq},
		{constants.MaxSpeed, constants.EngineTopFreq},
		{0, constants.EngineIdleFreq},
		{10, constants.EngineTopFreq},
	}

	for _, tt := range tests {
		if got := EngineFrequency(tt.speed); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EngineFrequency(%.2f) = %.2f, want %.2f", tt.speed, got, tt.want)
		}
	}

	mid := EngineFrequency((constants.MinSpeed + constants.MaxSpeed) / 2)
	if mid <= constants.EngineIdleFreq || mid >= constants.EngineTopFreq {
		t.Errorf("Expected mid speed pitch strictly inside the range, got %.2f", mid)
	}
}

// TestEngineGeneratorGlides verifies the pitch moves toward the target without jumping
func TestEngineGeneratorGlides(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewEngineGenerator(rate)
	g.SetSpeed(constants.MaxSpeed)

	samples := make([][2]float64, 512)
	n, ok := g.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected endless stream, got n=%d ok=%v", n, ok)
	}
	if g.freq <= constants.EngineIdleFreq || g.freq >= constants.EngineTopFreq {
		t.Errorf("Expected pitch partway through the glide, got %.2f", g.freq)
	}

	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) > constants.EngineVolume+1e-9 {
			t.Fatalf("Sample %d exceeds engine volume: %f", i, samples[i][0])
		}
	}

	for i := 0; i < 200; i++ {
		g.Stream(samples)
	}
	if math.Abs(g.freq-constants.EngineTopFreq) > 1 {
		t.Errorf("Expected pitch to settle near %.0f, got %.2f", constants.EngineTopFreq, g.freq)
	}
}

func TestSynthwaveGeneratorBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewSynthwaveGenerator(rate)

	samples := make([][2]float64, rate.N(constants.MusicBeatInterval)*2)
	n, ok := g.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected endless stream, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) > 1 {
			t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
}
