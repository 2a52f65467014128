package constants

import (
	"math"
	"testing"
	"unicode/utf8"
)

// TestDisplayConversions verifies the HUD formulas at the speed bounds
func TestDisplayConversions(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		kmh   int
	}{
		{name: "Min speed", speed: MinSpeed, kmh: 20},
		{name: "Max speed", speed: MaxSpeed, kmh: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := int(math.Floor(tt.speed * SpeedDisplayFactor))
			if got != tt.kmh {
				t.Errorf("Expected %d km/h, got %d", tt.kmh, got)
			}
		})
	}
}

// TestLaneBounds verifies the three-lane layout
func TestLaneBounds(t *testing.T) {
	if LaneCount != 3 {
		t.Errorf("Expected 3 lanes, got %d", LaneCount)
	}
	if MinLane != -1 || MaxLane != 1 {
		t.Errorf("Expected lanes [-1, 1], got [%d, %d]", MinLane, MaxLane)
	}
}

// TestSceneryClearsRoad verifies scenery never spawns on the asphalt
func TestSceneryClearsRoad(t *testing.T) {
	if SceneryMinOffset <= RoadWidth/2 {
		t.Errorf("Scenery offset %.1f overlaps road half-width %.1f", SceneryMinOffset, RoadWidth/2)
	}
}

// TestLaneMarkersSpanRoad verifies marker rows tile the wrap length exactly
func TestLaneMarkersSpanRoad(t *testing.T) {
	if LaneMarkerRows*LaneMarkerSpacing != RoadLength {
		t.Errorf("Marker rows span %.0f, road length %.0f", LaneMarkerRows*LaneMarkerSpacing, RoadLength)
	}
}

// TestOverlayTextFitsMinimumTerminal verifies overlays fit an 80 column terminal
func TestOverlayTextFitsMinimumTerminal(t *testing.T) {
	for _, s := range []string{TitleText, StartHint, GameOverText, RestartHint, PausedText, ControlsHint} {
		if n := utf8.RuneCountInString(s); n > 80 {
			t.Errorf("%q is %d columns wide", s, n)
		}
	}
}
