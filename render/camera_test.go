package render

import (
	"testing"

	"github.com/lixenwraith/neon-drive/constants"
)

func TestCameraLookAtProjectsToCenter(t *testing.T) {
	cam := NewCamera(80, 23, 1)

	sx, sy, ok := cam.Project(0, 0, constants.CameraLookAtZ)
	if !ok {
		t.Fatal("Expected look-at point to be visible")
	}
	if sx < 39 || sx > 40 {
		t.Errorf("Expected look-at column near 40, got %d", sx)
	}
	if wantRow := 1 + 23/2; sy < wantRow-1 || sy > wantRow {
		t.Errorf("Expected look-at row near %d, got %d", wantRow, sy)
	}
}

func TestCameraHorizonAbovePlayer(t *testing.T) {
	cam := NewCamera(80, 23, 1)

	horizon := cam.HorizonRow()
	_, playerRow, ok := cam.Project(0, 0, 0)
	if !ok {
		t.Fatal("Expected player position to be visible")
	}

	if horizon <= 1 || horizon >= playerRow {
		t.Errorf("Expected horizon between HUD and player, got horizon %d player %d", horizon, playerRow)
	}
	if !cam.Contains(40, playerRow) {
		t.Errorf("Expected player row %d inside the view", playerRow)
	}
}

func TestCameraRejectsPointsBehind(t *testing.T) {
	cam := NewCamera(80, 23, 1)

	if _, _, ok := cam.Project(0, 0, constants.CameraDistance+5); ok {
		t.Error("Expected point behind the camera to be rejected")
	}
}

func TestCameraPerspectiveShrinksWithDistance(t *testing.T) {
	cam := NewCamera(80, 23, 1)

	width := func(z float64) int {
		l, _, ok1 := cam.Project(-constants.RoadWidth/2, 0, z)
		r, _, ok2 := cam.Project(constants.RoadWidth/2, 0, z)
		if !ok1 || !ok2 {
			t.Fatalf("Expected road edges at depth %.0f to be visible", z)
		}
		return r - l
	}

	near, far := width(0), width(-200)
	if near <= far {
		t.Errorf("Expected near road (%d cols) wider than far road (%d cols)", near, far)
	}
}

func TestCameraCurvatureSinksDistantObjects(t *testing.T) {
	cam := NewCamera(80, 23, 1)

	_, flat, _ := cam.Project(0, 0, constants.SpawnDepth)
	_, curved, _ := cam.Project(0, -19.22, constants.SpawnDepth)
	if curved <= flat {
		t.Errorf("Expected curved far object below flat position, got rows %d and %d", curved, flat)
	}
}
