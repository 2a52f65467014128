package engine

import (
	"math"

	"github.com/lixenwraith/neon-drive/components"
	"github.com/lixenwraith/neon-drive/constants"
)

// EntityView is the presenter-facing copy of a road entity
type EntityView struct {
	ID            components.EntityID   `json:"id"`
	Kind          components.EntityKind `json:"kind"`
	LateralOffset float64               `json:"x"`
	Depth         float64               `json:"z"`
	Height        float64               `json:"y"`
	Baseline      float64               `json:"baseline"`
	Variant       int                   `json:"variant"`
	Size          float64               `json:"size,omitempty"`
}

// Snapshot is the per-tick view handed to presenters
// All slices are copies; presenters never share memory with the simulation
type Snapshot struct {
	SessionID       string       `json:"sessionId"`
	Frame           int64        `json:"frame"`
	State           SessionState `json:"state"`
	Paused          bool         `json:"paused"`
	PlayerX         float64      `json:"playerX"`
	PlayerRotationZ float64      `json:"playerRotationZ"`
	Lane            int          `json:"lane"`
	Speed           float64      `json:"speed"`
	Score           float64      `json:"score"`
	DisplayScore    int          `json:"displayScore"`
	DisplaySpeedKmh int          `json:"displaySpeedKmh"`
	GridScroll      float64      `json:"gridScroll"`
	Obstacles       []EntityView `json:"obstacles"`
	Scenery         []EntityView `json:"scenery"`
	LaneMarkers     []EntityView `json:"laneMarkers"`
}

// DisplayScore converts the raw score into HUD points
func DisplayScore(score float64) int {
	return int(math.Floor(score / constants.ScoreDisplayDivisor))
}

// DisplaySpeedKmh converts road units per tick into the speedometer reading
func DisplaySpeedKmh(speed float64) int {
	return int(math.Floor(speed * constants.SpeedDisplayFactor))
}

func viewsOf(store *EntityStore) []EntityView {
	entities := store.Snapshot()
	views := make([]EntityView, len(entities))
	for i, e := range entities {
		views[i] = EntityView{
			ID:            e.ID,
			Kind:          e.Kind,
			LateralOffset: e.LateralOffset,
			Depth:         e.Depth,
			Height:        e.Height,
			Baseline:      e.Baseline,
			Variant:       e.Variant,
			Size:          e.Size,
		}
	}
	return views
}
