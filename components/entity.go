package components

// EntityID identifies a road entity; IDs are never reused within a game
type EntityID uint64

// EntityKind discriminates road-anchored entities
type EntityKind uint8

const (
	KindObstacle   EntityKind = iota // Oncoming car, collides with the player
	KindTree                         // Roadside scenery, baseline at ground level
	KindBuilding                     // Roadside scenery, baseline at half its height
	KindLaneMarker                   // Lane divider dash, wraps instead of retiring
)

// String returns the wire name of the kind
func (k EntityKind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindTree:
		return "tree"
	case KindBuilding:
		return "building"
	case KindLaneMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// IsScenery reports whether the kind is decorative roadside scenery
func (k EntityKind) IsScenery() bool {
	return k == KindTree || k == KindBuilding
}

// RoadAnchor is the positional state shared by every road-aligned entity
type RoadAnchor struct {
	LateralOffset float64 // Fixed at spawn
	Depth         float64 // Advanced by speed every tick, negative is ahead of the player
	Baseline      float64 // Height before curvature, fixed at spawn
	Height        float64 // Baseline minus the curvature drop, recomputed every tick
}

// Entity is a tagged road entity
type Entity struct {
	ID   EntityID
	Kind EntityKind
	RoadAnchor

	// Variant selects paint (obstacles) or window palette (buildings)
	Variant int

	// Size is the building height; zero for other kinds
	Size float64
}

// MarshalText encodes the kind by name for snapshot consumers
func (k EntityKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
