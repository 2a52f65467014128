package constants

// Road Geometry
const (
	// LaneWidth is the lateral distance between lane centers
	LaneWidth = 3.0

	// MinLane and MaxLane bound the discrete lane index (-1 left, 0 center, 1 right)
	MinLane = -1
	MaxLane = 1

	// LaneCount is the number of lane slots obstacles can occupy
	LaneCount = MaxLane - MinLane + 1

	// RoadLength is the wrap distance for lane markers
	RoadLength = 400.0

	// RoadWidth is the asphalt width, used by presenters
	RoadWidth = 12.0
)

// Depth Landmarks
const (
	// SpawnDepth is where obstacles and scenery appear
	SpawnDepth = -300.0

	// RetireDepth is the near plane; entities past it are removed
	RetireDepth = 10.0
)

// Curvature Transform
const (
	// CurvatureReference is the depth where the horizon drop starts
	CurvatureReference = 10.0

	// CurvatureCoefficient scales the squared distance into a vertical drop
	CurvatureCoefficient = 0.0002
)

// Lane Markers
const (
	// LaneMarkerRows is the number of dash rows per divider
	LaneMarkerRows = 20

	// LaneMarkerSpacing is the depth gap between dash rows
	LaneMarkerSpacing = 20.0

	// LaneMarkerFirstDepth is the depth of row zero at session start
	LaneMarkerFirstDepth = -10.0

	// LaneMarkerOffsetX is the lateral position of the two dividers (±)
	LaneMarkerOffsetX = 1.5

	// LaneMarkerBaseline is the dash height above the road
	LaneMarkerBaseline = 0.1
)

// GridScrollDivisor converts speed into decorative ground scroll per tick
const GridScrollDivisor = 20.0
