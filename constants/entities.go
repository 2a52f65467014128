package constants

// --- Player and Obstacle Cars ---
const (
	// CarBodyChar fills the car body
	CarBodyChar = '█'

	// CarRoofChar is drawn on the cabin row
	CarRoofChar = '▄'

	// CarWheelChar marks the wheels on near cars
	CarWheelChar = '▀'

	// CarWidth is the car width in road units, used to size the sprite
	CarWidth = 1.6

	// CarBodyHeight is the chassis height in road units
	CarBodyHeight = 0.5

	// CarCabinWidth and CarCabinHeight size the cabin on top of the chassis
	CarCabinWidth  = 1.2
	CarCabinHeight = 0.4

	// CarTiltThreshold is the tilt beyond which the cabin is drawn leaning
	CarTiltThreshold = 0.05
)

// --- Scenery ---
const (
	// TreeChar is the canopy glyph
	TreeChar = '▲'

	// TrunkChar is the trunk glyph
	TrunkChar = '│'

	// BuildingChar is the facade glyph
	BuildingChar = '▓'

	// WindowChar is a lit window
	WindowChar = '▪'

	TrunkHeight   = 2.0
	CanopyHeight  = 5.0
	CanopyWidth   = 4.0
	BuildingWidth = 5.0

	// WindowRowSpacing is the vertical gap between lit window rows in road units
	WindowRowSpacing = 5.0
)

// --- Sky ---
const (
	// Sun placement in world units, up and to the right of the road
	SunX      = 200.0
	SunY      = 100.0
	SunZ      = -800.0
	SunRadius = 60.0

	// SunGlowScale sizes the halo relative to the disk
	SunGlowScale = 2.0

	// StarDensity is one star per this many sky cells
	StarDensity = 53
)

// --- Road ---
const (
	LaneMarkerChar = '▬'
	RoadEdgeChar   = '▌'
	GridChar       = '·'
	StarChar       = '.'
	SunChar        = '█'
	SunGlowChar    = '░'
)

// --- Road Presentation ---
const (
	// RoadBorderOffset is the lateral position of the neon borders (±), half a unit outside the road
	RoadBorderOffset = RoadWidth/2 + 0.5

	// RoadSampleStep is the depth step used to rasterize the road surface
	RoadSampleStep = 0.5
)
