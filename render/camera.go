package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/neon-drive/constants"
)

// Camera projects world points onto the terminal view area
// The view area starts below the HUD; cells are treated as CellAspect times taller than wide
type Camera struct {
	viewProj mgl64.Mat4
	top      int
	width    int
	height   int
}

// NewCamera builds the chase camera for a view of width x height cells starting at row top
func NewCamera(width, height, top int) *Camera {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	aspect := float64(width) / (float64(height) * constants.CellAspect)
	proj := mgl64.Perspective(mgl64.DegToRad(constants.CameraFOVDegrees), aspect, constants.CameraNear, constants.CameraFar)
	view := mgl64.LookAtV(
		mgl64.Vec3{0, constants.CameraHeight, constants.CameraDistance},
		mgl64.Vec3{0, 0, constants.CameraLookAtZ},
		mgl64.Vec3{0, 1, 0},
	)

	return &Camera{
		viewProj: proj.Mul4(view),
		top:      top,
		width:    width,
		height:   height,
	}
}

// Project maps a world point to a cell; ok is false for points behind the camera or outside the depth range
// Cells outside the view are still returned so callers can clip spans
func (c *Camera) Project(x, y, z float64) (sx, sy int, ok bool) {
	clip := c.viewProj.Mul4x1(mgl64.Vec4{x, y, z, 1})
	w := clip.W()
	if w <= constants.CameraNear {
		return 0, 0, false
	}

	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}

	sx = int(math.Floor((ndc.X() + 1) / 2 * float64(c.width)))
	sy = c.top + int(math.Floor((1-ndc.Y())/2*float64(c.height)))
	return sx, sy, true
}

// HorizonRow returns the row where the flat ground plane meets the sky
func (c *Camera) HorizonRow() int {
	// A point at eye height near the far plane sits on the horizon
	if _, sy, ok := c.Project(0, constants.CameraHeight, constants.CameraDistance-constants.CameraFar*0.9); ok {
		return sy
	}
	return c.top + int(float64(c.height)*constants.HorizonFraction)
}

// Contains reports whether a cell is inside the view area
func (c *Camera) Contains(sx, sy int) bool {
	return sx >= 0 && sx < c.width && sy >= c.top && sy < c.top+c.height
}

// Bounds returns the view area as top row, width and height
func (c *Camera) Bounds() (top, width, height int) {
	return c.top, c.width, c.height
}
