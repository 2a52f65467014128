package render

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-drive/components"
	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

// TerminalRenderer handles all terminal rendering
// It only reads snapshots and never touches game state
type TerminalRenderer struct {
	screen  tcell.Screen
	width   int
	height  int
	camera  *Camera
	horizon int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.resize(screen.Size())
	return r
}

func (r *TerminalRenderer) resize(width, height int) {
	r.width = width
	r.height = height
	r.camera = NewCamera(width, height-constants.HUDRows, constants.HUDRows)
	r.horizon = r.camera.HorizonRow()
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, muted bool) {
	if w, h := r.screen.Size(); w != r.width || h != r.height {
		r.resize(w, h)
	}

	r.screen.Clear()

	r.drawSky()
	r.drawGround(snap.GridScroll)
	r.drawRoad()
	r.drawLaneMarkers(snap.LaneMarkers)
	r.drawWorld(snap)
	r.drawHUD(snap, muted)
	r.drawOverlay(snap)

	r.screen.Show()
}

// drawSky fills the sky gradient, stars and the sun above the horizon
func (r *TerminalRenderer) drawSky() {
	top := constants.HUDRows
	span := r.horizon - top
	if span < 1 {
		span = 1
	}

	for y := top; y < r.horizon && y < r.height; y++ {
		bg := GetSkyColor(float64(y-top) / float64(span))
		style := tcell.StyleDefault.Background(bg)
		for x := 0; x < r.width; x++ {
			if isStar(x, y) && y < r.horizon-1 {
				r.screen.SetContent(x, y, constants.StarChar, nil, style.Foreground(RgbStar))
				continue
			}
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	r.drawSun()
}

// isStar scatters stars with a fixed hash so they do not flicker between frames
func isStar(x, y int) bool {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	return h%constants.StarDensity == 0
}

func (r *TerminalRenderer) drawSun() {
	cx, cy, ok := r.camera.Project(constants.SunX, constants.SunY, constants.SunZ)
	if !ok {
		return
	}
	ex, _, ok := r.camera.Project(constants.SunX+constants.SunRadius, constants.SunY, constants.SunZ)
	if !ok {
		return
	}

	radius := math.Max(float64(ex-cx), 1)
	glow := radius * constants.SunGlowScale
	top := constants.HUDRows

	for y := cy - int(glow); y <= cy+int(glow); y++ {
		if y < top || y >= r.horizon {
			continue
		}
		bg := GetSkyColor(float64(y-top) / math.Max(float64(r.horizon-top), 1))
		dy := float64(y-cy) * constants.CellAspect
		for x := cx - int(glow*1.5); x <= cx+int(glow*1.5); x++ {
			if x < 0 || x >= r.width {
				continue
			}
			dist := math.Hypot(float64(x-cx), dy)
			switch {
			case dist <= radius:
				// Retro stripes across the lower half of the disk
				if y > cy && (y-cy)%2 == 0 {
					continue
				}
				r.screen.SetContent(x, y, constants.SunChar, nil, tcell.StyleDefault.Foreground(RgbSun).Background(bg))
			case dist <= glow:
				r.screen.SetContent(x, y, constants.SunGlowChar, nil, tcell.StyleDefault.Foreground(RgbSun).Background(bg))
			}
		}
	}
}

// drawGround fills the ground plane and the scrolling neon grid
func (r *TerminalRenderer) drawGround(gridScroll float64) {
	ground := tcell.StyleDefault.Background(RgbGround)
	for y := max(r.horizon, constants.HUDRows); y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, ground)
		}
	}

	gridStyle := ground.Foreground(RgbGrid)
	spacing := constants.GridScrollDivisor
	offset := (gridScroll - math.Floor(gridScroll)) * spacing

	// Cross lines slide toward the camera as the scroll advances
	for k := 0; float64(k)*spacing < constants.RoadLength; k++ {
		z := constants.CurvatureReference - float64(k)*spacing + offset
		_, sy, ok := r.camera.Project(0, engine.Curvature(z, 0), z)
		if !ok || sy < r.horizon || sy >= r.height {
			continue
		}
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, sy, constants.GridChar, nil, gridStyle)
		}
	}

	// Rails running away from the camera on both sides of the road
	for n := 1; n <= 6; n++ {
		for _, side := range [2]float64{-1, 1} {
			x := side * (constants.RoadBorderOffset + float64(n)*spacing/2)
			for z := constants.SpawnDepth; z <= constants.RetireDepth; z += 2 {
				sx, sy, ok := r.camera.Project(x, engine.Curvature(z, 0), z)
				if ok && sy >= r.horizon && r.camera.Contains(sx, sy) {
					r.screen.SetContent(sx, sy, constants.GridChar, nil, gridStyle)
				}
			}
		}
	}
}

// drawRoad rasterizes the curved asphalt strip and its neon borders far to near
func (r *TerminalRenderer) drawRoad() {
	road := tcell.StyleDefault.Background(RgbRoad)
	border := road.Foreground(RgbRoadBorder)
	half := constants.RoadWidth / 2

	prevRow := -1
	for z := constants.SpawnDepth; z <= constants.RetireDepth; z += roadStep(z) {
		y := engine.Curvature(z, 0)
		lx, sy, ok1 := r.camera.Project(-half, y, z)
		rx, _, ok2 := r.camera.Project(half, y, z)
		if !ok1 || !ok2 {
			continue
		}

		// Near the camera one depth step can cover several rows
		from := sy
		if prevRow >= 0 && prevRow < sy {
			from = prevRow + 1
		}
		prevRow = sy

		bx, _, okBorder := r.camera.Project(-constants.RoadBorderOffset, y, z)
		ex, _, _ := r.camera.Project(constants.RoadBorderOffset, y, z)

		for row := from; row <= sy; row++ {
			if row < constants.HUDRows || row >= r.height {
				continue
			}
			for x := max(lx, 0); x <= min(rx, r.width-1); x++ {
				r.screen.SetContent(x, row, ' ', nil, road)
			}
			if okBorder {
				r.setCell(bx, row, constants.RoadEdgeChar, border)
				r.setCell(ex, row, constants.RoadEdgeChar, border)
			}
		}
	}
}

func roadStep(z float64) float64 {
	if z > -20 {
		return constants.RoadSampleStep / 5
	}
	return constants.RoadSampleStep
}

// drawLaneMarkers draws each dash as a short stroke along the road
func (r *TerminalRenderer) drawLaneMarkers(markers []engine.EntityView) {
	style := tcell.StyleDefault.Background(RgbRoad).Foreground(RgbLaneMarker)
	const halfDash = 1.5

	for _, m := range markers {
		if m.Depth >= constants.CameraDistance {
			continue
		}
		sx, far, ok1 := r.camera.Project(m.LateralOffset, m.Height, m.Depth-halfDash)
		_, near, ok2 := r.camera.Project(m.LateralOffset, m.Height, math.Min(m.Depth+halfDash, constants.RetireDepth))
		if !ok1 || !ok2 {
			continue
		}
		for row := far; row <= near; row++ {
			if row >= r.horizon {
				r.setCell(sx, row, constants.LaneMarkerChar, style)
			}
		}
	}
}

// drawable is one sprite queued for depth-sorted drawing
type drawable struct {
	depth float64
	draw  func()
}

// drawWorld draws scenery, traffic and the player car back to front
func (r *TerminalRenderer) drawWorld(snap engine.Snapshot) {
	items := make([]drawable, 0, len(snap.Obstacles)+len(snap.Scenery)+1)

	for _, e := range snap.Scenery {
		switch e.Kind {
		case components.KindTree:
			items = append(items, drawable{e.Depth, func() { r.drawTree(e) }})
		case components.KindBuilding:
			items = append(items, drawable{e.Depth, func() { r.drawBuilding(e) }})
		}
	}
	for _, e := range snap.Obstacles {
		items = append(items, drawable{e.Depth, func() {
			r.drawCar(e.LateralOffset, e.Height, e.Depth, GetEntityColor(e.Kind, e.Variant), 0)
		}})
	}
	items = append(items, drawable{0, func() {
		r.drawCar(snap.PlayerX, 0, 0, RgbPlayer, snap.PlayerRotationZ)
	}})

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].depth < items[j].depth
	})
	for _, it := range items {
		if it.depth >= constants.CameraDistance {
			continue
		}
		it.draw()
	}
}

// drawCar draws a chassis with a cabin; tilt leans the cabin toward the turn
func (r *TerminalRenderer) drawCar(x, y, z float64, color tcell.Color, tilt float64) {
	half := constants.CarWidth / 2
	left, top, right, bottom, ok := r.projectBox(x-half, x+half, y, y+constants.CarBodyHeight, z)
	if !ok {
		return
	}

	body := tcell.StyleDefault.Foreground(color).Background(RgbRoad)
	r.fillRect(left, top, right, bottom, constants.CarBodyChar, body)

	// Tail lights on the outer cells of wide sprites
	if right-left >= 2 {
		lights := tcell.StyleDefault.Foreground(RgbTailLight).Background(color)
		r.setCell(left, bottom, constants.CarWheelChar, lights)
		r.setCell(right, bottom, constants.CarWheelChar, lights)
	}

	cabinHalf := constants.CarCabinWidth / 2
	cl, ct, cr, cb, ok := r.projectBox(x-cabinHalf, x+cabinHalf, y+constants.CarBodyHeight, y+constants.CarBodyHeight+constants.CarCabinHeight, z)
	if !ok {
		return
	}
	// Keep the cabin on its own row even when the projection collapses it into the body
	if cb >= top {
		cb = top - 1
		ct = min(ct, cb)
	}

	shift := 0
	if tilt > constants.CarTiltThreshold {
		shift = -1
	} else if tilt < -constants.CarTiltThreshold {
		shift = 1
	}

	cabin := tcell.StyleDefault.Foreground(color).Background(RgbCarCabin)
	r.fillRect(cl+shift, ct, cr+shift, cb, constants.CarRoofChar, cabin)
}

func (r *TerminalRenderer) drawTree(e engine.EntityView) {
	trunk := tcell.StyleDefault.Foreground(RgbTreeTrunk).Background(RgbGround)
	if left, top, right, bottom, ok := r.projectBox(e.LateralOffset-0.5, e.LateralOffset+0.5, e.Height, e.Height+constants.TrunkHeight, e.Depth); ok {
		r.fillRect(left, top, right, bottom, constants.TrunkChar, trunk)
	}

	base := e.Height + constants.TrunkHeight - 1
	half := constants.CanopyWidth / 2
	left, top, right, bottom, ok := r.projectBox(e.LateralOffset-half, e.LateralOffset+half, base, base+constants.CanopyHeight, e.Depth)
	if !ok {
		return
	}

	// Cone narrows linearly toward the tip
	canopy := tcell.StyleDefault.Foreground(GetEntityColor(e.Kind, e.Variant)).Background(RgbGround)
	center := (left + right) / 2
	rows := bottom - top + 1
	for row := top; row <= bottom; row++ {
		spread := (right - left) / 2 * (row - top + 1) / rows
		r.fillRect(center-spread, row, center+spread, row, constants.TreeChar, canopy)
	}
}

func (r *TerminalRenderer) drawBuilding(e engine.EntityView) {
	half := constants.BuildingWidth / 2
	bottomY := e.Height - e.Size/2
	topY := e.Height + e.Size/2

	left, top, right, bottom, ok := r.projectBox(e.LateralOffset-half, e.LateralOffset+half, bottomY, topY, e.Depth)
	if !ok {
		return
	}

	facade := tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 40, 52)).Background(RgbBuilding)
	r.fillRect(left, top, right, bottom, constants.BuildingChar, facade)

	lit := tcell.StyleDefault.Foreground(GetEntityColor(e.Kind, e.Variant)).Background(RgbBuilding)
	for wy := bottomY + constants.WindowRowSpacing/2; wy < topY; wy += constants.WindowRowSpacing {
		_, row, ok := r.camera.Project(e.LateralOffset, wy, e.Depth)
		if !ok || row < top || row > bottom {
			continue
		}
		for x := left + 1; x < right; x += 2 {
			r.setCell(x, row, constants.WindowChar, lit)
		}
	}
}

// projectBox projects a camera-facing rectangle at depth z; the result is at least one cell
func (r *TerminalRenderer) projectBox(x0, x1, y0, y1, z float64) (left, top, right, bottom int, ok bool) {
	left, bottom, ok1 := r.camera.Project(x0, y0, z)
	right, top, ok2 := r.camera.Project(x1, y1, z)
	if !ok1 || !ok2 {
		return 0, 0, 0, 0, false
	}
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return left, top, right, bottom, true
}

func (r *TerminalRenderer) fillRect(left, top, right, bottom int, ch rune, style tcell.Style) {
	for y := max(top, constants.HUDRows); y <= bottom && y < r.height; y++ {
		for x := max(left, 0); x <= right && x < r.width; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// setCell writes one cell if it lies inside the view area
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < constants.HUDRows || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawHUD draws the status bar on the top row
func (r *TerminalRenderer) drawHUD(snap engine.Snapshot, muted bool) {
	bar := tcell.StyleDefault.Background(RgbHUDBg).Foreground(RgbHUDText)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, bar)
	}

	x := r.drawText(1, 0, fmt.Sprintf("SCORE %06d", snap.DisplayScore), bar.Foreground(RgbHUDScore).Bold(true))
	r.drawText(x+3, 0, fmt.Sprintf("%3d KM/H", snap.DisplaySpeedKmh), bar.Foreground(RgbHUDSpeed))

	var flags string
	if snap.Paused {
		flags += " PAUSED"
	}
	if muted {
		flags += " MUTED"
	}
	if flags != "" {
		r.drawText(r.width-utf8.RuneCountInString(flags)-1, 0, flags, bar.Foreground(RgbHUDFlag))
	}
}

// drawOverlay draws the centered title, game over or pause panel
func (r *TerminalRenderer) drawOverlay(snap engine.Snapshot) {
	var lines []string
	var headline tcell.Color

	switch {
	case snap.State == engine.StateNotStarted:
		lines = []string{constants.TitleText, "", constants.StartHint, "", constants.ControlsHint}
		headline = RgbHUDScore
	case snap.State == engine.StateGameOver:
		lines = []string{constants.GameOverText, "", fmt.Sprintf(constants.FinalScore, snap.DisplayScore), constants.RestartHint}
		headline = RgbGameOver
	case snap.Paused:
		lines = []string{constants.PausedText, "", constants.ResumeHint}
		headline = RgbHUDFlag
	default:
		return
	}

	panel := tcell.StyleDefault.Background(tcell.ColorBlack)
	startY := constants.HUDRows + (r.height-constants.HUDRows-len(lines))/2
	for i, line := range lines {
		if line == "" {
			continue
		}
		style := panel.Foreground(RgbOverlayHint)
		if i == 0 {
			style = panel.Foreground(headline).Bold(true)
		} else if i == 2 {
			style = panel.Foreground(RgbOverlayText)
		}
		x := (r.width - utf8.RuneCountInString(line)) / 2
		r.drawText(x, startY+i, line, style)
	}
}

// drawText writes a string clipped to the screen; returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	for _, ch := range text {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
