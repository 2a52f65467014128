package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-drive/components"
	"github.com/lixenwraith/neon-drive/constants"
)

// RGB color definitions - synthwave palette
var (
	RgbSkyTop     = tcell.NewRGBColor(8, 0, 24)  // Near-black violet
	RgbSkyHorizon = tcell.NewRGBColor(48, 0, 96) // Fog purple
	RgbStar       = tcell.NewRGBColor(220, 220, 255)
	RgbSun        = tcell.NewRGBColor(255, 0, 85) // Hot pink

	RgbGround     = tcell.NewRGBColor(12, 0, 24)
	RgbGrid       = tcell.NewRGBColor(255, 0, 222) // Magenta grid
	RgbRoad       = tcell.NewRGBColor(15, 15, 15)  // Dark asphalt
	RgbRoadBorder = tcell.NewRGBColor(0, 255, 255) // Cyan neon
	RgbLaneMarker = tcell.NewRGBColor(255, 255, 255)

	RgbPlayer    = tcell.NewRGBColor(0, 255, 255) // Cyan player car
	RgbCarCabin  = tcell.NewRGBColor(17, 17, 17)
	RgbTailLight = tcell.NewRGBColor(255, 0, 0)

	RgbTreeCanopy = tcell.NewRGBColor(0, 255, 0)
	RgbTreeTrunk  = tcell.NewRGBColor(136, 68, 0)
	RgbBuilding   = tcell.NewRGBColor(17, 17, 17)

	RgbHUDBg       = tcell.NewRGBColor(20, 0, 40)
	RgbHUDText     = tcell.NewRGBColor(255, 255, 255)
	RgbHUDScore    = tcell.NewRGBColor(255, 0, 222)
	RgbHUDSpeed    = tcell.NewRGBColor(0, 255, 255)
	RgbHUDFlag     = tcell.NewRGBColor(255, 255, 0)
	RgbOverlayText = tcell.NewRGBColor(255, 255, 255)
	RgbOverlayHint = tcell.NewRGBColor(180, 180, 200)
	RgbGameOver    = tcell.NewRGBColor(255, 40, 80)
)

// ObstacleColors are the traffic car paints, indexed by entity variant
var ObstacleColors = [constants.ObstacleVariants]tcell.Color{
	tcell.NewRGBColor(255, 0, 0),
	tcell.NewRGBColor(0, 255, 0),
	tcell.NewRGBColor(255, 255, 0),
	tcell.NewRGBColor(255, 0, 255),
}

// WindowColors are the lit window tints, indexed by building variant
var WindowColors = [constants.WindowPalettes]tcell.Color{
	tcell.NewRGBColor(255, 0, 255),
	tcell.NewRGBColor(0, 255, 255),
	tcell.NewRGBColor(255, 255, 0),
	tcell.NewRGBColor(255, 0, 0),
}

// GetEntityColor returns the primary color for an entity kind and variant
func GetEntityColor(kind components.EntityKind, variant int) tcell.Color {
	switch kind {
	case components.KindObstacle:
		return ObstacleColors[wrapIndex(variant, len(ObstacleColors))]
	case components.KindTree:
		return RgbTreeCanopy
	case components.KindBuilding:
		return WindowColors[wrapIndex(variant, len(WindowColors))]
	case components.KindLaneMarker:
		return RgbLaneMarker
	}
	return RgbHUDText
}

// GetSkyColor blends from the zenith to the horizon; progress is 0.0 at the top row, 1.0 at the horizon
func GetSkyColor(progress float64) tcell.Color {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	r1, g1, b1 := RgbSkyTop.RGB()
	r2, g2, b2 := RgbSkyHorizon.RGB()
	lerp := func(a, b int32) int32 {
		return a + int32(float64(b-a)*progress)
	}
	return tcell.NewRGBColor(lerp(r1, r2), lerp(g1, g2), lerp(b1, b2))
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
