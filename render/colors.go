package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbHUDText    = tcell.NewRGBColor(200, 200, 200)
	RgbHUDValue   = tcell.NewRGBColor(255, 255, 255)
	RgbHUDKey     = tcell.NewRGBColor(255, 165, 0)
	RgbHUDBorder  = tcell.NewRGBColor(60, 60, 80)
	RgbPaused     = tcell.NewRGBColor(255, 80, 80)
	RgbAttractor  = tcell.NewRGBColor(255, 255, 0)
	RgbEngaged    = tcell.NewRGBColor(255, 120, 255)
)

// densityRamp is indexed by particles per cell, saturating at the last entry
var densityRamp = []struct {
	glyph rune
	color tcell.Color
}{
	{' ', RgbBackground},
	{'.', tcell.NewRGBColor(60, 100, 200)},
	{':', tcell.NewRGBColor(100, 150, 255)},
	{'o', tcell.NewRGBColor(140, 190, 255)},
	{'O', tcell.NewRGBColor(0, 200, 200)},
	{'@', tcell.NewRGBColor(50, 255, 50)},
	{'#', tcell.NewRGBColor(255, 255, 200)},
}

func densityCell(count int) (rune, tcell.Color) {
	if count >= len(densityRamp) {
		count = len(densityRamp) - 1
	}
	d := densityRamp[count]
	return d.glyph, d.color
}
