package objects

import (
	"image/color"

	"github.com/DylM0nster22/Tetris/pkg/game/types"
)

var tagColors = map[types.Tag]color.NRGBA{
	types.KindT.Tag(): {R: 160, G: 0, B: 240, A: 255},
	types.KindO.Tag(): {R: 240, G: 240, B: 0, A: 255},
	types.KindS.Tag(): {R: 0, G: 240, B: 0, A: 255},
	types.KindZ.Tag(): {R: 240, G: 0, B: 0, A: 255},
	types.KindI.Tag(): {R: 0, G: 240, B: 240, A: 255},
	types.KindJ.Tag(): {R: 0, G: 0, B: 240, A: 255},
	types.KindL.Tag(): {R: 240, G: 160, B: 0, A: 255},
	types.TagBomb:     {R: 80, G: 80, B: 80, A: 255},
	types.TagLine:     {R: 255, G: 255, B: 255, A: 255},
	types.TagGhost:    {R: 180, G: 180, B: 255, A: 140},
	types.TagGold:     {R: 255, G: 200, B: 40, A: 255},
}

var (
	backgroundColor = color.NRGBA{R: 20, G: 20, B: 30, A: 255}
	gridColor       = color.NRGBA{R: 45, G: 45, B: 60, A: 255}
)

// TagColor returns the fill color of a cell tag.
func TagColor(tag types.Tag) color.NRGBA {
	if c, ok := tagColors[tag]; ok {
		return c
	}
	return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
}

// ShadowColor is TagColor at low opacity.
func ShadowColor(tag types.Tag) color.NRGBA {
	c := TagColor(tag)
	c.A = 70
	return c
}
