package objects

import (
	"image/color"
	"strings"

	"github.com/DylM0nster22/Tetris/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextOverlayObject dims the screen and centers a line of text on it.
type TextOverlayObject struct {
	*BaseObject

	text     string
	subtitle string
}

func NewTextOverlayObject(id string, text string, subtitle string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 100}),
		text:       text,
		subtitle:   subtitle,
	}
}

func (o *TextOverlayObject) SetText(text string, subtitle string) {
	o.text = text
	o.subtitle = subtitle
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, color.NRGBA{A: 160}, false)

	drawCentered(screen, strings.ToUpper(o.text), fonts.TTFLargeFont, float64(w)/2, float64(h)/2)
	if o.subtitle != "" {
		drawCentered(screen, o.subtitle, fonts.TTFSmallFont, float64(w)/2, float64(h)/2+40)
	}
}

// drawCentered draws t horizontally centered on x with its baseline at y.
func drawCentered(screen *ebiten.Image, t string, f font.Face, x, y float64) {
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64((bounds.Max.X-bounds.Min.X)>>6)/2, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
