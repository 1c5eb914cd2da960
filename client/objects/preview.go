package objects

import (
	"image/color"

	"github.com/DylM0nster22/Tetris/client/fonts"
	"github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PiecePreviewObject shows a single piece in a labeled box (next, hold).
type PiecePreviewObject struct {
	*BaseObject

	label    string
	x, y     float32
	cellSize float32
	piece    *types.Piece
	dimmed   bool
}

func NewPiecePreviewObject(id string, label string, x, y, cellSize float32) *PiecePreviewObject {
	return &PiecePreviewObject{
		BaseObject: NewBaseObject(id, nil),
		label:      label,
		x:          x,
		y:          y,
		cellSize:   cellSize,
	}
}

// SetPiece sets the piece to show. A dimmed piece is drawn at low opacity.
func (o *PiecePreviewObject) SetPiece(piece *types.Piece, dimmed bool) {
	o.piece = piece
	o.dimmed = dimmed
}

func (o *PiecePreviewObject) Draw(screen *ebiten.Image) {
	text.Draw(screen, o.label, fonts.TTFSmallFont, int(o.x), int(o.y)-6, color.White)

	box := 4 * o.cellSize
	vector.DrawFilledRect(screen, o.x, o.y, box, box, backgroundColor, false)
	vector.StrokeRect(screen, o.x, o.y, box, box, 1, gridColor, false)

	if o.piece == nil {
		return
	}
	offsetX := o.x + (box-float32(o.piece.Shape.Width())*o.cellSize)/2
	offsetY := o.y + (box-float32(o.piece.Shape.Height())*o.cellSize)/2
	for _, cell := range o.piece.Shape.Cells() {
		clr := TagColor(cell.Tag)
		if o.dimmed {
			clr = ShadowColor(cell.Tag)
		}
		vector.DrawFilledRect(screen, offsetX+float32(cell.X)*o.cellSize+1, offsetY+float32(cell.Y)*o.cellSize+1, o.cellSize-2, o.cellSize-2, clr, false)
	}
}
