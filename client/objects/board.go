package objects

import (
	"image/color"

	"github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardObject draws a board with its falling and shadow pieces.
type BoardObject struct {
	*BaseObject

	x, y     float32
	cellSize float32
	board    [][]types.Tag
	active   *types.Piece
	shadow   *types.Piece
}

type NewBoardObjectOptions struct {
	// X is the x-coordinate of the top-left corner of the board.
	X float32
	// Y is the y-coordinate of the top-left corner of the board.
	Y float32
	// CellSize is the width and height of one cell in pixels.
	CellSize float32
	// Rows and Cols size the empty board drawn before the first update.
	Rows int
	Cols int
	// ZIndex is the z-index of the board object.
	ZIndex int
}

func NewBoardObject(id string, opts NewBoardObjectOptions) *BoardObject {
	board := make([][]types.Tag, opts.Rows)
	for y := range board {
		board[y] = make([]types.Tag, opts.Cols)
	}
	return &BoardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		x:        opts.X,
		y:        opts.Y,
		cellSize: opts.CellSize,
		board:    board,
	}
}

// SetState replaces what is drawn. Nil pieces are not drawn.
func (o *BoardObject) SetState(board [][]types.Tag, active, shadow *types.Piece) {
	if len(board) > 0 {
		o.board = board
	}
	o.active = active
	o.shadow = shadow
}

// Clear empties the board and drops the pieces.
func (o *BoardObject) Clear() {
	board := make([][]types.Tag, len(o.board))
	for y, row := range o.board {
		board[y] = make([]types.Tag, len(row))
	}
	o.board = board
	o.active = nil
	o.shadow = nil
}

func (o *BoardObject) Width() float32 {
	if len(o.board) == 0 {
		return 0
	}
	return float32(len(o.board[0])) * o.cellSize
}

func (o *BoardObject) Height() float32 {
	return float32(len(o.board)) * o.cellSize
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, o.x, o.y, o.Width(), o.Height(), backgroundColor, false)

	for y, row := range o.board {
		for x, tag := range row {
			if tag == types.TagEmpty {
				vector.StrokeRect(screen, o.cellX(x), o.cellY(y), o.cellSize, o.cellSize, 1, gridColor, false)
				continue
			}
			o.drawCell(screen, x, y, TagColor(tag))
		}
	}

	if o.shadow != nil {
		for _, cell := range o.shadow.Cells() {
			o.drawCell(screen, cell.X, cell.Y, ShadowColor(cell.Tag))
		}
	}
	if o.active != nil {
		for _, cell := range o.active.Cells() {
			o.drawCell(screen, cell.X, cell.Y, TagColor(cell.Tag))
		}
	}

	vector.StrokeRect(screen, o.x, o.y, o.Width(), o.Height(), 2, color.White, false)
}

// drawCell skips cells above the top edge.
func (o *BoardObject) drawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	if y < 0 || y >= len(o.board) {
		return
	}
	vector.DrawFilledRect(screen, o.cellX(x)+1, o.cellY(y)+1, o.cellSize-2, o.cellSize-2, clr, false)
}

func (o *BoardObject) cellX(x int) float32 {
	return o.x + float32(x)*o.cellSize
}

func (o *BoardObject) cellY(y int) float32 {
	return o.y + float32(y)*o.cellSize
}
