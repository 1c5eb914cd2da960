package types

// Piece is a tetromino in play: a shape positioned on the board by its top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X     int
	Y     int
}

// NewPiece creates a piece of the given kind at (x, y) in its reference orientation.
func NewPiece(kind Kind, x, y int) Piece {
	return Piece{
		Kind:  kind,
		Shape: ShapeOf(kind),
		X:     x,
		Y:     y,
	}
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// WithShape returns a copy of the piece with a different orientation.
func (p Piece) WithShape(shape Shape) Piece {
	p.Shape = shape
	return p
}

// At returns a copy of the piece moved to (x, y).
func (p Piece) At(x, y int) Piece {
	p.X = x
	p.Y = y
	return p
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells returns the absolute board positions covered by the piece.
func (p Piece) Cells() []Offset {
	cells := p.Shape.Cells()
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// IsValidPlacement reports whether the piece translated by (offX, offY)
// overlaps neither a wall, the floor nor a filled cell. Cells above the
// top edge are allowed.
func IsValidPlacement(board *Board, piece Piece, offX, offY int) bool {
	for _, cell := range piece.Shape.Cells() {
		x := piece.X + cell.X + offX
		y := piece.Y + cell.Y + offY
		if board.IsOccupied(x, y) {
			return false
		}
	}
	return true
}
