package types

import "fmt"

// Tag is the value stored in a board cell.
// 0 is empty, 1..7 are the tetromino colors and 8..11 are power-up tags.
type Tag = uint8

const (
	TagEmpty Tag = 0
	TagBomb  Tag = 8
	TagLine  Tag = 9
	TagGhost Tag = 10
	TagGold  Tag = 11
	// TagMax is the largest tag a board will accept
	TagMax Tag = TagGold
)

// PowerUpTags lists the tags that only the power-up generator produces.
var PowerUpTags = []Tag{TagBomb, TagLine, TagGhost, TagGold}

// ErrInvalidTag is returned when writing a tag outside of 0..TagMax.
type ErrInvalidTag struct {
	Tag Tag
}

func (e *ErrInvalidTag) Error() string {
	return fmt.Sprintf("invalid cell tag: %d", e.Tag)
}

func IsInvalidTag(err error) bool {
	_, ok := err.(*ErrInvalidTag)
	return ok
}

// Board is a fixed-size grid of cell tags indexed as cells[y][x], with y=0 at the top.
type Board struct {
	rows  int
	cols  int
	cells [][]Tag
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	b := &Board{
		rows: rows,
		cols: cols,
	}
	b.Reset()
	return b
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = make([][]Tag, b.rows)
	for y := range b.cells {
		b.cells[y] = make([]Tag, b.cols)
	}
}

// IsOccupied reports whether a cell blocks a piece.
// Cells beyond the side walls or the floor are always occupied,
// cells above the top edge never are.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.cols || y >= b.rows {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x] != TagEmpty
}

// Cell returns the tag at (x, y), or TagEmpty outside of the board.
func (b *Board) Cell(x, y int) Tag {
	if !b.inBounds(x, y) {
		return TagEmpty
	}
	return b.cells[y][x]
}

// SetCell writes a tag. Writes outside of the board, including above the
// top edge, are silently discarded.
func (b *Board) SetCell(x, y int, tag Tag) error {
	if tag > TagMax {
		return &ErrInvalidTag{Tag: tag}
	}
	if !b.inBounds(x, y) {
		return nil
	}
	b.cells[y][x] = tag
	return nil
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// IsRowComplete reports whether every cell of row y is filled.
func (b *Board) IsRowComplete(y int) bool {
	if y < 0 || y >= b.rows {
		return false
	}
	for _, cell := range b.cells[y] {
		if cell == TagEmpty {
			return false
		}
	}
	return true
}

// RemoveRows deletes the given rows and inserts as many empty rows at the top.
// Surviving rows keep their relative order. Duplicates and out of range
// indices are ignored.
func (b *Board) RemoveRows(rows []int) int {
	remove := make(map[int]struct{}, len(rows))
	for _, y := range rows {
		if y < 0 || y >= b.rows {
			continue
		}
		remove[y] = struct{}{}
	}
	if len(remove) == 0 {
		return 0
	}

	kept := make([][]Tag, 0, b.rows)
	for y, row := range b.cells {
		if _, ok := remove[y]; ok {
			continue
		}
		kept = append(kept, row)
	}

	cells := make([][]Tag, 0, b.rows)
	for i := 0; i < len(remove); i++ {
		cells = append(cells, make([]Tag, b.cols))
	}
	b.cells = append(cells, kept...)

	return len(remove)
}

// Matrix returns a deep copy of the cells.
func (b *Board) Matrix() [][]Tag {
	m := make([][]Tag, b.rows)
	for y, row := range b.cells {
		m[y] = append([]Tag(nil), row...)
	}
	return m
}

// LoadMatrix replaces the cells with a copy of m.
func (b *Board) LoadMatrix(m [][]Tag) error {
	if len(m) != b.rows {
		return fmt.Errorf("expected %d rows, got %d", b.rows, len(m))
	}
	for y, row := range m {
		if len(row) != b.cols {
			return fmt.Errorf("expected %d columns in row %d, got %d", b.cols, y, len(row))
		}
		for _, tag := range row {
			if tag > TagMax {
				return &ErrInvalidTag{Tag: tag}
			}
		}
	}
	for y, row := range m {
		copy(b.cells[y], row)
	}
	return nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: b.Matrix(),
	}
}
