package types

// Shape is a small matrix of tags describing a piece in one orientation.
// Zero cells are empty.
type Shape [][]Tag

func (s Shape) Height() int {
	return len(s)
}

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	c := make(Shape, len(s))
	for i, row := range s {
		c[i] = append([]Tag(nil), row...)
	}
	return c
}

// RotateCW returns the shape rotated a quarter turn clockwise.
// A w×h shape becomes h×w.
func (s Shape) RotateCW() Shape {
	h, w := s.Height(), s.Width()
	r := make(Shape, w)
	for i := 0; i < w; i++ {
		r[i] = make([]Tag, h)
		for j := 0; j < h; j++ {
			r[i][j] = s[h-1-j][i]
		}
	}
	return r
}

// RotateCCW returns the shape rotated a quarter turn counter-clockwise.
func (s Shape) RotateCCW() Shape {
	h, w := s.Height(), s.Width()
	r := make(Shape, w)
	for i := 0; i < w; i++ {
		r[i] = make([]Tag, h)
		for j := 0; j < h; j++ {
			r[i][j] = s[j][w-1-i]
		}
	}
	return r
}

// Retag returns a copy with every filled cell set to tag.
func (s Shape) Retag(tag Tag) Shape {
	c := s.Clone()
	for _, row := range c {
		for x, cell := range row {
			if cell != TagEmpty {
				row[x] = tag
			}
		}
	}
	return c
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Offset is a cell position relative to the top-left of a shape.
type Offset struct {
	X   int
	Y   int
	Tag Tag
}

// Cells returns the filled cells of the shape.
func (s Shape) Cells() []Offset {
	cells := make([]Offset, 0, 4)
	for y, row := range s {
		for x, cell := range row {
			if cell != TagEmpty {
				cells = append(cells, Offset{X: x, Y: y, Tag: cell})
			}
		}
	}
	return cells
}
