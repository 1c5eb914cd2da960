package types

// Kind identifies one of the seven tetrominoes.
// Its numeric value doubles as the color tag written to the board.
type Kind uint8

const (
	KindNone Kind = iota
	KindT
	KindO
	KindS
	KindZ
	KindI
	KindJ
	KindL
)

func (k Kind) String() string {
	switch k {
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "none"
	}
}

// ParseKind returns the kind named by its letter, or KindNone.
func ParseKind(s string) Kind {
	for _, kind := range Kinds() {
		if kind.String() == s {
			return kind
		}
	}
	return KindNone
}

// Valid reports whether k is one of the seven tetrominoes.
func (k Kind) Valid() bool {
	return k >= KindT && k <= KindL
}

// Tag returns the board tag for the kind.
func (k Kind) Tag() Tag {
	return Tag(k)
}

var catalog = map[Kind]Shape{
	KindT: {{1, 1, 1}, {0, 1, 0}},
	KindO: {{2, 2}, {2, 2}},
	KindS: {{0, 3, 3}, {3, 3, 0}},
	KindZ: {{4, 4, 0}, {0, 4, 4}},
	KindI: {{5, 5, 5, 5}},
	KindJ: {{6, 0, 0}, {6, 6, 6}},
	KindL: {{0, 0, 7}, {7, 7, 7}},
}

// Kinds returns the seven tetrominoes in id order.
func Kinds() []Kind {
	return []Kind{KindT, KindO, KindS, KindZ, KindI, KindJ, KindL}
}

// ShapeOf returns a copy of the reference matrix for a kind.
// It returns nil for an unknown kind.
func ShapeOf(kind Kind) Shape {
	shape, ok := catalog[kind]
	if !ok {
		return nil
	}
	return shape.Clone()
}
