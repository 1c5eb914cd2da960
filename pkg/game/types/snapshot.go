package types

// Snapshot is a read-only copy of a session's observable state.
// It has no JSON form of its own: peers receive messages.GameState and
// stored games use the binary codec in pkg/messages.
type Snapshot struct {
	Board     [][]Tag
	Active    *Piece
	Shadow    *Piece
	Next      *Piece
	Hold      *Piece
	Score     int
	HighScore int
	Level     int
	Combo     int
	Lines     int
	CanHold   bool
	State     string
	Mode      string
}
