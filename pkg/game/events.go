package game

// EventType identifies a notification emitted by a Session.
type EventType int

const (
	EventPieceLocked EventType = iota
	EventLinesCleared
	EventQuad
	EventScore
	EventGameOver
	EventStateChanged
)

func (t EventType) String() string {
	switch t {
	case EventPieceLocked:
		return "piece_locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventQuad:
		return "quad"
	case EventScore:
		return "score"
	case EventGameOver:
		return "game_over"
	case EventStateChanged:
		return "state_changed"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification. Only the fields relevant to the
// event type are set.
type Event struct {
	Type EventType
	// Count is the number of rows removed by EventLinesCleared
	Count int
	// Rows are the removed row indices, top to bottom
	Rows []int
	// Score is the running score for EventScore and EventGameOver
	Score int
	// State is the new state for EventStateChanged
	State State
}
