package game

// State is the lifecycle state of a Session.
type State int

const (
	// StateReady has an empty board and generated pieces, but no gravity.
	StateReady State = iota
	// StateRunning accepts movement intents and applies gravity.
	StateRunning
	// StatePaused suspends gravity and board mutation.
	StatePaused
	// StateGameOver is terminal until the session is restarted.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
