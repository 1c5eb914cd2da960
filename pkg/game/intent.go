package game

import "fmt"

// Intent is an abstract player action. Key bindings are owned by the client.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentSoftDrop
	IntentHardDrop
	IntentRotateCW
	IntentRotateCCW
	IntentHold
	// IntentPause toggles between Running and Paused.
	IntentPause
	IntentRestart
	IntentStart
)

var intentNames = map[Intent]string{
	IntentMoveLeft:  "move_left",
	IntentMoveRight: "move_right",
	IntentSoftDrop:  "soft_drop",
	IntentHardDrop:  "hard_drop",
	IntentRotateCW:  "rotate_cw",
	IntentRotateCCW: "rotate_ccw",
	IntentHold:      "hold",
	IntentPause:     "pause",
	IntentRestart:   "restart",
	IntentStart:     "start",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// ParseIntent parses the name of an intent, e.g. "hard_drop".
func ParseIntent(name string) (Intent, error) {
	for intent, n := range intentNames {
		if n == name {
			return intent, nil
		}
	}
	return 0, fmt.Errorf("unknown intent: %s", name)
}
