package input

import (
	"github.com/DylM0nster22/Tetris/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// RepeatDelay is the number of ticks a key is held before it repeats.
	RepeatDelay = 12
	// RepeatInterval is the number of ticks between repeats.
	RepeatInterval = 3
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else {
			// The button 0 might not be the A button.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

type binding struct {
	keys   []ebiten.Key
	intent game.Intent
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyLeft}, intent: game.IntentMoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyRight}, intent: game.IntentMoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyDown}, intent: game.IntentSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeySpace}, intent: game.IntentHardDrop},
	{keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyX}, intent: game.IntentRotateCW},
	{keys: []ebiten.Key{ebiten.KeyZ}, intent: game.IntentRotateCCW},
	{keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyC}, intent: game.IntentHold},
	{keys: []ebiten.Key{ebiten.KeyP}, intent: game.IntentPause},
	{keys: []ebiten.Key{ebiten.KeyR}, intent: game.IntentRestart},
	{keys: []ebiten.Key{ebiten.KeyEnter}, intent: game.IntentStart},
}

// Intents returns the intents triggered by the keyboard during this tick,
// in binding order. Movement keys repeat while held.
func Intents() []game.Intent {
	var intents []game.Intent
	for _, b := range bindings {
		for _, key := range b.keys {
			if triggered(key, b.repeat) {
				intents = append(intents, b.intent)
				break
			}
		}
	}
	return intents
}

func triggered(key ebiten.Key, repeat bool) bool {
	if !repeat {
		return inpututil.IsKeyJustPressed(key)
	}
	return shouldRepeat(inpututil.KeyPressDuration(key))
}

// shouldRepeat reports whether a key held for duration ticks fires this tick.
func shouldRepeat(duration int) bool {
	if duration == 1 {
		return true
	}
	if duration < RepeatDelay {
		return false
	}
	return (duration-RepeatDelay)%RepeatInterval == 0
}
