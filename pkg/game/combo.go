package game

import (
	"fmt"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/game/constants"
)

// ComboPolicy decides how the combo counter evolves from one lock to the next.
type ComboPolicy interface {
	// Register records a lock that removed cleared rows at play time at
	// and returns the new combo counter.
	Register(cleared int, at time.Duration) int
	// Reset forgets all history.
	Reset()
}

// ConsecutiveCombo increments on a clearing lock that directly follows
// another clearing lock and drops to zero on any lock that clears nothing.
type ConsecutiveCombo struct {
	combo       int
	lastCleared bool
}

var _ ComboPolicy = &ConsecutiveCombo{}

func (c *ConsecutiveCombo) Register(cleared int, _ time.Duration) int {
	if cleared == 0 {
		c.combo = 0
		c.lastCleared = false
		return 0
	}
	if c.lastCleared {
		c.combo++
	}
	c.lastCleared = true
	return c.combo
}

func (c *ConsecutiveCombo) Reset() {
	c.combo = 0
	c.lastCleared = false
}

// TimedCombo increments when a clear lands within Window of the previous
// clear. Locks that clear nothing do not affect it.
type TimedCombo struct {
	Window time.Duration

	combo     int
	hasClear  bool
	lastClear time.Duration
}

var _ ComboPolicy = &TimedCombo{}

// NewTimedCombo creates a TimedCombo. A non-positive window selects the default.
func NewTimedCombo(window time.Duration) *TimedCombo {
	if window <= 0 {
		window = constants.TimedComboWindow
	}
	return &TimedCombo{Window: window}
}

func (c *TimedCombo) Register(cleared int, at time.Duration) int {
	if cleared == 0 {
		return c.combo
	}
	if c.hasClear && at-c.lastClear <= c.Window {
		c.combo++
	} else {
		c.combo = 0
	}
	c.hasClear = true
	c.lastClear = at
	return c.combo
}

func (c *TimedCombo) Reset() {
	c.combo = 0
	c.hasClear = false
	c.lastClear = 0
}

// NewComboPolicy builds a policy by name: "consecutive" or "timed".
func NewComboPolicy(name string, window time.Duration) (ComboPolicy, error) {
	switch name {
	case "", "consecutive":
		return &ConsecutiveCombo{}, nil
	case "timed":
		return NewTimedCombo(window), nil
	default:
		return nil, fmt.Errorf("unknown combo policy: %s", name)
	}
}
