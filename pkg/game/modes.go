package game

import (
	"fmt"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/game/constants"
)

// Mode customizes a session. Hooks run synchronously inside the session and
// may end the game with Session.End.
type Mode interface {
	Name() string
	// OnLinesCleared is called after every lock that removed at least one row.
	OnLinesCleared(count int, s *Session)
	// OnTick is called on every tick while the session is running.
	OnTick(s *Session)
}

// MarathonMode plays until the stack tops out.
type MarathonMode struct{}

func (MarathonMode) Name() string                     { return "marathon" }
func (MarathonMode) OnLinesCleared(_ int, _ *Session) {}
func (MarathonMode) OnTick(_ *Session)                {}

// SprintMode ends the game once TargetLines rows have been cleared.
type SprintMode struct {
	TargetLines int
}

func (m SprintMode) Name() string { return "sprint" }

func (m SprintMode) OnLinesCleared(_ int, s *Session) {
	if s.Lines() >= m.TargetLines {
		s.End()
	}
}

func (m SprintMode) OnTick(_ *Session) {}

// UltraMode ends the game after Limit of running play.
type UltraMode struct {
	Limit time.Duration
}

func (m UltraMode) Name() string { return "ultra" }

func (m UltraMode) OnLinesCleared(_ int, _ *Session) {}

func (m UltraMode) OnTick(s *Session) {
	if s.Played() >= m.Limit {
		s.End()
	}
}

// NewMode builds a mode by name. Zero values select the defaults.
func NewMode(name string, targetLines int, limit time.Duration) (Mode, error) {
	switch name {
	case "", "marathon":
		return MarathonMode{}, nil
	case "sprint":
		if targetLines <= 0 {
			targetLines = constants.SprintTargetLines
		}
		return SprintMode{TargetLines: targetLines}, nil
	case "ultra":
		if limit <= 0 {
			limit = constants.UltraTimeLimit
		}
		return UltraMode{Limit: limit}, nil
	default:
		return nil, fmt.Errorf("unknown mode: %s", name)
	}
}
