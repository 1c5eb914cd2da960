package objects

import (
	"fmt"
	"image/color"

	"github.com/DylM0nster22/Tetris/client/fonts"
	"github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// StatsObject prints the score panel.
type StatsObject struct {
	*BaseObject

	x, y     int
	snapshot *types.Snapshot
}

func NewStatsObject(id string, x, y int) *StatsObject {
	return &StatsObject{
		BaseObject: NewBaseObject(id, nil),
		x:          x,
		y:          y,
	}
}

func (o *StatsObject) SetSnapshot(snapshot *types.Snapshot) {
	o.snapshot = snapshot
}

func (o *StatsObject) Draw(screen *ebiten.Image) {
	if o.snapshot == nil {
		return
	}
	lines := []string{
		fmt.Sprintf("Score %d", o.snapshot.Score),
		fmt.Sprintf("Best  %d", o.snapshot.HighScore),
		fmt.Sprintf("Level %d", o.snapshot.Level),
		fmt.Sprintf("Lines %d", o.snapshot.Lines),
	}
	if o.snapshot.Combo > 0 {
		lines = append(lines, fmt.Sprintf("Combo x%d", o.snapshot.Combo))
	}
	for i, line := range lines {
		text.Draw(screen, line, fonts.TTFSmallFont, o.x, o.y+i*22, color.White)
	}
}
