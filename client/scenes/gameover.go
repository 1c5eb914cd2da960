package scenes

import (
	"fmt"

	"github.com/DylM0nster22/Tetris/client/objects"
	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
)

type GameOverScene struct {
	*BaseScene
}

var _ Scene = &GameOverScene{}

// NewGameOverScene shows the final score of snapshot, which may be nil.
func NewGameOverScene(snapshot *gametypes.Snapshot) (Scene, error) {
	subtitle := "Press Enter to return to the menu"
	if snapshot != nil {
		subtitle = fmt.Sprintf("Score %d  Level %d  Lines %d", snapshot.Score, snapshot.Level, snapshot.Lines)
	}
	return &GameOverScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-gameover", "Game Over!", subtitle)),
	}, nil
}
