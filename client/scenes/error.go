package scenes

import "github.com/DylM0nster22/Tetris/client/objects"

// ErrorScene shows a fatal message until the player returns to the menu.
type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

func NewErrorScene(msg string) (Scene, error) {
	overlay := objects.NewTextOverlayObject("overlay-error", msg, "Press Enter to return to the menu")
	return &ErrorScene{
		BaseScene: NewBaseScene(overlay),
	}, nil
}
