package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/DylM0nster22/Tetris/client/fonts"
	"github.com/DylM0nster22/Tetris/client/objects"
	"github.com/DylM0nster22/Tetris/client/ui"
	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onSolo       func() error
	onCreateRoom func() error
	onJoinRoom   func(roomID string) error
	highScore    int
	ui           *ebitenui.UI
	roomID       string
	errMsg       string
}

type MenuSceneOptions struct {
	// OnSolo is called when the solo button is pressed.
	OnSolo func() error
	// OnCreateRoom is called when the create room button is pressed.
	OnCreateRoom func() error
	// OnJoinRoom is called with the entered room code.
	OnJoinRoom func(roomID string) error
	// HighScore is shown under the title.
	HighScore int
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene:    NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onSolo:       opts.OnSolo,
		onCreateRoom: opts.OnCreateRoom,
		onJoinRoom:   opts.OnJoinRoom,
		highScore:    opts.HighScore,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}
	buttonPadding := widget.Insets{
		Left:   30,
		Right:  30,
		Top:    5,
		Bottom: 5,
	}
	rowData := widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
		Stretch:  true,
	})

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    60,
				Left:   160,
				Right:  160,
				Bottom: 60,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("TETRIS", fonts.TTFLargeFont, color.White),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(rowData),
	))
	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("High score %d", s.highScore), fonts.TTFSmallFont, color.NRGBA{R: 255, G: 200, B: 40, A: 255}),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(rowData),
	))

	soloButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(rowData),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Solo", fontFace, buttonTextColor),
		widget.ButtonOpts.TextPadding(buttonPadding),
	)
	rootContainer.AddChild(soloButton)

	createButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(rowData),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Create Room", fontFace, buttonTextColor),
		widget.ButtonOpts.TextPadding(buttonPadding),
	)
	rootContainer.AddChild(createButton)

	roomTextInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(rowData),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.NRGBA{254, 255, 255, 255},
			Disabled:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			Caret:         color.NRGBA{254, 255, 255, 255},
			DisabledCaret: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(fontFace, 2),
		),
		widget.TextInputOpts.Placeholder("Room code"),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			s.roomID = args.InputText
		}),
	)
	roomTextInput.SetText(s.roomID)
	rootContainer.AddChild(roomTextInput)

	joinButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(rowData),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Join Room", fontFace, buttonTextColor),
		widget.ButtonOpts.TextPadding(buttonPadding),
	)
	rootContainer.AddChild(joinButton)

	if s.errMsg != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.errMsg, fonts.TTFSmallFont, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
			widget.TextOpts.WidgetOpts(rowData),
		))
		s.errMsg = ""
	}

	soloButton.ClickedEvent.AddHandler(func(args interface{}) {
		s.handle("start solo game", s.onSolo)
	})
	createButton.ClickedEvent.AddHandler(func(args interface{}) {
		s.handle("create room", s.onCreateRoom)
	})
	joinHandler := func(args interface{}) {
		roomID := strings.ToLower(strings.TrimSpace(roomTextInput.GetText()))
		s.handle("join room", func() error {
			if roomID == "" {
				return ui.NewActionableError("Enter a room code to join.")
			}
			return s.onJoinRoom(roomID)
		})
	}
	roomTextInput.SubmitEvent.AddHandler(joinHandler)
	joinButton.ClickedEvent.AddHandler(joinHandler)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

// handle runs action and re-renders the menu with its error, if any.
func (s *MenuScene) handle(what string, action func() error) {
	err := action()
	if err == nil {
		return
	}
	log.Error("Failed to %s: %v", what, err)
	if actionableErr, ok := err.(*ui.ActionableError); ok {
		s.errMsg = actionableErr.Message
	} else {
		s.errMsg = fmt.Sprintf("Failed to %s. Please try again.", what)
	}
	s.renderUI()
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
