package scenes

import (
	"context"
	"fmt"
	"image/color"

	"github.com/DylM0nster22/Tetris/client/fonts"
	"github.com/DylM0nster22/Tetris/client/input"
	"github.com/DylM0nster22/Tetris/client/objects"
	clientnetwork "github.com/DylM0nster22/Tetris/pkg/client/network"
	"github.com/DylM0nster22/Tetris/pkg/events"
	"github.com/DylM0nster22/Tetris/pkg/game"
	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/messages"
	"github.com/DylM0nster22/Tetris/pkg/queue"
	"github.com/DylM0nster22/Tetris/pkg/state"
	"github.com/DylM0nster22/Tetris/pkg/workers"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	// CellSize is the size of a cell of the local board in pixels.
	CellSize = 20
	// OpponentCellSize is the size of a cell of the opponent board in pixels.
	OpponentCellSize = 10

	boardX    = 40
	boardY    = 40
	sidebarX  = 270
	opponentX = 480
	opponentY = 60

	// BannerTTL is how long a line clear banner stays on screen in milliseconds.
	BannerTTL = 1200
)

var lineClearBanners = map[int]string{
	1: "Single",
	2: "Double",
	3: "Triple",
}

type GameScene struct {
	*BaseScene

	gameManager    *game.GameManager
	stateManager   *state.InMemoryStateManager
	intentQueue    *queue.InMemoryQueue
	eventQueue     *queue.InMemoryQueue
	relay          *clientnetwork.WSClient
	relayQueue     queue.Queue
	snapshotWorker *workers.SnapshotWorker
	onGameOver     func(snapshot *gametypes.Snapshot)

	cancel context.CancelFunc

	board         *objects.BoardObject
	opponentBoard *objects.BoardObject
	next          *objects.PiecePreviewObject
	hold          *objects.PiecePreviewObject
	stats         *objects.StatsObject
	overlay       *objects.TextOverlayObject

	snapshot         *gametypes.Snapshot
	lastVersion      uint64
	gameOverHandled  bool
	roomID           string
	matched          bool
	opponentScore    int
	hasOpponentState bool
	statusText       string
}

type NewGameSceneOptions struct {
	SessionOptions game.SessionOptions
	// Relay is the connection to the relay server. Nil for a solo game.
	Relay *clientnetwork.WSClient
	// RelayQueue receives the *messages.Message values read by Relay.
	RelayQueue queue.Queue
	// RoomID is the room being joined, if known.
	RoomID string
	// OnGameOver is called once each time the session reaches game over.
	OnGameOver func(snapshot *gametypes.Snapshot)
}

var _ Scene = &GameScene{}

func NewGameScene(opts NewGameSceneOptions) (*GameScene, error) {
	if opts.Relay != nil && opts.RelayQueue == nil {
		return nil, fmt.Errorf("relay queue is required with a relay")
	}

	stateManager := state.NewInMemoryStateManager()
	intentQueue := queue.NewInMemoryQueue(256)
	eventQueue := queue.NewInMemoryQueue(256)

	eventManager := events.NewManager[game.Event]()
	eventManager.RegisterHandler(func(event game.Event) {
		if err := eventQueue.Enqueue(event); err != nil {
			log.Warn("Failed to enqueue session event %s: %v", event.Type, err)
		}
	})

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Session:      game.NewSession(opts.SessionOptions),
		IntentQueue:  intentQueue,
		StateManager: stateManager,
		EventManager: eventManager,
	})

	rows, cols := opts.SessionOptions.Rows, opts.SessionOptions.Cols
	s := &GameScene{
		BaseScene:    NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		gameManager:  gameManager,
		stateManager: stateManager,
		intentQueue:  intentQueue,
		eventQueue:   eventQueue,
		relay:        opts.Relay,
		relayQueue:   opts.RelayQueue,
		onGameOver:   opts.OnGameOver,
		roomID:       opts.RoomID,
		board: objects.NewBoardObject("board", objects.NewBoardObjectOptions{
			X:        boardX,
			Y:        boardY,
			CellSize: CellSize,
			Rows:     rows,
			Cols:     cols,
		}),
		next:    objects.NewPiecePreviewObject("next", "Next", sidebarX, boardY+20, CellSize),
		hold:    objects.NewPiecePreviewObject("hold", "Hold", sidebarX, boardY+140, CellSize),
		stats:   objects.NewStatsObject("stats", sidebarX, boardY+260),
		overlay: objects.NewTextOverlayObject("overlay", "", ""),
	}

	children := []objects.GameObject{s.board, s.next, s.hold, s.stats, s.overlay}
	if s.relay != nil {
		s.opponentBoard = objects.NewBoardObject("opponent-board", objects.NewBoardObjectOptions{
			X:        opponentX,
			Y:        opponentY,
			CellSize: OpponentCellSize,
			Rows:     rows,
			Cols:     cols,
		})
		children = append(children, s.opponentBoard)
		s.snapshotWorker = workers.NewSnapshotWorker(workers.NewSnapshotWorkerOptions{
			StateManager: stateManager,
			Sender:       s.relay,
		})
	}
	for _, child := range children {
		if err := s.GetRoot().AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}

	return s, nil
}

func (s *GameScene) Init() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		if err := s.gameManager.Start(ctx); err != nil {
			log.Error("Game manager stopped: %v", err)
		}
	}()
	if s.snapshotWorker != nil {
		go s.snapshotWorker.Start(ctx)
	}

	return s.BaseScene.Init()
}

func (s *GameScene) Destroy() error {
	if s.cancel != nil {
		s.cancel()
	}
	return s.BaseScene.Destroy()
}

// Snapshot returns the latest snapshot drawn by the scene, or nil.
func (s *GameScene) Snapshot() *gametypes.Snapshot {
	return s.snapshot
}

func (s *GameScene) Update() error {
	s.handleInput()

	if s.relay != nil {
		if err := s.processRelayMessages(); err != nil {
			return fmt.Errorf("failed to process relay messages: %v", err)
		}
	}

	if err := s.processSessionEvents(); err != nil {
		return fmt.Errorf("failed to process session events: %v", err)
	}

	if err := s.refreshSnapshot(); err != nil {
		return fmt.Errorf("failed to refresh snapshot: %v", err)
	}

	return s.BaseScene.Update()
}

func (s *GameScene) handleInput() {
	for _, intent := range input.Intents() {
		// multiplayer games start when the relay pairs both players
		if intent == game.IntentStart && s.relay != nil && !s.matched {
			continue
		}
		if err := s.intentQueue.Enqueue(intent); err != nil {
			log.Warn("Failed to enqueue intent %s: %v", intent, err)
		}
	}
}

func (s *GameScene) processRelayMessages() error {
	pending, err := s.relayQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read relay messages: %v", err)
	}

	for _, item := range pending {
		message, ok := item.(*messages.Message)
		if !ok {
			log.Error("Unhandled relay message type: %T", item)
			continue
		}

		switch message.Type {
		case messages.MessageTypeRoomCreated:
			s.roomID = message.RoomID
			s.statusText = ""
		case messages.MessageTypeGameStart:
			s.matched = true
			s.statusText = ""
			s.addBanner(message.Message, color.NRGBA{R: 0, G: 240, B: 0, A: 255})
			if err := s.intentQueue.Enqueue(game.IntentStart); err != nil {
				log.Error("Failed to enqueue start intent: %v", err)
			}
		case messages.MessageTypeOpponentUpdate:
			s.handleOpponentUpdate(message)
		case messages.MessageTypePlayerLeft:
			s.matched = false
			s.hasOpponentState = false
			s.opponentBoard.Clear()
			s.addBanner(message.Message, color.NRGBA{R: 240, G: 160, B: 0, A: 255})
		case messages.MessageTypeError:
			s.statusText = message.Message
		default:
			log.Warn("Received unexpected message type from relay: %s", message.Type)
		}
	}

	return nil
}

// handleOpponentUpdate mirrors the opponent board. Malformed states are dropped.
func (s *GameScene) handleOpponentUpdate(message *messages.Message) {
	gameState, err := messages.DecodeGameState(message.GameState)
	if err != nil {
		log.Warn("Dropping opponent update: %v", err)
		return
	}

	var active *gametypes.Piece
	if gameState.CurrentPiece != nil {
		piece := gameState.CurrentPiece.Piece()
		active = &piece
	}
	s.opponentBoard.SetState(gameState.BoardMatrix(), active, nil)
	s.opponentScore = gameState.Score
	s.hasOpponentState = true
}

func (s *GameScene) processSessionEvents() error {
	pending, err := s.eventQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read session events: %v", err)
	}

	for _, item := range pending {
		event, ok := item.(game.Event)
		if !ok {
			log.Error("Unhandled session event type: %T", item)
			continue
		}

		switch event.Type {
		case game.EventLinesCleared:
			if banner, ok := lineClearBanners[event.Count]; ok {
				s.addBanner(banner, color.White)
			}
		case game.EventQuad:
			s.addBanner("Quad!", color.NRGBA{R: 255, G: 200, B: 40, A: 255})
		}
	}

	return nil
}

func (s *GameScene) addBanner(msg string, clr color.Color) {
	if msg == "" {
		return
	}
	banner := objects.NewTextEffect(fmt.Sprintf("banner-%s", uuid.NewString()), objects.NewTextEffectOptions{
		Text:   msg,
		X:      float64(boardX + s.board.Width()/2),
		Y:      float64(boardY + s.board.Height()/2),
		Color:  clr,
		Scroll: true,
		TTL:    BannerTTL,
		ZIndex: 50,
	})
	if err := s.GetRoot().AddChild(banner.GetID(), banner); err != nil {
		log.Error("Failed to add banner: %v", err)
	}
}

// refreshSnapshot copies the latest snapshot into the scene objects.
func (s *GameScene) refreshSnapshot() error {
	version := s.stateManager.Version()
	if version == 0 || version == s.lastVersion {
		return nil
	}

	snapshot, err := s.stateManager.Get(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get snapshot: %v", err)
	}
	s.snapshot = snapshot
	s.lastVersion = version

	s.board.SetState(snapshot.Board, snapshot.Active, snapshot.Shadow)
	s.next.SetPiece(snapshot.Next, false)
	s.hold.SetPiece(snapshot.Hold, !snapshot.CanHold)
	s.stats.SetSnapshot(snapshot)
	s.updateOverlay(snapshot)

	gameOver := snapshot.State == game.StateGameOver.String()
	if gameOver && !s.gameOverHandled && s.onGameOver != nil {
		s.onGameOver(snapshot)
	}
	s.gameOverHandled = gameOver

	return nil
}

func (s *GameScene) updateOverlay(snapshot *gametypes.Snapshot) {
	switch snapshot.State {
	case game.StateReady.String():
		if s.relay != nil && !s.matched {
			s.overlay.SetText("Waiting", "Waiting for an opponent to join")
			return
		}
		s.overlay.SetText("Ready", "Press Enter to start")
	case game.StatePaused.String():
		s.overlay.SetText("Paused", "Press P to resume")
	case game.StateGameOver.String():
		s.overlay.SetText("Game Over", fmt.Sprintf("Score %d. Press R to restart or Esc to quit", snapshot.Score))
	default:
		s.overlay.SetText("", "")
	}
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)

	if s.relay != nil {
		s.drawRelayStatus(screen)
	}
	if s.statusText != "" {
		text.Draw(screen, s.statusText, fonts.TTFSmallFont, boardX, boardY+int(s.board.Height())+28, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	}
}

func (s *GameScene) drawRelayStatus(screen *ebiten.Image) {
	if s.roomID != "" {
		text.Draw(screen, fmt.Sprintf("Room %s", s.roomID), fonts.TTFSmallFont, opponentX, opponentY-30, color.White)
	}
	opponent := "Opponent"
	if s.hasOpponentState {
		opponent = fmt.Sprintf("Opponent %d", s.opponentScore)
	}
	text.Draw(screen, opponent, fonts.TTFSmallFont, opponentX, opponentY-8, color.White)
}
