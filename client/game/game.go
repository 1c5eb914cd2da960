package game

import (
	"context"
	"fmt"
	"time"

	"github.com/DylM0nster22/Tetris/client/input"
	"github.com/DylM0nster22/Tetris/client/scenes"
	"github.com/DylM0nster22/Tetris/client/ui"
	clientnetwork "github.com/DylM0nster22/Tetris/pkg/client/network"
	"github.com/DylM0nster22/Tetris/pkg/config"
	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/queue"
	"github.com/DylM0nster22/Tetris/pkg/repositories"
	"github.com/DylM0nster22/Tetris/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// ConnectTimeout bounds dialing the relay.
	ConnectTimeout = 5 * time.Second
	// StorageTimeout bounds reading the high score.
	StorageTimeout = 2 * time.Second
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// config holds the session settings.
	config *config.Config
	// serverURL is the websocket URL of the relay server.
	serverURL string
	// playerName is stored with saved scores.
	playerName string
	// repository is optional and only read for the high score.
	repository repositories.Repository
	// saveScoreChan receives finished games. Optional.
	saveScoreChan chan<- workers.SaveScoreRequest
	// highScore is the best score known to this client.
	highScore int

	relay        *clientnetwork.WSClient
	relayCancel  context.CancelFunc
	relayErrChan chan error

	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeOver
	GameModeNetworkError
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	case GameModeNetworkError:
		return "Network Error"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug      bool
	Config     *config.Config
	ServerURL  string
	PlayerName string
	Repository repositories.Repository
	// SaveScoreChan is usually read by a workers.SaveScoreWorker.
	SaveScoreChan chan<- workers.SaveScoreRequest
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.ServerURL == "" {
		opts.ServerURL = clientnetwork.DefaultServerURL
	}

	g := &Game{
		debug:         opts.Debug,
		config:        opts.Config,
		serverURL:     opts.ServerURL,
		playerName:    opts.PlayerName,
		repository:    opts.Repository,
		saveScoreChan: opts.SaveScoreChan,
	}
	g.refreshHighScore()

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

// refreshHighScore keeps the larger of the stored and the known high score.
func (g *Game) refreshHighScore() {
	if g.repository == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), StorageTimeout)
	defer cancel()
	highScore, err := g.repository.HighScore(ctx)
	if err != nil {
		log.Warn("Failed to read high score: %v", err)
		return
	}
	g.highScore = max(g.highScore, highScore)
}

func (g *Game) loadMenu() error {
	g.stopRelay()
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnSolo:       g.startSolo,
		OnCreateRoom: g.createRoom,
		OnJoinRoom:   g.joinRoom,
		HighScore:    g.highScore,
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

func (g *Game) startSolo() error {
	return g.loadGame(nil, nil, "")
}

func (g *Game) createRoom() error {
	relayQueue, err := g.startRelay()
	if err != nil {
		return err
	}
	if err := g.relay.CreateRoom(context.Background()); err != nil {
		g.stopRelay()
		return fmt.Errorf("failed to create room: %v", err)
	}
	return g.loadGame(g.relay, relayQueue, "")
}

func (g *Game) joinRoom(roomID string) error {
	relayQueue, err := g.startRelay()
	if err != nil {
		return err
	}
	if err := g.relay.JoinRoom(context.Background(), roomID); err != nil {
		g.stopRelay()
		return fmt.Errorf("failed to join room: %v", err)
	}
	return g.loadGame(g.relay, relayQueue, roomID)
}

// startRelay connects to the relay and starts reading its messages.
func (g *Game) startRelay() (queue.Queue, error) {
	g.stopRelay()

	relayQueue := queue.NewInMemoryQueue(1024)
	relay := clientnetwork.NewWSClient(g.serverURL, relayQueue)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), ConnectTimeout)
	defer cancelConnect()
	if err := relay.Connect(connectCtx); err != nil {
		log.Error("Failed to connect to relay: %v", err)
		return nil, ui.NewActionableError("Could not reach the server at %s.", g.serverURL)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		if err := relay.HandleMessages(ctx); err != nil {
			errChan <- err
		}
	}()

	g.relay = relay
	g.relayCancel = cancel
	g.relayErrChan = errChan
	return relayQueue, nil
}

func (g *Game) stopRelay() {
	if g.relay == nil {
		return
	}
	g.relayCancel()
	if err := g.relay.Close(); err != nil {
		log.Warn("Failed to close relay connection: %v", err)
	}
	g.relay = nil
	g.relayCancel = nil
	g.relayErrChan = nil
}

func (g *Game) loadGame(relay *clientnetwork.WSClient, relayQueue queue.Queue, roomID string) error {
	g.refreshHighScore()
	sessionOptions, err := g.config.SessionOptions(g.highScore)
	if err != nil {
		return fmt.Errorf("failed to build session options: %v", err)
	}

	gameScene, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		SessionOptions: sessionOptions,
		Relay:          relay,
		RelayQueue:     relayQueue,
		RoomID:         roomID,
		OnGameOver:     g.saveScore,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

// saveScore hands a finished game to the save worker without blocking the frame.
func (g *Game) saveScore(snapshot *gametypes.Snapshot) {
	g.highScore = max(g.highScore, snapshot.Score)
	if g.saveScoreChan == nil {
		return
	}
	select {
	case g.saveScoreChan <- workers.SaveScoreRequest{Name: g.playerName, Snapshot: snapshot}:
	default:
		log.Warn("Dropping score %d: save queue is full", snapshot.Score)
	}
}

func (g *Game) loadGameOver() error {
	var snapshot *gametypes.Snapshot
	if gameScene, ok := g.scene.(*scenes.GameScene); ok {
		snapshot = gameScene.Snapshot()
	}
	g.stopRelay()
	gameOver, err := scenes.NewGameOverScene(snapshot)
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.mode = GameModeOver
	return nil
}

func (g *Game) loadNetworkError() error {
	g.stopRelay()
	networkError, err := scenes.NewErrorScene("Network Error")
	if err != nil {
		return fmt.Errorf("failed to create network error scene: %v", err)
	}
	if err := g.SetScene(networkError); err != nil {
		return fmt.Errorf("failed to set network error scene: %v", err)
	}
	g.mode = GameModeNetworkError
	return nil
}

func (g *Game) Update() error {
	if err := g.checkRelayErrors(); err != nil {
		log.Error("Relay error: %v", err)
		if err := g.loadNetworkError(); err != nil {
			return fmt.Errorf("failed to load network error scene: %v", err)
		}
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

// checkRelayErrors returns the error that stopped the relay reader, if any.
func (g *Game) checkRelayErrors() error {
	if g.relayErrChan == nil {
		return nil
	}
	select {
	case err := <-g.relayErrChan:
		return err
	default:
		return nil
	}
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			if err := g.loadGameOver(); err != nil {
				return fmt.Errorf("failed to load game over scene: %v", err)
			}
		}
	case GameModeOver, GameModeNetworkError:
		if input.IsPositiveJustPressed() || input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if g.relay == nil || !g.relay.IsConnected() {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Relay: %s", g.serverURL))
}

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
