package messages

import (
	"encoding/json"
	"errors"
	"fmt"

	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
)

const (
	// MaxMessageSize is the largest frame the relay accepts
	MaxMessageSize = 16 * 1024
)

// Message types sent by clients
const (
	MessageTypeCreateRoom = "create_room"
	MessageTypeJoinRoom   = "join_room"
	MessageTypeGameUpdate = "game_update"
)

// Message types sent by the relay
const (
	MessageTypeRoomCreated    = "room_created"
	MessageTypeGameStart      = "game_start"
	MessageTypeOpponentUpdate = "opponent_update"
	MessageTypePlayerLeft     = "player_left"
	MessageTypeError          = "error"
)

// Notification texts sent by the relay
const (
	GameStartText  = "Player 2 joined! Game starting..."
	PlayerLeftText = "Opponent left the game"
	ServerFullText = "Server is full"
	RoomFullText   = "Room full or not found"
)

// Message is a relay frame. Only the fields relevant to Type are set.
type Message struct {
	Type      string          `json:"type"`
	RoomID    string          `json:"roomId,omitempty"`
	GameState json.RawMessage `json:"gameState,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// WirePiece is a piece as exchanged between clients.
type WirePiece struct {
	ID    int     `json:"id"`
	Shape [][]int `json:"shape"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
}

// GameState is the part of a session mirrored to the opponent.
type GameState struct {
	Board        [][]int    `json:"board"`
	CurrentPiece *WirePiece `json:"currentPiece"`
	Score        int        `json:"score"`
	NextPiece    *WirePiece `json:"nextPiece"`
}

// ErrMalformedGameState is returned for a game state that cannot be rendered.
var ErrMalformedGameState = errors.New("malformed game state")

func IsMalformedGameState(err error) bool {
	return errors.Is(err, ErrMalformedGameState)
}

// DecodeGameState parses and validates a game state payload.
func DecodeGameState(raw json.RawMessage) (*GameState, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedGameState)
	}
	gameState := &GameState{}
	if err := json.Unmarshal(raw, gameState); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGameState, err)
	}
	if err := gameState.Validate(); err != nil {
		return nil, err
	}
	return gameState, nil
}

// Validate checks that the board and pieces are rectangular and only hold known tags.
func (g *GameState) Validate() error {
	if err := validateMatrix(g.Board); err != nil {
		return fmt.Errorf("%w: board: %v", ErrMalformedGameState, err)
	}
	for name, piece := range map[string]*WirePiece{"currentPiece": g.CurrentPiece, "nextPiece": g.NextPiece} {
		if piece == nil {
			continue
		}
		if err := validateMatrix(piece.Shape); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedGameState, name, err)
		}
	}
	return nil
}

func validateMatrix(m [][]int) error {
	if len(m) == 0 {
		return fmt.Errorf("no rows")
	}
	width := len(m[0])
	if width == 0 {
		return fmt.Errorf("no columns")
	}
	for y, row := range m {
		if len(row) != width {
			return fmt.Errorf("row %d has %d columns, expected %d", y, len(row), width)
		}
		for _, cell := range row {
			if cell < 0 || cell > int(gametypes.TagMax) {
				return fmt.Errorf("unknown tag %d", cell)
			}
		}
	}
	return nil
}

// GameStateFromSnapshot converts a local snapshot into the mirrored game state.
func GameStateFromSnapshot(snapshot *gametypes.Snapshot) *GameState {
	return &GameState{
		Board:        matrixToWire(snapshot.Board),
		CurrentPiece: pieceToWire(snapshot.Active),
		Score:        snapshot.Score,
		NextPiece:    pieceToWire(snapshot.Next),
	}
}

// BoardMatrix converts the mirrored board back into board tags.
func (g *GameState) BoardMatrix() [][]gametypes.Tag {
	return matrixFromWire(g.Board)
}

// Piece converts a mirrored piece back into a piece.
func (p *WirePiece) Piece() gametypes.Piece {
	return gametypes.Piece{
		Kind:  gametypes.Kind(p.ID),
		Shape: gametypes.Shape(matrixFromWire(p.Shape)),
		X:     p.X,
		Y:     p.Y,
	}
}

func pieceToWire(piece *gametypes.Piece) *WirePiece {
	if piece == nil {
		return nil
	}
	return &WirePiece{
		ID:    int(piece.Kind),
		Shape: matrixToWire(piece.Shape),
		X:     piece.X,
		Y:     piece.Y,
	}
}

func matrixToWire(m [][]gametypes.Tag) [][]int {
	w := make([][]int, len(m))
	for y, row := range m {
		w[y] = make([]int, len(row))
		for x, cell := range row {
			w[y][x] = int(cell)
		}
	}
	return w
}

func matrixFromWire(w [][]int) [][]gametypes.Tag {
	m := make([][]gametypes.Tag, len(w))
	for y, row := range w {
		m[y] = make([]gametypes.Tag, len(row))
		for x, cell := range row {
			m[y][x] = gametypes.Tag(cell)
		}
	}
	return m
}

// NewErrorMessage builds an error notification.
func NewErrorMessage(text string) *Message {
	return &Message{
		Type:    MessageTypeError,
		Message: text,
	}
}

// relayedGameState keeps the relayed fields verbatim.
type relayedGameState struct {
	Board        json.RawMessage `json:"board,omitempty"`
	CurrentPiece json.RawMessage `json:"currentPiece,omitempty"`
	Score        json.RawMessage `json:"score,omitempty"`
	NextPiece    json.RawMessage `json:"nextPiece,omitempty"`
}

// RelayGameState strips a game_update payload down to the four relayed
// fields without interpreting them.
func RelayGameState(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("missing game state")
	}
	relayed := relayedGameState{}
	if err := json.Unmarshal(raw, &relayed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %v", err)
	}
	b, err := json.Marshal(relayed)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %v", err)
	}
	return b, nil
}
