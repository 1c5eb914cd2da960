package game

import (
	"time"

	"github.com/DylM0nster22/Tetris/pkg/game/constants"
	"github.com/DylM0nster22/Tetris/pkg/game/types"
)

// Session is one independent game: board, pieces, score and lifecycle.
// A Session is not safe for concurrent use; GameManager serializes access.
type Session struct {
	board     *types.Board
	active    *types.Piece
	next      types.Piece
	hold      *types.Piece
	canHold   bool
	scorer    *Scorer
	state     State
	generator Generator
	mode      Mode
	spawnX    int
	spawnY    int

	// gravity is the running time accrued since the last gravity step
	gravity time.Duration
	// played is the total running time of the current game
	played   time.Duration
	lastTick time.Time

	events []Event
}

// SessionOptions configures a Session. Start from DefaultSessionOptions.
type SessionOptions struct {
	Rows        int
	Cols        int
	SpawnX      int
	SpawnY      int
	Generator   Generator
	Mode        Mode
	ComboPolicy ComboPolicy
	// HighScore is the best score known to the caller, typically loaded from storage.
	HighScore int
}

// DefaultSessionOptions returns options for the canonical 20×10 board.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		Rows:   constants.BoardRows,
		Cols:   constants.BoardCols,
		SpawnX: constants.SpawnX,
		SpawnY: constants.SpawnY,
	}
}

// NewSession creates a session in the Ready state.
func NewSession(opts SessionOptions) *Session {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		opts.Rows = constants.BoardRows
		opts.Cols = constants.BoardCols
	}
	if opts.Generator == nil {
		opts.Generator = NewUniformGenerator(time.Now().UnixNano())
	}
	if opts.Mode == nil {
		opts.Mode = MarathonMode{}
	}

	s := &Session{
		board:     types.NewBoard(opts.Rows, opts.Cols),
		scorer:    NewScorer(opts.ComboPolicy, opts.HighScore),
		generator: opts.Generator,
		mode:      opts.Mode,
		spawnX:    opts.SpawnX,
		spawnY:    opts.SpawnY,
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.board.Reset()
	s.scorer.Reset()
	s.hold = nil
	s.canHold = true
	s.gravity = 0
	s.played = 0
	s.lastTick = time.Time{}
	active := s.spawn(s.generator.Next())
	s.active = &active
	s.next = s.generator.Next()
	s.state = StateReady
}

func (s *Session) spawn(piece types.Piece) types.Piece {
	return piece.At(s.spawnX, s.spawnY)
}

func (s *Session) emit(event Event) {
	s.events = append(s.events, event)
}

func (s *Session) setState(state State) {
	s.state = state
	s.emit(Event{Type: EventStateChanged, State: state})
}

// DrainEvents returns the events emitted since the last call and forgets them.
func (s *Session) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Board() *types.Board {
	return s.board
}

// Active returns a copy of the falling piece, if any.
func (s *Session) Active() (types.Piece, bool) {
	if s.active == nil {
		return types.Piece{}, false
	}
	return s.active.Clone(), true
}

func (s *Session) Score() int {
	return s.scorer.Score()
}

func (s *Session) Level() int {
	return s.scorer.Level()
}

func (s *Session) Lines() int {
	return s.scorer.Lines()
}

// Played is the running time of the current game, excluding pauses.
func (s *Session) Played() time.Duration {
	return s.played
}

func (s *Session) CanHold() bool {
	return s.canHold
}

// Start begins a game from Ready.
func (s *Session) Start() bool {
	if s.state != StateReady {
		return false
	}
	s.lastTick = time.Time{}
	s.setState(StateRunning)
	return true
}

// Pause suspends a running game.
func (s *Session) Pause() bool {
	if s.state != StateRunning {
		return false
	}
	s.setState(StatePaused)
	return true
}

// Resume continues a paused game. Time spent paused never counts toward gravity.
func (s *Session) Resume() bool {
	if s.state != StatePaused {
		return false
	}
	s.lastTick = time.Time{}
	s.setState(StateRunning)
	return true
}

// Restart abandons the current game and returns to Ready with an empty board.
func (s *Session) Restart() bool {
	s.reset()
	s.emit(Event{Type: EventStateChanged, State: StateReady})
	return true
}

// End finishes a running game, as when a mode reaches its goal.
func (s *Session) End() bool {
	if s.state != StateRunning {
		return false
	}
	s.gameOver()
	return true
}

func (s *Session) gameOver() {
	s.setState(StateGameOver)
	s.emit(Event{Type: EventGameOver, Score: s.scorer.Score()})
}

// Tick advances gravity to now. Only time spent Running accrues.
func (s *Session) Tick(now time.Time) {
	if s.state != StateRunning {
		return
	}
	if s.lastTick.IsZero() {
		s.lastTick = now
		return
	}

	elapsed := now.Sub(s.lastTick)
	s.lastTick = now
	if elapsed <= 0 {
		return
	}
	s.played += elapsed
	s.gravity += elapsed

	s.mode.OnTick(s)
	if s.state != StateRunning {
		return
	}

	if s.gravity > DropInterval(s.Level()) {
		s.gravity = 0
		if !s.Move(0, 1) {
			s.lock()
		}
	}
}

// Move translates the active piece if the destination is legal.
// It reports whether the placement was legal.
func (s *Session) Move(dx, dy int) bool {
	if s.state != StateRunning || s.active == nil {
		return false
	}
	if !types.IsValidPlacement(s.board, *s.active, dx, dy) {
		return false
	}
	moved := s.active.Moved(dx, dy)
	s.active = &moved
	return true
}

// RotateCW rotates the active piece clockwise around its origin, without kicks.
func (s *Session) RotateCW() bool {
	if s.active == nil {
		return false
	}
	return s.rotate(s.active.Shape.RotateCW())
}

// RotateCCW rotates the active piece counter-clockwise around its origin, without kicks.
func (s *Session) RotateCCW() bool {
	if s.active == nil {
		return false
	}
	return s.rotate(s.active.Shape.RotateCCW())
}

func (s *Session) rotate(shape types.Shape) bool {
	if s.state != StateRunning {
		return false
	}
	candidate := s.active.WithShape(shape)
	if !types.IsValidPlacement(s.board, candidate, 0, 0) {
		return false
	}
	s.active = &candidate
	return true
}

// SoftDrop moves the active piece one row down. It never locks.
func (s *Session) SoftDrop() bool {
	return s.Move(0, 1)
}

// HardDrop drops the active piece as far as it goes and locks it.
func (s *Session) HardDrop() bool {
	if s.state != StateRunning || s.active == nil {
		return false
	}
	for s.Move(0, 1) {
	}
	s.lock()
	return true
}

// Hold swaps the active piece with the hold slot, or parks it there and
// promotes the next piece. It is allowed once per locked piece.
func (s *Session) Hold() bool {
	if s.state != StateRunning || s.active == nil || !s.canHold {
		return false
	}

	var incoming types.Piece
	if s.hold != nil {
		incoming = s.spawn(*s.hold)
	} else {
		incoming = s.spawn(s.next)
	}
	if !types.IsValidPlacement(s.board, incoming, 0, 0) {
		return false
	}

	if s.hold == nil {
		s.next = s.generator.Next()
	}
	held := *s.active
	s.hold = &held
	s.active = &incoming
	s.canHold = false
	return true
}

// ShadowPiece is where the active piece would land on a hard drop.
func (s *Session) ShadowPiece() (types.Piece, bool) {
	if s.active == nil {
		return types.Piece{}, false
	}
	return HardDropTarget(s.board, *s.active), true
}

// HardDropTarget returns the piece moved down until the next row is blocked.
func HardDropTarget(board *types.Board, piece types.Piece) types.Piece {
	for types.IsValidPlacement(board, piece, 0, 1) {
		piece = piece.Moved(0, 1)
	}
	return piece
}

// lock writes the active piece into the board, clears rows, scores and
// spawns the next piece.
func (s *Session) lock() {
	for _, cell := range s.active.Cells() {
		// cells above the board are lost
		_ = s.board.SetCell(cell.X, cell.Y, cell.Tag)
	}
	s.active = nil
	s.emit(Event{Type: EventPieceLocked})

	rows := DetectCompletedRows(s.board)
	cleared := ApplyClear(s.board, rows)
	delta := s.scorer.Apply(cleared, s.played)

	if cleared > 0 {
		s.emit(Event{Type: EventLinesCleared, Count: cleared, Rows: rows})
		if delta.Quad {
			s.emit(Event{Type: EventQuad})
		}
	}
	if delta.Points() > 0 {
		s.emit(Event{Type: EventScore, Score: s.scorer.Score()})
	}
	if cleared > 0 {
		s.mode.OnLinesCleared(cleared, s)
		if s.state != StateRunning {
			return
		}
	}

	candidate := s.spawn(s.next)
	s.next = s.generator.Next()
	s.canHold = true
	if !types.IsValidPlacement(s.board, candidate, 0, 0) {
		s.gameOver()
		return
	}
	s.active = &candidate
}

// Apply dispatches an intent and reports whether it changed anything.
func (s *Session) Apply(intent Intent) bool {
	switch intent {
	case IntentMoveLeft:
		return s.Move(-1, 0)
	case IntentMoveRight:
		return s.Move(1, 0)
	case IntentSoftDrop:
		return s.SoftDrop()
	case IntentHardDrop:
		return s.HardDrop()
	case IntentRotateCW:
		return s.RotateCW()
	case IntentRotateCCW:
		return s.RotateCCW()
	case IntentHold:
		return s.Hold()
	case IntentPause:
		if s.state == StatePaused {
			return s.Resume()
		}
		return s.Pause()
	case IntentRestart:
		return s.Restart()
	case IntentStart:
		return s.Start()
	default:
		return false
	}
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() types.Snapshot {
	snapshot := types.Snapshot{
		Board:     s.board.Matrix(),
		Score:     s.scorer.Score(),
		HighScore: s.scorer.HighScore(),
		Level:     s.scorer.Level(),
		Combo:     s.scorer.Combo(),
		Lines:     s.scorer.Lines(),
		CanHold:   s.canHold,
		State:     s.state.String(),
		Mode:      s.mode.Name(),
	}
	if s.active != nil {
		active := s.active.Clone()
		shadow := HardDropTarget(s.board, active).Clone()
		snapshot.Active = &active
		snapshot.Shadow = &shadow
	}
	next := s.spawn(s.next).Clone()
	snapshot.Next = &next
	if s.hold != nil {
		hold := s.hold.Clone()
		snapshot.Hold = &hold
	}
	return snapshot
}
