package game

import (
	"testing"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceGenerator deals the given kinds in order, forever.
type sequenceGenerator struct {
	kinds []types.Kind
	i     int
}

func (g *sequenceGenerator) Next() types.Piece {
	kind := g.kinds[g.i%len(g.kinds)]
	g.i++
	return types.NewPiece(kind, 0, 0)
}

func newTestSession(t *testing.T, kinds ...types.Kind) *Session {
	t.Helper()
	opts := DefaultSessionOptions()
	opts.Generator = &sequenceGenerator{kinds: kinds}
	s := NewSession(opts)
	require.True(t, s.Start())
	s.DrainEvents()
	return s
}

// fillRows fills rows from..to (inclusive) except for the gap column.
func fillRows(t *testing.T, b *types.Board, from, to, gap int) {
	t.Helper()
	for y := from; y <= to; y++ {
		for x := 0; x < b.Cols(); x++ {
			if x == gap {
				continue
			}
			require.NoError(t, b.SetCell(x, y, 6))
		}
	}
}

func eventTypes(events []Event) []EventType {
	result := make([]EventType, 0, len(events))
	for _, event := range events {
		result = append(result, event.Type)
	}
	return result
}

func TestNewSession_ready(t *testing.T) {
	opts := DefaultSessionOptions()
	opts.Generator = &sequenceGenerator{kinds: []types.Kind{types.KindT, types.KindI}}
	s := NewSession(opts)

	assert.Equal(t, StateReady, s.State())
	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, types.NewPiece(types.KindT, 3, 0), active)
	assert.True(t, types.IsValidPlacement(s.Board(), active, 0, 0))

	assert.False(t, s.Move(1, 0), "no movement before start")
	assert.False(t, s.Hold())
}

func TestSession_spawnIsValidOnEmptyBoard(t *testing.T) {
	for _, kind := range types.Kinds() {
		s := newTestSession(t, kind)
		active, ok := s.Active()
		require.True(t, ok)
		assert.True(t, types.IsValidPlacement(s.Board(), active, 0, 0), kind.String())
	}
}

func TestSession_Move(t *testing.T) {
	s := newTestSession(t, types.KindO)

	assert.True(t, s.Move(0, 0))
	active, _ := s.Active()
	assert.Equal(t, 3, active.X)
	assert.Equal(t, 0, active.Y)

	for i := 0; i < 3; i++ {
		assert.True(t, s.Move(-1, 0))
	}
	assert.False(t, s.Move(-1, 0), "left wall")
	active, _ = s.Active()
	assert.Equal(t, 0, active.X)

	for i := 0; i < 8; i++ {
		s.Move(1, 0)
	}
	active, _ = s.Active()
	assert.Equal(t, 8, active.X, "O is two wide")
}

func TestSession_Rotate(t *testing.T) {
	s := newTestSession(t, types.KindT)

	require.True(t, s.Move(0, 5))
	for i := 0; i < 4; i++ {
		require.True(t, s.RotateCW())
	}
	active, _ := s.Active()
	assert.Equal(t, types.ShapeOf(types.KindT), active.Shape)

	require.True(t, s.RotateCW())
	require.True(t, s.RotateCCW())
	active, _ = s.Active()
	assert.Equal(t, types.ShapeOf(types.KindT), active.Shape)
}

func TestSession_RotateRejectedAtWall(t *testing.T) {
	s := newTestSession(t, types.KindI)

	require.True(t, s.RotateCW())
	for s.Move(1, 0) {
	}
	before, _ := s.Active()
	assert.Equal(t, 9, before.X)

	assert.False(t, s.RotateCW(), "horizontal I does not fit against the right wall")
	after, _ := s.Active()
	assert.Equal(t, before, after)
}

func TestSession_HardDropEndToEnd(t *testing.T) {
	s := newTestSession(t, types.KindO, types.KindT, types.KindS)

	require.True(t, s.HardDrop())

	board := s.Board()
	for y := 0; y < board.Rows(); y++ {
		for x := 0; x < board.Cols(); x++ {
			want := types.TagEmpty
			if (y == 18 || y == 19) && (x == 3 || x == 4) {
				want = types.KindO.Tag()
			}
			assert.Equal(t, want, board.Cell(x, y), "cell (%d, %d)", x, y)
		}
	}
	assert.Equal(t, 0, s.Score())

	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, types.NewPiece(types.KindT, 3, 0), active)
	assert.Equal(t, types.KindS, s.Snapshot().Next.Kind)
	assert.Equal(t, []EventType{EventPieceLocked}, eventTypes(s.DrainEvents()))
}

func TestSession_SoftDropNeverLocks(t *testing.T) {
	s := newTestSession(t, types.KindO)

	for s.SoftDrop() {
	}
	active, _ := s.Active()
	assert.Equal(t, 18, active.Y)
	assert.False(t, s.SoftDrop())
	assert.Equal(t, types.TagEmpty, s.Board().Cell(3, 19))
	assert.Empty(t, s.DrainEvents())
}

func TestSession_Hold(t *testing.T) {
	s := newTestSession(t, types.KindT, types.KindI, types.KindO, types.KindS)
	require.True(t, s.Move(2, 3))
	require.True(t, s.RotateCW())

	require.True(t, s.Hold())
	snapshot := s.Snapshot()
	require.NotNil(t, snapshot.Hold)
	assert.Equal(t, types.KindT, snapshot.Hold.Kind)
	assert.Equal(t, types.NewPiece(types.KindI, 3, 0), *snapshot.Active)
	assert.Equal(t, types.KindO, snapshot.Next.Kind)
	assert.False(t, snapshot.CanHold)

	assert.False(t, s.Hold(), "only one hold per piece")
	assert.Equal(t, snapshot, s.Snapshot())

	require.True(t, s.HardDrop())
	assert.True(t, s.CanHold())

	// the held T comes back at the spawn point, keeping its orientation
	require.True(t, s.Hold())
	active, _ := s.Active()
	assert.Equal(t, types.KindT, active.Kind)
	assert.Equal(t, 3, active.X)
	assert.Equal(t, 0, active.Y)
	assert.Equal(t, types.ShapeOf(types.KindT).RotateCW(), active.Shape)
	assert.Equal(t, types.KindO, s.Snapshot().Hold.Kind)
}

func TestSession_HoldRejectedWhenIncomingDoesNotFit(t *testing.T) {
	s := newTestSession(t, types.KindI, types.KindO)
	require.True(t, s.Move(0, 10))
	fillRows(t, s.Board(), 1, 1, 0)

	assert.False(t, s.Hold())
	assert.True(t, s.CanHold())
	active, _ := s.Active()
	assert.Equal(t, types.KindI, active.Kind)
}

func TestSession_QuadClear(t *testing.T) {
	s := newTestSession(t, types.KindI, types.KindO)
	fillRows(t, s.Board(), 16, 19, 0)

	require.True(t, s.RotateCW())
	for s.Move(-1, 0) {
	}
	require.True(t, s.HardDrop())

	assert.Equal(t, 800, s.Score())
	assert.Equal(t, 4, s.Lines())
	assert.Equal(t, types.NewBoard(20, 10).Matrix(), s.Board().Matrix())

	events := s.DrainEvents()
	assert.Equal(t, []EventType{EventPieceLocked, EventLinesCleared, EventQuad, EventScore}, eventTypes(events))
	assert.Equal(t, 4, events[1].Count)
	assert.Equal(t, []int{16, 17, 18, 19}, events[1].Rows)
	assert.Equal(t, 800, events[3].Score)
}

func TestSession_TripleIsNotQuad(t *testing.T) {
	s := newTestSession(t, types.KindI, types.KindO)
	fillRows(t, s.Board(), 17, 19, 0)

	require.True(t, s.RotateCW())
	for s.Move(-1, 0) {
	}
	require.True(t, s.HardDrop())

	assert.Equal(t, 500, s.Score())
	assert.NotContains(t, eventTypes(s.DrainEvents()), EventQuad)
	// the top cell of the I survives above the cleared rows
	assert.Equal(t, types.KindI.Tag(), s.Board().Cell(0, 19))
}

func TestSession_GameOverDoesNotCommitSpawn(t *testing.T) {
	s := newTestSession(t, types.KindI, types.KindT)
	fillRows(t, s.Board(), 1, 19, 9)

	vertical := types.Piece{Kind: types.KindI, Shape: types.ShapeOf(types.KindI).RotateCW(), X: 0, Y: -3}
	s.active = &vertical

	require.True(t, s.HardDrop())

	assert.Equal(t, StateGameOver, s.State())
	_, ok := s.Active()
	assert.False(t, ok)
	want := make([]types.Tag, 10)
	want[0] = types.KindI.Tag()
	assert.Equal(t, want, s.Board().Matrix()[0], "only the visible cell of the I is locked")

	events := s.DrainEvents()
	assert.Equal(t, []EventType{EventPieceLocked, EventStateChanged, EventGameOver}, eventTypes(events))

	assert.False(t, s.Move(1, 0))
	assert.False(t, s.HardDrop())
	assert.False(t, s.Start())

	require.True(t, s.Restart())
	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, types.NewBoard(20, 10).Matrix(), s.Board().Matrix())
	assert.Equal(t, 0, s.Score())
}

func TestSession_Tick(t *testing.T) {
	s := newTestSession(t, types.KindO)
	t0 := time.Unix(1000, 0)

	s.Tick(t0)
	s.Tick(t0.Add(900 * time.Millisecond))
	active, _ := s.Active()
	assert.Equal(t, 0, active.Y)

	s.Tick(t0.Add(1000 * time.Millisecond))
	active, _ = s.Active()
	assert.Equal(t, 1, active.Y)
}

func TestSession_TickLocksWhenBlocked(t *testing.T) {
	s := newTestSession(t, types.KindO, types.KindT)
	for s.SoftDrop() {
	}
	t0 := time.Unix(1000, 0)

	s.Tick(t0)
	s.Tick(t0.Add(time.Second))

	assert.Equal(t, types.KindO.Tag(), s.Board().Cell(3, 19))
	active, _ := s.Active()
	assert.Equal(t, types.KindT, active.Kind)
}

func TestSession_PauseDoesNotAccrueGravity(t *testing.T) {
	s := newTestSession(t, types.KindO)
	t0 := time.Unix(1000, 0)

	s.Tick(t0)
	s.Tick(t0.Add(900 * time.Millisecond))
	require.True(t, s.Apply(IntentPause))
	assert.Equal(t, StatePaused, s.State())

	s.Tick(t0.Add(5 * time.Second))
	assert.False(t, s.Move(1, 0), "no board mutation while paused")

	require.True(t, s.Apply(IntentPause))
	assert.Equal(t, StateRunning, s.State())

	resumed := t0.Add(10 * time.Second)
	s.Tick(resumed)
	s.Tick(resumed.Add(40 * time.Millisecond))
	active, _ := s.Active()
	assert.Equal(t, 0, active.Y, "900ms before the pause plus 40ms after it")

	s.Tick(resumed.Add(70 * time.Millisecond))
	active, _ = s.Active()
	assert.Equal(t, 1, active.Y)
	assert.Equal(t, 970*time.Millisecond, s.Played())
}

func TestSession_StateTransitions(t *testing.T) {
	s := NewSession(DefaultSessionOptions())

	assert.False(t, s.Pause())
	assert.False(t, s.Resume())
	assert.True(t, s.Start())
	assert.False(t, s.Start())
	assert.False(t, s.Resume())
	assert.True(t, s.Pause())
	assert.False(t, s.Pause())
	assert.True(t, s.Resume())
	assert.True(t, s.Restart())
	assert.Equal(t, StateReady, s.State())
}

func TestSession_Apply(t *testing.T) {
	s := newTestSession(t, types.KindT, types.KindO)

	tests := []struct {
		intent Intent
		check  func(t *testing.T, s *Session)
	}{
		{intent: IntentMoveLeft, check: func(t *testing.T, s *Session) {
			active, _ := s.Active()
			assert.Equal(t, 2, active.X)
		}},
		{intent: IntentMoveRight, check: func(t *testing.T, s *Session) {
			active, _ := s.Active()
			assert.Equal(t, 3, active.X)
		}},
		{intent: IntentSoftDrop, check: func(t *testing.T, s *Session) {
			active, _ := s.Active()
			assert.Equal(t, 1, active.Y)
		}},
		{intent: IntentRotateCW, check: func(t *testing.T, s *Session) {
			active, _ := s.Active()
			assert.Equal(t, 2, active.Shape.Width())
		}},
		{intent: IntentRotateCCW, check: func(t *testing.T, s *Session) {
			active, _ := s.Active()
			assert.Equal(t, types.ShapeOf(types.KindT), active.Shape)
		}},
		{intent: IntentHold, check: func(t *testing.T, s *Session) {
			assert.Equal(t, types.KindT, s.Snapshot().Hold.Kind)
		}},
		{intent: IntentHardDrop, check: func(t *testing.T, s *Session) {
			assert.Equal(t, types.KindO.Tag(), s.Board().Cell(3, 19))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			assert.True(t, s.Apply(tt.intent))
			tt.check(t, s)
		})
	}
}

func TestSession_Snapshot(t *testing.T) {
	opts := DefaultSessionOptions()
	opts.Generator = &sequenceGenerator{kinds: []types.Kind{types.KindO, types.KindI}}
	opts.HighScore = 12000
	s := NewSession(opts)
	require.True(t, s.Start())

	snapshot := s.Snapshot()
	assert.Equal(t, "running", snapshot.State)
	assert.Equal(t, "marathon", snapshot.Mode)
	assert.Equal(t, 12000, snapshot.HighScore)
	assert.Equal(t, 1, snapshot.Level)
	assert.Equal(t, 18, snapshot.Shadow.Y)
	assert.Equal(t, 3, snapshot.Shadow.X)
	assert.Nil(t, snapshot.Hold)

	snapshot.Board[19][0] = 5
	snapshot.Active.Shape[0][0] = 0
	assert.Equal(t, types.TagEmpty, s.Board().Cell(0, 19), "snapshots are copies")
	active, _ := s.Active()
	assert.Equal(t, types.KindO.Tag(), active.Shape[0][0])
}

func TestParseIntent(t *testing.T) {
	intent, err := ParseIntent("hard_drop")
	require.NoError(t, err)
	assert.Equal(t, IntentHardDrop, intent)

	_, err = ParseIntent("teleport")
	assert.Error(t, err)
}
