package messages

import (
	"encoding/json"
	"testing"

	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGameState(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid",
			raw:  `{"board":[[0,1],[2,0]],"currentPiece":{"id":2,"shape":[[2,2],[2,2]],"x":3,"y":0},"score":100,"nextPiece":null}`,
		},
		{name: "empty", raw: ``, wantErr: true},
		{name: "not json", raw: `{board`, wantErr: true},
		{name: "no board", raw: `{"score":1}`, wantErr: true},
		{name: "ragged board", raw: `{"board":[[0,1],[2]]}`, wantErr: true},
		{name: "unknown tag", raw: `{"board":[[0,12]]}`, wantErr: true},
		{name: "negative tag", raw: `{"board":[[0,-1]]}`, wantErr: true},
		{name: "ragged piece", raw: `{"board":[[0]],"nextPiece":{"id":1,"shape":[[1,1,1],[1]]}}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeGameState(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.True(t, IsMalformedGameState(err), "err = %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 100, got.Score)
			assert.Equal(t, gametypes.KindO, got.CurrentPiece.Piece().Kind)
		})
	}
}

func TestGameStateFromSnapshot(t *testing.T) {
	active := gametypes.NewPiece(gametypes.KindL, 3, 4)
	snapshot := &gametypes.Snapshot{
		Board:  [][]gametypes.Tag{{0, 7}, {1, 1}},
		Active: &active,
		Score:  500,
	}

	gameState := GameStateFromSnapshot(snapshot)
	b, err := json.Marshal(gameState)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"board": [[0,7],[1,1]],
		"currentPiece": {"id":7,"shape":[[0,0,7],[7,7,7]],"x":3,"y":4},
		"score": 500,
		"nextPiece": null
	}`, string(b))

	assert.Equal(t, snapshot.Board, gameState.BoardMatrix())
	assert.Equal(t, active, gameState.CurrentPiece.Piece())
}

func TestGameStateFromSnapshot_numericJSON(t *testing.T) {
	piece := gametypes.NewPiece(gametypes.KindO, 3, 0)
	snapshot := &gametypes.Snapshot{
		Board:  [][]gametypes.Tag{{0, 2}, {gametypes.TagGold, 1}},
		Active: &piece,
		Score:  40,
	}

	b, err := json.Marshal(GameStateFromSnapshot(snapshot))
	require.NoError(t, err)
	assert.JSONEq(t, `{"board":[[0,2],[11,1]],"currentPiece":{"id":2,"shape":[[2,2],[2,2]],"x":3,"y":0},"score":40,"nextPiece":null}`, string(b))
}

func TestRelayGameState(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "extra fields are dropped",
			raw:  `{"board":[[0,1]],"currentPiece":{"id":1},"score":40,"nextPiece":null,"cheat":true}`,
			want: `{"board":[[0,1]],"currentPiece":{"id":1},"score":40,"nextPiece":null}`,
		},
		{
			name: "contents are not interpreted",
			raw:  `{"board":"not a board","score":"lots"}`,
			want: `{"board":"not a board","score":"lots"}`,
		},
		{name: "missing", raw: ``, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "not an object", raw: `[1,2]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelayGameState(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
