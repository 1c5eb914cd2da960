package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/game"
	"github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.SessionOptions(1500)
	require.NoError(t, err)
	assert.Equal(t, 20, opts.Rows)
	assert.Equal(t, 10, opts.Cols)
	assert.Equal(t, 3, opts.SpawnX)
	assert.Equal(t, 0, opts.SpawnY)
	assert.Equal(t, 1500, opts.HighScore)
	assert.IsType(t, &game.UniformGenerator{}, opts.Generator)
	assert.Equal(t, "marathon", opts.Mode.Name())
	assert.IsType(t, &game.ConsecutiveCombo{}, opts.ComboPolicy)
}

func TestParse(t *testing.T) {
	data := []byte(`
board:
  rows: 24
  cols: 12
spawn:
  x: 4
generator:
  kind: weighted
  seed: 7
  weights:
    I: 3
    t: 1
  power_up_chance: 0.1
mode:
  name: ultra
  time_limit: 3m
combo:
  policy: timed
  window: 1500ms
`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, BoardConfig{Rows: 24, Cols: 12}, cfg.Board)
	assert.Equal(t, SpawnConfig{X: 4, Y: 0}, cfg.Spawn)
	assert.Equal(t, 3*time.Minute, cfg.Mode.TimeLimit)
	assert.Equal(t, 1500*time.Millisecond, cfg.Combo.Window)

	opts, err := cfg.SessionOptions(0)
	require.NoError(t, err)
	assert.Equal(t, game.UltraMode{Limit: 3 * time.Minute}, opts.Mode)
	assert.Equal(t, &game.TimedCombo{Window: 1500 * time.Millisecond}, opts.ComboPolicy)

	// only the weighted kinds are produced
	for i := 0; i < 50; i++ {
		kind := opts.Generator.Next().Kind
		assert.Contains(t, []types.Kind{types.KindI, types.KindT}, kind)
	}

	s := game.NewSession(opts)
	assert.Equal(t, 24, s.Board().Rows())
	assert.Equal(t, 12, s.Board().Cols())
}

func TestParse_invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "board: [1, 2"},
		{name: "board too narrow", data: "board: {rows: 20, cols: 3}"},
		{name: "board too short", data: "board: {rows: 3, cols: 10}"},
		{name: "spawn does not fit", data: "spawn: {x: 7}"},
		{name: "negative spawn", data: "spawn: {x: -1}"},
		{name: "spawn on the bottom row", data: "spawn: {x: 3, y: 19}"},
		{name: "spawn below the board", data: "spawn: {x: 3, y: 20}"},
		{name: "negative spawn row", data: "spawn: {x: 3, y: -1}"},
		{name: "unknown generator", data: "generator: {kind: random}"},
		{name: "unknown piece weight", data: "generator: {kind: weighted, weights: {Q: 1}}"},
		{name: "all weights zero", data: "generator: {kind: weighted, weights: {T: 0}}"},
		{name: "power-up chance", data: "generator: {power_up_chance: 1.5}"},
		{name: "unknown mode", data: "mode: {name: zen}"},
		{name: "unknown combo policy", data: "combo: {policy: chain}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_spawnFitsEveryPiece(t *testing.T) {
	cfg, err := Parse([]byte("spawn: {x: 6, y: 18}"))
	require.NoError(t, err)

	opts, err := cfg.SessionOptions(0)
	require.NoError(t, err)
	s := game.NewSession(opts)
	require.True(t, s.Start())
	assert.Equal(t, game.StateRunning, s.State())

	board := types.NewBoard(cfg.Board.Rows, cfg.Board.Cols)
	for _, kind := range types.Kinds() {
		assert.True(t, types.IsValidPlacement(board, types.NewPiece(kind, cfg.Spawn.X, cfg.Spawn.Y), 0, 0), "kind %s", kind)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode:\n  name: sprint\n  target_lines: 20\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sprint", cfg.Mode.Name)
	assert.Equal(t, 20, cfg.Mode.TargetLines)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
