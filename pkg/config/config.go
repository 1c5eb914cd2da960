package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/game"
	"github.com/DylM0nster22/Tetris/pkg/game/constants"
	"github.com/DylM0nster22/Tetris/pkg/game/types"
	"gopkg.in/yaml.v3"
)

const (
	// MinBoardSize is the smallest width or height that fits every piece
	MinBoardSize = 4

	GeneratorUniform  = "uniform"
	GeneratorBag      = "bag"
	GeneratorWeighted = "weighted"
)

// Config describes how sessions are built.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Generator GeneratorConfig `yaml:"generator"`
	Mode      ModeConfig      `yaml:"mode"`
	Combo     ComboConfig     `yaml:"combo"`
}

type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type GeneratorConfig struct {
	Kind string `yaml:"kind"`
	// Seed 0 seeds from the clock
	Seed int64 `yaml:"seed"`
	// Weights maps piece letters (T, O, S, Z, I, J, L) to relative weights
	Weights       map[string]int `yaml:"weights"`
	PowerUpChance float64        `yaml:"power_up_chance"`
}

type ModeConfig struct {
	Name        string        `yaml:"name"`
	TargetLines int           `yaml:"target_lines"`
	TimeLimit   time.Duration `yaml:"time_limit"`
}

type ComboConfig struct {
	Policy string        `yaml:"policy"`
	Window time.Duration `yaml:"window"`
}

// Default returns the canonical game: a 20x10 board, uniform pieces,
// marathon mode and consecutive combos.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Rows: constants.BoardRows,
			Cols: constants.BoardCols,
		},
		Spawn: SpawnConfig{
			X: constants.SpawnX,
			Y: constants.SpawnY,
		},
		Generator: GeneratorConfig{
			Kind: GeneratorUniform,
		},
		Mode: ModeConfig{
			Name: "marathon",
		},
		Combo: ComboConfig{
			Policy: "consecutive",
		},
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Board.Rows < MinBoardSize || c.Board.Cols < MinBoardSize {
		return fmt.Errorf("board must be at least %dx%d, got %dx%d", MinBoardSize, MinBoardSize, c.Board.Rows, c.Board.Cols)
	}
	if c.Spawn.Y < 0 {
		return fmt.Errorf("spawn row %d is outside the board", c.Spawn.Y)
	}
	// every kind must fit at the spawn origin of an empty board
	board := types.NewBoard(c.Board.Rows, c.Board.Cols)
	for _, kind := range types.Kinds() {
		if !types.IsValidPlacement(board, types.NewPiece(kind, c.Spawn.X, c.Spawn.Y), 0, 0) {
			return fmt.Errorf("spawn (%d, %d) does not fit piece %s on a %dx%d board", c.Spawn.X, c.Spawn.Y, kind, c.Board.Rows, c.Board.Cols)
		}
	}

	switch c.Generator.Kind {
	case GeneratorUniform, GeneratorBag, GeneratorWeighted:
	default:
		return fmt.Errorf("unknown generator: %s", c.Generator.Kind)
	}
	weights, err := c.weights()
	if err != nil {
		return err
	}
	if c.Generator.PowerUpChance < 0 || c.Generator.PowerUpChance > 1 {
		return fmt.Errorf("power_up_chance must be within [0, 1]")
	}
	if c.Generator.Kind == GeneratorWeighted {
		if _, err := game.NewWeightedGenerator(game.NewWeightedGeneratorOptions{Weights: weights}); err != nil {
			return err
		}
	}

	if _, err := game.NewMode(c.Mode.Name, c.Mode.TargetLines, c.Mode.TimeLimit); err != nil {
		return err
	}
	if _, err := game.NewComboPolicy(c.Combo.Policy, c.Combo.Window); err != nil {
		return err
	}
	return nil
}

func (c *Config) weights() (map[types.Kind]int, error) {
	weights := make(map[types.Kind]int, len(c.Generator.Weights))
	for name, weight := range c.Generator.Weights {
		kind := types.ParseKind(strings.ToUpper(name))
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown piece in weights: %s", name)
		}
		weights[kind] = weight
	}
	return weights, nil
}

// NewGenerator builds the configured piece generator.
func (c *Config) NewGenerator() (game.Generator, error) {
	seed := c.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	switch c.Generator.Kind {
	case GeneratorUniform:
		return game.NewUniformGenerator(seed), nil
	case GeneratorBag:
		return game.NewBagGenerator(seed), nil
	case GeneratorWeighted:
		weights, err := c.weights()
		if err != nil {
			return nil, err
		}
		return game.NewWeightedGenerator(game.NewWeightedGeneratorOptions{
			Seed:          seed,
			Weights:       weights,
			PowerUpChance: c.Generator.PowerUpChance,
		})
	default:
		return nil, fmt.Errorf("unknown generator: %s", c.Generator.Kind)
	}
}

// SessionOptions builds session options from the config.
func (c *Config) SessionOptions(highScore int) (game.SessionOptions, error) {
	generator, err := c.NewGenerator()
	if err != nil {
		return game.SessionOptions{}, fmt.Errorf("failed to create generator: %v", err)
	}
	mode, err := game.NewMode(c.Mode.Name, c.Mode.TargetLines, c.Mode.TimeLimit)
	if err != nil {
		return game.SessionOptions{}, fmt.Errorf("failed to create mode: %v", err)
	}
	combo, err := game.NewComboPolicy(c.Combo.Policy, c.Combo.Window)
	if err != nil {
		return game.SessionOptions{}, fmt.Errorf("failed to create combo policy: %v", err)
	}

	return game.SessionOptions{
		Rows:        c.Board.Rows,
		Cols:        c.Board.Cols,
		SpawnX:      c.Spawn.X,
		SpawnY:      c.Spawn.Y,
		Generator:   generator,
		Mode:        mode,
		ComboPolicy: combo,
		HighScore:   highScore,
	}, nil
}
