package game

import (
	"fmt"
	"math/rand"

	"github.com/DylM0nster22/Tetris/pkg/game/types"
)

// Generator produces the pieces of a session. Returned pieces sit at (0, 0);
// the session moves them to the spawn point.
type Generator interface {
	Next() types.Piece
}

// UniformGenerator picks each kind independently and uniformly.
type UniformGenerator struct {
	rng *rand.Rand
}

var _ Generator = &UniformGenerator{}

func NewUniformGenerator(seed int64) *UniformGenerator {
	return &UniformGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *UniformGenerator) Next() types.Piece {
	kinds := types.Kinds()
	return types.NewPiece(kinds[g.rng.Intn(len(kinds))], 0, 0)
}

// BagGenerator deals every kind once, in random order, before reshuffling.
type BagGenerator struct {
	rng *rand.Rand
	bag []types.Kind
}

var _ Generator = &BagGenerator{}

func NewBagGenerator(seed int64) *BagGenerator {
	return &BagGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *BagGenerator) Next() types.Piece {
	if len(g.bag) == 0 {
		g.bag = types.Kinds()
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	kind := g.bag[0]
	g.bag = g.bag[1:]
	return types.NewPiece(kind, 0, 0)
}

// WeightedGenerator picks kinds proportionally to their weight and turns a
// fraction of the pieces into power-up pieces.
type WeightedGenerator struct {
	rng           *rand.Rand
	kinds         []types.Kind
	weights       []int
	total         int
	powerUpChance float64
}

var _ Generator = &WeightedGenerator{}

type NewWeightedGeneratorOptions struct {
	Seed int64
	// Weights maps kinds to relative weights. Missing kinds are never produced.
	// An empty map weighs every kind equally.
	Weights map[types.Kind]int
	// PowerUpChance is the probability in [0, 1] that a piece is tagged with a power-up.
	PowerUpChance float64
}

func NewWeightedGenerator(opts NewWeightedGeneratorOptions) (*WeightedGenerator, error) {
	if opts.PowerUpChance < 0 || opts.PowerUpChance > 1 {
		return nil, fmt.Errorf("power-up chance must be within [0, 1], got %v", opts.PowerUpChance)
	}

	g := &WeightedGenerator{
		rng:           rand.New(rand.NewSource(opts.Seed)),
		powerUpChance: opts.PowerUpChance,
	}
	for _, kind := range types.Kinds() {
		weight := 1
		if len(opts.Weights) > 0 {
			weight = opts.Weights[kind]
		}
		if weight < 0 {
			return nil, fmt.Errorf("negative weight for %s", kind)
		}
		if weight == 0 {
			continue
		}
		g.kinds = append(g.kinds, kind)
		g.weights = append(g.weights, weight)
		g.total += weight
	}
	if g.total == 0 {
		return nil, fmt.Errorf("at least one kind needs a positive weight")
	}

	return g, nil
}

func (g *WeightedGenerator) Next() types.Piece {
	n := g.rng.Intn(g.total)
	kind := g.kinds[len(g.kinds)-1]
	for i, weight := range g.weights {
		if n < weight {
			kind = g.kinds[i]
			break
		}
		n -= weight
	}

	piece := types.NewPiece(kind, 0, 0)
	if g.powerUpChance > 0 && g.rng.Float64() < g.powerUpChance {
		tag := types.PowerUpTags[g.rng.Intn(len(types.PowerUpTags))]
		piece.Shape = piece.Shape.Retag(tag)
	}
	return piece
}
