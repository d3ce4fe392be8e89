// Package bot provides simple engine-driving policies for simulation and
// testing.
package bot

import (
	"fmt"
	"math/rand/v2"

	"github.com/DrAbx123/doudizhu/engine"
)

// Random selects uniformly among legal actions and samples chance outcomes
// by their stated probabilities. Deterministic for a given seed.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Select picks the next action for the state without applying it.
func (b *Random) Select(g *engine.GameState) (engine.Action, error) {
	if g.CurrentPlayer() == engine.ChancePlayer {
		outcomes := g.ChanceOutcomes()
		if len(outcomes) == 0 {
			return 0, fmt.Errorf("no chance outcomes in the deal phase")
		}
		x := b.rng.Float64()
		acc := 0.0
		for _, o := range outcomes {
			acc += o.Prob
			if x < acc {
				return o.Action, nil
			}
		}
		return outcomes[len(outcomes)-1].Action, nil
	}

	legal := g.LegalActions()
	if len(legal) == 0 {
		return 0, fmt.Errorf("no legal actions for player %d", g.CurrentPlayer())
	}
	return legal[b.rng.IntN(len(legal))], nil
}

// Playout drives g to a terminal state.
func (b *Random) Playout(g *engine.GameState) error {
	for !g.IsTerminal() {
		a, err := b.Select(g)
		if err != nil {
			return err
		}
		if err := g.Apply(a); err != nil {
			return fmt.Errorf("applying %s: %w", engine.ActionString(a), err)
		}
	}
	return nil
}
