package engine

import "fmt"

// Trick play. The trick leader must play; followers either beat the winning
// play or pass. Two consecutive passes close the trick and the winner leads
// the next one. The game ends the moment a hand empties.

func (g *GameState) playLegalActions() []Action {
	var winning *Comb
	if !g.NewTrickBegin {
		winning = actionComb(g.CurrentTrick().WinningAction)
	}

	var actions []Action
	if winning != nil {
		actions = append(actions, PassAction)
	}
	hand := &g.Hands[g.Turn]
	for off := range playCombs {
		c := &playCombs[off]
		if winning != nil && !c.Beats(winning) {
			continue
		}
		if handSupports(hand, c) {
			actions = append(actions, PlayActionBase+Action(off))
		}
	}
	return actions
}

func (g *GameState) applyPlay(a Action) error {
	if a == PassAction {
		if g.NewTrickBegin {
			return fmt.Errorf("the trick leader cannot pass")
		}
		g.PlayCount++
		g.Passes++
		if g.Passes == NumPlayers-1 {
			winner := g.CurrentTrick().WinningPlayer
			g.Turn = winner
			g.Tricks = append(g.Tricks, Trick{
				Leader:        winner,
				WinningPlayer: winner,
				WinningAction: NoAction,
			})
			g.NewTrickBegin = true
			g.Passes = 0
			return nil
		}
		g.advanceTurn()
		return nil
	}

	c := actionComb(a)
	if c == nil {
		return fmt.Errorf("expected a pass or play, got action %d", a)
	}
	hand := &g.Hands[g.Turn]
	if !handSupports(hand, c) {
		return fmt.Errorf("player %d does not hold the cards for %s", g.Turn, ActionString(a))
	}
	if !g.NewTrickBegin {
		if w := actionComb(g.CurrentTrick().WinningAction); !c.Beats(w) {
			return fmt.Errorf("%s does not beat %s",
				ActionString(a), ActionString(g.CurrentTrick().WinningAction))
		}
	}

	g.PlayCount++
	g.Passes = 0
	g.NewTrickBegin = false
	if c.Kind == KindBomb || c.Kind == KindRocket {
		g.BombsPlayed++
	}
	g.HandsPlayed[g.Turn]++

	trick := g.CurrentTrick()
	trick.WinningPlayer = g.Turn
	trick.WinningAction = a

	empty := true
	for r := 0; r < NumRanks; r++ {
		if c.Cards[r] > hand[r] {
			panic(fmt.Sprintf("player %d hand underflow on rank %d applying action %d", g.Turn, r, a))
		}
		hand[r] -= c.Cards[r]
		g.Played[r] += c.Cards[r]
		if hand[r] > 0 {
			empty = false
		}
	}

	if empty {
		g.FinalWinner = g.Turn
		g.scoreUp()
		g.Phase = PhaseGameOver
		return nil
	}
	g.advanceTurn()
	return nil
}
