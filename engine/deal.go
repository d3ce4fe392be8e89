package engine

import "fmt"

// The deal is 52 chance actions: one face-up-slot choice over the 51 dealt
// positions, then 51 card deals. Cards go round-robin from the seat after
// position zero's; the card landing on the chosen slot fixes the first
// bidder. The three cards never dealt form the landlord's leftover block.

func (g *GameState) dealLegalActions() []Action {
	if g.FaceUpSlot < 0 {
		actions := make([]Action, NumFaceUpSlots)
		for s := range actions {
			actions[s] = Action(s)
		}
		return actions
	}
	actions := make([]Action, 0, NumCards-g.DealCount)
	for c := 0; c < NumCards; c++ {
		if g.Deck[c] == 1 {
			actions = append(actions, DealAction(c))
		}
	}
	return actions
}

// ChanceOutcomes returns the legal chance actions with uniform probability.
// Nil outside the deal phase.
func (g *GameState) ChanceOutcomes() []ChanceOutcome {
	if g.Phase != PhaseDeal {
		return nil
	}
	actions := g.dealLegalActions()
	p := 1.0 / float64(len(actions))
	outcomes := make([]ChanceOutcome, len(actions))
	for i, a := range actions {
		outcomes[i] = ChanceOutcome{Action: a, Prob: p}
	}
	return outcomes
}

func (g *GameState) applyDeal(a Action) error {
	if g.FaceUpSlot < 0 {
		slot, ok := DecodeFaceUpSlot(a)
		if !ok {
			return fmt.Errorf("expected a face-up-slot choice, got action %d", a)
		}
		g.FaceUpSlot = int8(slot)
		return nil
	}

	card, ok := DecodeDealCard(a)
	if !ok {
		return fmt.Errorf("expected a deal action, got action %d", a)
	}
	if g.Deck[card] == 0 {
		return fmt.Errorf("card %d was already dealt", card)
	}

	seat := g.DealCount % NumPlayers
	if g.DealCount == int(g.FaceUpSlot) {
		g.FaceUpRank = int8(CardRank(card))
		g.FirstPlayer = int8(seat)
	}
	g.Hands[seat][CardRank(card)]++
	g.Deck[card] = 0
	g.DealCount++

	if g.DealCount == NumCards-NumCardsLeftOver {
		for c := 0; c < NumCards; c++ {
			if g.Deck[c] == 1 {
				g.Leftover = append(g.Leftover, int8(CardRank(c)))
				g.Deck[c] = 0
			}
		}
		g.Phase = PhaseAuction
		g.Turn = g.FirstPlayer
	}
	return nil
}
