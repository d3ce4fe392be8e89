package engine

import "fmt"

// The auction starts at the first bidder and moves clockwise. Bids must
// exceed the current winning bid. Three opening passes abandon the game;
// two passes after a bid, or a max bid, hand the leftover block to the
// highest bidder and start play.

func (g *GameState) auctionLegalActions() []Action {
	actions := []Action{PassAction}
	for v := int(g.WinningBid) + 1; v <= NumBids; v++ {
		actions = append(actions, BidAction(v))
	}
	return actions
}

func (g *GameState) applyAuction(a Action) error {
	if a == PassAction {
		g.Passes++
		switch {
		case g.Landlord == InvalidPlayer && g.Passes == NumPlayers:
			// Nobody wanted the hand.
			g.Phase = PhaseGameOver
			g.Turn = InvalidPlayer
		case g.Landlord != InvalidPlayer && g.Passes == NumPlayers-1:
			g.concludeAuction()
		default:
			g.advanceTurn()
		}
		return nil
	}

	bid, ok := DecodeBid(a)
	if !ok {
		return fmt.Errorf("expected a pass or bid, got action %d", a)
	}
	if bid <= int(g.WinningBid) {
		return fmt.Errorf("bid %d does not exceed the winning bid %d", bid, g.WinningBid)
	}

	g.Landlord = g.Turn
	g.WinningBid = uint8(bid)
	g.Passes = 0
	if bid == NumBids {
		g.concludeAuction()
		return nil
	}
	g.advanceTurn()
	return nil
}

// concludeAuction gives the winner the leftover block and opens play with the
// landlord leading the first trick.
func (g *GameState) concludeAuction() {
	for _, r := range g.Leftover {
		g.Hands[g.Landlord][r]++
	}
	g.LeftoverTaken = true
	g.Phase = PhasePlay
	g.Turn = g.Landlord
	g.Passes = 0
	g.NewTrickBegin = true
	g.Tricks = append(g.Tricks, Trick{
		Leader:        g.Landlord,
		WinningPlayer: g.Landlord,
		WinningAction: NoAction,
	})
}
