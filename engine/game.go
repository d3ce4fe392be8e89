// Package engine implements the complete Dou Dizhu card game rules: the
// chanced deal, the landlord auction, trick play over the full combination
// grammar, and final settlement. The engine is a pure state machine with no
// I/O; a host drives it by feeding actions from a single flat action space
// and reading back legality, turn, and returns.
package engine

import "fmt"

// GameState is the full state of one game. The zero value is not usable;
// construct with NewGame. All mutation goes through Apply.
type GameState struct {
	Phase Phase
	Turn  int8 // acting seat during auction and play; InvalidPlayer in deal

	// Deal bookkeeping. Deck marks undealt card ids; DealCount counts dealt
	// cards. FaceUpSlot is the chosen reveal position (-1 until chosen),
	// FaceUpRank the rank revealed there, FirstPlayer the seat it landed on.
	Deck        [NumCards]uint8
	DealCount   int
	FaceUpSlot  int8
	FaceUpRank  int8
	FirstPlayer int8

	// Hands hold per-rank card counts per seat. Played is the public ledger
	// of ranks played by anyone. Leftover holds the ranks of the three
	// undealt cards until the landlord takes them.
	Hands         [NumPlayers][NumRanks]uint8
	Played        [NumRanks]uint8
	Leftover      []int8
	LeftoverTaken bool

	// Auction state.
	WinningBid uint8
	Landlord   int8
	Passes     uint8

	// Play state. NewTrickBegin is set while the trick leader has not
	// played; Tricks grows by one each time a trick closes or play begins.
	NewTrickBegin bool
	Tricks        []Trick
	BombsPlayed   int
	HandsPlayed   [NumPlayers]int
	PlayCount     int

	FinalWinner int8
	History     []Move

	returns [NumPlayers]float64
}

// NewGame returns a fresh game awaiting its face-up-slot chance action.
func NewGame() *GameState {
	g := &GameState{
		Turn:        InvalidPlayer,
		FaceUpSlot:  -1,
		FaceUpRank:  -1,
		FirstPlayer: InvalidPlayer,
		Landlord:    InvalidPlayer,
		FinalWinner: InvalidPlayer,
	}
	for c := 0; c < NumCards; c++ {
		g.Deck[c] = 1
	}
	return g
}

// Clone returns a deep copy sharing no mutable memory with g.
func (g *GameState) Clone() *GameState {
	c := *g
	c.Leftover = append([]int8(nil), g.Leftover...)
	c.Tricks = append([]Trick(nil), g.Tricks...)
	c.History = append([]Move(nil), g.History...)
	return &c
}

// CurrentPlayer returns the seat to act, ChancePlayer during the deal, or
// TerminalPlayer once the game is over.
func (g *GameState) CurrentPlayer() int8 {
	switch g.Phase {
	case PhaseDeal:
		return ChancePlayer
	case PhaseGameOver:
		return TerminalPlayer
	}
	return g.Turn
}

func (g *GameState) IsTerminal() bool { return g.Phase == PhaseGameOver }

// Returns reports the per-seat score deltas. All zero until terminal.
func (g *GameState) Returns() [NumPlayers]float64 { return g.returns }

// CurrentTrick returns the trick in progress, or nil before play begins.
func (g *GameState) CurrentTrick() *Trick {
	if len(g.Tricks) == 0 {
		return nil
	}
	return &g.Tricks[len(g.Tricks)-1]
}

// LegalActions returns the actions Apply would accept, ascending. Empty at
// terminal states.
func (g *GameState) LegalActions() []Action {
	switch g.Phase {
	case PhaseDeal:
		return g.dealLegalActions()
	case PhaseAuction:
		return g.auctionLegalActions()
	case PhasePlay:
		return g.playLegalActions()
	}
	return nil
}

// Apply advances the game by one action. Illegal actions are rejected with
// an error before any state changes.
func (g *GameState) Apply(a Action) error {
	actor := g.CurrentPlayer()
	var err error
	switch g.Phase {
	case PhaseDeal:
		err = g.applyDeal(a)
	case PhaseAuction:
		err = g.applyAuction(a)
	case PhasePlay:
		err = g.applyPlay(a)
	default:
		err = fmt.Errorf("cannot act in a terminal state")
	}
	if err != nil {
		return err
	}
	g.History = append(g.History, Move{Player: actor, Action: a})
	return nil
}

func (g *GameState) advanceTurn() {
	g.Turn = (g.Turn + 1) % NumPlayers
}
