package engine

import "testing"

// playState builds a play-phase state directly: the landlord leads a fresh
// trick with the given per-rank hands.
func playState(landlord int8, hands [NumPlayers][NumRanks]uint8) *GameState {
	g := NewGame()
	g.Phase = PhasePlay
	g.Hands = hands
	g.Landlord = landlord
	g.WinningBid = 1
	g.FirstPlayer = landlord
	g.Turn = landlord
	g.LeftoverTaken = true
	g.NewTrickBegin = true
	g.Tricks = []Trick{{Leader: landlord, WinningPlayer: landlord, WinningAction: NoAction}}
	return g
}

func contains(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

// TestLeaderCannotPass verifies the trick leader is never offered a pass and
// that applying one is rejected.
func TestLeaderCannotPass(t *testing.T) {
	var hands [NumPlayers][NumRanks]uint8
	hands[0][0] = 1
	hands[1][1] = 1
	hands[2][2] = 1
	g := playState(0, hands)

	if contains(g.LegalActions(), PassAction) {
		t.Error("leader offered a pass")
	}
	if err := g.Apply(PassAction); err == nil {
		t.Error("leader pass accepted")
	}
}

// TestFollowerMustBeatOrPass verifies following legality: only combinations
// beating the winning play, plus the pass.
func TestFollowerMustBeatOrPass(t *testing.T) {
	var hands [NumPlayers][NumRanks]uint8
	hands[0][3] = 2 // pair of 6s
	hands[0][0] = 1 // spare card so the opening pair does not end the game
	hands[1][2] = 2 // pair of 5s, cannot beat
	hands[1][11] = 2
	hands[1][0] = 1
	hands[2][5] = 4 // bomb
	g := playState(0, hands)

	if err := g.Apply(PairAction(3)); err != nil {
		t.Fatal(err)
	}
	if g.IsTerminal() {
		t.Fatal("game over after the opening pair; the leader still holds cards")
	}
	legal := g.LegalActions()
	if !contains(legal, PassAction) {
		t.Error("follower not offered a pass")
	}
	if !contains(legal, PairAction(11)) {
		t.Error("higher pair not offered")
	}
	if contains(legal, PairAction(2)) {
		t.Error("lower pair offered against a higher pair")
	}
	if contains(legal, SoloAction(0)) {
		t.Error("solo offered against a pair")
	}
	if err := g.Apply(PairAction(2)); err == nil {
		t.Error("lower pair accepted")
	}
	if err := g.Apply(SoloAction(0)); err == nil {
		t.Error("solo accepted against a pair")
	}

	if err := g.Apply(PassAction); err != nil {
		t.Fatal(err)
	}
	if !contains(g.LegalActions(), BombAction(5)) {
		t.Error("bomb not offered against a pair")
	}
}

// TestBombAndRocketDominance verifies bombs beat everything but bigger bombs
// and the rocket beats bombs.
func TestBombAndRocketDominance(t *testing.T) {
	var hands [NumPlayers][NumRanks]uint8
	hands[0][2] = 4 // bomb of 5s
	hands[0][0] = 1 // spare card so the bomb does not end the game
	hands[1][1] = 4 // smaller bomb
	hands[1][6] = 4 // bigger bomb
	hands[1][11] = 2
	hands[2][BlackJokerRank] = 1
	hands[2][RedJokerRank] = 1
	g := playState(0, hands)

	if err := g.Apply(BombAction(2)); err != nil {
		t.Fatal(err)
	}
	if g.IsTerminal() {
		t.Fatal("game over after the opening bomb; the leader still holds cards")
	}
	legal := g.LegalActions()
	if contains(legal, BombAction(1)) {
		t.Error("smaller bomb offered against a bomb")
	}
	if !contains(legal, BombAction(6)) {
		t.Error("bigger bomb not offered")
	}
	if contains(legal, PairAction(11)) {
		t.Error("pair offered against a bomb")
	}
	if err := g.Apply(BombAction(6)); err != nil {
		t.Fatal(err)
	}
	if g.BombsPlayed != 2 {
		t.Errorf("BombsPlayed = %d, want 2", g.BombsPlayed)
	}
	if !contains(g.LegalActions(), RocketAction) {
		t.Error("rocket not offered against a bomb")
	}
	if err := g.Apply(RocketAction); err != nil {
		t.Fatal(err)
	}
	if g.BombsPlayed != 3 {
		t.Errorf("BombsPlayed = %d after the rocket, want 3", g.BombsPlayed)
	}
}

// TestTrickCloseAfterTwoPasses verifies two consecutive passes close the
// trick and the winner leads the next one.
func TestTrickCloseAfterTwoPasses(t *testing.T) {
	var hands [NumPlayers][NumRanks]uint8
	hands[0][0], hands[0][5] = 1, 1
	hands[1][1] = 2
	hands[2][2] = 2
	g := playState(0, hands)

	if err := g.Apply(SoloAction(0)); err != nil {
		t.Fatal(err)
	}
	if err := g.Apply(PassAction); err != nil {
		t.Fatal(err)
	}
	if err := g.Apply(PassAction); err != nil {
		t.Fatal(err)
	}

	if len(g.Tricks) != 2 {
		t.Fatalf("len(Tricks) = %d, want 2", len(g.Tricks))
	}
	closed := g.Tricks[0]
	if closed.WinningPlayer != 0 || closed.WinningAction != SoloAction(0) {
		t.Errorf("closed trick = %+v, want player 0 winning with the solo", closed)
	}
	if g.Turn != 0 || !g.NewTrickBegin {
		t.Errorf("Turn = %d NewTrickBegin = %v, want the winner leading", g.Turn, g.NewTrickBegin)
	}
	if g.CurrentTrick().WinningAction != NoAction {
		t.Error("fresh trick already has a winning action")
	}
}

// TestPlayRemovesCards verifies hand counts and the public ledger after a
// play, and that unheld combinations are rejected.
func TestPlayRemovesCards(t *testing.T) {
	var hands [NumPlayers][NumRanks]uint8
	hands[0][4] = 3
	hands[0][7] = 2
	hands[1][1] = 1
	hands[2][2] = 1
	g := playState(0, hands)

	if err := g.Apply(TrioAction(7)); err == nil {
		t.Error("trio of an unheld rank accepted")
	}
	if err := g.Apply(TrioWithPairAction(4, 7)); err != nil {
		t.Fatal(err)
	}
	if g.Hands[0][4] != 0 || g.Hands[0][7] != 0 {
		t.Errorf("hand after play = %v, want empty ranks 4 and 7", g.Hands[0])
	}
	if g.Played[4] != 3 || g.Played[7] != 2 {
		t.Errorf("Played = %v, want the trio and its pair recorded", g.Played)
	}
	if g.HandsPlayed[0] != 1 {
		t.Errorf("HandsPlayed[0] = %d, want 1", g.HandsPlayed[0])
	}
}

// TestGameEndsWhenHandEmpties verifies the first emptied hand terminates the
// game immediately with that seat as winner.
func TestGameEndsWhenHandEmpties(t *testing.T) {
	var hands [NumPlayers][NumRanks]uint8
	hands[0][8] = 1
	hands[1][1] = 3
	hands[2][2] = 3
	g := playState(0, hands)

	if err := g.Apply(SoloAction(8)); err != nil {
		t.Fatal(err)
	}
	if !g.IsTerminal() {
		t.Fatal("game not terminal after the landlord emptied")
	}
	if g.FinalWinner != 0 {
		t.Errorf("FinalWinner = %d, want 0", g.FinalWinner)
	}
	if err := g.Apply(SoloAction(1)); err == nil {
		t.Error("action accepted in a terminal state")
	}
}
