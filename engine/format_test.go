package engine

import (
	"strings"
	"testing"
)

// TestActionStrings covers one rendering per action band.
func TestActionStrings(t *testing.T) {
	cases := []struct {
		a    Action
		want string
	}{
		{Action(4), "Reveal position 4"},
		{DealAction(0), "Deal C3"},
		{DealAction(RedJokerCard), "Deal (CJ)"},
		{PassAction, "Pass"},
		{BidAction(2), "Bid 2"},
		{SoloAction(12), "2"},
		{PairAction(8), "JJ"},
		{SoloChainAction(5, 0), "34567"},
		{TrioAction(0), "333"},
		{BombAction(11), "AAAA"},
		{RocketAction, "(BWJ)(CJ)"},
	}
	for _, tc := range cases {
		if got := ActionString(tc.a); got != tc.want {
			t.Errorf("ActionString(%d) = %q, want %q", tc.a, got, tc.want)
		}
	}
}

// TestKickerCombFormat verifies the core run and attachments render on
// opposite sides of the dash.
func TestKickerCombFormat(t *testing.T) {
	if got := ActionString(TrioWithSoloAction(5, 0)); got != "888-3" {
		t.Errorf("trio with solo = %q, want %q", got, "888-3")
	}
	if got := ActionString(TrioWithPairAction(0, 12)); got != "333-22" {
		t.Errorf("trio with pair = %q, want %q", got, "333-22")
	}

	var cards [NumRanks]uint8
	cards[4], cards[5] = 3, 3
	cards[0], cards[12] = 1, 1
	a, ok := ActionForCards(KindAirplaneWithSolo, cards)
	if !ok {
		t.Fatal("airplane 777888-32 not in table")
	}
	if got := ActionString(a); got != "777888-32" {
		t.Errorf("airplane with solos = %q, want %q", got, "777888-32")
	}
}

// TestTranscriptAfterDeal verifies the transcript names the dealt hands and
// the first bidder.
func TestTranscriptAfterDeal(t *testing.T) {
	g := dealOut(t, 2)
	s := g.String()
	for _, want := range []string{
		"Player 0 dealt:",
		"Leftover: S2 (BWJ) (CJ)",
		"player 2 bids first",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("transcript missing %q:\n%s", want, s)
		}
	}
}

// TestObservationString verifies a seat sees its own hand and position but
// only public information otherwise.
func TestObservationString(t *testing.T) {
	g := dealOut(t, 0)
	if err := g.Apply(BidAction(1)); err != nil {
		t.Fatal(err)
	}
	if err := g.Apply(PassAction); err != nil {
		t.Fatal(err)
	}
	if err := g.Apply(PassAction); err != nil {
		t.Fatal(err)
	}
	obs := g.ObservationString(1)
	if !strings.Contains(obs, "My hand ") {
		t.Errorf("observation missing the hand:\n%s", obs)
	}
	if !strings.Contains(obs, "My position from landlord: 1") {
		t.Errorf("observation missing the landlord-relative seat:\n%s", obs)
	}
	if !strings.Contains(obs, "Face up card rank: 3") {
		t.Errorf("observation missing the face-up rank:\n%s", obs)
	}
}
