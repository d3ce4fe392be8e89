package engine

import (
	"fmt"
	"strings"
)

const (
	rankChars = "3456789TJQKA2"
	suitChars = "CDHS"
)

// RankString returns the display form of a rank: one character for the
// suited ranks, bracketed names for the jokers.
func RankString(rank int) string {
	switch rank {
	case BlackJokerRank:
		return "(BWJ)"
	case RedJokerRank:
		return "(CJ)"
	}
	return string(rankChars[rank])
}

// CardString returns the display form of a card id, suit first.
func CardString(card int) string {
	if suit := CardSuit(card); suit >= 0 {
		return string(suitChars[suit]) + string(rankChars[CardRank(card)])
	}
	return RankString(CardRank(card))
}

// FormatCards renders a per-rank count vector as repeated rank characters,
// ascending.
func FormatCards(cards [NumRanks]uint8) string {
	var b strings.Builder
	for r := 0; r < NumRanks; r++ {
		for i := uint8(0); i < cards[r]; i++ {
			b.WriteString(RankString(r))
		}
	}
	return b.String()
}

// formatKickerComb renders a combination whose kickers must be told apart
// from its core: the core run first, then a dash and the attachments.
func formatKickerComb(c *Comb) string {
	var core, kickers [NumRanks]uint8
	for r := int(c.Rank); r < int(c.Rank)+int(c.Length); r++ {
		core[r] = 3
	}
	for r := 0; r < NumRanks; r++ {
		kickers[r] = c.Cards[r] - core[r]
	}
	return FormatCards(core) + "-" + FormatCards(kickers)
}

// ActionString renders any action for transcripts and error messages.
func ActionString(a Action) string {
	if a == NoAction {
		return "(none)"
	}
	if slot, ok := DecodeFaceUpSlot(a); ok {
		return fmt.Sprintf("Reveal position %d", slot)
	}
	if card, ok := DecodeDealCard(a); ok {
		return "Deal " + CardString(card)
	}
	if a == PassAction {
		return "Pass"
	}
	if bid, ok := DecodeBid(a); ok {
		return fmt.Sprintf("Bid %d", bid)
	}
	c := actionComb(a)
	if c == nil {
		return fmt.Sprintf("Action(%d)", a)
	}
	switch c.Kind {
	case KindTrioWithSolo, KindTrioWithPair, KindAirplaneWithSolo, KindAirplaneWithPair:
		return formatKickerComb(c)
	}
	return FormatCards(c.Cards)
}

// originalDeal reconstructs the as-dealt card-id hands from the history:
// three 17-card hands plus the leftover block. Only meaningful once the
// deal has completed.
func (g *GameState) originalDeal() (hands [NumPlayers][]int, leftover []int) {
	var dealt [NumCards]bool
	for i, m := range g.History {
		if i == 0 {
			continue // face-up slot choice
		}
		if i > NumFaceUpSlots {
			break
		}
		card, _ := DecodeDealCard(m.Action)
		seat := (i - 1) % NumPlayers
		hands[seat] = append(hands[seat], card)
		dealt[card] = true
	}
	for c := 0; c < NumCards; c++ {
		if !dealt[c] {
			leftover = append(leftover, c)
		}
	}
	return hands, leftover
}

// FormatHand renders card ids as a space-separated list.
func FormatHand(cards []int) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = CardString(c)
	}
	return strings.Join(parts, " ")
}

func (g *GameState) formatDeal(b *strings.Builder) {
	if g.DealCount < NumCards-NumCardsLeftOver {
		fmt.Fprintf(b, "Dealing: %d of %d cards dealt\n", g.DealCount, NumCards-NumCardsLeftOver)
		return
	}
	hands, leftover := g.originalDeal()
	for p := 0; p < NumPlayers; p++ {
		fmt.Fprintf(b, "Player %d dealt: %s\n", p, FormatHand(hands[p]))
	}
	fmt.Fprintf(b, "Leftover: %s\n", FormatHand(leftover))
	fmt.Fprintf(b, "Face up %s at position %d, player %d bids first\n",
		RankString(int(g.FaceUpRank)), g.FaceUpSlot, g.FirstPlayer)
}

func (g *GameState) formatAuction(b *strings.Builder) {
	start := NumFaceUpSlots + 1
	end := len(g.History) - g.PlayCount
	if end <= start {
		return
	}
	b.WriteString("Auction:")
	for _, m := range g.History[start:end] {
		fmt.Fprintf(b, " %d:%s", m.Player, ActionString(m.Action))
	}
	b.WriteByte('\n')
	if g.Landlord != InvalidPlayer {
		fmt.Fprintf(b, "Player %d is the landlord at bid %d\n", g.Landlord, g.WinningBid)
	}
}

func (g *GameState) formatPlay(b *strings.Builder) {
	if g.PlayCount == 0 {
		return
	}
	b.WriteString("Play:")
	for _, m := range g.History[len(g.History)-g.PlayCount:] {
		fmt.Fprintf(b, " %d:%s", m.Player, ActionString(m.Action))
	}
	b.WriteByte('\n')
	for p := 0; p < NumPlayers; p++ {
		fmt.Fprintf(b, "Player %d holds: %s\n", p, FormatCards(g.Hands[p]))
	}
}

func (g *GameState) formatResult(b *strings.Builder) {
	if g.Phase != PhaseGameOver {
		return
	}
	if g.Landlord == InvalidPlayer {
		b.WriteString("Nobody bid, the hand is abandoned\n")
		return
	}
	fmt.Fprintf(b, "Player %d wins; returns %v\n", g.FinalWinner, g.returns)
}

// String renders a full transcript of the game so far.
func (g *GameState) String() string {
	var b strings.Builder
	g.formatDeal(&b)
	if g.Phase >= PhaseAuction {
		g.formatAuction(&b)
	}
	if g.Phase >= PhasePlay {
		g.formatPlay(&b)
	}
	g.formatResult(&b)
	return b.String()
}

// ObservationString renders the game from one seat's point of view: its own
// hand, the public play ledger, and the auction outcome as far as known.
func (g *GameState) ObservationString(player int8) string {
	var b strings.Builder
	fmt.Fprintf(&b, "My hand %s\n", FormatCards(g.Hands[player]))
	fmt.Fprintf(&b, "Played cards %s\n", FormatCards(g.Played))
	if g.FaceUpRank >= 0 {
		fmt.Fprintf(&b, "Face up card rank: %s\n", RankString(int(g.FaceUpRank)))
	}
	fmt.Fprintf(&b, "Start player: %d\n", g.FirstPlayer)
	if g.Landlord != InvalidPlayer {
		rel := (player - g.Landlord + NumPlayers) % NumPlayers
		fmt.Fprintf(&b, "My position from landlord: %d\n", rel)
	}
	return b.String()
}
