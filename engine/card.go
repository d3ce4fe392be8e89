package engine

// Card ids run 0..53. Ids 0..51 are the suited deck laid out suit-major
// (clubs, diamonds, hearts, spades), with each suit running 3,4,...,K,A,2.
// Ids 52 and 53 are the black-and-white joker and the colored joker; they
// carry no suit and occupy the two top ranks.
const (
	BlackJokerCard = 52
	RedJokerCard   = 53

	BlackJokerRank = 13
	RedJokerRank   = 14
)

// CardRank maps a card id to its rank in [0, NumRanks).
// Rank order is the play order: 3 is lowest, then 4..K, A, 2, and the two
// jokers above everything (colored joker highest).
func CardRank(card int) int {
	if card >= NumSuits*NumCardsPerSuit {
		return NumCardsPerSuit + card - NumSuits*NumCardsPerSuit
	}
	return card % NumCardsPerSuit
}

// CardSuit maps a card id to its suit in [0, NumSuits), or -1 for jokers.
func CardSuit(card int) int {
	if card >= NumSuits*NumCardsPerSuit {
		return -1
	}
	return card / NumCardsPerSuit
}
