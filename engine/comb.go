package engine

import "fmt"

// playCombs maps play-action offsets (action - PlayActionBase) to their
// classified combinations. Built once at init, never mutated afterwards;
// decoding an action is a range check plus an index into this table.
var playCombs = buildPlayCombs()

func actionComb(a Action) *Comb {
	if a < PlayActionBase || int(a) >= NumDistinctActions {
		return nil
	}
	return &playCombs[a-PlayActionBase]
}

// handSupports reports whether the hand holds every card the combination uses.
func handSupports(hand *[NumRanks]uint8, c *Comb) bool {
	for r := 0; r < NumRanks; r++ {
		if c.Cards[r] > hand[r] {
			return false
		}
	}
	return true
}

// Beats reports whether c may legally replace w as the winning play of the
// current trick. A rocket beats everything, a bomb beats everything except a
// rocket or a higher bomb, and otherwise only same-category same-length
// combinations compare, on their primary rank.
func (c *Comb) Beats(w *Comb) bool {
	switch {
	case c.Kind == KindRocket:
		return w.Kind != KindRocket
	case w.Kind == KindRocket:
		return false
	case c.Kind == KindBomb:
		return w.Kind != KindBomb || c.Rank > w.Rank
	case w.Kind == KindBomb:
		return false
	}
	return c.Kind == w.Kind && c.Length == w.Length && c.Rank > w.Rank
}

// ActionForCards finds the play action whose category and card usage match
// exactly. The kind is required because a raw count vector does not identify
// which singles of an airplane are attachments.
func ActionForCards(kind CombKind, cards [NumRanks]uint8) (Action, bool) {
	lo, hi := kindBand(kind)
	for off := lo; off < hi; off++ {
		if playCombs[off].Cards == cards {
			return PlayActionBase + Action(off), true
		}
	}
	return 0, false
}

// kindBand returns the half-open offset range of a category within playCombs.
func kindBand(kind CombKind) (lo, hi int) {
	switch kind {
	case KindSolo:
		return bandOffsets(SoloActionBase, SoloChainActionBase)
	case KindSoloChain:
		return bandOffsets(SoloChainActionBase, PairActionBase)
	case KindPair:
		return bandOffsets(PairActionBase, PairChainActionBase)
	case KindPairChain:
		return bandOffsets(PairChainActionBase, TrioActionBase)
	case KindTrio:
		return bandOffsets(TrioActionBase, TrioWithSoloActionBase)
	case KindTrioWithSolo:
		return bandOffsets(TrioWithSoloActionBase, TrioWithPairActionBase)
	case KindTrioWithPair:
		return bandOffsets(TrioWithPairActionBase, AirplaneActionBase)
	case KindAirplane:
		return bandOffsets(AirplaneActionBase, AirplaneWithSoloActionBase)
	case KindAirplaneWithSolo:
		return bandOffsets(AirplaneWithSoloActionBase, AirplaneWithPairActionBase)
	case KindAirplaneWithPair:
		return bandOffsets(AirplaneWithPairActionBase, BombActionBase)
	case KindBomb:
		return bandOffsets(BombActionBase, RocketAction)
	case KindRocket:
		return bandOffsets(RocketAction, RocketAction+1)
	}
	return 0, 0
}

func bandOffsets(base, end Action) (int, int) {
	return int(base - PlayActionBase), int(end - PlayActionBase)
}

// ---------------------------------------------------------------------------
// Table construction
// ---------------------------------------------------------------------------

func buildPlayCombs() []Comb {
	combs := make([]Comb, 0, NumPlayActions)
	add := func(c Comb) { combs = append(combs, c) }

	// Solos, every rank including both jokers.
	for r := 0; r < NumRanks; r++ {
		c := Comb{Kind: KindSolo, Length: 1, Rank: int8(r)}
		c.Cards[r] = 1
		add(c)
	}

	// Solo chains, length-major.
	addChains(KindSoloChain, SoloChainMinLen, SoloChainMaxLen, 1, add)

	// Pairs, ranks 3..2.
	for r := 0; r < NumRanks-2; r++ {
		c := Comb{Kind: KindPair, Length: 1, Rank: int8(r)}
		c.Cards[r] = 2
		add(c)
	}

	// Pair chains.
	addChains(KindPairChain, PairChainMinLen, PairChainMaxLen, 2, add)

	// Trios.
	for r := 0; r < NumRanks-2; r++ {
		c := Comb{Kind: KindTrio, Length: 1, Rank: int8(r)}
		c.Cards[r] = 3
		add(c)
	}

	// Trio with one solo kicker of any other rank.
	for r := 0; r < NumRanks-2; r++ {
		for k := 0; k < NumRanks; k++ {
			if k == r {
				continue
			}
			c := Comb{Kind: KindTrioWithSolo, Length: 1, Rank: int8(r)}
			c.Cards[r] = 3
			c.Cards[k] = 1
			add(c)
		}
	}

	// Trio with one pair kicker of any other pairable rank.
	for r := 0; r < NumRanks-2; r++ {
		for k := 0; k < NumRanks-2; k++ {
			if k == r {
				continue
			}
			c := Comb{Kind: KindTrioWithPair, Length: 1, Rank: int8(r)}
			c.Cards[r] = 3
			c.Cards[k] = 2
			add(c)
		}
	}

	// Bare airplanes (trio chains).
	addChains(KindAirplane, AirplaneMinLen, AirplaneMaxLen, 3, add)

	// Airplanes with one solo kicker per trio.
	addAirplaneCombs(KindAirplaneWithSolo, AirplaneWithSoloMaxLen, 1, add)

	// Airplanes with one pair kicker per trio.
	addAirplaneCombs(KindAirplaneWithPair, AirplaneWithPairMaxLen, 2, add)

	// Bombs.
	for r := 0; r < NumRanks-2; r++ {
		c := Comb{Kind: KindBomb, Length: 1, Rank: int8(r)}
		c.Cards[r] = 4
		add(c)
	}

	// Rocket: both jokers.
	rocket := Comb{Kind: KindRocket, Length: 1, Rank: BlackJokerRank}
	rocket.Cards[BlackJokerRank] = 1
	rocket.Cards[RedJokerRank] = 1
	add(rocket)

	if len(combs) != NumPlayActions {
		panic(fmt.Sprintf("combination table has %d entries, action space expects %d",
			len(combs), NumPlayActions))
	}
	return combs
}

// addChains emits every consecutive run of the given per-rank multiplicity,
// length-major then start-rank, over the chainable ranks.
func addChains(kind CombKind, minLen, maxLen, mult int, add func(Comb)) {
	for length := minLen; length <= maxLen; length++ {
		for start := 0; start+length <= NumChainRanks; start++ {
			c := Comb{Kind: kind, Length: uint8(length), Rank: int8(start)}
			for r := start; r < start+length; r++ {
				c.Cards[r] = uint8(mult)
			}
			add(c)
		}
	}
}

// addAirplaneCombs emits every trio run of length 2..maxLen together with
// every admissible kicker set: one kicker per trio, pairwise distinct ranks
// disjoint from the run. Solo kickers (mult 1) may use any rank but never
// both jokers at once; pair kickers (mult 2) come from the pairable ranks.
func addAirplaneCombs(kind CombKind, maxLen, mult int, add func(Comb)) {
	for length := AirplaneMinLen; length <= maxLen; length++ {
		for start := 0; start+length <= NumChainRanks; start++ {
			base := Comb{Kind: kind, Length: uint8(length), Rank: int8(start)}
			for r := start; r < start+length; r++ {
				base.Cards[r] = 3
			}
			forEachKickerSet(start, length, length, mult, func(kickers []int8) {
				c := base
				for _, k := range kickers {
					c.Cards[k] = uint8(mult)
				}
				add(c)
			})
		}
	}
}

// forEachKickerSet calls fn with each ascending set of count distinct kicker
// ranks outside [chainStart, chainStart+chainLen).
func forEachKickerSet(chainStart, chainLen, count, mult int, fn func([]int8)) {
	maxRank := NumRanks
	if mult == 2 {
		maxRank = NumRanks - 2
	}
	set := make([]int8, 0, count)
	var rec func(next int)
	rec = func(next int) {
		if len(set) == count {
			fn(set)
			return
		}
		for r := next; r < maxRank; r++ {
			if r >= chainStart && r < chainStart+chainLen {
				continue
			}
			// Two solo joker kickers would embed a rocket.
			if mult == 1 && r == RedJokerRank && len(set) > 0 && set[len(set)-1] == BlackJokerRank {
				continue
			}
			set = append(set, int8(r))
			rec(r + 1)
			set = set[:len(set)-1]
		}
	}
	rec(0)
}
