package engine

import "fmt"

// Game-wide constants.
const (
	NumPlayers       = 3
	NumRanks         = 15
	NumSuits         = 4
	NumCardsPerSuit  = 13
	NumCards         = NumSuits*NumCardsPerSuit + 2 // 54
	NumCardsLeftOver = 3
	NumBids          = 3

	// Ranks 3..A (0..11) may participate in chains; 2 and the jokers may not.
	NumChainRanks = 12

	SoloChainMinLen = 5
	SoloChainMaxLen = NumChainRanks
	PairChainMinLen = 3
	PairChainMaxLen = 10
	AirplaneMinLen  = 2
	AirplaneMaxLen  = 6
	// A 20-card hand bounds the kicker variants.
	AirplaneWithSoloMaxLen = 5
	AirplaneWithPairMaxLen = 4
)

// Seat sentinels returned by CurrentPlayer and stored in unset seat fields.
const (
	InvalidPlayer  int8 = -1
	ChancePlayer   int8 = -2
	TerminalPlayer int8 = -3
)

// Phase is the coarse game stage. It only ever advances.
type Phase uint8

const (
	PhaseDeal Phase = iota
	PhaseAuction
	PhasePlay
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseDeal:
		return "Deal"
	case PhaseAuction:
		return "Auction"
	case PhasePlay:
		return "Play"
	case PhaseGameOver:
		return "GameOver"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Action is an index into the single flat action space shared by all phases.
type Action uint16

// NoAction marks a trick whose leader has not played yet.
const NoAction Action = 0xFFFF

// ---------------------------------------------------------------------------
// Action band constants
// ---------------------------------------------------------------------------
//
// The action space is partitioned into contiguous bands, in this order:
// face-up-slot choices, card-deal ids, the Pass sentinel, bid values, and
// then one id per distinct play combination. Band sizes are fixed; the
// combination table built in comb.go is verified against them by tests.

const (
	// Chance band: first choose which deal position is revealed face up
	// (only the dealt positions qualify), then deal cards by id.
	NumFaceUpSlots = NumCards - NumCardsLeftOver // 51

	DealActionBase Action = NumFaceUpSlots // 51, + card id

	// PassAction doubles as the bid band base: Bid v is PassAction + v.
	PassAction    Action = DealActionBase + NumCards // 105
	BidActionBase Action = PassAction

	PlayActionBase Action = PassAction + NumBids + 1 // 109

	SoloActionBase             Action = PlayActionBase                    // 109, 15 ids
	SoloChainActionBase        Action = SoloActionBase + NumRanks         // 124, 36 ids
	PairActionBase             Action = SoloChainActionBase + 36          // 160, 13 ids
	PairChainActionBase        Action = PairActionBase + 13               // 173, 52 ids
	TrioActionBase             Action = PairChainActionBase + 52          // 225, 13 ids
	TrioWithSoloActionBase     Action = TrioActionBase + 13               // 238, 182 ids
	TrioWithPairActionBase     Action = TrioWithSoloActionBase + 182      // 420, 156 ids
	AirplaneActionBase         Action = TrioWithPairActionBase + 156      // 576, 45 ids
	AirplaneWithSoloActionBase Action = AirplaneActionBase + 45           // 621, 7161 ids
	AirplaneWithPairActionBase Action = AirplaneWithSoloActionBase + 7161 // 7782, 2939 ids
	BombActionBase             Action = AirplaneWithPairActionBase + 2939 // 10721, 13 ids
	RocketAction               Action = BombActionBase + (NumRanks - 2)   // 10734

	NumDistinctActions = int(RocketAction) + 1 // 10735
	NumPlayActions     = NumDistinctActions - int(PlayActionBase)
)

// CombKind tags a play combination's category. Comparability between plays
// is decided on the tag first, never on raw action-id ranges.
type CombKind uint8

const (
	KindSolo CombKind = iota
	KindSoloChain
	KindPair
	KindPairChain
	KindTrio
	KindTrioWithSolo
	KindTrioWithPair
	KindAirplane
	KindAirplaneWithSolo
	KindAirplaneWithPair
	KindBomb
	KindRocket
)

func (k CombKind) String() string {
	switch k {
	case KindSolo:
		return "Solo"
	case KindSoloChain:
		return "SoloChain"
	case KindPair:
		return "Pair"
	case KindPairChain:
		return "PairChain"
	case KindTrio:
		return "Trio"
	case KindTrioWithSolo:
		return "TrioWithSolo"
	case KindTrioWithPair:
		return "TrioWithPair"
	case KindAirplane:
		return "Airplane"
	case KindAirplaneWithSolo:
		return "AirplaneWithSolo"
	case KindAirplaneWithPair:
		return "AirplaneWithPair"
	case KindBomb:
		return "Bomb"
	case KindRocket:
		return "Rocket"
	}
	return fmt.Sprintf("CombKind(%d)", uint8(k))
}

// Comb is the cached classification of one play action: category, chain
// length, primary rank, and the exact per-rank card usage.
type Comb struct {
	Kind   CombKind
	Length uint8 // ranks in the chain; 1 for non-chain kinds
	Rank   int8  // defining (lowest) rank of the combination
	Cards  [NumRanks]uint8
}

// Trick records one leader-initiated round of play. The winning fields track
// the best play so far and are final once the trick closes.
type Trick struct {
	Leader        int8
	WinningPlayer int8
	WinningAction Action
}

// Move is one applied action together with the seat that took it
// (ChancePlayer for deal actions).
type Move struct {
	Player int8
	Action Action
}

// ChanceOutcome pairs a legal deal action with its probability.
type ChanceOutcome struct {
	Action Action
	Prob   float64
}

// ---------------------------------------------------------------------------
// Encode functions
// ---------------------------------------------------------------------------

// DealAction returns the deal action for a card id.
func DealAction(card int) Action { return DealActionBase + Action(card) }

// BidAction returns the auction action for bid value v in [1, NumBids].
func BidAction(v int) Action { return BidActionBase + Action(v) }

// SoloAction returns the play action for a single card of the given rank.
func SoloAction(rank int) Action { return SoloActionBase + Action(rank) }

// PairAction returns the play action for a pair of the given rank.
func PairAction(rank int) Action { return PairActionBase + Action(rank) }

// TrioAction returns the play action for a trio of the given rank.
func TrioAction(rank int) Action { return TrioActionBase + Action(rank) }

// BombAction returns the play action for four of a kind of the given rank.
func BombAction(rank int) Action { return BombActionBase + Action(rank) }

// TrioWithSoloAction returns the play action for a trio of rank trio with a
// solo kicker of rank kicker (kicker != trio).
func TrioWithSoloAction(trio, kicker int) Action {
	idx := kicker
	if kicker > trio {
		idx--
	}
	return TrioWithSoloActionBase + Action(trio*(NumRanks-1)+idx)
}

// TrioWithPairAction returns the play action for a trio of rank trio with a
// pair kicker of rank kicker (kicker != trio, kicker below the jokers).
func TrioWithPairAction(trio, kicker int) Action {
	idx := kicker
	if kicker > trio {
		idx--
	}
	return TrioWithPairActionBase + Action(trio*(NumRanks-3)+idx)
}

// chainOffset is the position of (length, start) within a length-major chain
// band whose shortest chain is minLen.
func chainOffset(minLen, length, start int) int {
	off := 0
	for l := minLen; l < length; l++ {
		off += NumChainRanks - l + 1
	}
	return off + start
}

// SoloChainAction returns the play action for a run of singles.
func SoloChainAction(length, start int) Action {
	return SoloChainActionBase + Action(chainOffset(SoloChainMinLen, length, start))
}

// PairChainAction returns the play action for a run of pairs.
func PairChainAction(length, start int) Action {
	return PairChainActionBase + Action(chainOffset(PairChainMinLen, length, start))
}

// AirplaneAction returns the play action for a bare run of trios.
func AirplaneAction(length, start int) Action {
	return AirplaneActionBase + Action(chainOffset(AirplaneMinLen, length, start))
}

// ---------------------------------------------------------------------------
// Decode functions
// ---------------------------------------------------------------------------

// DecodeFaceUpSlot returns the chosen deal position if a is a face-up-slot
// choice.
func DecodeFaceUpSlot(a Action) (slot int, ok bool) {
	if a < DealActionBase {
		return int(a), true
	}
	return 0, false
}

// DecodeDealCard returns the card id if a is a deal action.
func DecodeDealCard(a Action) (card int, ok bool) {
	if a >= DealActionBase && a < DealActionBase+NumCards {
		return int(a - DealActionBase), true
	}
	return 0, false
}

// DecodeBid returns the bid value if a is a bid action.
func DecodeBid(a Action) (bid int, ok bool) {
	if a > PassAction && a <= PassAction+NumBids {
		return int(a - BidActionBase), true
	}
	return 0, false
}

// DecodePlay returns the classified combination if a is a play action.
func DecodePlay(a Action) (Comb, bool) {
	c := actionComb(a)
	if c == nil {
		return Comb{}, false
	}
	return *c, true
}
