package engine

// scoreUp fills in the final returns. The paying score is the winning bid
// doubled once per bomb or rocket played and once more for a spring: the
// landlord shedding everything before either farmer plays, or the farmers
// holding the landlord to a single led trick. The landlord wins or loses
// double what each farmer does, keeping the game zero-sum.
func (g *GameState) scoreUp() {
	if g.Landlord == InvalidPlayer {
		return
	}

	spring := false
	if g.FinalWinner == g.Landlord {
		spring = true
		for p := int8(0); p < NumPlayers; p++ {
			if p != g.Landlord && g.HandsPlayed[p] > 0 {
				spring = false
				break
			}
		}
	} else {
		spring = g.HandsPlayed[g.Landlord] == 1
	}

	paying := float64(g.WinningBid)
	doubles := g.BombsPlayed
	if spring {
		doubles++
	}
	for i := 0; i < doubles; i++ {
		paying *= 2
	}

	sign := 1.0
	if g.FinalWinner != g.Landlord {
		sign = -1.0
	}
	for p := int8(0); p < NumPlayers; p++ {
		if p == g.Landlord {
			g.returns[p] = sign * 2 * paying
		} else {
			g.returns[p] = -sign * paying
		}
	}
}
