// Command doudizhu-sim plays batches of random games through the rules
// engine and reports per-game results and aggregate statistics.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/DrAbx123/doudizhu/engine"
	"github.com/DrAbx123/doudizhu/internal/bot"
)

func main() {
	games := flag.Int("games", 100, "number of games to simulate")
	seed := flag.Uint64("seed", 1, "base random seed; game i plays with seed+i")
	show := flag.Bool("show", false, "print the full transcript of every game")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var (
		landlordWins int
		farmerWins   int
		abandoned    int
		totalBombs   int
		seatTotals   [engine.NumPlayers]float64
	)

	for i := 0; i < *games; i++ {
		g := engine.NewGame()
		if err := bot.NewRandom(*seed + uint64(i)).Playout(g); err != nil {
			logrus.WithError(err).Fatal("playout failed")
		}

		entry := logrus.WithFields(logrus.Fields{
			"game":  uuid.New(),
			"seed":  *seed + uint64(i),
			"moves": len(g.History),
		})
		returns := g.Returns()
		for p := 0; p < engine.NumPlayers; p++ {
			seatTotals[p] += returns[p]
		}

		switch {
		case g.Landlord == engine.InvalidPlayer:
			abandoned++
			entry.Info("abandoned, nobody bid")
		default:
			totalBombs += g.BombsPlayed
			if g.FinalWinner == g.Landlord {
				landlordWins++
			} else {
				farmerWins++
			}
			entry.WithFields(logrus.Fields{
				"landlord": g.Landlord,
				"bid":      g.WinningBid,
				"bombs":    g.BombsPlayed,
				"winner":   g.FinalWinner,
				"returns":  returns,
			}).Info("game over")
		}

		if *show {
			fmt.Fprintln(os.Stdout, g.String())
		}
	}

	logrus.WithFields(logrus.Fields{
		"games":         *games,
		"landlord_wins": landlordWins,
		"farmer_wins":   farmerWins,
		"abandoned":     abandoned,
		"bombs":         totalBombs,
		"seat_totals":   seatTotals,
	}).Info("simulation complete")
}
