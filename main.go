package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/landlord-online/server/ai"
	"github.com/landlord-online/server/config"
	"github.com/landlord-online/server/consts"
	"github.com/landlord-online/server/database"
	"github.com/landlord-online/server/game"
	"github.com/landlord-online/server/render"
)

// Self-play demo: three naive engines drive one match through a table.
// A transport layer would sit where this loop sits.
func main() {
	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	registry := database.NewRegistry()
	table := registry.CreateTable(game.FixedRole(cfg.HumanRole))
	defer registry.DeleteTable(table.ID)

	engines := map[string]ai.Engine{}
	for _, seat := range consts.Seats {
		engines[seat] = ai.NewNaive()
	}

	table.StartNewGame()
	for !table.Concluded() {
		seat := table.CurrentTurn()
		obs := table.Observation(seat)
		moves := table.ValidMoves(seat)
		cards := engines[seat].ChooseAction(obs, moves)
		if ok, code := table.PlayCards(seat, cards); !ok {
			logrus.WithFields(logrus.Fields{"player": seat, "code": code}).Error("play rejected")
			if ok, code = table.PlayCards(seat, nil); !ok {
				logrus.WithField("code", code).Fatal("pass rejected, aborting")
			}
		}
		history := table.Observation(seat).PublicHistory
		fmt.Println(render.Action(history[len(history)-1]))
	}

	fmt.Printf("Winner side: %s, multiplier: x%d\n", table.WinnerSide(), table.Multiplier())
}
