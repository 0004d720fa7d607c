package ai

import (
	"github.com/landlord-online/server/game"
	"github.com/landlord-online/server/poker"
)

// Engine picks a play from the referee's legal moves. An empty return
// means PASS. Engines only ever see their own observation; the referee
// never hands them another player's cards.
type Engine interface {
	ChooseAction(obs game.Observation, legal [][]poker.Card) []poker.Card
}
