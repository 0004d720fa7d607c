package ai

import (
	"github.com/landlord-online/server/game"
	"github.com/landlord-online/server/poker"
)

// Naive leads its lowest single when free to lead, otherwise takes the
// first legal candidate, which the enumeration order makes the smallest
// qualifying one. Passes when only the PASS sentinel remains.
type Naive struct{}

func NewNaive() Engine {
	return Naive{}
}

func (Naive) ChooseAction(obs game.Observation, legal [][]poker.Card) []poker.Card {
	if len(legal) == 0 {
		return nil
	}
	free := obs.LastNonPass == nil || obs.LastNonPass.PlayerID == obs.MyID
	if free {
		for _, move := range legal {
			if len(move) == 1 {
				return move
			}
		}
	}
	return legal[0]
}
