package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landlord-online/server/ai"
	"github.com/landlord-online/server/consts"
	"github.com/landlord-online/server/game"
	"github.com/landlord-online/server/poker"
)

func single(rank int) []poker.Card {
	return []poker.Card{{Rank: rank, Suit: poker.Spade}}
}

func TestNaiveLeadsLowestSingle(t *testing.T) {
	engine := ai.NewNaive()
	obs := game.Observation{MyID: consts.SeatHuman}
	legal := [][]poker.Card{
		single(3),
		single(9),
		{{Rank: 3, Suit: poker.Spade}, {Rank: 3, Suit: poker.Heart}},
	}
	cards := engine.ChooseAction(obs, legal)
	require.Equal(t, single(3), cards)
}

func TestNaiveTakesFirstLegalWhenBeating(t *testing.T) {
	engine := ai.NewNaive()
	last := game.ActionRecord{PlayerID: consts.SeatBot2, Cards: single(10), Type: consts.ActionPlay}
	obs := game.Observation{MyID: consts.SeatHuman, LastNonPass: &last}
	legal := [][]poker.Card{single(11), single(14)}
	cards := engine.ChooseAction(obs, legal)
	require.Equal(t, single(11), cards)
}

func TestNaiveOwnLastPlayCountsAsFreeLead(t *testing.T) {
	engine := ai.NewNaive()
	last := game.ActionRecord{PlayerID: consts.SeatHuman, Cards: single(10), Type: consts.ActionPlay}
	obs := game.Observation{MyID: consts.SeatHuman, LastNonPass: &last}
	legal := [][]poker.Card{
		{{Rank: 4, Suit: poker.Spade}, {Rank: 4, Suit: poker.Heart}},
		single(5),
	}
	cards := engine.ChooseAction(obs, legal)
	require.Equal(t, single(5), cards)
}

func TestNaivePassesOnSentinel(t *testing.T) {
	engine := ai.NewNaive()
	last := game.ActionRecord{PlayerID: consts.SeatBot2, Cards: single(14), Type: consts.ActionPlay}
	obs := game.Observation{MyID: consts.SeatHuman, LastNonPass: &last}
	cards := engine.ChooseAction(obs, [][]poker.Card{{}})
	assert.Empty(t, cards)
}
