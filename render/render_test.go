package render_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/landlord-online/server/consts"
	"github.com/landlord-online/server/game"
	"github.com/landlord-online/server/poker"
	"github.com/landlord-online/server/render"
)

func init() {
	color.NoColor = true
}

func TestCards(t *testing.T) {
	assert.Equal(t, "PASS", render.Cards(nil))
	assert.Equal(t, "♠K ♥3 BJ", render.Cards([]poker.Card{
		{Rank: poker.RankKing, Suit: poker.Spade},
		{Rank: 3, Suit: poker.Heart},
		{Rank: poker.RankBigJoker, Suit: poker.Joker},
	}))
}

func TestAction(t *testing.T) {
	pass := game.ActionRecord{PlayerID: consts.SeatBot1, Type: consts.ActionPass}
	assert.Equal(t, "bot1 passed", render.Action(pass))

	play := game.ActionRecord{
		PlayerID: consts.SeatHuman,
		Cards:    []poker.Card{{Rank: 7, Suit: poker.Club}},
		Type:     consts.ActionPlay,
	}
	assert.Equal(t, "human played ♣7", render.Action(play))
}

func TestObservation(t *testing.T) {
	obs := game.Observation{
		MyID:        consts.SeatHuman,
		MyHand:      []poker.Card{{Rank: 4, Suit: poker.Spade}},
		LandlordID:  consts.SeatBot1,
		CurrentTurn: consts.SeatHuman,
	}
	out := render.Observation(obs)
	assert.Contains(t, out, "Landlord: bot1")
	assert.Contains(t, out, "Your cards: ♠4")
}
