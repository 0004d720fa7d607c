package poker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landlord-online/server/poker"
)

func TestCardString(t *testing.T) {
	assert.Equal(t, "♠A", poker.Card{Rank: poker.RankAce, Suit: poker.Spade}.String())
	assert.Equal(t, "♥10", poker.Card{Rank: 10, Suit: poker.Heart}.String())
	assert.Equal(t, "♦2", poker.Card{Rank: poker.RankTwo, Suit: poker.Diamond}.String())
	assert.Equal(t, "♣J", poker.Card{Rank: poker.RankJack, Suit: poker.Club}.String())
	assert.Equal(t, "SJ", poker.Card{Rank: poker.RankSmallJoker, Suit: poker.Joker}.String())
	assert.Equal(t, "BJ", poker.Card{Rank: poker.RankBigJoker, Suit: poker.Joker}.String())
}

func TestSorted(t *testing.T) {
	cards := []poker.Card{
		{Rank: poker.RankTwo, Suit: poker.Heart},
		{Rank: 3, Suit: poker.Spade},
		{Rank: poker.RankKing, Suit: poker.Club},
		{Rank: 3, Suit: poker.Club},
	}
	sorted := poker.Sorted(cards)
	require.Equal(t, []poker.Card{
		{Rank: 3, Suit: poker.Club},
		{Rank: 3, Suit: poker.Spade},
		{Rank: poker.RankKing, Suit: poker.Club},
		{Rank: poker.RankTwo, Suit: poker.Heart},
	}, sorted)
	// Input stays untouched.
	require.Equal(t, poker.Card{Rank: poker.RankTwo, Suit: poker.Heart}, cards[0])
}

func TestDesc(t *testing.T) {
	assert.Equal(t, "PASS", poker.Desc(nil))
	assert.Equal(t, "♠3 BJ", poker.Desc([]poker.Card{
		{Rank: 3, Suit: poker.Spade},
		{Rank: poker.RankBigJoker, Suit: poker.Joker},
	}))
}
