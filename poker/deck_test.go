package poker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landlord-online/server/poker"
)

func TestNewDeck(t *testing.T) {
	t.Run("contains_exactly_54_unique_cards", func(t *testing.T) {
		deck := poker.NewDeck()
		require.Len(t, deck, 54)

		seen := map[poker.Card]bool{}
		for _, card := range deck {
			require.False(t, seen[card], "duplicate card %s", card)
			seen[card] = true
		}
	})

	t.Run("has_four_suits_per_rank_and_both_jokers", func(t *testing.T) {
		deck := poker.NewDeck()
		bySuit := map[poker.Suit]int{}
		byRank := map[int]int{}
		for _, card := range deck {
			bySuit[card.Suit]++
			byRank[card.Rank]++
		}
		for _, suit := range []poker.Suit{poker.Spade, poker.Heart, poker.Diamond, poker.Club} {
			assert.Equal(t, 13, bySuit[suit])
		}
		assert.Equal(t, 2, bySuit[poker.Joker])
		for rank := 3; rank <= poker.RankTwo; rank++ {
			assert.Equal(t, 4, byRank[rank])
		}
		assert.Equal(t, 1, byRank[poker.RankSmallJoker])
		assert.Equal(t, 1, byRank[poker.RankBigJoker])
	})
}

func TestShuffle(t *testing.T) {
	deck := poker.NewDeck()
	shuffled := poker.NewDeck()
	poker.Shuffle(shuffled)
	require.ElementsMatch(t, deck, shuffled)
}

func TestIntn(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := poker.Intn(3)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 3)
	}
}
