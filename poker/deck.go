package poker

import (
	"crypto/rand"
	"math/big"
)

var suits = []Suit{Spade, Heart, Diamond, Club}

// NewDeck builds the full 54-card deck in deterministic order: ranks 3..15
// across the four suits, then the two jokers.
func NewDeck() []Card {
	deck := make([]Card, 0, 54)
	for rank := 3; rank <= RankTwo; rank++ {
		for _, suit := range suits {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	deck = append(deck, Card{Rank: RankSmallJoker, Suit: Joker})
	deck = append(deck, Card{Rank: RankBigJoker, Suit: Joker})
	return deck
}

// Shuffle permutes the cards in place. Dealt cards decide real stakes, so
// the permutation comes from the platform CSPRNG, not a seeded PRNG.
func Shuffle(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Intn returns a uniform random int in [0, n) from the platform CSPRNG.
func Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(v.Int64())
}
