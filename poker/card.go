package poker

import (
	"sort"
	"strconv"
	"strings"
)

// Suit marks. Jokers carry the dedicated joker mark instead of one of the
// four regular suits.
type Suit byte

const (
	Spade   Suit = 'S'
	Heart   Suit = 'H'
	Diamond Suit = 'D'
	Club    Suit = 'C'
	Joker   Suit = 'J'
)

// Ranks run 3..17: literal 3-10, then J Q K A, then 2 above everything,
// then the two jokers.
const (
	RankJack       = 11
	RankQueen      = 12
	RankKing       = 13
	RankAce        = 14
	RankTwo        = 15
	RankSmallJoker = 16
	RankBigJoker   = 17
)

// Card is an immutable value, equal by (rank, suit).
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

func (c Card) Less(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.Suit < other.Suit
}

func (c Card) String() string {
	switch c.Rank {
	case RankSmallJoker:
		return "SJ"
	case RankBigJoker:
		return "BJ"
	}
	return suitDescs[c.Suit] + rankDesc(c.Rank)
}

func rankDesc(rank int) string {
	switch rank {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	case RankTwo:
		return "2"
	}
	return strconv.Itoa(rank)
}

var suitDescs = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Diamond: "♦",
	Club:    "♣",
}

// Sort orders cards in place by rank, then suit.
func Sort(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Less(cards[j])
	})
}

// Sorted returns a sorted copy, leaving the input untouched.
func Sorted(cards []Card) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	Sort(sorted)
	return sorted
}

// Desc renders a card set for logs, "PASS" for an empty set.
func Desc(cards []Card) string {
	if len(cards) == 0 {
		return "PASS"
	}
	descs := make([]string, 0, len(cards))
	for _, card := range cards {
		descs = append(descs, card.String())
	}
	return strings.Join(descs, " ")
}
