package game

import (
	"sort"

	"github.com/landlord-online/server/poker"
	"github.com/landlord-online/server/rule"
)

// GetAllValidMoves enumerates candidate plays for one seat: every single,
// plus same-rank pairs, triples and bombs, plus the rocket. When a foreign
// hand is on the table the candidates are filtered through CanBeat; an
// empty move (the PASS sentinel) is returned alone when nothing qualifies.
//
// Straights, double sequences and the airplane family are deliberately
// not enumerated. The comparator accepts them when a caller plays them,
// they are just never proposed here.
func (r *Referee) GetAllValidMoves(playerID string) [][]poker.Card {
	obs := r.GetObservation(playerID)
	moves := enumerateMoves(obs.MyHand)

	last := obs.LastNonPass
	if last == nil || last.PlayerID == playerID {
		return moves
	}
	prev, ok := rule.Classify(last.Cards)
	if !ok {
		return moves
	}

	legal := make([][]poker.Card, 0, len(moves))
	for _, move := range moves {
		if shape, ok := rule.Classify(move); ok && rule.CanBeat(prev, shape) {
			legal = append(legal, move)
		}
	}
	if len(legal) == 0 {
		return [][]poker.Card{{}}
	}
	return legal
}

func enumerateMoves(hand []poker.Card) [][]poker.Card {
	moves := make([][]poker.Card, 0, len(hand)*2)
	for _, card := range hand {
		moves = append(moves, []poker.Card{card})
	}

	byRank := map[int][]poker.Card{}
	for _, card := range hand {
		byRank[card.Rank] = append(byRank[card.Rank], card)
	}
	ranks := make([]int, 0, len(byRank))
	for rank := range byRank {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)

	for _, rank := range ranks {
		cards := byRank[rank]
		if len(cards) >= 2 {
			moves = append(moves, cards[:2:2])
		}
		if len(cards) >= 3 {
			moves = append(moves, cards[:3:3])
		}
		if len(cards) == 4 {
			moves = append(moves, cards[:4:4])
		}
	}

	if len(byRank[poker.RankSmallJoker]) > 0 && len(byRank[poker.RankBigJoker]) > 0 {
		moves = append(moves, []poker.Card{
			{Rank: poker.RankSmallJoker, Suit: poker.Joker},
			{Rank: poker.RankBigJoker, Suit: poker.Joker},
		})
	}
	return moves
}
