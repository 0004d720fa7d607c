package rule

import (
	"sort"

	"github.com/landlord-online/server/poker"
)

// Kind is the recognized hand shape.
type Kind int

const (
	KindInvalid Kind = iota
	KindSingle
	KindPair
	KindTriple
	KindTripleSingle
	KindTriplePair
	KindStraight
	KindDoubleSequence
	KindAirplane
	KindAirplaneSingle
	KindAirplanePair
	KindBomb
	KindRocket
)

var kindDescs = map[Kind]string{
	KindInvalid:        "invalid",
	KindSingle:         "single",
	KindPair:           "pair",
	KindTriple:         "triple",
	KindTripleSingle:   "triple_single",
	KindTriplePair:     "triple_pair",
	KindStraight:       "straight",
	KindDoubleSequence: "double_sequence",
	KindAirplane:       "airplane",
	KindAirplaneSingle: "airplane_single",
	KindAirplanePair:   "airplane_pair",
	KindBomb:           "bomb",
	KindRocket:         "rocket",
}

func (k Kind) String() string {
	return kindDescs[k]
}

// Shape describes a classified hand. MainRank carries the magnitude used
// for comparison, Length the unit count of sequence shapes (1 otherwise).
type Shape struct {
	Kind     Kind
	MainRank int
	Length   int
}

// Classify maps a card set to its shape. The checks run in fixed priority
// order: rocket, bomb, single/pair, triple family, straight, double
// sequence, airplane family. Anything else, notably any four-of-a-kind
// with extra cards attached, is invalid. Input order never matters.
func Classify(cards []poker.Card) (Shape, bool) {
	if len(cards) == 0 {
		return Shape{}, false
	}
	if shape, ok := rocket(cards); ok {
		return shape, true
	}
	if shape, ok := bomb(cards); ok {
		return shape, true
	}
	if len(cards) <= 2 {
		return singleOrPair(cards)
	}
	if shape, ok := tripleFamily(cards); ok {
		return shape, true
	}
	if shape, ok := straight(cards); ok {
		return shape, true
	}
	if shape, ok := doubleSequence(cards); ok {
		return shape, true
	}
	if shape, ok := airplaneFamily(cards); ok {
		return shape, true
	}
	return Shape{}, false
}

// CanBeat reports whether cur may be played over prev. Rocket tops all,
// bombs top every plain shape, and plain shapes only compete within the
// identical kind, with equal length for the sequence shapes. Only then is
// the main rank compared.
func CanBeat(prev, cur Shape) bool {
	if prev.Kind == KindRocket {
		return false
	}
	if cur.Kind == KindRocket {
		return true
	}
	if cur.Kind == KindBomb {
		if prev.Kind != KindBomb {
			return true
		}
		return cur.MainRank > prev.MainRank
	}
	if prev.Kind == KindBomb {
		return false
	}
	if prev.Kind != cur.Kind {
		return false
	}
	switch prev.Kind {
	case KindStraight, KindDoubleSequence, KindAirplane, KindAirplaneSingle, KindAirplanePair:
		if prev.Length != cur.Length {
			return false
		}
	}
	return cur.MainRank > prev.MainRank
}

func rankCounts(cards []poker.Card) map[int]int {
	counts := map[int]int{}
	for _, card := range cards {
		counts[card.Rank]++
	}
	return counts
}

func sortedRanks(counts map[int]int) []int {
	ranks := make([]int, 0, len(counts))
	for rank := range counts {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)
	return ranks
}

// consecutive reports whether the ranks form an unbroken run. Rank 2 and
// the jokers never participate in runs.
func consecutive(ranks []int) bool {
	if ranks[len(ranks)-1] >= poker.RankTwo {
		return false
	}
	for i := 0; i < len(ranks)-1; i++ {
		if ranks[i+1] != ranks[i]+1 {
			return false
		}
	}
	return true
}

func rocket(cards []poker.Card) (Shape, bool) {
	if len(cards) != 2 {
		return Shape{}, false
	}
	counts := rankCounts(cards)
	if counts[poker.RankSmallJoker] == 1 && counts[poker.RankBigJoker] == 1 {
		return Shape{Kind: KindRocket, MainRank: poker.RankBigJoker, Length: 1}, true
	}
	return Shape{}, false
}

func bomb(cards []poker.Card) (Shape, bool) {
	if len(cards) != 4 {
		return Shape{}, false
	}
	counts := rankCounts(cards)
	if len(counts) != 1 {
		return Shape{}, false
	}
	return Shape{Kind: KindBomb, MainRank: cards[0].Rank, Length: 1}, true
}

func singleOrPair(cards []poker.Card) (Shape, bool) {
	if len(cards) == 1 {
		return Shape{Kind: KindSingle, MainRank: cards[0].Rank, Length: 1}, true
	}
	if cards[0].Rank == cards[1].Rank {
		return Shape{Kind: KindPair, MainRank: cards[0].Rank, Length: 1}, true
	}
	return Shape{}, false
}

func tripleFamily(cards []poker.Card) (Shape, bool) {
	counts := rankCounts(cards)
	tripleRank := 0
	for rank, count := range counts {
		if count == 3 {
			tripleRank = rank
			break
		}
	}
	if tripleRank == 0 {
		return Shape{}, false
	}
	switch len(cards) {
	case 3:
		return Shape{Kind: KindTriple, MainRank: tripleRank, Length: 1}, true
	case 4:
		return Shape{Kind: KindTripleSingle, MainRank: tripleRank, Length: 1}, true
	case 5:
		// The two extra cards must themselves be a pair.
		if len(counts) == 2 {
			return Shape{Kind: KindTriplePair, MainRank: tripleRank, Length: 1}, true
		}
	}
	return Shape{}, false
}

func straight(cards []poker.Card) (Shape, bool) {
	if len(cards) < 5 {
		return Shape{}, false
	}
	counts := rankCounts(cards)
	if len(counts) != len(cards) {
		return Shape{}, false
	}
	ranks := sortedRanks(counts)
	if !consecutive(ranks) {
		return Shape{}, false
	}
	return Shape{Kind: KindStraight, MainRank: ranks[len(ranks)-1], Length: len(ranks)}, true
}

func doubleSequence(cards []poker.Card) (Shape, bool) {
	if len(cards) < 6 || len(cards)%2 != 0 {
		return Shape{}, false
	}
	counts := rankCounts(cards)
	for _, count := range counts {
		if count != 2 {
			return Shape{}, false
		}
	}
	ranks := sortedRanks(counts)
	if !consecutive(ranks) {
		return Shape{}, false
	}
	return Shape{Kind: KindDoubleSequence, MainRank: ranks[len(ranks)-1], Length: len(ranks)}, true
}

func airplaneFamily(cards []poker.Card) (Shape, bool) {
	counts := rankCounts(cards)
	triples := make([]int, 0, len(counts))
	for rank, count := range counts {
		if count >= 3 {
			triples = append(triples, rank)
		}
	}
	if len(triples) < 2 {
		return Shape{}, false
	}
	sort.Ints(triples)
	// All triple ranks must form one unbroken run, jokers and 2 excluded.
	if !consecutive(triples) {
		return Shape{}, false
	}
	planeLen := len(triples)
	mainRank := triples[planeLen-1]
	if len(cards) == planeLen*3 {
		return Shape{Kind: KindAirplane, MainRank: mainRank, Length: planeLen}, true
	}

	wings := map[int]int{}
	for rank, count := range counts {
		wings[rank] = count
	}
	wingTotal := 0
	for _, rank := range triples {
		wings[rank] -= 3
	}
	for rank, count := range wings {
		if count == 0 {
			delete(wings, rank)
		}
	}
	for _, count := range wings {
		wingTotal += count
	}

	if wingTotal == planeLen {
		return Shape{Kind: KindAirplaneSingle, MainRank: mainRank, Length: planeLen}, true
	}
	if wingTotal == planeLen*2 {
		for _, count := range wings {
			if count != 2 {
				return Shape{}, false
			}
		}
		return Shape{Kind: KindAirplanePair, MainRank: mainRank, Length: planeLen}, true
	}
	return Shape{}, false
}
