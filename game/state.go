package game

import (
	"github.com/landlord-online/server/consts"
	"github.com/landlord-online/server/poker"
)

type PlayerState struct {
	ID   string       `json:"id"`
	Role string       `json:"role"`
	Hand []poker.Card `json:"hand"`
}

// ActionRecord is immutable once appended to the history. Empty cards
// mean PASS.
type ActionRecord struct {
	PlayerID string       `json:"playerId"`
	Cards    []poker.Card `json:"cards"`
	Type     string       `json:"type"`
}

// State is the full record of one match. It is owned by a single Referee
// and replaced wholesale on every new game; collaborators other than the
// referee must treat it as read-only.
type State struct {
	Players     map[string]*PlayerState `json:"players"`
	BottomCards []poker.Card            `json:"bottomCards"`
	LandlordID  string                  `json:"landlordId"`
	CurrentTurn string                  `json:"currentTurn"`
	History     []ActionRecord          `json:"history"`
	LastPlay    *ActionRecord           `json:"lastPlay"`
	LastNonPass *ActionRecord           `json:"lastNonPass"`
	Multiplier  int                     `json:"multiplier"`
	GameOver    bool                    `json:"gameOver"`
	WinnerSide  string                  `json:"winnerSide"`
}

func newState() *State {
	players := map[string]*PlayerState{}
	for _, seat := range consts.Seats {
		players[seat] = &PlayerState{ID: seat, Role: consts.RoleFarmer, Hand: []poker.Card{}}
	}
	return &State{
		Players:     players,
		BottomCards: []poker.Card{},
		CurrentTurn: consts.SeatHuman,
		History:     []ActionRecord{},
		Multiplier:  1,
	}
}

// HandsLeft reports the remaining hand size per seat.
func (s *State) HandsLeft() map[string]int {
	left := map[string]int{}
	for seat, player := range s.Players {
		left[seat] = len(player.Hand)
	}
	return left
}

// Observation is the per-player projection of the state. It never carries
// another player's hand and is built fresh on every query.
type Observation struct {
	MyID          string         `json:"myId"`
	MyHand        []poker.Card   `json:"myHand"`
	PublicHistory []ActionRecord `json:"publicHistory"`
	LandlordID    string         `json:"landlordId"`
	CurrentTurn   string         `json:"currentTurn"`
	LastPlay      *ActionRecord  `json:"lastPlay"`
	LastNonPass   *ActionRecord  `json:"lastNonPass"`
}
