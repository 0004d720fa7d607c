package game

import (
	"github.com/sirupsen/logrus"

	"github.com/landlord-online/server/consts"
	"github.com/landlord-online/server/poker"
	"github.com/landlord-online/server/rule"
)

// Referee is the authority of one match. It deals, validates plays
// against the rules, mutates the state and decides the winner. A referee
// is single-writer: callers must serialize StartNewGame and PlayCards on
// the same instance, and must not interleave them with reads.
type Referee struct {
	state   *State
	roles   RoleProvider
	started bool
	log     *logrus.Entry
}

func NewReferee(roles RoleProvider) *Referee {
	if roles == nil {
		roles = FixedRole(consts.RoleLandlord)
	}
	return &Referee{
		state: newState(),
		roles: roles,
		log:   logrus.WithField("component", "referee"),
	}
}

// State returns the live match state. Read-only for everyone but the
// referee itself.
func (r *Referee) State() *State {
	return r.state
}

func (r *Referee) Started() bool {
	return r.started
}

func (r *Referee) Concluded() bool {
	return r.started && r.state.GameOver
}

func (r *Referee) CurrentTurn() string {
	return r.state.CurrentTurn
}

func (r *Referee) Multiplier() int {
	return r.state.Multiplier
}

func (r *Referee) WinnerSide() string {
	return r.state.WinnerSide
}

// StartNewGame discards any previous match and deals a fresh one:
// 17/17/17 plus a 3-card bottom absorbed by the landlord, who leads. The
// human seat is dealt landlord; the role preference may then swap it onto
// a bot seat before anything becomes observable.
func (r *Referee) StartNewGame() {
	r.log.Info("starting new game")
	state := newState()

	deck := poker.NewDeck()
	poker.Shuffle(deck)

	// Full slice expressions keep the hands from sharing spare capacity,
	// so absorbing the bottom cannot clobber a neighbour's deal.
	state.Players[consts.SeatHuman].Hand = deck[0:17:17]
	state.Players[consts.SeatBot1].Hand = deck[17:34:34]
	state.Players[consts.SeatBot2].Hand = deck[34:51:51]
	state.BottomCards = deck[51:]

	bottom := state.BottomCards
	landlord := state.Players[consts.SeatHuman]
	landlord.Role = consts.RoleLandlord
	landlord.Hand = append(landlord.Hand, bottom...)
	state.BottomCards = []poker.Card{}
	state.LandlordID = landlord.ID
	state.CurrentTurn = landlord.ID

	r.state = state
	r.started = true
	r.adjustRolesForHumanChoice()

	r.log.WithFields(logrus.Fields{
		"landlord": r.state.LandlordID,
		"bottom":   poker.Desc(bottom),
	}).Info("new game started")
}

// adjustRolesForHumanChoice swaps the whole landlord position, hand
// included, onto a randomly chosen bot seat when the human wants to play
// farmer. Runs before the fresh state is published, so no intermediate
// state is observable.
func (r *Referee) adjustRolesForHumanChoice() {
	if r.roles.HumanRole() != consts.RoleFarmer {
		return
	}
	bots := []string{consts.SeatBot1, consts.SeatBot2}
	landlordSeat := bots[poker.Intn(len(bots))]

	human := r.state.Players[consts.SeatHuman]
	bot := r.state.Players[landlordSeat]

	human.Hand, bot.Hand = bot.Hand, human.Hand
	human.Role = consts.RoleFarmer
	bot.Role = consts.RoleLandlord
	r.state.LandlordID = bot.ID
	r.state.CurrentTurn = bot.ID

	r.log.WithField("landlord", bot.ID).Info("human plays farmer, landlord moved to bot seat")
}

// GetObservation builds the read-only projection for one seat. Other
// players' hands are never exposed.
func (r *Referee) GetObservation(playerID string) Observation {
	player := r.mustPlayer(playerID)
	history := make([]ActionRecord, len(r.state.History))
	copy(history, r.state.History)
	return Observation{
		MyID:          playerID,
		MyHand:        poker.Sorted(player.Hand),
		PublicHistory: history,
		LandlordID:    r.state.LandlordID,
		CurrentTurn:   r.state.CurrentTurn,
		LastPlay:      r.state.LastPlay,
		LastNonPass:   r.state.LastNonPass,
	}
}

// PlayCards attempts a play for one seat. Empty cards are a PASS. The
// returned code is empty on success, one of the consts.Code values on a
// rule violation. A rejected play leaves the hand card-for-card unchanged:
// validation runs on a copy and the hand is only committed afterwards.
func (r *Referee) PlayCards(playerID string, cards []poker.Card) (bool, string) {
	player := r.mustPlayer(playerID)
	if r.state.GameOver {
		return false, consts.CodeGameOver
	}
	if playerID != r.state.CurrentTurn {
		return false, consts.CodeNotYourTurn
	}

	if len(cards) == 0 {
		record := ActionRecord{PlayerID: playerID, Cards: []poker.Card{}, Type: consts.ActionPass}
		r.state.History = append(r.state.History, record)
		r.state.LastPlay = &record
		r.log.WithField("player", playerID).Info("pass")
		r.advanceTurn()
		return true, ""
	}

	remaining, ok := removeCards(player.Hand, cards)
	if !ok {
		return false, consts.CodeCardsNotInHand
	}
	shape, ok := rule.Classify(cards)
	if !ok {
		return false, consts.CodeInvalidType
	}
	if last := r.state.LastNonPass; last != nil && last.PlayerID != playerID {
		if prev, ok := rule.Classify(last.Cards); ok && !rule.CanBeat(prev, shape) {
			return false, consts.CodeCannotBeat
		}
	}

	player.Hand = remaining
	played := make([]poker.Card, len(cards))
	copy(played, cards)
	record := ActionRecord{PlayerID: playerID, Cards: played, Type: consts.ActionPlay}
	r.state.History = append(r.state.History, record)
	r.state.LastPlay = &record
	r.state.LastNonPass = &record

	r.log.WithFields(logrus.Fields{
		"player": playerID,
		"cards":  poker.Desc(played),
		"type":   shape.Kind.String(),
	}).Info("play accepted")

	if shape.Kind == rule.KindBomb || shape.Kind == rule.KindRocket {
		r.state.Multiplier *= 2
		r.log.WithField("multiplier", r.state.Multiplier).Info("multiplier doubled")
	}

	if len(player.Hand) == 0 {
		r.state.GameOver = true
		if player.Role == consts.RoleLandlord {
			r.state.WinnerSide = consts.WinnerLandlord
		} else {
			r.state.WinnerSide = consts.WinnerFarmers
		}
		r.log.WithFields(logrus.Fields{
			"player": playerID,
			"winner": r.state.WinnerSide,
		}).Info("game over")
		return true, ""
	}

	r.advanceTurn()
	return true, ""
}

func (r *Referee) advanceTurn() {
	for i, seat := range consts.Seats {
		if seat == r.state.CurrentTurn {
			r.state.CurrentTurn = consts.Seats[(i+1)%len(consts.Seats)]
			return
		}
	}
}

// mustPlayer resolves a seat, panicking on contract violations by the
// calling layer: an unknown seat, or any call before the first
// StartNewGame.
func (r *Referee) mustPlayer(playerID string) *PlayerState {
	if !r.started {
		panic(consts.ErrorsGameNotStarted)
	}
	player, ok := r.state.Players[playerID]
	if !ok {
		panic(consts.ErrorsSeatInvalid)
	}
	return player
}

// removeCards returns the hand minus the requested cards, or false if any
// of them is missing. The input hand is never modified.
func removeCards(hand, cards []poker.Card) ([]poker.Card, bool) {
	remaining := make([]poker.Card, len(hand))
	copy(remaining, hand)
	for _, card := range cards {
		found := false
		for i, held := range remaining {
			if held == card {
				remaining[i] = remaining[len(remaining)-1]
				remaining = remaining[:len(remaining)-1]
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return remaining, true
}
