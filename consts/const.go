package consts

// Seats in fixed rotation order. The landlord game always has exactly
// these three players.
const (
	SeatHuman = "human"
	SeatBot1  = "bot1"
	SeatBot2  = "bot2"
)

// Seats is the turn rotation: human -> bot1 -> bot2 -> human.
var Seats = []string{SeatHuman, SeatBot1, SeatBot2}

const (
	RoleLandlord = "landlord"
	RoleFarmer   = "farmer"
)

const (
	WinnerLandlord = "landlord"
	WinnerFarmers  = "farmers"
)

const (
	ActionPlay = "play"
	ActionPass = "pass"
)

const (
	HandSize   = 17
	BottomSize = 3
	DeckSize   = 54
)

// Rule violation codes returned by Referee.PlayCards. Empty code means
// the play was accepted.
const (
	CodeGameOver       = "game_over"
	CodeNotYourTurn    = "not_your_turn"
	CodeCardsNotInHand = "cards_not_in_hand"
	CodeInvalidType    = "invalid_type"
	CodeCannotBeat     = "cannot_beat"
)

type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

// Contract violations by the calling layer, not rule violations.
var (
	ErrorsSeatInvalid    = NewErr(1, "Seat invalid. ")
	ErrorsGameNotStarted = NewErr(1, "Game not started. ")
	ErrorsTableInvalid   = NewErr(1, "Table invalid. ")
)
