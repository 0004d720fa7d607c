package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/landlord-online/server/consts"
	"github.com/landlord-online/server/game"
	"github.com/landlord-online/server/poker"
)

var red = color.New(color.FgRed).SprintFunc()

// Card renders one card for terminal display, hearts and diamonds in red.
func Card(c poker.Card) string {
	desc := c.String()
	if c.Suit == poker.Heart || c.Suit == poker.Diamond {
		return red(desc)
	}
	return desc
}

// Cards renders a card set, "PASS" for an empty one.
func Cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "PASS"
	}
	descs := make([]string, 0, len(cards))
	for _, c := range cards {
		descs = append(descs, Card(c))
	}
	return strings.Join(descs, " ")
}

func Action(record game.ActionRecord) string {
	if record.Type == consts.ActionPass {
		return fmt.Sprintf("%s passed", record.PlayerID)
	}
	return fmt.Sprintf("%s played %s", record.PlayerID, Cards(record.Cards))
}

// Observation renders the seat's view of the table.
func Observation(obs game.Observation) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Landlord: %s, turn: %s\n", obs.LandlordID, obs.CurrentTurn))
	if obs.LastNonPass != nil {
		buf.WriteString(fmt.Sprintf("To beat: %s\n", Action(*obs.LastNonPass)))
	}
	buf.WriteString(fmt.Sprintf("Your cards: %s\n", Cards(obs.MyHand)))
	return buf.String()
}
