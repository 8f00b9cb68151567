package ui

import (
	"strings"

	"github.com/pileup-games/uno/card"
	"github.com/pileup-games/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) TopCard(topCard card.Card) {
	Printfln("The top card is:  %s", topCard)
}

func (m MessageWriter) Hand(cards []card.Card) {
	names := make([]string, 0, len(cards))
	for _, cardInHand := range cards {
		names = append(names, cardInHand.String())
	}
	Println(strings.Join(names, " "))
}

func (m MessageWriter) ActionError(err error) {
	Println(err)
}

func (m MessageWriter) PlayerPlayedCard(player int, playedCard card.Card) {
	Printfln("Player %d played %s!", player+1, playedCard)
}

func (m MessageWriter) PlayerPickedColor(player int, pickedColor color.Color) {
	Printfln("Player %d picked color %s!", player+1, pickedColor)
}

func (m MessageWriter) PlayerDrewCards(player int, amount int) {
	if amount == 1 {
		Printfln("Player %d drew a card!", player+1)
	} else {
		Printfln("Player %d drew %d cards!", player+1, amount)
	}
}

func (m MessageWriter) PlayerPassed(player int) {
	Printfln("Player %d passed!", player+1)
}

func (m MessageWriter) PlayerWon(player int) {
	Printfln("Congratulations Player %d! You Won!", player+1)
}

func (m MessageWriter) GameTied() {
	Println("Draw pile is empty! Game ends in a tie.")
}
