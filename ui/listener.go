package ui

import (
	"github.com/pileup-games/uno/event"
)

// ConsoleListener renders engine events on the terminal.
type ConsoleListener struct{}

func NewConsoleListener() ConsoleListener {
	listener := ConsoleListener{}
	event.CardPlayed.AddListener(listener)
	event.ColorPicked.AddListener(listener)
	event.CardsDrawn.AddListener(listener)
	event.PlayerPassed.AddListener(listener)
	event.GameOver.AddListener(listener)
	return listener
}

func (l ConsoleListener) OnCardPlayed(payload event.CardPlayedPayload) {
	Message.PlayerPlayedCard(payload.Player, payload.Card)
}

func (l ConsoleListener) OnColorPicked(payload event.ColorPickedPayload) {
	Message.PlayerPickedColor(payload.Player, payload.Color)
}

func (l ConsoleListener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	Message.PlayerDrewCards(payload.Player, len(payload.Cards))
}

func (l ConsoleListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	Message.PlayerPassed(payload.Player)
}

func (l ConsoleListener) OnGameOver(payload event.GameOverPayload) {
	if payload.Tie {
		Message.GameTied()
		return
	}
	Message.PlayerWon(payload.Winner)
}
