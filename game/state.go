package game

import (
	"fmt"
	"strings"

	"github.com/pileup-games/uno/card"
	"github.com/pileup-games/uno/card/color"
)

// State is a display snapshot of the game for the collaborator.
type State struct {
	TopCard       card.Card
	HasTopCard    bool
	CurrentColor  color.Color
	CurrentPlayer int
	CurrentHand   []card.Card
	HandCounts    []int
}

func (g *Game) ExtractState() State {
	handCounts := make([]int, len(g.hands))
	for index, hand := range g.hands {
		handCounts[index] = hand.Size()
	}
	state := State{
		CurrentColor:  g.currentColor,
		CurrentPlayer: g.current,
		CurrentHand:   g.hands[g.current].Cards(),
		HandCounts:    handCounts,
	}
	if top, ok := g.pile.Top(); ok {
		state.TopCard = top
		state.HasTopCard = true
	}
	return state
}

func (s State) String() string {
	var lines []string
	if s.HasTopCard {
		lines = append(lines, fmt.Sprintf("The top card is:  %s", s.TopCard))
	}
	var handNames []string
	for _, cardInHand := range s.CurrentHand {
		handNames = append(handNames, cardInHand.String())
	}
	lines = append(lines, strings.Join(handNames, " "))
	return strings.Join(lines, "\n")
}
