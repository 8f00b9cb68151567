package game

import (
	"github.com/pileup-games/uno/card"
)

// Hand keeps a player's cards in the order they arrived; removal is by
// index because players name cards and duplicates resolve to the first.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCard(card card.Card) {
	h.cards = append(h.cards, card)
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Find returns the lowest index of the card whose Name matches.
func (h *Hand) Find(name string) (int, bool) {
	for index, cardInHand := range h.cards {
		if cardInHand.Name() == name {
			return index, true
		}
	}
	return 0, false
}

func (h *Hand) CardAt(index int) card.Card {
	return h.cards[index]
}

func (h *Hand) RemoveAt(index int) card.Card {
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed
}

func (h *Hand) Size() int {
	return len(h.cards)
}
