package game

import (
	"hash/fnv"
	"math/rand"

	"github.com/pileup-games/uno/card"
	"github.com/pileup-games/uno/card/color"
)

// Per color: two copies of every digit 0-9, two Skips and two DrawTwos,
// plus four colorless Wilds and four WildDrawFours.
const deckSize = 104

type Deck struct {
	cards []card.Card
}

// NewDeck returns the full, unshuffled deck in a fixed order.
func NewDeck() *Deck {
	deck := &Deck{cards: make([]card.Card, 0, deckSize)}
	fillDeck(deck)
	return deck
}

func fillDeck(deck *Deck) {
	for i := 0; i < 20; i++ {
		for _, cardColor := range color.Palette() {
			deck.cards = append(deck.cards, card.NewNumberCard(cardColor, i%10))
		}
	}
	for _, newSpecialCard := range []func(color.Color) card.Card{card.NewSkipCard, card.NewDrawTwoCard} {
		for _, cardColor := range color.Palette() {
			deck.cards = append(deck.cards, newSpecialCard(cardColor), newSpecialCard(cardColor))
		}
	}
	for i := 0; i < 4; i++ {
		deck.cards = append(deck.cards, card.NewWildCard())
	}
	for i := 0; i < 4; i++ {
		deck.cards = append(deck.cards, card.NewWildDrawFourCard())
	}
}

// Shuffle permutes the deck deterministically: the same seed string
// always produces the same order.
func (d *Deck) Shuffle(seed string) {
	hash := fnv.New64a()
	hash.Write([]byte(seed))
	random := rand.New(rand.NewSource(int64(hash.Sum64())))
	random.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) DrawOne() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	drawn := d.cards[0]
	d.cards = d.cards[1:]
	return drawn, true
}

// Draw removes up to amount cards from the front of the deck. The
// result is short when the deck runs out; callers decide whether that
// ends the game.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	drawn := make([]card.Card, amount)
	copy(drawn, d.cards[:amount])
	d.cards = d.cards[amount:]
	return drawn
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}
