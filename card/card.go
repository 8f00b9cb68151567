package card

import (
	"fmt"

	"github.com/pileup-games/uno/card/color"
)

type Special int

const (
	SpecialNone Special = iota
	SpecialSkip
	SpecialDrawTwo
	SpecialWild
	SpecialWildDrawFour
)

func (s Special) String() string {
	switch s {
	case SpecialSkip:
		return "Skip"
	case SpecialDrawTwo:
		return "DrawTwo"
	case SpecialWild:
		return "Wild"
	case SpecialWildDrawFour:
		return "WildDrawFour"
	default:
		return ""
	}
}

// Wild reports whether the special may be played on anything and
// asks its player for a color.
func (s Special) Wild() bool {
	return s == SpecialWild || s == SpecialWildDrawFour
}

// NoNumber is the Number of every non-numbered card.
const NoNumber = -1

// Card is either a numbered card (Special == SpecialNone, Number 0-9)
// or a special card (Number == NoNumber). Wild specials start with a
// nil Color and acquire one when played.
type Card struct {
	Color   color.Color
	Number  int
	Special Special
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{Color: cardColor, Number: number, Special: SpecialNone}
}

func NewSkipCard(cardColor color.Color) Card {
	return Card{Color: cardColor, Number: NoNumber, Special: SpecialSkip}
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return Card{Color: cardColor, Number: NoNumber, Special: SpecialDrawTwo}
}

func NewWildCard() Card {
	return Card{Number: NoNumber, Special: SpecialWild}
}

func NewWildDrawFourCard() Card {
	return Card{Number: NoNumber, Special: SpecialWildDrawFour}
}

// Name is the stable identifier players type to play the card:
// "Red5", "RedSkip", "Wild". A wild that has been assigned a color
// renders with it ("RedWild").
func (c Card) Name() string {
	if c.Special != SpecialNone {
		if c.Color != nil {
			return c.Color.Name() + c.Special.String()
		}
		return c.Special.String()
	}
	return fmt.Sprintf("%s%d", c.Color.Name(), c.Number)
}

// String paints the name with the card's color for terminal display.
func (c Card) String() string {
	if c.Color != nil {
		return c.Color.Paint(c.Name())
	}
	return c.Name()
}
