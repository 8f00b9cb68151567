package game

import (
	"github.com/pileup-games/uno/card"
	"github.com/pileup-games/uno/event"
)

// Transition is the resolver's verdict after a special card: either the
// seat that acts next, or a tie because the deck could not cover a
// forced draw.
type Transition struct {
	NextPlayer int
	Tie        bool
}

// resolveSpecial computes the consequences of a played special card.
// It runs only after the win check, so a player going out on a special
// never triggers its effect.
func (g *Game) resolveSpecial(played card.Card) Transition {
	playerCount := len(g.hands)
	switch played.Special {
	case card.SpecialSkip:
		return Transition{NextPlayer: (g.current + 2) % playerCount}
	case card.SpecialDrawTwo:
		return g.forceDraw(2)
	case card.SpecialWildDrawFour:
		return g.forceDraw(4)
	default:
		// A plain wild changed the color but skips nobody.
		return Transition{NextPlayer: (g.current + 1) % playerCount}
	}
}

// forceDraw hands the next player amount cards and skips their turn.
// The player keeps whatever the deck could still give; a short draw
// ends the game in a tie.
func (g *Game) forceDraw(amount int) Transition {
	playerCount := len(g.hands)
	target := (g.current + 1) % playerCount
	drawn := g.deck.Draw(amount)
	g.hands[target].AddCards(drawn)
	if len(drawn) > 0 {
		event.CardsDrawn.Emit(event.CardsDrawnPayload{
			Player: target,
			Cards:  drawn,
		})
	}
	if len(drawn) < amount {
		return Transition{Tie: true}
	}
	return Transition{NextPlayer: (g.current + 2) % playerCount}
}
