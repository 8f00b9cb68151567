package game

import (
	"github.com/pileup-games/uno/card"
	"github.com/pileup-games/uno/card/color"
)

// Playable reports whether candidate may be played on the pile top.
// Number matches are by digit alone, so two numbered cards of different
// colors but the same digit are always a legal match.
func Playable(candidate card.Card, top card.Card, currentColor color.Color) bool {
	if candidate.Special.Wild() {
		return true
	}
	if candidate.Color != nil && candidate.Color == currentColor {
		return true
	}
	if candidate.Number != card.NoNumber && candidate.Number == top.Number {
		return true
	}
	if candidate.Special != card.SpecialNone && candidate.Special == top.Special {
		return true
	}
	return false
}
