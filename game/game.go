package game

import (
	"errors"

	"github.com/pileup-games/uno/card"
	"github.com/pileup-games/uno/card/color"
	"github.com/pileup-games/uno/event"
)

// Input errors are recoverable: the action is a no-op and the same
// player retries.
var (
	ErrGameOver      = errors.New("the game is already over")
	ErrCardNotInHand = errors.New("that card is not in your hand")
	ErrIllegalPlay   = errors.New("that card didn't match in number or color")
	ErrAlreadyDrawn  = errors.New("you can only draw once per turn")
	ErrMustDrawFirst = errors.New("you must draw a card before passing")
	ErrUnknownAction = errors.New("invalid action, use 'play [CardName]', 'draw' or 'pass'")
)

// ColorPicker supplies the color for a played wild card. The
// collaborator blocks until the player has chosen a valid color.
type ColorPicker interface {
	PickColor() color.Color
}

// PickColorFunc adapts a function to the ColorPicker interface.
type PickColorFunc func() color.Color

func (f PickColorFunc) PickColor() color.Color {
	return f()
}

const noWinner = -1

// Game is a single table of the card game. All state lives here; there
// is no package-level game instance.
type Game struct {
	deck         *Deck
	pile         *Pile
	hands        []*Hand
	currentColor color.Color
	current      int
	hasDrawn     bool
	over         bool
	tie          bool
	winner       int
	picker       ColorPicker
}

// New builds a game: a fresh deck shuffled with seed, hands dealt
// round-robin, player 0 to act.
func New(numPlayers, startingCards int, seed string, picker ColorPicker) *Game {
	deck := NewDeck()
	deck.Shuffle(seed)
	return &Game{
		deck:   deck,
		pile:   NewPile(),
		hands:  Deal(deck, numPlayers, startingCards),
		winner: noWinner,
		picker: picker,
	}
}

func (g *Game) CurrentPlayer() int {
	return g.current
}

func (g *Game) CurrentHand() []card.Card {
	return g.hands[g.current].Cards()
}

func (g *Game) CurrentColor() color.Color {
	return g.currentColor
}

func (g *Game) TopCard() (card.Card, bool) {
	return g.pile.Top()
}

func (g *Game) Over() bool {
	return g.over
}

func (g *Game) Tie() bool {
	return g.tie
}

func (g *Game) Winner() (int, bool) {
	return g.winner, g.winner != noWinner
}

// HandleAction dispatches one structured action from the collaborator.
// A non-nil error means nothing changed and the same player retries.
func (g *Game) HandleAction(action Action) error {
	if g.over {
		return ErrGameOver
	}
	switch action.Verb {
	case VerbPlay:
		if action.Card == "" {
			return ErrUnknownAction
		}
		return g.Play(action.Card)
	case VerbDraw:
		return g.Draw()
	case VerbPass:
		return g.Pass()
	default:
		return ErrUnknownAction
	}
}

// Play moves the named card from the current hand to the pile and
// advances the turn. The very first play of the game is legal
// regardless of the card; afterwards legality follows Playable.
func (g *Game) Play(name string) error {
	if g.over {
		return ErrGameOver
	}
	hand := g.hands[g.current]
	index, found := hand.Find(name)
	if !found {
		return ErrCardNotInHand
	}
	if top, ok := g.pile.Top(); ok && !Playable(hand.CardAt(index), top, g.currentColor) {
		return ErrIllegalPlay
	}

	played := hand.RemoveAt(index)
	if played.Special.Wild() {
		chosen := g.pickColor()
		played.Color = chosen
		g.currentColor = chosen
	} else {
		g.currentColor = played.Color
	}
	g.pile.Add(played)
	event.CardPlayed.Emit(event.CardPlayedPayload{
		Player: g.current,
		Card:   played,
	})
	if played.Special.Wild() {
		event.ColorPicked.Emit(event.ColorPickedPayload{
			Player: g.current,
			Color:  g.currentColor,
		})
	}

	if hand.Empty() {
		g.over = true
		g.winner = g.current
		event.GameOver.Emit(event.GameOverPayload{Winner: g.current})
		return nil
	}

	if played.Special != card.SpecialNone {
		transition := g.resolveSpecial(played)
		if transition.Tie {
			g.endInTie()
			return nil
		}
		g.current = transition.NextPlayer
	} else {
		g.current = (g.current + 1) % len(g.hands)
	}
	g.hasDrawn = false
	return nil
}

// Draw gives the current player one card. The turn does not advance;
// the player may still play or pass. At most one voluntary draw per
// turn, and an empty deck ends the game in a tie.
func (g *Game) Draw() error {
	if g.over {
		return ErrGameOver
	}
	if g.hasDrawn {
		return ErrAlreadyDrawn
	}
	drawn, ok := g.deck.DrawOne()
	if !ok {
		g.endInTie()
		return nil
	}
	g.hands[g.current].AddCard(drawn)
	g.hasDrawn = true
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		Player: g.current,
		Cards:  []card.Card{drawn},
	})
	return nil
}

// Pass ends the turn. Legal only after a draw this turn.
func (g *Game) Pass() error {
	if g.over {
		return ErrGameOver
	}
	if !g.hasDrawn {
		return ErrMustDrawFirst
	}
	event.PlayerPassed.Emit(event.PlayerPassedPayload{Player: g.current})
	g.current = (g.current + 1) % len(g.hands)
	g.hasDrawn = false
	return nil
}

func (g *Game) endInTie() {
	g.over = true
	g.tie = true
	event.GameOver.Emit(event.GameOverPayload{Winner: noWinner, Tie: true})
}

// pickColor keeps asking until the collaborator supplies a color.
func (g *Game) pickColor() color.Color {
	for {
		if chosen := g.picker.PickColor(); chosen != nil {
			return chosen
		}
	}
}
