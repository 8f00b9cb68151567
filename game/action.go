package game

import (
	"strings"
)

type Verb int

const (
	VerbUnknown Verb = iota
	VerbPlay
	VerbDraw
	VerbPass
)

// Action is one structured player input: a verb plus, for plays, the
// name of a card.
type Action struct {
	Verb Verb
	Card string
}

// ParseAction splits a line into a case-insensitive verb and an
// optional argument (the rest of the line, used as a card name).
func ParseAction(line string) Action {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	action := Action{}
	switch strings.ToLower(parts[0]) {
	case "play":
		action.Verb = VerbPlay
	case "draw":
		action.Verb = VerbDraw
	case "pass":
		action.Verb = VerbPass
	}
	if len(parts) > 1 {
		action.Card = strings.TrimSpace(parts[1])
	}
	return action
}
