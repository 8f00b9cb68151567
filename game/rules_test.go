package game_test

import (
	"testing"

	"github.com/pileup-games/uno/card"
	"github.com/pileup-games/uno/card/color"
	"github.com/pileup-games/uno/game"
	"github.com/stretchr/testify/require"
)

func TestPlayable(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		topCard        card.Card
		currentColor   color.Color
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWildCard(),
			topCard:        card.NewNumberCard(color.Blue, 7),
			currentColor:   color.Blue,
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.NewWildDrawFourCard(),
			topCard:        card.NewSkipCard(color.Red),
			currentColor:   color.Red,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 5),
			topCard:        card.NewNumberCard(color.Blue, 7),
			currentColor:   color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_number_across_colors",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			topCard:        card.NewNumberCard(color.Blue, 7),
			currentColor:   color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_number",
			candidateCard:  card.NewNumberCard(color.Red, 5),
			topCard:        card.NewNumberCard(color.Blue, 7),
			currentColor:   color.Blue,
			expectedResult: false,
		},
		{
			description:    "current_color_wins_over_top_card_color_after_a_wild",
			candidateCard:  card.NewNumberCard(color.Green, 3),
			topCard:        card.Card{Color: color.Green, Number: card.NoNumber, Special: card.SpecialWild},
			currentColor:   color.Green,
			expectedResult: true,
		},
		{
			description:    "skip_cards_match_across_colors",
			candidateCard:  card.NewSkipCard(color.Red),
			topCard:        card.NewSkipCard(color.Blue),
			currentColor:   color.Blue,
			expectedResult: true,
		},
		{
			description:    "draw_two_cards_match_across_colors",
			candidateCard:  card.NewDrawTwoCard(color.Yellow),
			topCard:        card.NewDrawTwoCard(color.Green),
			currentColor:   color.Green,
			expectedResult: true,
		},
		{
			description:    "skip_does_not_match_draw_two_of_another_color",
			candidateCard:  card.NewSkipCard(color.Red),
			topCard:        card.NewDrawTwoCard(color.Blue),
			currentColor:   color.Blue,
			expectedResult: false,
		},
		{
			description:    "skip_matches_draw_two_of_the_current_color",
			candidateCard:  card.NewSkipCard(color.Blue),
			topCard:        card.NewDrawTwoCard(color.Blue),
			currentColor:   color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_card_on_special_of_the_current_color",
			candidateCard:  card.NewNumberCard(color.Blue, 5),
			topCard:        card.NewSkipCard(color.Blue),
			currentColor:   color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_card_on_special_of_another_color",
			candidateCard:  card.NewNumberCard(color.Red, 5),
			topCard:        card.NewSkipCard(color.Blue),
			currentColor:   color.Blue,
			expectedResult: false,
		},
		{
			description:    "number_does_not_match_a_special_card",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			topCard:        card.NewSkipCard(color.Blue),
			currentColor:   color.Blue,
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.topCard, scenario.currentColor)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}
