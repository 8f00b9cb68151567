package game_test

import (
	"testing"

	"github.com/pileup-games/uno/game"
	"github.com/stretchr/testify/require"
)

func TestDealRoundRobin(t *testing.T) {
	deck := game.NewDeck()
	reference := drawAll(game.NewDeck())

	hands := game.Deal(deck, 2, 7)

	require.Len(t, hands, 2)
	require.Equal(t, 7, hands[0].Size())
	require.Equal(t, 7, hands[1].Size())
	require.Equal(t, 104-14, deck.Size())

	// One card to each player per round: player 0 holds the cards that
	// sat at even deck positions, player 1 the odd ones.
	for round := 0; round < 7; round++ {
		require.Equal(t, reference[2*round], hands[0].CardAt(round))
		require.Equal(t, reference[2*round+1], hands[1].CardAt(round))
	}
}

func TestDealStopsWhenDeckEmpties(t *testing.T) {
	deck := game.NewDeck()
	deck.Draw(101)

	hands := game.Deal(deck, 2, 7)

	require.Equal(t, 2, hands[0].Size())
	require.Equal(t, 1, hands[1].Size())
	require.True(t, deck.Empty())
}

func TestDealMorePlayers(t *testing.T) {
	deck := game.NewDeck()
	hands := game.Deal(deck, 4, 5)
	require.Len(t, hands, 4)
	for _, hand := range hands {
		require.Equal(t, 5, hand.Size())
	}
	require.Equal(t, 104-20, deck.Size())
}
