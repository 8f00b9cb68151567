package event_test

import (
	"testing"

	"github.com/pileup-games/uno/card"
	"github.com/pileup-games/uno/card/color"
	"github.com/pileup-games/uno/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.CardPlayed.AddListener(listenerOne)
	event.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			Player: 0,
			Card:   card.NewNumberCard(color.Blue, 7),
		},
		{
			Player: 1,
			Card:   card.NewSkipCard(color.Red),
		},
	}

	for _, payload := range payloads {
		event.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
