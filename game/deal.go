package game

// Deal distributes cards round-robin, one card per player per round.
// If the deck empties mid-deal the remaining hands simply stay short.
func Deal(deck *Deck, numPlayers, cardsPerPlayer int) []*Hand {
	hands := make([]*Hand, numPlayers)
	for i := range hands {
		hands[i] = NewHand()
	}
	for round := 0; round < cardsPerPlayer; round++ {
		for _, hand := range hands {
			drawn, ok := deck.DrawOne()
			if !ok {
				return hands
			}
			hand.AddCard(drawn)
		}
	}
	return hands
}
