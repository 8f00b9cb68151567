package event

var GameOver = &gameOverEmitter{}

// GameOverPayload announces the terminal state: Winner is the winning
// seat, or -1 with Tie set when the deck ran out.
type GameOverPayload struct {
	Winner int
	Tie    bool
}

type GameOverListener interface {
	OnGameOver(GameOverPayload)
}

type gameOverEmitter struct {
	listeners []GameOverListener
}

func (e *gameOverEmitter) AddListener(listener GameOverListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameOverEmitter) Emit(payload GameOverPayload) {
	for _, listener := range e.listeners {
		listener.OnGameOver(payload)
	}
}
