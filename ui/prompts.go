package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pileup-games/uno/card/color"
	"github.com/pileup-games/uno/game"
)

var stdin = bufio.NewScanner(os.Stdin)

// promptLine prints message and reads one non-empty line. The process
// ends quietly when input closes.
func promptLine(message string) string {
	for {
		Println(message)
		if !stdin.Scan() {
			os.Exit(0)
		}
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}
		return line
	}
}

func PromptSeed() string {
	return promptLine("What seed do you want to use for the game?")
}

func PromptAction(player int) game.Action {
	return game.ParseAction(promptLine(fmt.Sprintf("Player %d, what would you like to do?", player+1)))
}

// PromptColor loops until color.ByName accepts the input; validation
// stays in the color package, only the retry loop lives here.
func PromptColor() color.Color {
	message := fmt.Sprintf(
		"Select a color [%s, %s, %s, %s]",
		color.Blue,
		color.Red,
		color.Green,
		color.Yellow,
	)
	for {
		chosen, err := color.ByName(promptLine(message))
		if err != nil {
			Println(err)
			continue
		}
		return chosen
	}
}
