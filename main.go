package main

import (
	"fmt"
	"os"

	"github.com/pileup-games/uno/config"
	"github.com/pileup-games/uno/game"
	"github.com/pileup-games/uno/ui"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	ui.NewConsoleListener()
	ui.Message.Welcome()

	seed := ui.PromptSeed()
	g := game.New(cfg.Players, cfg.StartingCards, seed, game.PickColorFunc(ui.PromptColor))
	ui.Message.Hand(g.CurrentHand())

	for !g.Over() {
		action := ui.PromptAction(g.CurrentPlayer())
		if err := g.HandleAction(action); err != nil {
			ui.Message.ActionError(err)
			continue
		}
		if g.Over() {
			break
		}
		state := g.ExtractState()
		if state.HasTopCard {
			ui.Message.TopCard(state.TopCard)
		}
		ui.Message.Hand(state.CurrentHand)
	}
}
