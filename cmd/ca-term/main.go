package main

import (
	"flag"
	"log"

	"wolfram-ca/internal/app"
	"wolfram-ca/internal/sims/elementary"
	"wolfram-ca/internal/termview"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params := cfg.Automaton()
	params.CellSize = 1
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	w, _ := screen.Size()
	screenW := w
	if cfg.Screen > 0 {
		screenW = cfg.Screen
	}
	auto := elementary.New(params, elementary.Display{ViewportWidth: w, ScreenWidth: screenW})

	err = termview.New(screen, auto).Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
