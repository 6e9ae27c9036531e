//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wolfram-ca/internal/app"
	"wolfram-ca/internal/sims/elementary"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params := cfg.Automaton()
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}
	screenW, _ := ebiten.ScreenSizeInFullscreen()
	display := cfg.Display(screenW)
	if err := elementary.CheckDisplay(params, display); err != nil {
		log.Fatal(err)
	}

	auto := elementary.New(params, display)
	game := app.New(auto, cfg.Screen == 0)

	ebiten.SetWindowTitle("Wolfram's Elementary Cellular Automaton Generator")
	ebiten.SetWindowSize(app.ViewportWidth(cfg.Width), cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
