package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gymhoops/game"
)

func main() {
	config, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	g := game.NewGame(config)
	defer g.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Gym Hoops")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
