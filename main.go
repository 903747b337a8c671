package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/fonts"
	"github.com/automoto/skateturtle/scenes"
	"github.com/automoto/skateturtle/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipTitle {
		g.scene = scenes.NewRunnerScene(g)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", 0, "random seed for obstacle layout (0 = time based)")
	skipTitle := flag.Bool("skip-title", false, "start the runner immediately")
	debug := flag.Bool("debug", false, "draw colliders and session state")
	mute := flag.Bool("mute", false, "disable sound effects")
	volume := flag.Float64("volume", config.Audio.DefaultSFXVol, "sound effect volume (0.0 - 1.0)")
	flag.Parse()

	config.Debug.Seed = *seed
	config.Debug.SkipTitle = *skipTitle
	config.Debug.Colliders = *debug
	systems.SetSFXVolume(*volume)

	if !*mute {
		systems.PreloadAllSFX()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Title.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
