// Command skateterm runs the turtle runner in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/automoto/skateturtle/assets"
	cfg "github.com/automoto/skateturtle/config"
	"github.com/automoto/skateturtle/systems"
	"github.com/automoto/skateturtle/systems/factory"
	"github.com/automoto/skateturtle/termview"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type game struct {
	screen tcell.Screen
	ecs    *ecs.ECS
	view   *termview.View
	keys   *termview.Keys
	sound  bool
	rate   beep.SampleRate
}

func newGame(seed int64, mute bool) (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &game{
		screen: screen,
		ecs:    ecs.NewECS(donburi.NewWorld()),
		view:   termview.New(screen),
		keys:   &termview.Keys{},
		rate:   beep.SampleRate(cfg.Audio.SampleRate),
	}

	factory.CreateRunnerWorld(g.ecs, seed)
	systems.AddRunnerSystems(g.ecs, systems.NewInputSystem(g.keys.Poll), nil)

	if !mute {
		if err := speaker.Init(g.rate, g.rate.N(time.Second/10)); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			g.sound = true
		}
	}
	return g, nil
}

// handle reports false when the player asked to leave.
func (g *game) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		g.keys.Press(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *game) step() bool {
	g.ecs.Update()
	for _, id := range systems.DrainSFX(g.ecs) {
		g.play(id)
	}
	if systems.GetOrCreatePause(g.ecs).QuitRequested {
		return false
	}
	g.view.Render(systems.TakeSnapshot(g.ecs))
	return true
}

func (g *game) play(id cfg.SoundID) {
	if !g.sound {
		return
	}
	spec, ok := cfg.Sound.Tones[id]
	if !ok {
		return
	}
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		spec.Volume *= mult
	}
	spec.Volume *= systems.GetOrCreateAudio(g.ecs).SFXVolume
	speaker.Play(assets.Tone(spec, g.rate))
}

func (g *game) run() {
	ticker := time.NewTicker(time.Second / time.Duration(cfg.C.TPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handle(ev) {
				return
			}
		case <-ticker.C:
			if !g.step() {
				return
			}
		}
	}
}

func (g *game) cleanup() {
	if g.sound {
		speaker.Close()
	}
	g.screen.Fini()
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for obstacle layout")
	mute := flag.Bool("mute", false, "disable sound")
	volume := flag.Float64("volume", cfg.Audio.DefaultSFXVol, "sound volume (0.0 - 1.0)")
	flag.Parse()

	systems.SetSFXVolume(*volume)

	g, err := newGame(*seed, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run()
}
