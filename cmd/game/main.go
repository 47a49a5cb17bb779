// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-pixel-defense/internal/app"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "YAML file with tower, enemy, wave and level overrides")
	skipMenu := flag.Bool("skip-menu", false, "start straight into the game")
	flag.Parse()

	lib := defs.DefaultLibrary()
	if *defsPath != "" {
		var err error
		lib, err = defs.LoadFile(*defsPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Loaded definitions from %s", *defsPath)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		game, err := app.NewGame(lib)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(state.NewGameState(sm, game))
	} else {
		sm.SetState(state.NewMenuState(sm, lib))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Pixel Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
