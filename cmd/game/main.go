// cmd/game/main.go
package main

import (
	"flag"
	"go-wave-defense/internal/assets"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/state"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

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
	settingsPath := flag.String("settings", "", "YAML file with session settings")
	catalogPath := flag.String("catalog", "", "YAML tower/enemy catalog (embedded default if empty)")
	fontPath := flag.String("font", "", "TTF font for the UI (embedded Go font if empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based")
	fromMenu := flag.Bool("menu", false, "start from the title screen")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	catalog, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	settings := config.DefaultSettings()
	if *settingsPath != "" {
		if settings, err = config.LoadSettings(*settingsPath); err != nil {
			log.Fatalf("settings: %v", err)
		}
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	fonts, err := assets.NewFontManager(*fontPath)
	if err != nil {
		log.Fatalf("fonts: %v", err)
	}
	defer fonts.Unload()

	res := &state.Resources{Catalog: catalog, Settings: settings, Fonts: fonts}
	sm := state.NewStateMachine() // Создаём машину состояний
	if *fromMenu {
		sm.SetState(state.NewMenuState(sm, res))
	} else {
		sm.SetState(state.NewGameState(sm, res))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

func loadCatalog(path string) (*defs.Catalog, error) {
	if path == "" {
		return defs.DefaultCatalog()
	}
	return defs.LoadCatalog(path)
}
