// cmd/tdterm/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/termview"
	"go-wave-defense/internal/types"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = time.Second / 30

// session - одна партия в терминале: игра, вид и состояние ввода.
type session struct {
	catalog  *defs.Catalog
	settings config.Settings

	game    interfaces.Game
	view    *termview.View
	overlay termview.Overlay
}

func newSession(screen tcell.Screen, catalog *defs.Catalog, settings config.Settings) *session {
	core := app.NewGame(catalog, settings)
	log.Printf("new game, seed %d", core.Rng.Seed())
	return &session{
		catalog:  catalog,
		settings: settings,
		game:     core,
		view:     termview.NewView(screen, core.TileMap, catalog),
		overlay:  termview.Overlay{Cursor: types.Cell{X: settings.Map.Cols / 2, Y: settings.Map.Rows / 2}},
	}
}

func main() {
	settingsPath := flag.String("settings", "", "YAML file with session settings")
	catalogPath := flag.String("catalog", "", "YAML tower/enemy catalog (embedded default if empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based")
	logPath := flag.String("log", "", "write the log to this file (discarded if empty)")
	flag.Parse()

	catalog, settings, err := load(*catalogPath, *settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	// Лог в терминал сломал бы экран
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	run(screen, catalog, settings)
}

func load(catalogPath, settingsPath string) (*defs.Catalog, config.Settings, error) {
	settings := config.DefaultSettings()
	var catalog *defs.Catalog
	var err error
	if catalogPath == "" {
		catalog, err = defs.DefaultCatalog()
	} else {
		catalog, err = defs.LoadCatalog(catalogPath)
	}
	if err != nil {
		return nil, settings, fmt.Errorf("catalog: %w", err)
	}
	if settingsPath != "" {
		if settings, err = config.LoadSettings(settingsPath); err != nil {
			return nil, settings, fmt.Errorf("settings: %w", err)
		}
	}
	return catalog, settings, nil
}

func run(screen tcell.Screen, catalog *defs.Catalog, settings config.Settings) {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	s := newSession(screen, catalog, settings)
	last := time.Now()
	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if quit := s.handleKey(ev); quit {
					return
				}
				if s.game.Snapshot().GameOver && (ev.Rune() == 'r' || ev.Rune() == 'R') {
					s = newSession(screen, catalog, settings)
				}
			case *tcell.EventMouse:
				s.handleMouse(ev)
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			last = now
			s.game.Tick(deltaTime)
			s.view.Draw(s.game.Snapshot(), s.overlay)
		}
	}
}

// handleKey применяет клавишу к игре. true - выход.
func (s *session) handleKey(ev *tcell.EventKey) bool {
	cursor := &s.overlay.Cursor
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		cursor.Y = max(cursor.Y-1, 0)
	case tcell.KeyDown:
		cursor.Y = min(cursor.Y+1, s.settings.Map.Rows-1)
	case tcell.KeyLeft:
		cursor.X = max(cursor.X-1, 0)
	case tcell.KeyRight:
		cursor.X = min(cursor.X+1, s.settings.Map.Cols-1)
	case tcell.KeyEnter:
		s.actAt(*cursor)
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return false
}

func (s *session) handleRune(r rune) bool {
	s.overlay.Message = ""
	switch {
	case r == 'q':
		return true
	case r >= '1' && r <= '9':
		i := int(r - '1')
		if i < len(s.catalog.TowerOrder) {
			kind := s.catalog.TowerOrder[i]
			if s.overlay.BuildKind == kind {
				kind = ""
			}
			s.overlay.BuildKind = kind
			s.overlay.Selected = types.NilEntity
		}
	case r == ' ':
		s.report(s.game.StartWave())
	case r == '+' || r == '=':
		s.game.CycleSpeed(1)
	case r == '-':
		s.game.CycleSpeed(-1)
	case r == 'u':
		s.report(s.game.UpgradeTower(s.overlay.Cursor))
	case r == 's':
		if refund, err := s.game.SellTower(s.overlay.Cursor); err != nil {
			s.report(err)
		} else {
			s.overlay.Selected = types.NilEntity
			s.overlay.Message = fmt.Sprintf("sold for $%d", refund)
		}
	}
	return false
}

func (s *session) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	cell, ok := s.view.CellAt(x, y)
	if !ok {
		return
	}
	s.overlay.Cursor = cell
	s.actAt(cell)
}

// actAt строит выбранную башню или выделяет башню в клетке.
func (s *session) actAt(cell types.Cell) {
	s.overlay.Message = ""
	for _, t := range s.game.Snapshot().Towers {
		if t.Cell == cell {
			s.overlay.Selected = t.ID
			s.overlay.BuildKind = ""
			return
		}
	}
	s.overlay.Selected = types.NilEntity
	if s.overlay.BuildKind == "" {
		return
	}
	_, err := s.game.PlaceTower(s.overlay.BuildKind, cell)
	s.report(err)
}

func (s *session) report(err error) {
	if err == nil || errors.Is(err, app.ErrGameOver) {
		return
	}
	s.overlay.Message = err.Error()
}
