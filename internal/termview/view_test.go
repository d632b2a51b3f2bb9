package termview

import (
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/tilemap"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	ss.SetSize(100, 24)
	t.Cleanup(ss.Fini)
	return ss
}

// Поле 6x4, маршрут по строке 2.
func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	tileMap := tilemap.NewTileMap(6, 4, 10, []types.Cell{{X: -1, Y: 2}, {X: 6, Y: 2}})
	screen := newSimScreen(t)
	return NewView(screen, tileMap, catalog), screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestDrawBoardAndEntities(t *testing.T) {
	view, screen := newTestView(t)
	snap := app.Snapshot{
		Money: 250,
		Lives: 97,
		Wave:  3,
		Towers: []app.TowerView{
			{ID: 1, Kind: "cannon", Cell: types.Cell{X: 1, Y: 0}, Level: 1, Range: 100},
		},
		Enemies: []app.EnemyView{
			{ID: 2, Kind: "gooner", X: 25, Y: 25, HealthFraction: 1},
		},
	}
	view.Draw(snap, Overlay{Cursor: types.Cell{X: 5, Y: 3}})

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"tower glyph", 2, 0, 'C'},
		{"tower level", 3, 0, '2'},
		{"enemy glyph", 4, 2, 'g'},
		{"full health", 5, 2, '█'},
		{"empty route", 0, 2, '·'},
		{"empty field", 0, 0, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _, _, _ := screen.GetContent(tt.x, tt.y); got != tt.want {
				t.Errorf("content at (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if row := rowText(screen, 0); !strings.Contains(row, "$250") || !strings.Contains(row, "Lives 97") {
		t.Errorf("HUD row 0 = %q", row)
	}
	if row := rowText(screen, 1); !strings.Contains(row, "Wave 3") {
		t.Errorf("HUD row 1 = %q", row)
	}
}

func TestDrawCursorReversesCell(t *testing.T) {
	view, screen := newTestView(t)
	view.Draw(app.Snapshot{}, Overlay{Cursor: types.Cell{X: 2, Y: 1}})

	for _, x := range []int{4, 5} {
		_, _, style, _ := screen.GetContent(x, 1)
		if _, _, attr := style.Decompose(); attr&tcell.AttrReverse == 0 {
			t.Errorf("column %d is not reversed", x)
		}
	}
	_, _, style, _ := screen.GetContent(6, 1)
	if _, _, attr := style.Decompose(); attr&tcell.AttrReverse != 0 {
		t.Error("cell next to the cursor is reversed")
	}
}

func TestDrawSelectionAndMessages(t *testing.T) {
	view, screen := newTestView(t)
	snap := app.Snapshot{
		Money: 100,
		Towers: []app.TowerView{
			{ID: 7, Kind: "cannon", Cell: types.Cell{X: 0, Y: 0}, Kills: 4, UpgradeFor: 150, SellFor: 70},
		},
	}
	view.Draw(snap, Overlay{BuildKind: "laser", Selected: 7, Message: "insufficient funds"})

	var all []string
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		all = append(all, rowText(screen, y))
	}
	text := strings.Join(all, "\n")
	for _, want := range []string{"> 2 Laser", "Kills 4", "u: upgrade $150", "s: sell $70", "insufficient funds"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen does not contain %q:\n%s", want, text)
		}
	}

	view.Draw(app.Snapshot{GameOver: true, WavesSurvived: 4, TotalKills: 31}, Overlay{})
	if row := rowText(screen, 5); !strings.Contains(row, "GAME OVER: 4 waves survived, 31 kills") {
		t.Errorf("game over row = %q", row)
	}
}

func TestCellAt(t *testing.T) {
	view, _ := newTestView(t)
	tests := []struct {
		x, y   int
		want   types.Cell
		wantOK bool
	}{
		{0, 0, types.Cell{X: 0, Y: 0}, true},
		{5, 2, types.Cell{X: 2, Y: 2}, true},
		{11, 3, types.Cell{X: 5, Y: 3}, true},
		{12, 0, types.Cell{}, false},
		{0, 4, types.Cell{}, false},
		{-1, 0, types.Cell{}, false},
	}
	for _, tt := range tests {
		got, ok := view.CellAt(tt.x, tt.y)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CellAt(%d,%d) = %v,%v; want %v,%v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}
