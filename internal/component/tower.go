// component/tower.go
package component

import "go-wave-defense/internal/types"

type Tower struct {
	DefID     string     // ID из catalog.yaml
	Cell      types.Cell // Клетка, на которой стоит башня
	Level     int        // Индекс уровня, 0..len(Levels)-1
	LastFired float64    // Игровое время последнего выстрела
	Kills     int
}
