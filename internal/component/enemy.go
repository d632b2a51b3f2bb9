package component

import "go-wave-defense/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID   string       // ID из catalog.yaml
	Reward  int          // Награда, зафиксированная при появлении
	Ability defs.Ability // Особая способность (может отсутствовать)
	Size    float64
}
