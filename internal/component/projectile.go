// internal/component/projectile.go
package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// Projectile представляет летящий снаряд.
// Damage, Effect и Special копируются с уровня башни в момент выстрела.
type Projectile struct {
	TargetID types.EntityID // слабая ссылка, проверяется каждый тик
	SourceID types.EntityID // башня-стрелок, может быть уже продана
	TowerID  string         // вид башни, для отрисовки
	Speed    float64
	Damage   float64
	Effect   defs.EffectKind
	Special  float64
}
