// internal/defs/types.go
package defs

// EffectKind defines how a projectile's damage propagates on impact.
type EffectKind string

const (
	EffectSingle EffectKind = "single"
	EffectSplash EffectKind = "splash"
	EffectChain  EffectKind = "chain"
	EffectSlow   EffectKind = "slow"
	EffectDot    EffectKind = "dot"
)

// Valid reports whether k is one of the closed set of effect kinds.
func (k EffectKind) Valid() bool {
	switch k {
	case EffectSingle, EffectSplash, EffectChain, EffectSlow, EffectDot:
		return true
	}
	return false
}

// NeedsSpecial reports whether the kind reads the level's special parameter.
func (k EffectKind) NeedsSpecial() bool {
	return k == EffectSplash || k == EffectChain || k == EffectDot
}

// Ability - особая способность врага. Пустая строка означает её отсутствие.
type Ability string

const (
	AbilityNone        Ability = ""
	AbilityFast        Ability = "fast"
	AbilityArmored     Ability = "armored"
	AbilityHealsNearby Ability = "heals-nearby"
	AbilityImmuneSlow  Ability = "immune-to-slow"
)

// Valid reports whether a is a known ability tag.
func (a Ability) Valid() bool {
	switch a {
	case AbilityNone, AbilityFast, AbilityArmored, AbilityHealsNearby, AbilityImmuneSlow:
		return true
	}
	return false
}

// Visuals contains presentation hints; the simulation never reads them.
type Visuals struct {
	Color  string `yaml:"color"`
	Accent string `yaml:"accent,omitempty"`
	Glyph  string `yaml:"glyph,omitempty"`
}
