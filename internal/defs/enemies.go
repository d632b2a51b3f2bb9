// internal/defs/enemies.go
package defs

import "math"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Title         string  `yaml:"title,omitempty"`
	Health        float64 `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	Reward        int     `yaml:"reward"`
	HealthScaling float64 `yaml:"healthScaling"`
	Size          float64 `yaml:"size"`
	Ability       Ability `yaml:"ability,omitempty"`
	Visuals       Visuals `yaml:"visuals"`
}

// HealthAt returns the spawn health on wave n: floor(Health * HealthScaling^(n-1)).
func (d *EnemyDefinition) HealthAt(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return math.Floor(d.Health * math.Pow(d.HealthScaling, float64(wave-1)))
}

// IgnoresSlow reports whether slow effects leave this enemy's speed untouched.
func (d *EnemyDefinition) IgnoresSlow() bool {
	return d.Ability == AbilityImmuneSlow
}
