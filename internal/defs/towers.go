// internal/defs/towers.go
package defs

// TowerLevel holds the stats of one upgrade level.
type TowerLevel struct {
	Damage   float64 `yaml:"damage"`
	Range    float64 `yaml:"range"`
	FireRate float64 `yaml:"fireRate"` // Shots per second
	Cost     int     `yaml:"cost"`
	// Special: радиус сплэша, число целей цепи или длительность яда в секундах.
	Special float64 `yaml:"special,omitempty"`
}

// FireInterval returns the cooldown between shots in seconds.
func (l TowerLevel) FireInterval() float64 {
	return 1.0 / l.FireRate
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Effect      EffectKind   `yaml:"effect"`
	Levels      []TowerLevel `yaml:"levels"`
	Visuals     Visuals      `yaml:"visuals"`
}

// MaxLevel returns the highest valid level index.
func (d *TowerDefinition) MaxLevel() int {
	return len(d.Levels) - 1
}

// Level returns the stats at index i, clamped to the valid range.
func (d *TowerDefinition) Level(i int) TowerLevel {
	if i < 0 {
		i = 0
	}
	if i > d.MaxLevel() {
		i = d.MaxLevel()
	}
	return d.Levels[i]
}

// InvestedCost sums the costs of levels 0..level inclusive.
func (d *TowerDefinition) InvestedCost(level int) int {
	total := 0
	for i := 0; i <= level && i < len(d.Levels); i++ {
		total += d.Levels[i].Cost
	}
	return total
}
