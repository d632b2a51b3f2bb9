// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the immutable reference data for every tower and enemy kind.
type Catalog struct {
	Towers  map[string]*TowerDefinition
	Enemies map[string]*EnemyDefinition
	// TowerOrder keeps the file order, used for hotkeys and the build panel.
	TowerOrder []string
}

type catalogFile struct {
	Towers  []TowerDefinition `yaml:"towers"`
	Enemies []EnemyDefinition `yaml:"enemies"`
}

// Tower looks up a tower kind.
func (c *Catalog) Tower(id string) (*TowerDefinition, bool) {
	def, ok := c.Towers[id]
	return def, ok
}

// Enemy looks up an enemy kind.
func (c *Catalog) Enemy(id string) (*EnemyDefinition, bool) {
	def, ok := c.Enemies[id]
	return def, ok
}

// DefaultCatalog parses the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads a catalog YAML file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	catalog := &Catalog{
		Towers:  make(map[string]*TowerDefinition, len(file.Towers)),
		Enemies: make(map[string]*EnemyDefinition, len(file.Enemies)),
	}
	for i := range file.Towers {
		def := &file.Towers[i]
		if _, dup := catalog.Towers[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower id %q", def.ID)
		}
		catalog.Towers[def.ID] = def
		catalog.TowerOrder = append(catalog.TowerOrder, def.ID)
	}
	for i := range file.Enemies {
		def := &file.Enemies[i]
		if _, dup := catalog.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		catalog.Enemies[def.ID] = def
	}

	if err := validateCatalog(catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	log.Printf("Loaded %d tower definitions and %d enemy definitions", len(catalog.Towers), len(catalog.Enemies))
	return catalog, nil
}

// validateCatalog проверяет корректность определений.
func validateCatalog(c *Catalog) error {
	if len(c.Towers) == 0 {
		return fmt.Errorf("towers cannot be empty")
	}
	if len(c.Enemies) == 0 {
		return fmt.Errorf("enemies cannot be empty")
	}

	for _, id := range c.TowerOrder {
		def := c.Towers[id]
		if id == "" {
			return fmt.Errorf("tower id cannot be empty")
		}
		if !def.Effect.Valid() {
			return fmt.Errorf("tower %s: unknown effect %q", id, def.Effect)
		}
		if len(def.Levels) == 0 {
			return fmt.Errorf("tower %s: needs at least one level", id)
		}
		for i, lvl := range def.Levels {
			if lvl.FireRate <= 0 {
				return fmt.Errorf("tower %s level %d: fireRate must be > 0, got %v", id, i, lvl.FireRate)
			}
			if lvl.Range <= 0 {
				return fmt.Errorf("tower %s level %d: range must be > 0, got %v", id, i, lvl.Range)
			}
			if lvl.Cost <= 0 {
				return fmt.Errorf("tower %s level %d: cost must be > 0, got %d", id, i, lvl.Cost)
			}
			if lvl.Damage < 0 {
				return fmt.Errorf("tower %s level %d: damage must be >= 0, got %v", id, i, lvl.Damage)
			}
			if def.Effect.NeedsSpecial() && lvl.Special <= 0 {
				return fmt.Errorf("tower %s level %d: %s effect needs special > 0", id, i, def.Effect)
			}
		}
	}

	for id, def := range c.Enemies {
		if id == "" {
			return fmt.Errorf("enemy id cannot be empty")
		}
		if def.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be > 0, got %v", id, def.Health)
		}
		if def.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be > 0, got %v", id, def.Speed)
		}
		if def.HealthScaling < 1 {
			return fmt.Errorf("enemy %s: healthScaling must be >= 1, got %v", id, def.HealthScaling)
		}
		if def.Reward < 0 {
			return fmt.Errorf("enemy %s: reward must be >= 0, got %d", id, def.Reward)
		}
		if !def.Ability.Valid() {
			return fmt.Errorf("enemy %s: unknown ability %q", id, def.Ability)
		}
	}

	for _, id := range WaveEnemyIDs() {
		if _, ok := c.Enemies[id]; !ok {
			return fmt.Errorf("wave generator needs enemy %q, missing from catalog", id)
		}
	}
	return nil
}
