package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the per-session tunables that may be overridden from a YAML file.
type Settings struct {
	StartingMoney int         `yaml:"startingMoney"`
	StartingLives int         `yaml:"startingLives"`
	Seed          int64       `yaml:"seed"` // 0 - сид от текущего времени
	Map           MapSettings `yaml:"map"`
}

// MapSettings describes the grid and the route waypoints in cell coordinates.
type MapSettings struct {
	Cols     int      `yaml:"cols"`
	Rows     int      `yaml:"rows"`
	TileSize float64  `yaml:"tileSize"`
	Path     [][2]int `yaml:"path"`
}

// DefaultSettings returns the settings of the stock game.
func DefaultSettings() Settings {
	path := make([][2]int, len(DefaultPath))
	copy(path, DefaultPath)
	return Settings{
		StartingMoney: StartingMoney,
		StartingLives: StartingLives,
		Map: MapSettings{
			Cols:     MapCols,
			Rows:     MapRows,
			TileSize: TileSize,
			Path:     path,
		},
	}
}

// LoadSettings reads a YAML file and overlays it onto DefaultSettings.
// Keys missing from the file keep their default values.
func LoadSettings(filePath string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// Validate checks that the settings describe a playable map.
func (s Settings) Validate() error {
	if s.StartingMoney < 0 {
		return fmt.Errorf("startingMoney must be >= 0, got %d", s.StartingMoney)
	}
	if s.StartingLives < 1 {
		return fmt.Errorf("startingLives must be >= 1, got %d", s.StartingLives)
	}
	if s.Map.Cols < 1 || s.Map.Rows < 1 {
		return fmt.Errorf("map must be at least 1x1, got %dx%d", s.Map.Cols, s.Map.Rows)
	}
	if s.Map.TileSize <= 0 {
		return fmt.Errorf("map.tileSize must be > 0, got %v", s.Map.TileSize)
	}
	if len(s.Map.Path) < 2 {
		return fmt.Errorf("map.path needs at least 2 waypoints, got %d", len(s.Map.Path))
	}
	for i := 1; i < len(s.Map.Path); i++ {
		prev, cur := s.Map.Path[i-1], s.Map.Path[i]
		if prev == cur {
			return fmt.Errorf("map.path waypoints %d and %d are identical", i-1, i)
		}
		if prev[0] != cur[0] && prev[1] != cur[1] {
			return fmt.Errorf("map.path segment %d is not axis-aligned", i-1)
		}
	}
	return nil
}
