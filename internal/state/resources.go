package state

import (
	"go-wave-defense/internal/assets"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
)

// Resources is what every state needs to build a new game.
type Resources struct {
	Catalog  *defs.Catalog
	Settings config.Settings
	Fonts    *assets.FontManager
}
