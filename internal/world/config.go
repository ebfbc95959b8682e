package world

// Default world dimensions. The world is 500x500 screens; one sector is
// exactly one screen.
const (
	DefaultScreenWidth  = 1300
	DefaultScreenHeight = 700
	DefaultSectorsX     = 500
	DefaultSectorsY     = 500
)

// Config describes the toroidal world grid.
type Config struct {
	// WorldWidth and WorldHeight bound world space; positions wrap at them.
	WorldWidth  float64
	WorldHeight float64

	// SectorsX and SectorsY are the sector grid dimensions.
	SectorsX int
	SectorsY int
}

// DefaultConfig returns the 650000x350000 world split into 500x500 sectors.
func DefaultConfig() Config {
	return Config{
		WorldWidth:  DefaultScreenWidth * DefaultSectorsX,
		WorldHeight: DefaultScreenHeight * DefaultSectorsY,
		SectorsX:    DefaultSectorsX,
		SectorsY:    DefaultSectorsY,
	}
}

// SectorWidth returns the width of one sector in world units.
func (c Config) SectorWidth() float64 { return c.WorldWidth / float64(c.SectorsX) }

// SectorHeight returns the height of one sector in world units.
func (c Config) SectorHeight() float64 { return c.WorldHeight / float64(c.SectorsY) }

// Center returns the middle of world space, where the player starts.
func (c Config) Center() (float64, float64) {
	return c.WorldWidth / 2, c.WorldHeight / 2
}
