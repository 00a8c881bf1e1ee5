package generate

import (
	"errors"
	"fmt"
	"robot-battle/internal/gamemap"
)

// ErrInvalidConfig is returned by Generate before any allocation when the
// configuration cannot produce a grid.
var ErrInvalidConfig = errors.New("invalid generator config")

// Source is the randomness used by Generate. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Coefficients are the fractions of rows*cols to populate with each feature.
type Coefficients struct {
	Clefts  float64
	Robots  float64
	Charges float64
	Keys    float64
}

// Config drives generation of one map.
type Config struct {
	Rows, Cols int
	Textures   []int
	PlayerPos  gamemap.Position
	ExitPos    gamemap.Position
	Coeff      Coefficients
	// NumberOfKeys is informational; key placement follows Coeff.Keys.
	NumberOfKeys int
	Tokens       gamemap.Tokens
	Rand         Source
}

// Validate reports the first problem that would stop Generate.
func (cfg *Config) Validate() error {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, cfg.Rows, cfg.Cols)
	}
	if len(cfg.Textures) == 0 {
		return fmt.Errorf("%w: no textures", ErrInvalidConfig)
	}
	for _, id := range cfg.Textures {
		if id < 0 {
			return fmt.Errorf("%w: negative texture id %d", ErrInvalidConfig, id)
		}
	}
	inBounds := func(p gamemap.Position) bool {
		return p.Row >= 0 && p.Row < cfg.Rows && p.Col >= 0 && p.Col < cfg.Cols
	}
	if !inBounds(cfg.PlayerPos) {
		return fmt.Errorf("%w: player position %s outside %dx%d", ErrInvalidConfig, cfg.PlayerPos, cfg.Rows, cfg.Cols)
	}
	if !inBounds(cfg.ExitPos) {
		return fmt.Errorf("%w: exit position %s outside %dx%d", ErrInvalidConfig, cfg.ExitPos, cfg.Rows, cfg.Cols)
	}
	if cfg.PlayerPos == cfg.ExitPos {
		return fmt.Errorf("%w: player and exit share %s", ErrInvalidConfig, cfg.PlayerPos)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"clefts", cfg.Coeff.Clefts},
		{"robots", cfg.Coeff.Robots},
		{"charges", cfg.Coeff.Charges},
		{"keys", cfg.Coeff.Keys},
	} {
		// Written as a negated range check so NaN is rejected too.
		if !(c.v >= 0 && c.v <= 1) {
			return fmt.Errorf("%w: %s coefficient %v outside [0,1]", ErrInvalidConfig, c.name, c.v)
		}
	}
	if err := cfg.Tokens.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Rand == nil {
		return fmt.Errorf("%w: no random source", ErrInvalidConfig)
	}
	return nil
}
