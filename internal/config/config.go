// Package config loads the YAML game configuration and turns a difficulty
// into generator settings and session rules.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"robot-battle/assets"
	"robot-battle/internal/game"
	"robot-battle/internal/gamemap"
	"robot-battle/internal/generate"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownDifficulty is returned for a difficulty name not in the file.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	// ErrInvalid is returned when a file parses but cannot be used.
	ErrInvalid = errors.New("invalid config")
)

// Point is a (row, col) pair as written in the file.
type Point struct {
	Row int `yaml:"row" json:"row" jsonschema:"minimum=0"`
	Col int `yaml:"col" json:"col" jsonschema:"minimum=0"`
}

// Position converts p to a grid position.
func (p Point) Position() gamemap.Position {
	return gamemap.Position{Row: p.Row, Col: p.Col}
}

// Grid holds the map dimensions.
type Grid struct {
	Rows int `yaml:"rows" json:"rows" jsonschema:"minimum=1,description=Number of map rows"`
	Cols int `yaml:"cols" json:"cols" jsonschema:"minimum=1,description=Number of map columns"`
}

// Gameplay holds spawn points and the win condition.
type Gameplay struct {
	PlayerStart  Point `yaml:"player_start_position" json:"player_start_position"`
	Exit         Point `yaml:"exit_position" json:"exit_position"`
	NumberOfKeys int   `yaml:"number_of_keys" json:"number_of_keys" jsonschema:"minimum=0,description=Keys needed to open the exit"`
}

// Textures holds the per-difficulty texture ids and the feature tokens.
type Textures struct {
	Default map[string][]int `yaml:"default" json:"default" jsonschema:"description=Texture ids keyed by difficulty name"`
	Cleft   string           `yaml:"cleft" json:"cleft" jsonschema:"minLength=1,maxLength=1"`
	Robot   string           `yaml:"robot" json:"robot" jsonschema:"minLength=1,maxLength=1"`
	Charge  string           `yaml:"charge" json:"charge" jsonschema:"minLength=1,maxLength=1"`
	Key     string           `yaml:"key" json:"key" jsonschema:"minLength=1,maxLength=1"`
	Player  string           `yaml:"player" json:"player" jsonschema:"minLength=1,maxLength=1"`
	Exit    string           `yaml:"exit" json:"exit" jsonschema:"minLength=1,maxLength=1"`
}

// Tokens converts the token strings into gamemap tokens.
func (t Textures) Tokens() (gamemap.Tokens, error) {
	var out gamemap.Tokens
	for _, f := range []struct {
		name string
		s    string
		dst  *rune
	}{
		{"cleft", t.Cleft, &out.Chasm},
		{"robot", t.Robot, &out.Robot},
		{"charge", t.Charge, &out.Charge},
		{"key", t.Key, &out.Key},
		{"player", t.Player, &out.Player},
		{"exit", t.Exit, &out.Exit},
	} {
		if utf8.RuneCountInString(f.s) != 1 {
			return out, fmt.Errorf("%w: %s token %q must be a single character", ErrInvalid, f.name, f.s)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.s)
	}
	if err := out.Validate(); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return out, nil
}

// Difficulty holds the feature densities of one difficulty level.
type Difficulty struct {
	Name       string  `yaml:"name" json:"name"`
	Clefts     float64 `yaml:"clefts_coefficient" json:"clefts_coefficient" jsonschema:"minimum=0,maximum=1"`
	Robots     float64 `yaml:"robots_coefficient" json:"robots_coefficient" jsonschema:"minimum=0,maximum=1"`
	Charges    float64 `yaml:"charges_coefficient" json:"charges_coefficient" jsonschema:"minimum=0,maximum=1"`
	MaxCharges int     `yaml:"max_charges" json:"max_charges" jsonschema:"minimum=0"`
}

// Audio configures the sound effects.
type Audio struct {
	Enabled bool    `yaml:"enabled" json:"enabled"`
	Volume  float64 `yaml:"volume" json:"volume" jsonschema:"minimum=0,maximum=1"`
}

// File is a complete configuration document.
type File struct {
	Grid         Grid         `yaml:"grid" json:"grid"`
	Gameplay     Gameplay     `yaml:"gameplay" json:"gameplay"`
	Textures     Textures     `yaml:"textures" json:"textures"`
	Difficulties []Difficulty `yaml:"difficulties" json:"difficulties" jsonschema:"minItems=1"`
	Audio        Audio        `yaml:"audio" json:"audio"`
}

// Default parses the embedded stock configuration.
func Default() (*File, error) {
	f, err := Parse(assets.ConfigYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded config: %w", err)
	}
	return f, nil
}

// Load reads and parses the file at path. Sections missing from the file
// are not filled from the defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(f.Difficulties) == 0 {
		return nil, fmt.Errorf("%w: no difficulties", ErrInvalid)
	}
	seen := make(map[string]bool, len(f.Difficulties))
	for _, d := range f.Difficulties {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: difficulty without a name", ErrInvalid)
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("%w: difficulty %q listed twice", ErrInvalid, d.Name)
		}
		seen[d.Name] = true
	}
	if f.Audio.Volume < 0 || f.Audio.Volume > 1 {
		return nil, fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalid, f.Audio.Volume)
	}
	return &f, nil
}

// Names lists the difficulty names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Difficulties))
	for i, d := range f.Difficulties {
		names[i] = d.Name
	}
	return names
}

// Difficulty returns the named difficulty.
func (f *File) Difficulty(name string) (Difficulty, error) {
	for _, d := range f.Difficulties {
		if d.Name == name {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// KeyCoefficient spreads NumberOfKeys over the whole grid.
func (f *File) KeyCoefficient() float64 {
	cells := f.Grid.Rows * f.Grid.Cols
	if cells <= 0 {
		return 0
	}
	return float64(f.Gameplay.NumberOfKeys) / float64(cells)
}

// Generator builds the map generator settings for the named difficulty.
// The result is validated by generate.Generate, not here.
func (f *File) Generator(name string, rng generate.Source) (*generate.Config, error) {
	d, err := f.Difficulty(name)
	if err != nil {
		return nil, err
	}
	textures, ok := f.Textures.Default[name]
	if !ok {
		return nil, fmt.Errorf("%w: no default textures for difficulty %q", ErrInvalid, name)
	}
	tokens, err := f.Textures.Tokens()
	if err != nil {
		return nil, err
	}
	return &generate.Config{
		Rows:      f.Grid.Rows,
		Cols:      f.Grid.Cols,
		Textures:  textures,
		PlayerPos: f.Gameplay.PlayerStart.Position(),
		ExitPos:   f.Gameplay.Exit.Position(),
		Coeff: generate.Coefficients{
			Clefts:  d.Clefts,
			Robots:  d.Robots,
			Charges: d.Charges,
			Keys:    f.KeyCoefficient(),
		},
		NumberOfKeys: f.Gameplay.NumberOfKeys,
		Tokens:       tokens,
		Rand:         rng,
	}, nil
}

var _ game.Levels = (*File)(nil)

// Rules returns the session rules of the named difficulty.
func (f *File) Rules(name string) (game.Rules, error) {
	d, err := f.Difficulty(name)
	if err != nil {
		return game.Rules{}, err
	}
	return game.Rules{MaxCharges: d.MaxCharges, KeysRequired: f.Gameplay.NumberOfKeys}, nil
}
