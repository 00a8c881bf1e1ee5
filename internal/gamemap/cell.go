package gamemap

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies what a grid cell holds.
type Kind uint8

const (
	KindTexture Kind = iota // walkable floor, decorative variant in Cell.Texture
	KindChasm
	KindRobot
	KindCharge
	KindKey
	KindPlayer
	KindExit
)

var kindNames = [...]string{
	KindTexture: "texture",
	KindChasm:   "chasm",
	KindRobot:   "robot",
	KindCharge:  "charge",
	KindKey:     "key",
	KindPlayer:  "player",
	KindExit:    "exit",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell is one grid cell. Texture is only meaningful when Kind is KindTexture.
type Cell struct {
	Kind    Kind
	Texture int
}

// MakeTexture returns a walkable floor cell of the given decorative variant.
func MakeTexture(id int) Cell { return Cell{Kind: KindTexture, Texture: id} }

// MakeChasm returns a hazard cell.
func MakeChasm() Cell { return Cell{Kind: KindChasm} }

// MakeRobot returns a robot spawn cell.
func MakeRobot() Cell { return Cell{Kind: KindRobot} }

// MakeCharge returns a charge pickup cell.
func MakeCharge() Cell { return Cell{Kind: KindCharge} }

// MakeKey returns a key pickup cell.
func MakeKey() Cell { return Cell{Kind: KindKey} }

// MakePlayer returns the player spawn cell.
func MakePlayer() Cell { return Cell{Kind: KindPlayer} }

// MakeExit returns an exit cell.
func MakeExit() Cell { return Cell{Kind: KindExit} }

// IsTexture reports whether the cell is still empty floor.
func (c Cell) IsTexture() bool { return c.Kind == KindTexture }

// IsHazard reports whether stepping onto the cell is fatal.
func (c Cell) IsHazard() bool { return c.Kind == KindChasm }

// ErrInvalidTokens is returned by Tokens.Validate.
var ErrInvalidTokens = errors.New("invalid feature tokens")

// Tokens holds the single-character label of each feature kind.
type Tokens struct {
	Chasm  rune
	Robot  rune
	Charge rune
	Key    rune
	Player rune
	Exit   rune
}

// DefaultTokens are the labels used by the stock configuration.
var DefaultTokens = Tokens{
	Chasm:  'C',
	Robot:  'R',
	Charge: 'G',
	Key:    'K',
	Player: 'P',
	Exit:   'E',
}

// For returns the token of a feature kind, or 0 for KindTexture.
func (t Tokens) For(k Kind) rune {
	switch k {
	case KindChasm:
		return t.Chasm
	case KindRobot:
		return t.Robot
	case KindCharge:
		return t.Charge
	case KindKey:
		return t.Key
	case KindPlayer:
		return t.Player
	case KindExit:
		return t.Exit
	}
	return 0
}

// Kind maps a token back to its feature kind.
func (t Tokens) Kind(r rune) (Kind, bool) {
	for k := KindChasm; k <= KindExit; k++ {
		if t.For(k) == r {
			return k, true
		}
	}
	return KindTexture, false
}

// Validate checks that every token is set, is not a digit and is unique.
// A digit token could not be told apart from a texture label.
func (t Tokens) Validate() error {
	seen := make(map[rune]Kind, 6)
	for k := KindChasm; k <= KindExit; k++ {
		r := t.For(k)
		if r == 0 {
			return fmt.Errorf("%w: %s token is empty", ErrInvalidTokens, k)
		}
		if r >= '0' && r <= '9' {
			return fmt.Errorf("%w: %s token %q is a digit", ErrInvalidTokens, k, r)
		}
		if other, dup := seen[r]; dup {
			return fmt.Errorf("%w: %s and %s share token %q", ErrInvalidTokens, other, k, r)
		}
		seen[r] = k
	}
	return nil
}

// Label renders a cell as its string label.
func (t Tokens) Label(c Cell) string {
	if c.Kind == KindTexture {
		return strconv.Itoa(c.Texture)
	}
	return string(t.For(c.Kind))
}

// Parse converts a label back into a cell.
func (t Tokens) Parse(label string) (Cell, error) {
	if IsWalkableTexture(label) {
		id, err := strconv.Atoi(label)
		if err != nil {
			return Cell{}, fmt.Errorf("%w: texture label %q: %v", ErrMalformed, label, err)
		}
		return MakeTexture(id), nil
	}
	runes := []rune(label)
	if len(runes) == 1 {
		if k, ok := t.Kind(runes[0]); ok {
			return Cell{Kind: k}, nil
		}
	}
	return Cell{}, fmt.Errorf("%w: unknown label %q", ErrMalformed, label)
}

// IsWalkableTexture reports whether label is a texture label, i.e. a
// non-negative decimal integer.
func IsWalkableTexture(label string) bool {
	if label == "" {
		return false
	}
	for i := 0; i < len(label); i++ {
		if label[i] < '0' || label[i] > '9' {
			return false
		}
	}
	return true
}
