package system

import (
	"robot-battle/internal/gamemap"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Outcome classifies a single player move.
type Outcome uint8

const (
	OutcomeSafe  Outcome = iota // play continues
	OutcomeRobot                // walked into a robot
	OutcomeCleft                // fell into a chasm
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSafe:
		return "safe"
	case OutcomeRobot:
		return "robot"
	case OutcomeCleft:
		return "cleft"
	}
	return "unknown"
}

// Fatal reports whether the move killed the player.
func (o Outcome) Fatal() bool { return o != OutcomeSafe }

// Player is the state MovePlayer mutates.
type Player struct {
	Pos        gamemap.Position
	Charges    int
	MaxCharges int
	Keys       int
}

// Pickups holds the uncollected charge and key positions of a session.
type Pickups struct {
	Charges []gamemap.Position
	Keys    []gamemap.Position
}

// Collected counts what a single MovePlayer call picked up.
type Collected struct {
	Charges int
	Keys    int
}

// MovePlayer relocates p to target and resolves the consequences in order:
// robot collision, chasm, charge pickup up to p.MaxCharges, then keys with
// no cap. The target is not validated; use MovableCells first.
//
// Pickup lists are replaced with filtered copies, never edited in place.
func MovePlayer(p *Player, target gamemap.Position, robots []gamemap.Position, pickups *Pickups, grid *gamemap.Grid) (Outcome, Collected) {
	p.Pos = target

	if slices.Contains(robots, target) {
		return OutcomeRobot, Collected{}
	}
	if grid.At(target).IsHazard() {
		return OutcomeCleft, Collected{}
	}

	var got Collected
	charges := make([]gamemap.Position, 0, len(pickups.Charges))
	for _, c := range pickups.Charges {
		if c == target && p.Charges < p.MaxCharges {
			p.Charges++
			got.Charges++
			continue
		}
		charges = append(charges, c)
	}
	pickups.Charges = charges

	keys := make([]gamemap.Position, 0, len(pickups.Keys))
	for _, k := range pickups.Keys {
		if k == target {
			p.Keys++
			got.Keys++
			continue
		}
		keys = append(keys, k)
	}
	pickups.Keys = keys

	return OutcomeSafe, got
}

// MovableCells returns the in-bounds cells of the 8-neighbourhood of pos.
// Chasms are included: stepping into one is legal, just fatal.
func MovableCells(pos gamemap.Position, grid *gamemap.Grid) mapset.Set[gamemap.Position] {
	cells := mapset.New[gamemap.Position]()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if n := pos.Add(dr, dc); grid.InBounds(n) {
				cells.Put(n)
			}
		}
	}
	return cells
}
