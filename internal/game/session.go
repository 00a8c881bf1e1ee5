package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"robot-battle/internal/gamemap"
	"robot-battle/internal/generate"
	"robot-battle/internal/system"
	"slices"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrNoPlayer is returned when a generated map has no player cell.
	ErrNoPlayer = errors.New("map has no player")
	// ErrIllegalMove is returned for a move target outside the movable cells.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNoRobot is returned when pinging a cell without an adjacent robot.
	ErrNoRobot = errors.New("no robot to ping")
	// ErrGameOver is returned for actions taken after the session ended.
	ErrGameOver = errors.New("game is over")
)

// Rules are the per-difficulty limits a session enforces.
type Rules struct {
	MaxCharges   int
	KeysRequired int
}

// State is the session state machine.
type State uint8

const (
	StatePlaying State = iota
	StateDead
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	case StateWon:
		return "won"
	}
	return "unknown"
}

// Tick reports what one Move did.
type Tick struct {
	Outcome   system.Outcome
	Collected system.Collected
	Destroyed int  // pinged robots removed before the move
	Fallen    int  // robots that stepped into a chasm
	Caught    bool // a robot reached the player during the robot step
	State     State
}

// Ping is the result of TogglePing.
type Ping uint8

const (
	PingSet      Ping = iota // robot marked, one charge spent
	PingCleared              // mark removed, charge refunded
	PingNoCharge             // robot found but no charge to spend
)

// Session is one playthrough of one generated map.
type Session struct {
	ID uuid.UUID

	grid    *gamemap.Grid
	rules   Rules
	player  system.Player
	robots  []gamemap.Position
	pinged  mapset.Set[int] // indices into robots, cleared every move
	pickups system.Pickups
	state   State
	reason  Reason
	turn    int
	log     *log.Logger
}

// NewSession generates a map from cfg and sets up its entities.
func NewSession(cfg *generate.Config, rules Rules, logger *log.Logger) (*Session, error) {
	grid, err := generate.Generate(cfg)
	if err != nil {
		return nil, fmt.Errorf("generate map: %w", err)
	}
	return NewSessionFromGrid(grid, rules, logger)
}

// NewSessionFromGrid starts a session on an existing grid. The player
// starts with a full set of charges.
func NewSessionFromGrid(grid *gamemap.Grid, rules Rules, logger *log.Logger) (*Session, error) {
	e := gamemap.ConvertMap(grid)
	if e.Player == gamemap.NoPosition {
		return nil, ErrNoPlayer
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	id := uuid.New()
	s := &Session{
		ID:    id,
		grid:  grid,
		rules: rules,
		player: system.Player{
			Pos:        e.Player,
			Charges:    rules.MaxCharges,
			MaxCharges: rules.MaxCharges,
		},
		robots:  e.Robots,
		pinged:  mapset.New[int](),
		pickups: system.Pickups{Charges: e.Charges, Keys: e.Keys},
		log:     log.New(logger.Writer(), fmt.Sprintf("[%s] ", ShortID(id)), logger.Flags()),
	}
	s.log.Printf("session start: %dx%d grid, player %s, %d robots, %d charges, %d keys",
		grid.Rows, grid.Cols, e.Player, len(e.Robots), len(e.Charges), len(e.Keys))
	return s, nil
}

// ShortID returns the first block of a session id.
func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}

// Grid returns the session map.
func (s *Session) Grid() *gamemap.Grid { return s.grid }

// Rules returns the session limits.
func (s *Session) Rules() Rules { return s.rules }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Reason returns why the player died, or ReasonNone.
func (s *Session) Reason() Reason { return s.reason }

// Player returns a copy of the player state.
func (s *Session) Player() system.Player { return s.player }

// Robots returns a copy of the live robot positions.
func (s *Session) Robots() []gamemap.Position { return slices.Clone(s.robots) }

// Pickups returns copies of the uncollected charge and key positions.
func (s *Session) Pickups() system.Pickups {
	return system.Pickups{
		Charges: slices.Clone(s.pickups.Charges),
		Keys:    slices.Clone(s.pickups.Keys),
	}
}

// Turn returns the number of moves made.
func (s *Session) Turn() int { return s.turn }

// Pinged returns the positions of robots marked for destruction.
func (s *Session) Pinged() []gamemap.Position {
	var out []gamemap.Position
	for i, r := range s.robots {
		if s.pinged.Has(i) {
			out = append(out, r)
		}
	}
	return out
}

// MovableCells returns the cells the player may move to.
func (s *Session) MovableCells() mapset.Set[gamemap.Position] {
	return system.MovableCells(s.player.Pos, s.grid)
}

// Move runs one full tick: pinged robots are destroyed, the player moves,
// and if the player survives and has not won every robot takes a step.
func (s *Session) Move(target gamemap.Position) (Tick, error) {
	if s.state != StatePlaying {
		return Tick{State: s.state}, ErrGameOver
	}
	if !s.MovableCells().Has(target) {
		return Tick{State: s.state}, fmt.Errorf("%w: %s from %s", ErrIllegalMove, target, s.player.Pos)
	}

	var tick Tick
	tick.Destroyed = s.destroyPinged()

	s.turn++
	tick.Outcome, tick.Collected = system.MovePlayer(&s.player, target, s.robots, &s.pickups, s.grid)
	switch tick.Outcome {
	case system.OutcomeRobot:
		s.die(ReasonRobot)
	case system.OutcomeCleft:
		s.die(ReasonCleft)
	}
	if s.state != StatePlaying {
		tick.State = s.state
		return tick, nil
	}

	if s.grid.At(s.player.Pos).Kind == gamemap.KindExit && s.player.Keys >= s.rules.KeysRequired {
		s.state = StateWon
		s.log.Printf("turn %d: reached exit with %d keys", s.turn, s.player.Keys)
		tick.State = s.state
		return tick, nil
	}

	alive, fallen := system.StepRobots(s.robots, s.player.Pos, s.grid)
	s.robots = alive
	tick.Fallen = len(fallen)
	if slices.Contains(s.robots, s.player.Pos) {
		tick.Caught = true
		s.die(ReasonRobot)
	}

	s.log.Printf("turn %d: %s to %s, +%d charges +%d keys, %d destroyed, %d fell, %d robots left",
		s.turn, tick.Outcome, target, tick.Collected.Charges, tick.Collected.Keys,
		tick.Destroyed, tick.Fallen, len(s.robots))
	tick.State = s.state
	return tick, nil
}

// TogglePing marks or unmarks the first robot on an adjacent target cell.
// Marked robots are destroyed at the start of the next move. Pinging does
// not use up the turn.
func (s *Session) TogglePing(target gamemap.Position) (Ping, error) {
	if s.state != StatePlaying {
		return 0, ErrGameOver
	}
	idx := -1
	if s.MovableCells().Has(target) {
		idx = slices.Index(s.robots, target)
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w at %s", ErrNoRobot, target)
	}

	if s.pinged.Has(idx) {
		s.pinged.Remove(idx)
		s.player.Charges++
		s.log.Printf("turn %d: ping on %s cleared", s.turn, target)
		return PingCleared, nil
	}
	if s.player.Charges <= 0 {
		return PingNoCharge, nil
	}
	s.pinged.Put(idx)
	s.player.Charges--
	s.log.Printf("turn %d: pinged robot at %s", s.turn, target)
	return PingSet, nil
}

func (s *Session) destroyPinged() int {
	n := s.pinged.Size()
	if n == 0 {
		return 0
	}
	kept := make([]gamemap.Position, 0, len(s.robots)-n)
	for i, r := range s.robots {
		if !s.pinged.Has(i) {
			kept = append(kept, r)
		}
	}
	s.robots = kept
	s.pinged = mapset.New[int]()
	return n
}

func (s *Session) die(reason Reason) {
	s.state = StateDead
	s.reason = reason
	s.log.Printf("turn %d: player died (%s) at %s", s.turn, reason, s.player.Pos)
}
