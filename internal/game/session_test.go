package game

import (
	"bytes"
	"log"
	"math/rand"
	"robot-battle/internal/gamemap"
	"robot-battle/internal/generate"
	"robot-battle/internal/system"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(r, c int) gamemap.Position { return gamemap.Position{Row: r, Col: c} }

// sessionFrom builds a session from rows of labels such as "0 P 0 R".
func sessionFrom(t *testing.T, rules Rules, rows ...string) *Session {
	t.Helper()
	labels := make([][]string, len(rows))
	for i, row := range rows {
		labels[i] = strings.Fields(row)
	}
	grid, err := gamemap.FromLabels(labels, gamemap.DefaultTokens)
	require.NoError(t, err)
	s, err := NewSessionFromGrid(grid, rules, nil)
	require.NoError(t, err)
	return s
}

func TestNewSessionFromGrid(t *testing.T) {
	s := sessionFrom(t, Rules{MaxCharges: 3, KeysRequired: 1},
		"0 0 G 0",
		"P 0 R K",
		"0 C 0 E",
	)
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, pos(1, 0), s.Player().Pos)
	assert.Equal(t, 3, s.Player().Charges)
	assert.Equal(t, 3, s.Player().MaxCharges)
	assert.Equal(t, []gamemap.Position{pos(1, 2)}, s.Robots())
	assert.Equal(t, []gamemap.Position{pos(0, 2)}, s.Pickups().Charges)
	assert.Equal(t, []gamemap.Position{pos(1, 3)}, s.Pickups().Keys)
	assert.Zero(t, s.Turn())
	assert.Len(t, ShortID(s.ID), 8)
}

func TestNewSessionNoPlayer(t *testing.T) {
	grid, err := gamemap.FromLabels([][]string{{"0", "R"}}, gamemap.DefaultTokens)
	require.NoError(t, err)
	_, err = NewSessionFromGrid(grid, Rules{}, nil)
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestNewSessionGenerates(t *testing.T) {
	cfg := &generate.Config{
		Rows:      6,
		Cols:      8,
		Textures:  []int{0, 1, 2},
		PlayerPos: pos(3, 0),
		ExitPos:   pos(3, 7),
		Coeff:     generate.Coefficients{Clefts: 0.1, Robots: 0.05, Charges: 0.05, Keys: 0.05},
		Tokens:    gamemap.DefaultTokens,
		Rand:      rand.New(rand.NewSource(7)),
	}
	s, err := NewSession(cfg, Rules{MaxCharges: 2, KeysRequired: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, pos(3, 0), s.Player().Pos)
	assert.Equal(t, gamemap.KindExit, s.Grid().At(pos(3, 7)).Kind)

	cfg.Rows = 0
	_, err = NewSession(cfg, Rules{}, nil)
	assert.ErrorIs(t, err, generate.ErrInvalidConfig)
}

func TestMoveRobotsFollow(t *testing.T) {
	s := sessionFrom(t, Rules{MaxCharges: 1, KeysRequired: 1},
		"0 0 0 0 0",
		"P 0 0 0 R",
		"0 0 0 0 E",
	)
	tick, err := s.Move(pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, system.OutcomeSafe, tick.Outcome)
	assert.Equal(t, StatePlaying, tick.State)
	assert.False(t, tick.Caught)
	assert.Equal(t, []gamemap.Position{pos(1, 3)}, s.Robots())
	assert.Equal(t, 1, s.Turn())
}

func TestMoveIllegal(t *testing.T) {
	s := sessionFrom(t, Rules{},
		"0 0 0 0",
		"0 P 0 0",
	)
	_, err := s.Move(pos(1, 3))
	assert.ErrorIs(t, err, ErrIllegalMove)
	_, err = s.Move(pos(1, 1))
	assert.ErrorIs(t, err, ErrIllegalMove, "standing still is not a move")
	assert.Zero(t, s.Turn())
	assert.Equal(t, pos(1, 1), s.Player().Pos)
}

func TestMoveOntoRobot(t *testing.T) {
	s := sessionFrom(t, Rules{},
		"0 0 0",
		"P R 0",
	)
	tick, err := s.Move(pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, system.OutcomeRobot, tick.Outcome)
	assert.Equal(t, StateDead, s.State())
	assert.Equal(t, ReasonRobot, s.Reason())

	_, err = s.Move(pos(0, 0))
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = s.TogglePing(pos(1, 1))
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestMoveIntoCleft(t *testing.T) {
	s := sessionFrom(t, Rules{},
		"P C",
		"0 0",
	)
	tick, err := s.Move(pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, system.OutcomeCleft, tick.Outcome)
	assert.Equal(t, StateDead, tick.State)
	assert.Equal(t, ReasonCleft, s.Reason())
}

func TestRobotCatchesPlayer(t *testing.T) {
	s := sessionFrom(t, Rules{},
		"0 0 0 0",
		"P 0 0 R",
	)
	tick, err := s.Move(pos(1, 2))
	require.NoError(t, err)
	assert.Equal(t, system.OutcomeSafe, tick.Outcome)
	assert.True(t, tick.Caught)
	assert.Equal(t, StateDead, tick.State)
	assert.Equal(t, ReasonRobot, s.Reason())
}

func TestRobotFallsIntoCleft(t *testing.T) {
	s := sessionFrom(t, Rules{},
		"P 0 C R",
		"0 0 0 0",
	)
	tick, err := s.Move(pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, tick.Fallen)
	assert.Empty(t, s.Robots())
	assert.Equal(t, StatePlaying, s.State())
}

func TestWinNeedsKeys(t *testing.T) {
	s := sessionFrom(t, Rules{MaxCharges: 1, KeysRequired: 1},
		"P K E",
		"0 0 0",
	)
	tick, err := s.Move(pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, tick.State)

	// Back via the key, then onto the exit.
	tick, err = s.Move(pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, tick.Collected.Keys)
	assert.Equal(t, 1, s.Player().Keys)
	assert.Empty(t, s.Pickups().Keys)

	tick, err = s.Move(pos(0, 2))
	require.NoError(t, err)
	assert.Equal(t, StateWon, tick.State)
	assert.Equal(t, StateWon, s.State())
}

func TestExitLockedWithoutKeys(t *testing.T) {
	s := sessionFrom(t, Rules{KeysRequired: 2},
		"P E",
		"0 0",
	)
	tick, err := s.Move(pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, tick.State)
	assert.Equal(t, pos(0, 1), s.Player().Pos)
}

func TestChargePickup(t *testing.T) {
	s := sessionFrom(t, Rules{MaxCharges: 2},
		"P G 0",
	)
	_, err := s.TogglePing(pos(0, 1))
	assert.ErrorIs(t, err, ErrNoRobot)

	tick, err := s.Move(pos(0, 1))
	require.NoError(t, err)
	assert.Zero(t, tick.Collected.Charges, "already full")
	assert.Equal(t, 2, s.Player().Charges)
	assert.Equal(t, []gamemap.Position{pos(0, 1)}, s.Pickups().Charges)
}

func TestTogglePing(t *testing.T) {
	s := sessionFrom(t, Rules{MaxCharges: 1},
		"0 0 0 0 0",
		"0 P R 0 R",
	)

	res, err := s.TogglePing(pos(1, 2))
	require.NoError(t, err)
	assert.Equal(t, PingSet, res)
	assert.Zero(t, s.Player().Charges)
	assert.Equal(t, []gamemap.Position{pos(1, 2)}, s.Pinged())

	res, err = s.TogglePing(pos(1, 2))
	require.NoError(t, err)
	assert.Equal(t, PingCleared, res)
	assert.Equal(t, 1, s.Player().Charges)
	assert.Empty(t, s.Pinged())

	_, err = s.TogglePing(pos(1, 4))
	assert.ErrorIs(t, err, ErrNoRobot, "not adjacent")
	assert.Zero(t, s.Turn(), "pinging does not use a turn")

	res, err = s.TogglePing(pos(1, 2))
	require.NoError(t, err)
	require.Equal(t, PingSet, res)

	tick, err := s.Move(pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, tick.Destroyed)
	assert.Equal(t, []gamemap.Position{pos(1, 3)}, s.Robots())
	assert.Empty(t, s.Pinged())
}

func TestTogglePingNoCharge(t *testing.T) {
	s := sessionFrom(t, Rules{MaxCharges: 0},
		"P R",
	)
	res, err := s.TogglePing(pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, PingNoCharge, res)
	assert.Empty(t, s.Pinged())
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := sessionFrom(t, Rules{},
		"P R G K",
	)
	s.Robots()[0] = pos(9, 9)
	s.Pickups().Charges[0] = pos(9, 9)
	assert.Equal(t, []gamemap.Position{pos(0, 1)}, s.Robots())
	assert.Equal(t, []gamemap.Position{pos(0, 2)}, s.Pickups().Charges)
}

func TestSessionLogs(t *testing.T) {
	var buf bytes.Buffer
	grid, err := gamemap.FromLabels([][]string{{"P", "0", "0"}}, gamemap.DefaultTokens)
	require.NoError(t, err)
	s, err := NewSessionFromGrid(grid, Rules{}, log.New(&buf, "", 0))
	require.NoError(t, err)
	_, err = s.Move(pos(0, 1))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "["+ShortID(s.ID)+"] session start")
	assert.Contains(t, out, "turn 1:")
}
