package game

import (
	"fmt"
	"robot-battle/internal/audio"
	"robot-battle/internal/gamemap"
	"robot-battle/internal/generate"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor is a single difficulty on an empty 3x4 map with the player at
// (1,0) and the exit at (1,3).
type corridor struct{}

func (corridor) Names() []string { return []string{"test"} }

func (corridor) Generator(name string, rng generate.Source) (*generate.Config, error) {
	if name != "test" {
		return nil, fmt.Errorf("unknown difficulty %q", name)
	}
	return &generate.Config{
		Rows:      3,
		Cols:      4,
		Textures:  []int{0, 1},
		PlayerPos: pos(1, 0),
		ExitPos:   pos(1, 3),
		Tokens:    gamemap.DefaultTokens,
		Rand:      rng,
	}, nil
}

func (corridor) Rules(string) (Rules, error) { return Rules{MaxCharges: 1}, nil }

type recorder struct{ played []audio.Sound }

func (r *recorder) Play(s audio.Sound) { r.played = append(r.played, s) }

func newTestGame(t *testing.T, difficulty string) (*Game, tcell.SimulationScreen, *recorder) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(40, 20)
	rec := &recorder{}
	g := newGame(ss, Options{Levels: corridor{}, Difficulty: difficulty, Seed: 1, Sounds: rec})
	return g, ss, rec
}

func post(t *testing.T, ss tcell.Screen, evs ...tcell.Event) {
	t.Helper()
	for _, ev := range evs {
		require.NoError(t, ss.PostEvent(ev))
	}
}

func TestHandleKeyMoves(t *testing.T) {
	g, ss, rec := newTestGame(t, "test")
	defer ss.Fini()
	require.NoError(t, g.startRun())
	g.draw()

	assert.True(t, g.handleKey(runeKey('l')))
	assert.Equal(t, pos(1, 1), g.session.Player().Pos)
	assert.Equal(t, 1, g.session.Turn())
	assert.Equal(t, []audio.Sound{audio.SoundMove}, rec.played)

	assert.True(t, g.handleKey(runeKey('x')), "unbound keys are ignored")
	assert.Equal(t, 1, g.session.Turn())

	assert.False(t, g.handleKey(runeKey('q')))
}

func TestHandleKeyIllegalMove(t *testing.T) {
	g, ss, rec := newTestGame(t, "test")
	defer ss.Fini()
	require.NoError(t, g.startRun())

	assert.True(t, g.handleKey(runeKey('h')), "off the left edge")
	assert.Zero(t, g.session.Turn())
	assert.Empty(t, rec.played)
	assert.Equal(t, "You can't reach that cell.", g.messages[len(g.messages)-1])
}

func TestHandleKeyPingMode(t *testing.T) {
	g, ss, _ := newTestGame(t, "test")
	defer ss.Fini()
	require.NoError(t, g.startRun())

	g.handleKey(runeKey('p'))
	assert.True(t, g.pinging)
	g.handleKey(runeKey('l'))
	assert.False(t, g.pinging)
	assert.Zero(t, g.session.Turn(), "a ping direction does not move")
	assert.Equal(t, "No robot there to ping.", g.messages[len(g.messages)-1])
}

func TestHandleMouse(t *testing.T) {
	g, ss, rec := newTestGame(t, "test")
	defer ss.Fini()
	require.NoError(t, g.startRun())
	g.draw()

	// Cells are two columns wide and the map fits, so (1,1) is at x=2.
	g.handleMouse(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	assert.Equal(t, pos(1, 1), g.session.Player().Pos)

	// Holding the button is not a new click.
	g.handleMouse(tcell.NewEventMouse(4, 1, tcell.Button1, tcell.ModNone))
	assert.Equal(t, pos(1, 1), g.session.Player().Pos)

	g.handleMouse(tcell.NewEventMouse(4, 1, tcell.ButtonNone, tcell.ModNone))
	g.handleMouse(tcell.NewEventMouse(4, 1, tcell.Button1, tcell.ModNone))
	assert.Equal(t, pos(1, 2), g.session.Player().Pos)
	g.handleMouse(tcell.NewEventMouse(4, 1, tcell.ButtonNone, tcell.ModNone))

	// Clicks on the HUD are ignored.
	g.handleMouse(tcell.NewEventMouse(6, 19, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 2, g.session.Turn())
	g.handleMouse(tcell.NewEventMouse(6, 19, tcell.ButtonNone, tcell.ModNone))

	// Right click pings.
	g.handleMouse(tcell.NewEventMouse(6, 1, tcell.Button2, tcell.ModNone))
	assert.Equal(t, 2, g.session.Turn())
	assert.Equal(t, "No robot there to ping.", g.messages[len(g.messages)-1])
	g.handleMouse(tcell.NewEventMouse(6, 1, tcell.ButtonNone, tcell.ModNone))

	g.handleMouse(tcell.NewEventMouse(6, 1, tcell.Button1, tcell.ModNone))
	assert.Equal(t, StateWon, g.session.State())
	assert.Equal(t, []audio.Sound{audio.SoundMove, audio.SoundMove, audio.SoundMove}, rec.played)
}

func TestAddMessageKeepsTail(t *testing.T) {
	g, ss, _ := newTestGame(t, "test")
	defer ss.Fini()
	for i := range 60 {
		g.addMessage(fmt.Sprint(i))
	}
	assert.Len(t, g.messages, 50)
	assert.Equal(t, "10", g.messages[0])
	assert.Equal(t, "59", g.messages[49])
}

func TestEndMessage(t *testing.T) {
	g, ss, _ := newTestGame(t, "test")
	defer ss.Fini()
	require.NoError(t, g.startRun())

	g.session.die(ReasonCleft)
	assert.Contains(t, deathMessages[ReasonCleft], g.endMessage())

	g.session.state = StateWon
	assert.Equal(t, WinMessage, g.endMessage())
}

func TestRunWinThenQuit(t *testing.T) {
	g, ss, rec := newTestGame(t, "test")
	post(t, ss, runeKey('l'), runeKey('l'), runeKey('l'), runeKey('q'))

	require.NoError(t, g.Run())
	assert.Equal(t, StateWon, g.session.State())
	assert.Equal(t, audio.SoundVictory, rec.played[len(rec.played)-1])
}

func TestRunRestart(t *testing.T) {
	g, ss, _ := newTestGame(t, "test")
	post(t, ss, runeKey('l'), runeKey('l'), runeKey('l'), runeKey('r'), runeKey('q'))

	require.NoError(t, g.Run())
	assert.Equal(t, StatePlaying, g.session.State(), "quit during the second run")
	assert.Zero(t, g.session.Turn())
}

func TestRunDifficultyMenu(t *testing.T) {
	g, ss, _ := newTestGame(t, "")
	post(t, ss, namedKey(tcell.KeyEnter), namedKey(tcell.KeyEscape))

	require.NoError(t, g.Run())
	assert.Equal(t, "test", g.difficulty)
	require.NotNil(t, g.session)
}

func TestRunDifficultyMenuQuit(t *testing.T) {
	g, ss, _ := newTestGame(t, "")
	post(t, ss, runeKey('q'))

	require.NoError(t, g.Run())
	assert.Nil(t, g.session)
}

func TestRunUnknownDifficulty(t *testing.T) {
	g, _, _ := newTestGame(t, "nightmare")
	assert.Error(t, g.Run())
}

func TestSeededMapsRepeat(t *testing.T) {
	a, ssa, _ := newTestGame(t, "test")
	defer ssa.Fini()
	b, ssb, _ := newTestGame(t, "test")
	defer ssb.Fini()
	require.NoError(t, a.startRun())
	require.NoError(t, b.startRun())
	assert.Equal(t, a.session.Grid().Labels(), b.session.Grid().Labels())
}
