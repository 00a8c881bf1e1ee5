package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"robot-battle/internal/audio"
	"robot-battle/internal/gamemap"
	"robot-battle/internal/generate"
	"robot-battle/internal/render"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"
)

// Levels supplies the difficulties a game can be started with.
type Levels interface {
	Names() []string
	Generator(name string, rng generate.Source) (*generate.Config, error)
	Rules(name string) (Rules, error)
}

// Sounds plays sound effects.
type Sounds interface {
	Play(audio.Sound)
}

type silent struct{}

func (silent) Play(audio.Sound) {}

// Options configure a Game.
type Options struct {
	Levels     Levels
	Difficulty string // skips the menu when set
	Seed       int64  // 0 picks a time-based seed
	Logger     *log.Logger
	Sounds     Sounds
}

// Game is the top-level orchestrator of the terminal UI.
type Game struct {
	screen     tcell.Screen
	renderer   *render.Renderer
	opts       Options
	rng        *rand.Rand
	difficulty string
	session    *Session
	messages   []string
	pinging    bool
	buttons    tcell.ButtonMask
}

// New creates and returns a Game with screen initialized.
func New(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return newGame(screen, opts), nil
}

func newGame(screen tcell.Screen, opts Options) *Game {
	if opts.Sounds == nil {
		opts.Sounds = silent{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		screen:     screen,
		renderer:   render.NewRenderer(screen),
		opts:       opts,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: opts.Difficulty,
	}
}

// Run is the main game loop. Supports consecutive runs via Restart.
func (g *Game) Run() error {
	defer g.screen.Fini()

	for {
		if g.opts.Difficulty == "" && !g.runDifficultySelect() {
			return nil
		}
		if err := g.startRun(); err != nil {
			return err
		}
		if quit := g.playRun(); quit {
			return nil
		}
		if !g.showEndScreen() {
			return nil
		}
	}
}

// startRun generates a fresh map for the current difficulty.
func (g *Game) startRun() error {
	cfg, err := g.opts.Levels.Generator(g.difficulty, g.rng)
	if err != nil {
		return err
	}
	rules, err := g.opts.Levels.Rules(g.difficulty)
	if err != nil {
		return err
	}
	s, err := NewSession(cfg, rules, g.opts.Logger)
	if err != nil {
		return err
	}
	g.session = s
	g.messages = nil
	g.pinging = false
	g.addMessage(fmt.Sprintf(translate("Collect %d keys and reach the exit."), rules.KeysRequired))
	g.addMessage(translate("Left click or hjklyubn moves. Right click or p+direction pings a robot."))
	return nil
}

// playRun handles input until the session ends. Returns true if the
// player quit.
func (g *Game) playRun() bool {
	for g.session.State() == StatePlaying {
		g.draw()
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return true
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			if !g.handleKey(ev) {
				return true
			}
		case *tcell.EventMouse:
			g.handleMouse(ev)
		}
	}
	g.draw()
	return false
}

func (g *Game) draw() {
	s := g.session
	p := s.Player()
	pk := s.Pickups()
	var movable mapset.Set[gamemap.Position]
	if s.State() == StatePlaying {
		movable = s.MovableCells()
	}
	g.renderer.DrawFrame(render.Scene{
		Grid:     s.Grid(),
		Player:   p.Pos,
		Robots:   s.Robots(),
		Pinged:   s.Pinged(),
		Charges:  pk.Charges,
		Keys:     pk.Keys,
		Movable:  movable,
		ExitOpen: p.Keys >= s.Rules().KeysRequired,
	})
	g.renderer.DrawHUD(render.Status{
		SessionID:    ShortID(s.ID),
		Difficulty:   g.difficulty,
		Turn:         s.Turn(),
		Charges:      p.Charges,
		MaxCharges:   p.MaxCharges,
		Keys:         p.Keys,
		KeysRequired: s.Rules().KeysRequired,
		Robots:       len(s.Robots()),
		Pinging:      g.pinging,
	}, g.messages)
	g.screen.Show()
}

// handleKey processes one key press. Returns false when the player quits.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	switch action {
	case ActionQuit:
		return false
	case ActionNone:
		return true
	case ActionPing:
		g.pinging = !g.pinging
		return true
	}
	dr, dc := actionToDelta(action)
	target := g.session.Player().Pos.Add(dr, dc)
	if g.pinging {
		g.pinging = false
		g.ping(target)
		return true
	}
	g.move(target)
	return true
}

// handleMouse moves on a left click and pings on a right click. Only the
// press is acted on, not drags or releases.
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ g.buttons
	g.buttons = buttons
	if pressed&(tcell.Button1|tcell.Button2) == 0 {
		return
	}
	x, y := ev.Position()
	target, ok := g.renderer.ScreenToCell(x, y)
	if !ok {
		return
	}
	if pressed&tcell.Button1 != 0 {
		g.move(target)
		return
	}
	g.ping(target)
}

func (g *Game) move(target gamemap.Position) {
	tick, err := g.session.Move(target)
	if errors.Is(err, ErrIllegalMove) {
		g.addMessage(translate("You can't reach that cell."))
		return
	}
	if err != nil {
		return
	}
	g.opts.Sounds.Play(audio.SoundMove)

	if tick.Destroyed > 0 {
		g.addMessage(fmt.Sprintf(translate("The ping overloads %d robot(s)."), tick.Destroyed))
	}
	if tick.Collected.Charges > 0 {
		g.opts.Sounds.Play(audio.SoundCharge)
		p := g.session.Player()
		g.addMessage(fmt.Sprintf(translate("Charge collected (%d/%d)."), p.Charges, p.MaxCharges))
	}
	if tick.Collected.Keys > 0 {
		g.opts.Sounds.Play(audio.SoundKey)
		g.addMessage(fmt.Sprintf(translate("Key collected (%d/%d)."), g.session.Player().Keys, g.session.Rules().KeysRequired))
	}
	if tick.Fallen > 0 {
		g.addMessage(fmt.Sprintf(translate("%d robot(s) fell into a cleft."), tick.Fallen))
	}
	if tick.State == StatePlaying && g.session.Grid().At(target).Kind == gamemap.KindExit {
		missing := g.session.Rules().KeysRequired - g.session.Player().Keys
		g.addMessage(fmt.Sprintf(translate("The exit is locked: %d more key(s) needed."), missing))
	}
}

func (g *Game) ping(target gamemap.Position) {
	res, err := g.session.TogglePing(target)
	if err != nil {
		if errors.Is(err, ErrNoRobot) {
			g.addMessage(translate("No robot there to ping."))
		}
		return
	}
	switch res {
	case PingSet:
		g.opts.Sounds.Play(audio.SoundPing)
		g.addMessage(translate("Robot pinged. It will fall on your next move."))
	case PingCleared:
		g.addMessage(translate("Ping cancelled, charge refunded."))
	case PingNoCharge:
		g.addMessage(translate("No charges left."))
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}

// endMessage returns the game-over text for the finished session.
func (g *Game) endMessage() string {
	if g.session.State() == StateWon {
		return translate(WinMessage)
	}
	msg, err := SelectDeathMessage(g.session.Reason(), g.rng)
	if err != nil {
		return err.Error()
	}
	return msg
}

// showEndScreen blurs the final frame behind the outcome and returns true
// if the player wants to restart, false to quit.
func (g *Game) showEndScreen() bool {
	won := g.session.State() == StateWon
	if won {
		g.opts.Sounds.Play(audio.SoundVictory)
	} else {
		g.opts.Sounds.Play(audio.SoundGameOver)
	}
	snapshot := render.Snapshot(g.screen)
	message := g.endMessage()

	for {
		render.DrawGameOver(g.screen, snapshot, won, message)

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		}
	}
}
