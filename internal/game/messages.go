package game

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// ErrUnknownDeathReason is returned by SelectDeathMessage for a reason with
// no messages.
var ErrUnknownDeathReason = errors.New("unknown death reason")

// Reason classifies how the player died.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonRobot
	ReasonCleft
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonRobot:
		return "robot"
	case ReasonCleft:
		return "cleft"
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// ParseReason maps "robot" or "cleft" to a Reason.
func ParseReason(s string) (Reason, error) {
	switch s {
	case "robot":
		return ReasonRobot, nil
	case "cleft":
		return ReasonCleft, nil
	}
	return ReasonNone, fmt.Errorf("%w: %q", ErrUnknownDeathReason, s)
}

var deathMessages = map[Reason][]string{
	ReasonRobot: {
		"A robot intercepted you! Your journey ends here.",
		"The cold steel of the robot crushed your dreams.",
		"A robot caught you off guard.",
		"You were overrun by the relentless robot swarm.",
		"A robot's trap has sealed your fate.",
		"You've been terminated by a robot's relentless pursuit.",
		"A robot found you in its crosshairs. Mission failed.",
		"The robotic menace outmaneuvered you. Try again!",
		"A robot has eliminated you. Be more cautious next time.",
		"A machine's unyielding grip has ended your quest.",
	},
	ReasonCleft: {
		"You stepped into the abyss. Watch your step next time!",
		"The ground gave way beneath you.",
		"You fell into a dark cleft. Beware of the terrain!",
		"The unforgiving chasm has claimed your life!",
		"A single misstep, and now you're lost in the void.",
		"The cleft swallowed you whole.",
		"The treacherous terrain caught you off guard.",
		"You plummeted into the unknown depths. Be more vigilant!",
		"The cleft was waiting, and you walked right into it.",
		"Your careless steps led you into the abyss.",
	},
}

// WinMessage is shown on the victory screen.
const WinMessage = "Congratulations! You've won the game!"

// Intn is the randomness SelectDeathMessage draws from.
type Intn interface {
	Intn(n int) int
}

// translate is gotext.Get behind a variable so vet does not treat the
// message table entries as format strings.
var translate = gotext.Get

// SelectDeathMessage picks one message for reason, translated through the
// configured locale.
func SelectDeathMessage(reason Reason, rng Intn) (string, error) {
	msgs, ok := deathMessages[reason]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownDeathReason, reason)
	}
	return translate(msgs[rng.Intn(len(msgs))]), nil
}

// SetLocale loads translations for lang from dir/<lang>/LC_MESSAGES/default.po.
// Strings without a translation are shown as written.
func SetLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}
