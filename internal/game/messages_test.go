package game

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectDeathMessage(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, reason := range []Reason{ReasonRobot, ReasonCleft} {
		for range 20 {
			msg, err := SelectDeathMessage(reason, rng)
			require.NoError(t, err)
			assert.True(t, slices.Contains(deathMessages[reason], msg), "%q not in the %s table", msg, reason)
		}
	}
}

func TestSelectDeathMessageUnknownReason(t *testing.T) {
	_, err := SelectDeathMessage(ReasonNone, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrUnknownDeathReason)
}

func TestDeathMessageTables(t *testing.T) {
	assert.Len(t, deathMessages[ReasonRobot], 10)
	assert.Len(t, deathMessages[ReasonCleft], 10)
}

func TestParseReason(t *testing.T) {
	r, err := ParseReason("robot")
	require.NoError(t, err)
	assert.Equal(t, ReasonRobot, r)

	r, err = ParseReason("cleft")
	require.NoError(t, err)
	assert.Equal(t, ReasonCleft, r)

	_, err = ParseReason("lava")
	assert.ErrorIs(t, err, ErrUnknownDeathReason)

	for _, r := range []Reason{ReasonRobot, ReasonCleft} {
		got, err := ParseReason(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestSetLocale(t *testing.T) {
	SetLocale("../../locales", "fr_FR")
	t.Cleanup(func() { SetLocale("../../locales", "en_US") })

	assert.Equal(t, "Félicitations ! Vous avez gagné !", translate(WinMessage))
	assert.Equal(t, "Plus de charges.", translate("No charges left."))
	assert.Equal(t, "Ping cancelled, charge refunded.", translate("Ping cancelled, charge refunded."), "untranslated text passes through")
}
