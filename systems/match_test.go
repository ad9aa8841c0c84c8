package systems

import (
	"testing"
	"time"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestUpdateMatchOutcome(t *testing.T) {
	tests := []struct {
		name       string
		health     [cfg.PlayerCount]int
		wantOver   bool
		wantWinner int
	}{
		{"both standing", [cfg.PlayerCount]int{10, 10}, false, cfg.NoWinner},
		{"player two down", [cfg.PlayerCount]int{10, 0}, true, 0},
		{"player one down", [cfg.PlayerCount]int{0, 40}, true, 1},
		{"both down checks player one first", [cfg.PlayerCount]int{0, 0}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, f := newTestWorld(t)
			for slot, hp := range tt.health {
				components.Health.Get(f[slot]).Set(hp)
			}

			UpdateMatchOutcome(e)

			match := components.Match.Get(components.Match.MustFirst(e.World))
			assert.Equal(t, tt.wantOver, IsMatchOver(e))
			assert.Equal(t, tt.wantWinner, match.WinnerSlot)
			if tt.wantOver {
				loser := f[opponentSlot(tt.wantWinner)]
				assert.True(t, components.Fighter.Get(loser).Dead)
			}
		})
	}
}

func TestEndMatchRunsOnce(t *testing.T) {
	e, f := newTestWorld(t)

	ended := 0
	MatchEnded.Subscribe(e.World, func(_ donburi.World, _ MatchEndedEvent) { ended++ })

	components.Health.Get(f[1]).Set(0)
	UpdateMatchOutcome(e)
	endMatch(e, 1, true)
	ProcessEvents(e)

	match := components.Match.Get(components.Match.MustFirst(e.World))
	assert.Equal(t, 1, ended)
	assert.Equal(t, 0, match.WinnerSlot)
	assert.Equal(t, "玩家一", WinnerName(e))
}

func TestMatchTimerDrawOnEqualHealth(t *testing.T) {
	e, _ := newTestWorld(t)
	match := components.Match.Get(components.Match.MustFirst(e.World))
	c := getClock(e.World)

	c.Delta = match.Remaining - time.Second
	UpdateMatchTimer(e)
	require.False(t, IsMatchOver(e))
	assert.True(t, match.TimeWarning)
	assert.Equal(t, time.Second, match.Remaining)

	c.Delta = 5 * time.Second
	UpdateMatchTimer(e)
	require.True(t, IsMatchOver(e))
	assert.Zero(t, match.Remaining)
	assert.Equal(t, cfg.DrawWinner, match.WinnerSlot)
	assert.Equal(t, "平手", WinnerName(e))
}
