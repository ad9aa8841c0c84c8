package components

import (
	"time"

	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current round state.
// This is a singleton component - only one match exists per world.
type MatchData struct {
	State       cfg.MatchStateID
	Remaining   time.Duration
	Duration    time.Duration
	WinnerSlot  int // cfg.NoWinner until game over, cfg.DrawWinner on a draw
	TimeWarning bool
	EndedAt     time.Duration
}

var Match = donburi.NewComponentType[MatchData]()

// ClockData is the singleton tick clock systems read instead of wall time
type ClockData struct {
	Now   time.Duration // Simulated time since the match started
	Delta time.Duration // Elapsed during the current tick
	Tick  uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// Rules is the singleton copy of the configuration the match was built with
var Rules = donburi.NewComponentType[cfg.Rules]()
