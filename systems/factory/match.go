package factory

import (
	"math/rand"

	"github.com/automoto/tkuet-fighter/archetypes"
	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch creates the singleton entity holding round state, the tick
// clock, the input snapshot, the rules and the cosmetic random source.
func CreateMatch(ecs *ecs.ECS, rules cfg.Rules, seed int64) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)

	components.Rules.SetValue(match, rules)
	components.Match.SetValue(match, components.MatchData{
		State:      cfg.MatchStateRunning,
		Remaining:  rules.Match.Duration,
		Duration:   rules.Match.Duration,
		WinnerSlot: cfg.NoWinner,
	})
	components.Clock.SetValue(match, components.ClockData{})
	components.Input.SetValue(match, components.InputSnapshot{})
	components.Random.SetValue(match, components.RandomData{Rand: rand.New(rand.NewSource(seed))})

	return match
}

// MustRules returns the rules of the match in this world
func MustRules(w donburi.World) *cfg.Rules {
	return components.Rules.Get(components.Rules.MustFirst(w))
}
