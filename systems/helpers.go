package systems

import (
	"math/rand"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getRules(w donburi.World) *cfg.Rules {
	return components.Rules.Get(components.Rules.MustFirst(w))
}

func getClock(w donburi.World) *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(w))
}

func getInput(w donburi.World) *components.InputSnapshot {
	return components.Input.Get(components.Input.MustFirst(w))
}

func getRandom(w donburi.World) *rand.Rand {
	return components.Random.Get(components.Random.MustFirst(w)).Rand
}

// getSpace returns the collision space, or nil in a world without one
func getSpace(w donburi.World) *resolv.Space {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry)
}

// IsMatchRunning returns true while the round accepts input
func IsMatchRunning(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).State == cfg.MatchStateRunning
}

// IsMatchOver returns true once a winner or draw has been decided
func IsMatchOver(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).State == cfg.MatchStateGameOver
}

// FighterBySlot returns the fighter for slot, or nil if it does not exist
func FighterBySlot(w donburi.World, slot int) *donburi.Entry {
	var found *donburi.Entry
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Fighter.Get(e).Slot == slot {
			found = e
		}
	})
	return found
}

// fightersBySlot returns both fighters indexed by slot. Systems walk this
// instead of the archetype so player one always acts first.
func fightersBySlot(w donburi.World) [cfg.PlayerCount]*donburi.Entry {
	var out [cfg.PlayerCount]*donburi.Entry
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		slot := components.Fighter.Get(e).Slot
		if slot >= 0 && slot < cfg.PlayerCount {
			out[slot] = e
		}
	})
	return out
}

func opponentSlot(slot int) int {
	return cfg.PlayerCount - 1 - slot
}

// entryFor resolves a stored entity reference, nil once it has been removed
func entryFor(w donburi.World, entity donburi.Entity) *donburi.Entry {
	if entity == donburi.Null || !w.Valid(entity) {
		return nil
	}
	return w.Entry(entity)
}
