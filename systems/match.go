package systems

import (
	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatchTimer counts the round down by the tick's simulated delta and
// decides the round on health when it reaches zero.
func UpdateMatchTimer(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStateRunning {
		return
	}

	rules := getRules(e.World)
	match.Remaining -= getClock(e.World).Delta
	if match.Remaining < 0 {
		match.Remaining = 0
	}
	match.TimeWarning = match.Remaining <= rules.Match.WarningAt

	if match.Remaining > 0 {
		return
	}

	// Time's up - higher health wins, equal health is a draw
	hp := fighterHealth(e)
	switch {
	case hp[0] > hp[1]:
		endMatch(e, 0, true)
	case hp[1] > hp[0]:
		endMatch(e, 1, true)
	default:
		endMatch(e, cfg.DrawWinner, true)
	}
}

// UpdateMatchOutcome ends the round as soon as either fighter's health is
// exhausted. Player one is checked first.
func UpdateMatchOutcome(e *ecs.ECS) {
	if !IsMatchRunning(e) {
		return
	}

	fighters := fightersBySlot(e.World)
	for slot, f := range fighters {
		if f != nil && components.Health.Get(f).Current <= 0 {
			endMatch(e, opponentSlot(slot), false)
			return
		}
	}
}

// endMatch moves the round to game over. It is a no-op once the round has
// ended, so the transition and its side effects happen exactly once.
func endMatch(e *ecs.ECS, winner int, timeUp bool) {
	matchEntry := components.Match.MustFirst(e.World)
	match := components.Match.Get(matchEntry)
	if match.State == cfg.MatchStateGameOver {
		return
	}

	now := getClock(e.World).Now
	match.State = cfg.MatchStateGameOver
	match.WinnerSlot = winner
	match.EndedAt = now

	if winner >= 0 {
		if loser := FighterBySlot(e.World, opponentSlot(winner)); loser != nil {
			components.Fighter.Get(loser).Dead = true
		}
	}

	factory.CreateVictoryParticles(e, getRandom(e.World))

	MatchEnded.Publish(e.World, MatchEndedEvent{
		WinnerSlot: winner,
		TimeUp:     timeUp,
		At:         now,
		Health:     fighterHealth(e),
	})
}

func fighterHealth(e *ecs.ECS) [cfg.PlayerCount]int {
	var hp [cfg.PlayerCount]int
	for slot, f := range fightersBySlot(e.World) {
		if f != nil {
			hp[slot] = components.Health.Get(f).Current
		}
	}
	return hp
}

// WinnerName returns the display name for the match result, the draw label
// when nobody won and an empty string while the round is running.
func WinnerName(e *ecs.ECS) string {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return ""
	}
	match := components.Match.Get(matchEntry)
	switch {
	case match.State != cfg.MatchStateGameOver:
		return ""
	case match.WinnerSlot == cfg.DrawWinner:
		return getRules(e.World).Match.DrawName
	default:
		if f := FighterBySlot(e.World, match.WinnerSlot); f != nil {
			return components.Fighter.Get(f).Profile.Name
		}
		return ""
	}
}
