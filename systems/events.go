package systems

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// MeleeHitEvent is published when an active melee hit-box connects
type MeleeHitEvent struct {
	Attacker     donburi.Entity
	Defender     donburi.Entity
	AttackerSlot int
	DefenderSlot int
	Damage       int
	Super        bool
	DefenderHP   int
}

// ProjectileHitEvent is published when a projectile strikes the opposing fighter
type ProjectileHitEvent struct {
	Owner        donburi.Entity
	Defender     donburi.Entity
	OwnerSlot    int
	DefenderSlot int
	Damage       int
	Super        bool
	DefenderHP   int
}

// SuperActivatedEvent is published when a fighter spends a full meter
type SuperActivatedEvent struct {
	Fighter donburi.Entity
	Slot    int
	At      time.Duration
	Until   time.Duration
}

// AttackEffectEvent is published when a swing's active window opens
type AttackEffectEvent struct {
	Fighter donburi.Entity
	Slot    int
	Super   bool
}

// MatchEndedEvent is published once per round on the transition to game over
type MatchEndedEvent struct {
	WinnerSlot int // cfg.DrawWinner on a draw
	TimeUp     bool
	At         time.Duration
	Health     [2]int
}

var (
	MeleeHit       = events.NewEventType[MeleeHitEvent]()
	ProjectileHit  = events.NewEventType[ProjectileHitEvent]()
	SuperActivated = events.NewEventType[SuperActivatedEvent]()
	AttackEffect   = events.NewEventType[AttackEffectEvent]()
	MatchEnded     = events.NewEventType[MatchEndedEvent]()
)

// ProcessEvents delivers everything published during the tick to subscribers.
// Registered last so handlers observe the settled world.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
