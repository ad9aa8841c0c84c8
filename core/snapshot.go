package core

import (
	"sort"
	"time"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/shared/gamemath"
	"github.com/automoto/tkuet-fighter/systems"
	"github.com/automoto/tkuet-fighter/tags"
	"github.com/yohamta/donburi"
)

// Snapshot is a read-only copy of the round for renderers and spectators
type Snapshot struct {
	Tick        uint64            `json:"tick"`
	Now         time.Duration     `json:"now"`
	State       string            `json:"state"`
	Remaining   time.Duration     `json:"remaining"`
	TimeWarning bool              `json:"timeWarning"`
	WinnerSlot  int               `json:"winnerSlot"`
	Winner      string            `json:"winner,omitempty"`
	Fighters    []FighterSnapshot `json:"fighters"`
	Projectiles []ProjectileState `json:"projectiles"`
	Platforms   []gamemath.Rect   `json:"platforms"`
	Particles   int               `json:"particles"`
	Timers      int               `json:"timers"`
}

// FighterSnapshot is one fighter's state at the end of a tick
type FighterSnapshot struct {
	Slot        int           `json:"slot"`
	Name        string        `json:"name"`
	Body        gamemath.Rect `json:"body"`
	FacingRight bool          `json:"facingRight"`
	Airborne    bool          `json:"airborne"`
	Anim        string        `json:"anim"`
	Health      int           `json:"health"`
	Energy      float64       `json:"energy"`
	Attacking   bool          `json:"attacking"`
	Active      bool          `json:"active"`
	Phase       string        `json:"phase"`
	Super       bool          `json:"super"`
	Dead        bool          `json:"dead"`
}

// ProjectileState is one projectile in flight
type ProjectileState struct {
	OwnerSlot int           `json:"ownerSlot"`
	Seq       int           `json:"seq"`
	Body      gamemath.Rect `json:"body"`
	VelocityX float64       `json:"velocityX"`
	Damage    int           `json:"damage"`
	Super     bool          `json:"super"`
}

// Snapshot copies the current round state. Fighters are ordered by slot and
// projectiles by owner then spawn order.
func (m *Match) Snapshot() Snapshot {
	w := m.ecs.World
	match := components.Match.Get(m.entry)
	clock := components.Clock.Get(m.entry)

	s := Snapshot{
		Tick:        clock.Tick,
		Now:         clock.Now,
		State:       match.State.String(),
		Remaining:   match.Remaining,
		TimeWarning: match.TimeWarning,
		WinnerSlot:  match.WinnerSlot,
		Winner:      systems.WinnerName(m.ecs),
		Platforms:   systems.PlatformRects(m.ecs),
	}

	for slot := 0; slot < cfg.PlayerCount; slot++ {
		if e := m.Fighter(slot); e != nil {
			s.Fighters = append(s.Fighters, fighterSnapshot(e))
		}
	}

	tags.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		s.Projectiles = append(s.Projectiles, ProjectileState{
			OwnerSlot: p.OwnerSlot,
			Seq:       p.Seq,
			Body:      components.Object.Get(e).Rect(),
			VelocityX: p.VelocityX,
			Damage:    p.Damage,
			Super:     p.Super,
		})
	})
	sort.Slice(s.Projectiles, func(i, j int) bool {
		a, b := s.Projectiles[i], s.Projectiles[j]
		if a.OwnerSlot != b.OwnerSlot {
			return a.OwnerSlot < b.OwnerSlot
		}
		return a.Seq < b.Seq
	})

	tags.Particle.Each(w, func(*donburi.Entry) { s.Particles++ })
	tags.Timer.Each(w, func(*donburi.Entry) { s.Timers++ })
	return s
}

func fighterSnapshot(e *donburi.Entry) FighterSnapshot {
	f := components.Fighter.Get(e)
	melee := components.MeleeAttack.Get(e)
	return FighterSnapshot{
		Slot:        f.Slot,
		Name:        f.Profile.Name,
		Body:        components.Object.Get(e).Rect(),
		FacingRight: f.FacingRight,
		Airborne:    components.Physics.Get(e).Airborne,
		Anim:        f.Anim.String(),
		Health:      components.Health.Get(e).Current,
		Energy:      components.Energy.Get(e).Current,
		Attacking:   melee.Attacking,
		Active:      melee.Active,
		Phase:       melee.Phase.String(),
		Super:       components.Super.Get(e).Active,
		Dead:        f.Dead,
	}
}
