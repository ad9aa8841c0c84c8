package systems

import (
	"math"
	"time"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// startAttack begins a swing when the fighter is idle and off cooldown.
// The first projectile of the burst fires immediately and the rest are
// scheduled; the first progress step happens on this tick.
func startAttack(ecs *ecs.ECS, e *donburi.Entry, rules *cfg.Rules, now time.Duration) bool {
	melee := components.MeleeAttack.Get(e)
	if melee.Attacking || now < melee.NextAttackAt {
		return false
	}

	melee.Attacking = true
	melee.Active = false
	melee.HitLanded = false
	melee.Progress = 0
	melee.Phase = cfg.MeleeWindup
	melee.LastAttackAt = now
	melee.NextAttackAt = now + rules.Combat.AttackCooldown
	melee.Swings++

	fireShot(ecs, e, rules, now)
	for _, delay := range rules.Projectile.BurstDelays {
		factory.ScheduleTimer(ecs, components.TimerBurstShot, e.Entity(), delay)
	}

	stepAttack(ecs, e, rules)
	return true
}

// stepAttack advances the swing by one tick and moves it through
// windup, active and recovery. Entering the active window happens once per
// swing and spawns the attack flash.
func stepAttack(ecs *ecs.ECS, e *donburi.Entry, rules *cfg.Rules) {
	melee := components.MeleeAttack.Get(e)
	fighter := components.Fighter.Get(e)

	melee.Progress += fighter.Profile.AttackSpeed
	frame := math.Floor(melee.Progress)

	switch {
	case frame >= rules.Combat.ActiveEndFrame:
		melee.Active = false
		melee.Phase = cfg.MeleeRecovery
	case frame >= rules.Combat.ActiveStartFrame:
		if melee.Phase == cfg.MeleeWindup {
			melee.Active = true
			melee.Phase = cfg.MeleeActive
			spawnAttackFlash(ecs, e)
		}
	}

	if melee.Progress >= fighter.Profile.AttackFrames {
		melee.Attacking = false
		melee.Active = false
		melee.Progress = 0
		melee.Phase = cfg.MeleeIdle
	}
}

func spawnAttackFlash(ecs *ecs.ECS, e *donburi.Entry) {
	obj := components.Object.Get(e)
	fighter := components.Fighter.Get(e)

	x := obj.X - 40
	if fighter.FacingRight {
		x = obj.X + obj.W + 10
	}
	fill := cfg.White
	if components.Super.Get(e).Active {
		fill = cfg.Yellow
	}
	factory.CreateAttackFlash(ecs, x, obj.Y+30, fill, fighter.Profile.Color)

	AttackEffect.Publish(ecs.World, AttackEffectEvent{
		Fighter: e.Entity(),
		Slot:    fighter.Slot,
		Super:   components.Super.Get(e).Active,
	})
}

// UpdateMeleeCollisions resolves both fighters' swings against each other
func UpdateMeleeCollisions(ecs *ecs.ECS) {
	if !IsMatchRunning(ecs) {
		return
	}

	fighters := fightersBySlot(ecs.World)
	for slot, attacker := range fighters {
		defender := fighters[opponentSlot(slot)]
		if attacker == nil || defender == nil {
			continue
		}
		ResolveMeleeHit(ecs, attacker, defender)
	}
}
