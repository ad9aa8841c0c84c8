package systems

import (
	"math"
	"time"

	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters turns the tick's input snapshot into movement, jumps,
// attacks and special activations, then clamps each fighter to the arena.
// Player one always updates before player two.
func UpdateFighters(ecs *ecs.ECS) {
	if !IsMatchRunning(ecs) {
		return
	}

	rules := getRules(ecs.World)
	input := getInput(ecs.World)
	now := getClock(ecs.World).Now

	for _, e := range fightersBySlot(ecs.World) {
		if e == nil || components.Fighter.Get(e).Dead {
			continue
		}
		updateFighter(ecs, e, rules, input, now)
	}
}

func updateFighter(ecs *ecs.ECS, e *donburi.Entry, rules *cfg.Rules, input *components.InputSnapshot, now time.Duration) {
	fighter := components.Fighter.Get(e)
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	melee := components.MeleeAttack.Get(e)
	energy := components.Energy.Get(e)
	super := components.Super.Get(e)

	physics.PrevY = obj.Y
	held := func(a cfg.ActionID) bool { return input.Held(fighter.Slot, a) }

	// Left wins when both directions are held
	switch {
	case held(cfg.ActionLeft):
		obj.X -= physics.Speed
		fighter.FacingRight = false
		fighter.Walking = true
	case held(cfg.ActionRight):
		obj.X += physics.Speed
		fighter.FacingRight = true
		fighter.Walking = true
	default:
		fighter.Walking = false
	}

	if held(cfg.ActionJump) && !physics.Airborne {
		physics.Airborne = true
		physics.VelocityY = -fighter.Profile.Height * rules.Physics.JumpFactor
		fighter.Frame = 0
	}

	if physics.Airborne {
		obj.Y, physics.VelocityY = gamemath.Integrate(obj.Y, physics.VelocityY, rules.Gravity())
		if groundY := rules.GroundY(); obj.Y >= groundY {
			obj.Y = groundY
			physics.VelocityY = 0
			physics.Airborne = false
			fighter.Frame = 0
		}
	}

	if held(cfg.ActionSpecial) && energy.Full() {
		activateSuper(ecs, e, rules, now)
	}

	margin := fighter.Profile.Width * rules.Physics.EdgeMarginRatio
	obj.X = gamemath.Clamp(obj.X, -margin, float64(rules.Screen.Width)-obj.W+margin)

	if !melee.Attacking && !super.Active {
		energy.Gain(rules.Combat.EnergyRegen)
	}

	started := false
	if held(cfg.ActionAttack) {
		started = startAttack(ecs, e, rules, now)
	}
	if melee.Attacking && !started {
		stepAttack(ecs, e, rules)
	}

	updateAnimation(fighter, physics, melee)
}

// updateAnimation derives the presentation state. Attack wins over jump,
// jump over walk.
func updateAnimation(f *components.FighterData, physics *components.PhysicsData, melee *components.MeleeAttackData) {
	p := f.Profile
	switch {
	case melee.Attacking:
		f.Anim = cfg.AnimAttack
		f.Frame = melee.Progress
	case physics.Airborne:
		if f.Anim != cfg.AnimJump {
			f.Frame = 0
		}
		f.Anim = cfg.AnimJump
		f.Frame = math.Min(f.Frame+p.JumpSpeed, p.JumpFrames-1)
	default:
		if f.Anim != cfg.AnimWalk {
			f.Frame = 0
		}
		f.Anim = cfg.AnimWalk
		if f.Walking {
			f.Frame = math.Mod(f.Frame+p.WalkSpeed, p.WalkFrames)
		} else {
			f.Frame = 0
		}
	}
}
