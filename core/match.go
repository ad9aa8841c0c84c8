// Package core owns one round of the fighter simulation. A Match builds its
// own donburi world, feeds it one input snapshot per tick and rebuilds it
// from scratch on reset.
package core

import (
	"time"

	"github.com/automoto/tkuet-fighter/clock"
	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/shared/leveldata"
	"github.com/automoto/tkuet-fighter/systems"
	"github.com/automoto/tkuet-fighter/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCell is the resolv cell size used for the platform space
const spaceCell = 16

// Options configures a Match
type Options struct {
	Rules  cfg.Rules
	Clock  clock.Clock // nil uses the process monotonic clock
	Logger zerolog.Logger
	Stage  *leveldata.StageData // nil uses the built-in layout
	Seed   int64                // Cosmetic randomness only
}

// Match is one two-fighter round and everything it needs to restart
type Match struct {
	rules cfg.Rules
	clock clock.Clock
	log   zerolog.Logger
	stage *leveldata.StageData
	seed  int64

	ecs    *ecs.ECS
	entry  *donburi.Entry
	lastAt time.Duration
	resets int

	hooks hooks
}

type hooks struct {
	meleeHit       []func(systems.MeleeHitEvent)
	projectileHit  []func(systems.ProjectileHitEvent)
	superActivated []func(systems.SuperActivatedEvent)
	attackEffect   []func(systems.AttackEffectEvent)
	matchEnded     []func(systems.MatchEndedEvent)
}

// New builds a running match with both fighters at their spawn points
func New(opts Options) *Match {
	m := &Match{
		rules: opts.Rules,
		clock: opts.Clock,
		log:   opts.Logger,
		stage: opts.Stage,
		seed:  opts.Seed,
	}
	if m.clock == nil {
		m.clock = clock.NewSystem()
	}
	if m.stage == nil {
		m.stage = leveldata.DefaultStage()
	}

	m.build()
	m.log.Info().
		Str("stage", m.stage.Name).
		Dur("duration", m.rules.Match.Duration).
		Msg("match started")
	return m
}

func (m *Match) build() {
	m.ecs = ecs.NewECS(donburi.NewWorld())

	m.ecs.AddSystem(systems.UpdateMatchTimer)
	m.ecs.AddSystem(systems.UpdateTimers)
	m.ecs.AddSystem(systems.UpdateFighters)
	m.ecs.AddSystem(systems.UpdatePlatformSupport)
	m.ecs.AddSystem(systems.UpdateObjects)
	m.ecs.AddSystem(systems.UpdateProjectiles)
	m.ecs.AddSystem(systems.UpdateMeleeCollisions)
	m.ecs.AddSystem(systems.UpdateMatchOutcome)
	m.ecs.AddSystem(systems.UpdateEffects)
	m.ecs.AddSystem(systems.ProcessEvents)

	m.ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	m.ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	m.ecs.AddRenderer(cfg.Default, systems.DrawProjectiles)
	m.ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	m.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	m.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	m.ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	m.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	m.entry = factory.CreateMatch(m.ecs, m.rules, m.seed+int64(m.resets))
	factory.CreateSpace(m.ecs, spaceCell)
	for _, r := range m.stage.Layout(m.rules.Screen.Width, m.rules.Screen.Height) {
		factory.CreatePlatform(m.ecs, r)
	}
	for slot := 0; slot < cfg.PlayerCount; slot++ {
		spawn := m.stage.SpawnFraction(slot, m.rules.Fighters[slot].SpawnFraction)
		factory.CreateFighter(m.ecs, slot, spawn)
	}

	m.subscribe()
	m.lastAt = m.clock.Now()
}

// subscribe forwards the world's events to the registered hooks. It runs
// for every rebuilt world so hooks survive a reset.
func (m *Match) subscribe() {
	w := m.ecs.World

	systems.MeleeHit.Subscribe(w, func(_ donburi.World, ev systems.MeleeHitEvent) {
		m.log.Debug().Int("attacker", ev.AttackerSlot).Int("damage", ev.Damage).Int("hp", ev.DefenderHP).Msg("melee hit")
		for _, fn := range m.hooks.meleeHit {
			fn(ev)
		}
	})
	systems.ProjectileHit.Subscribe(w, func(_ donburi.World, ev systems.ProjectileHitEvent) {
		m.log.Debug().Int("owner", ev.OwnerSlot).Int("damage", ev.Damage).Int("hp", ev.DefenderHP).Msg("projectile hit")
		for _, fn := range m.hooks.projectileHit {
			fn(ev)
		}
	})
	systems.SuperActivated.Subscribe(w, func(_ donburi.World, ev systems.SuperActivatedEvent) {
		m.log.Debug().Int("slot", ev.Slot).Dur("at", ev.At).Msg("super activated")
		for _, fn := range m.hooks.superActivated {
			fn(ev)
		}
	})
	systems.AttackEffect.Subscribe(w, func(_ donburi.World, ev systems.AttackEffectEvent) {
		for _, fn := range m.hooks.attackEffect {
			fn(ev)
		}
	})
	systems.MatchEnded.Subscribe(w, func(_ donburi.World, ev systems.MatchEndedEvent) {
		m.log.Info().
			Int("winner", ev.WinnerSlot).
			Bool("timeUp", ev.TimeUp).
			Ints("health", ev.Health[:]).
			Msg("match ended")
		for _, fn := range m.hooks.matchEnded {
			fn(ev)
		}
	})
}

// OnMeleeHit registers fn for every melee hit
func (m *Match) OnMeleeHit(fn func(systems.MeleeHitEvent)) {
	m.hooks.meleeHit = append(m.hooks.meleeHit, fn)
}

// OnProjectileHit registers fn for every projectile hit
func (m *Match) OnProjectileHit(fn func(systems.ProjectileHitEvent)) {
	m.hooks.projectileHit = append(m.hooks.projectileHit, fn)
}

// OnSuperActivated registers fn for every super activation
func (m *Match) OnSuperActivated(fn func(systems.SuperActivatedEvent)) {
	m.hooks.superActivated = append(m.hooks.superActivated, fn)
}

// OnAttackEffect registers fn for every opened active window
func (m *Match) OnAttackEffect(fn func(systems.AttackEffectEvent)) {
	m.hooks.attackEffect = append(m.hooks.attackEffect, fn)
}

// OnMatchEnded registers fn for the end of every round
func (m *Match) OnMatchEnded(fn func(systems.MatchEndedEvent)) {
	m.hooks.matchEnded = append(m.hooks.matchEnded, fn)
}

// Tick advances the match by the time elapsed on the clock since the last
// tick, clamped to the configured maximum, using input as the held actions
// of both players.
func (m *Match) Tick(input components.InputSnapshot) {
	now := m.clock.Now()
	delta := now - m.lastAt
	m.lastAt = now
	if delta < 0 {
		delta = 0
	}
	if limit := m.rules.Match.MaxFrameDelta; limit > 0 && delta > limit {
		delta = limit
	}

	c := components.Clock.Get(m.entry)
	c.Delta = delta
	c.Now += delta
	c.Tick++
	components.Input.SetValue(m.entry, input)

	m.ecs.Update()
}

// Reset discards the world and starts a fresh round. Pending timers,
// projectiles and effects go with the old world.
func (m *Match) Reset() {
	m.resets++
	m.build()
	m.log.Info().Int("round", m.resets+1).Msg("match reset")
}

// SetStage swaps the platform layout and restarts the round on it
func (m *Match) SetStage(stage *leveldata.StageData) {
	if stage == nil {
		stage = leveldata.DefaultStage()
	}
	m.stage = stage
	m.Reset()
}

// Draw renders the world through the registered layers
func (m *Match) Draw(screen *ebiten.Image) {
	m.ecs.Draw(screen)
}

// ECS exposes the underlying world for rendering and tests
func (m *Match) ECS() *ecs.ECS {
	return m.ecs
}

// Rules returns the rules the match was built with
func (m *Match) Rules() cfg.Rules {
	return m.rules
}

// Fighter returns the fighter entry for slot, or nil
func (m *Match) Fighter(slot int) *donburi.Entry {
	return systems.FighterBySlot(m.ecs.World, slot)
}

// Over reports whether the round has been decided
func (m *Match) Over() bool {
	return systems.IsMatchOver(m.ecs)
}
