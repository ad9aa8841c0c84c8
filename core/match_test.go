package core

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/tkuet-fighter/clock"
	"github.com/automoto/tkuet-fighter/components"
	cfg "github.com/automoto/tkuet-fighter/config"
	"github.com/automoto/tkuet-fighter/shared/leveldata"
	"github.com/automoto/tkuet-fighter/systems"
	"github.com/automoto/tkuet-fighter/systems/factory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 10 * time.Millisecond

func newTestMatch(t *testing.T, mutate func(*cfg.Rules)) (*Match, *clock.Manual) {
	t.Helper()
	rules := cfg.CurrentRules()
	if mutate != nil {
		mutate(&rules)
	}
	clk := clock.NewManual()
	m := New(Options{
		Rules:  rules,
		Clock:  clk,
		Logger: zerolog.Nop(),
		Seed:   1,
	})
	return m, clk
}

// step advances the clock by d and runs one tick with in
func step(m *Match, clk *clock.Manual, in components.InputSnapshot, d time.Duration) {
	clk.Advance(d)
	m.Tick(in)
}

func run(m *Match, clk *clock.Manual, in components.InputSnapshot, d time.Duration, n int) {
	for i := 0; i < n; i++ {
		step(m, clk, in, d)
	}
}

func press(slot int, actions ...cfg.ActionID) components.InputSnapshot {
	var in components.InputSnapshot
	in.Press(slot, actions...)
	return in
}

var idle components.InputSnapshot

// shotsOverhead sends every projectile above the fighters so tests can
// look at melee in isolation.
func shotsOverhead(r *cfg.Rules) {
	r.Projectile.SpawnHeight = -0.5
}

// faceOff puts player one at x facing right with player two just inside
// reach of the melee hit-box.
func faceOff(m *Match, x float64) {
	squareUp(m, 0, x, 80)
}

// squareUp puts the attacker in slot at x facing right and its opponent gap
// pixels further right.
func squareUp(m *Match, slot int, x, gap float64) {
	a, d := m.Fighter(slot), m.Fighter(1-slot)
	components.Object.Get(a).X = x
	components.Fighter.Get(a).FacingRight = true
	components.Object.Get(d).X = x + gap
}

func TestNewMatchInitialState(t *testing.T) {
	m, _ := newTestMatch(t, nil)
	s := m.Snapshot()

	assert.Equal(t, "running", s.State)
	assert.Equal(t, 180*time.Second, s.Remaining)
	assert.Equal(t, cfg.NoWinner, s.WinnerSlot)
	require.Len(t, s.Fighters, 2)
	require.Len(t, s.Platforms, 3)
	assert.Empty(t, s.Projectiles)

	assert.Equal(t, "玩家一", s.Fighters[0].Name)
	assert.Equal(t, "玩家二", s.Fighters[1].Name)
	assert.Equal(t, 256.0, s.Fighters[0].Body.X)
	assert.Equal(t, 1024.0, s.Fighters[1].Body.X)
	for _, f := range s.Fighters {
		assert.Equal(t, 570.0, f.Body.Y)
		assert.Equal(t, 100, f.Health)
		assert.Equal(t, 0.0, f.Energy)
	}
	assert.True(t, s.Fighters[0].FacingRight)
	assert.False(t, s.Fighters[1].FacingRight)
}

func TestMeleeConnectsOncePerSwingDuringActiveWindow(t *testing.T) {
	// Player one's hit-box reaches [x+80, x+140), player two's shorter one
	// [x+74, x+122). Bodies are 50 wide.
	tests := []struct {
		name    string
		slot    int
		gap     float64
		wantHit bool
		endTick int
	}{
		{"player one in reach", 0, 80, true, 36},
		{"player two in reach", 1, 80, true, 28},
		{"player one reaches further", 0, 125, true, 36},
		{"player two falls short", 1, 125, false, 28},
		{"player one starts further out", 0, 28, false, 36},
		{"player two hits up close", 1, 28, true, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, clk := newTestMatch(t, shotsOverhead)
			squareUp(m, tt.slot, 500, tt.gap)
			defender := 1 - tt.slot

			var hits []systems.MeleeHitEvent
			m.OnMeleeHit(func(ev systems.MeleeHitEvent) { hits = append(hits, ev) })
			flashes := 0
			m.OnAttackEffect(func(systems.AttackEffectEvent) { flashes++ })

			var activeTicks []int
			endedAt := 0
			for i := 1; i <= 40; i++ {
				in := idle
				if i == 1 {
					in = press(tt.slot, cfg.ActionAttack)
				}
				step(m, clk, in, tick)

				s := m.Snapshot()
				if s.Fighters[tt.slot].Active {
					activeTicks = append(activeTicks, i)
				}
				if endedAt == 0 && !s.Fighters[tt.slot].Attacking {
					endedAt = i
					assert.Equal(t, "idle", s.Fighters[tt.slot].Phase)
				}
				if i < 12 {
					assert.Equal(t, 100, s.Fighters[defender].Health, "tick %d", i)
				}
			}

			assert.Equal(t, tt.endTick, endedAt, "swing end tick")
			assert.Equal(t, []int{12, 13, 14, 15, 16, 17, 18, 19}, activeTicks)
			assert.Equal(t, 1, flashes)
			assert.Equal(t, 1, components.MeleeAttack.Get(m.Fighter(tt.slot)).Swings)

			if !tt.wantHit {
				assert.Empty(t, hits)
				assert.Equal(t, 100, components.Health.Get(m.Fighter(defender)).Current)
				return
			}
			require.Len(t, hits, 1)
			assert.Equal(t, tt.slot, hits[0].AttackerSlot)
			assert.Equal(t, 10, hits[0].Damage)
			assert.Equal(t, 90, components.Health.Get(m.Fighter(defender)).Current)
		})
	}
}

func TestMeleeOutOfReachDealsNothing(t *testing.T) {
	m, clk := newTestMatch(t, shotsOverhead)
	faceOff(m, 300)
	components.Object.Get(m.Fighter(1)).X = 500

	step(m, clk, press(0, cfg.ActionAttack), tick)
	run(m, clk, idle, tick, 40)

	assert.Equal(t, 100, components.Health.Get(m.Fighter(1)).Current)
}

func TestMeleeFinishesOpponentAndEndsMatch(t *testing.T) {
	m, clk := newTestMatch(t, shotsOverhead)
	faceOff(m, 500)
	components.Health.Get(m.Fighter(1)).Set(15)

	ended := 0
	var result systems.MatchEndedEvent
	m.OnMatchEnded(func(ev systems.MatchEndedEvent) {
		ended++
		result = ev
	})

	attack := press(0, cfg.ActionAttack)
	run(m, clk, attack, tick, 12)
	assert.Equal(t, 5, components.Health.Get(m.Fighter(1)).Current)
	assert.False(t, m.Over())

	run(m, clk, attack, tick, 60)
	assert.Equal(t, 0, components.Health.Get(m.Fighter(1)).Current)
	require.True(t, m.Over())

	s := m.Snapshot()
	assert.Equal(t, "game_over", s.State)
	assert.Equal(t, 0, s.WinnerSlot)
	assert.Equal(t, "玩家一", s.Winner)
	assert.True(t, s.Fighters[1].Dead)
	assert.Equal(t, 100, s.Particles)

	// Further ticks change nothing and do not end the match twice
	run(m, clk, attack, tick, 20)
	assert.Equal(t, 1, ended)
	assert.False(t, result.TimeUp)
	assert.Equal(t, [2]int{100, 0}, result.Health)
	assert.Equal(t, s.Remaining, m.Snapshot().Remaining)
}

func TestHitsGrantEnergyClamped(t *testing.T) {
	m, clk := newTestMatch(t, shotsOverhead)
	faceOff(m, 500)

	step(m, clk, press(0, cfg.ActionAttack), tick)
	run(m, clk, idle, tick, 11)
	// One tick of regen before the swing started, then the hit
	assert.InDelta(t, 15.1, components.Energy.Get(m.Fighter(0)).Current, 1e-9)

	components.Energy.Get(m.Fighter(0)).Current = 95
	run(m, clk, press(0, cfg.ActionAttack), tick, 70)
	assert.Equal(t, 100.0, components.Energy.Get(m.Fighter(0)).Current)
}

func TestProjectileHitGrantsEnergyAndDamage(t *testing.T) {
	m, clk := newTestMatch(t, nil)
	components.Object.Get(m.Fighter(0)).X = 300
	components.Object.Get(m.Fighter(1)).X = 600

	var hits []systems.ProjectileHitEvent
	m.OnProjectileHit(func(ev systems.ProjectileHitEvent) { hits = append(hits, ev) })

	step(m, clk, press(0, cfg.ActionAttack), tick)
	run(m, clk, idle, tick, 30)

	require.Len(t, hits, 1)
	assert.Equal(t, 0, hits[0].OwnerSlot)
	assert.Equal(t, 10, hits[0].Damage)
	assert.Equal(t, 90, components.Health.Get(m.Fighter(1)).Current)
	assert.Empty(t, m.Snapshot().Projectiles)
	assert.GreaterOrEqual(t, components.Energy.Get(m.Fighter(0)).Current, 15.0)
}

func TestProjectileDespawnsPastRightMargin(t *testing.T) {
	m, clk := newTestMatch(t, func(r *cfg.Rules) {
		r.Screen.Width = 800
		r.Screen.Height = 600
	})

	factory.CreateProjectile(m.ECS(), factory.ProjectileSpawn{
		Owner:     m.Fighter(0),
		X:         100,
		Y:         10,
		VelocityX: 5,
		Radius:    6,
		Damage:    10,
		Color:     cfg.Blue,
	})

	run(m, clk, idle, tick, 150)
	s := m.Snapshot()
	require.Len(t, s.Projectiles, 1)
	assert.Equal(t, 850.0, s.Projectiles[0].Body.X)

	step(m, clk, idle, tick)
	assert.Empty(t, m.Snapshot().Projectiles)
	assert.Equal(t, 100, components.Health.Get(m.Fighter(1)).Current)
}

func TestBurstRespectsPerShotCooldown(t *testing.T) {
	tests := []struct {
		name     string
		cooldown time.Duration
		want     int
	}{
		{"default cooldown suppresses the burst", 200 * time.Millisecond, 1},
		{"short cooldown lets every shot through", 10 * time.Millisecond, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, clk := newTestMatch(t, func(r *cfg.Rules) {
				r.Projectile.Cooldown = tt.cooldown
			})

			step(m, clk, press(0, cfg.ActionAttack), tick)
			run(m, clk, idle, tick, 15)

			assert.Equal(t, tt.want, components.Shooter.Get(m.Fighter(0)).Fired)
		})
	}
}

func TestSuperDoublesDamageAndExpiresAfterThreeSeconds(t *testing.T) {
	m, clk := newTestMatch(t, nil)
	components.Energy.Get(m.Fighter(0)).Current = 100

	var activations []systems.SuperActivatedEvent
	m.OnSuperActivated(func(ev systems.SuperActivatedEvent) { activations = append(activations, ev) })

	const dt = 100 * time.Millisecond
	step(m, clk, press(0, cfg.ActionSpecial), dt)

	s := m.Snapshot()
	require.True(t, s.Fighters[0].Super)
	assert.Equal(t, 0.0, s.Fighters[0].Energy)
	assert.Equal(t, 11, s.Timers, "one expiry and ten effect bursts")
	require.Len(t, activations, 1)
	assert.Equal(t, 3*time.Second, activations[0].Until-activations[0].At)

	run(m, clk, idle, dt, 29)
	s = m.Snapshot()
	assert.True(t, s.Fighters[0].Super, "still active at 2.9s")
	assert.Equal(t, 0.0, s.Fighters[0].Energy, "no regen during super")

	step(m, clk, idle, dt)
	s = m.Snapshot()
	assert.False(t, s.Fighters[0].Super)
	assert.Equal(t, 3*time.Second, s.Now-activations[0].At)
	assert.Zero(t, s.Timers)
}

func TestSuperRequiresFullEnergy(t *testing.T) {
	m, clk := newTestMatch(t, nil)
	components.Energy.Get(m.Fighter(0)).Current = 99.5

	step(m, clk, press(0, cfg.ActionSpecial), tick)
	s := m.Snapshot()
	assert.False(t, s.Fighters[0].Super)
	assert.InDelta(t, 99.6, s.Fighters[0].Energy, 1e-9)
}

func TestSuperShotsCarryDoubleDamage(t *testing.T) {
	m, clk := newTestMatch(t, nil)
	components.Energy.Get(m.Fighter(0)).Current = 100

	step(m, clk, press(0, cfg.ActionSpecial), tick)
	step(m, clk, press(0, cfg.ActionAttack), tick)

	s := m.Snapshot()
	require.Len(t, s.Projectiles, 1)
	assert.Equal(t, 20, s.Projectiles[0].Damage)
	assert.True(t, s.Projectiles[0].Super)
}

func TestTimerExpiryDecidesOnHealth(t *testing.T) {
	tests := []struct {
		name       string
		health     [2]int
		wantWinner int
		wantName   string
	}{
		{"equal health is a draw", [2]int{100, 100}, cfg.DrawWinner, "平手"},
		{"player one ahead", [2]int{80, 60}, 0, "玩家一"},
		{"player two ahead", [2]int{40, 70}, 1, "玩家二"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, clk := newTestMatch(t, nil)
			for slot, hp := range tt.health {
				components.Health.Get(m.Fighter(slot)).Set(hp)
			}

			const dt = 250 * time.Millisecond
			run(m, clk, idle, dt, 599)
			s := m.Snapshot()
			assert.Equal(t, "running", s.State)
			assert.Equal(t, 30*time.Second+250*time.Millisecond, s.Remaining)
			assert.False(t, s.TimeWarning)

			step(m, clk, idle, dt)
			assert.True(t, m.Snapshot().TimeWarning)

			run(m, clk, idle, dt, 119)
			assert.False(t, m.Over())

			step(m, clk, idle, dt)
			s = m.Snapshot()
			require.True(t, m.Over())
			assert.Zero(t, s.Remaining)
			assert.Equal(t, tt.wantWinner, s.WinnerSlot)
			assert.Equal(t, tt.wantName, s.Winner)
		})
	}
}

func TestTickClampsLongFrames(t *testing.T) {
	m, clk := newTestMatch(t, nil)

	step(m, clk, idle, 5*time.Second)
	s := m.Snapshot()
	assert.Equal(t, 250*time.Millisecond, s.Now)
	assert.Equal(t, 180*time.Second-250*time.Millisecond, s.Remaining)
}

func TestResetRestoresInitialState(t *testing.T) {
	m, clk := newTestMatch(t, shotsOverhead)
	faceOff(m, 500)
	components.Health.Get(m.Fighter(1)).Set(5)
	components.Energy.Get(m.Fighter(0)).Current = 100

	ended := 0
	m.OnMatchEnded(func(systems.MatchEndedEvent) { ended++ })

	step(m, clk, press(0, cfg.ActionSpecial), tick)
	run(m, clk, press(0, cfg.ActionAttack), tick, 20)
	require.True(t, m.Over())
	require.NotZero(t, m.Snapshot().Particles)

	m.Reset()
	s := m.Snapshot()
	assert.Equal(t, "running", s.State)
	assert.Equal(t, 180*time.Second, s.Remaining)
	assert.Equal(t, cfg.NoWinner, s.WinnerSlot)
	assert.Empty(t, s.Projectiles)
	assert.Zero(t, s.Particles)
	assert.Zero(t, s.Timers)
	assert.Zero(t, s.Tick)
	for _, f := range s.Fighters {
		assert.Equal(t, 100, f.Health)
		assert.Equal(t, 0.0, f.Energy)
		assert.False(t, f.Super)
		assert.False(t, f.Dead)
		assert.False(t, f.Attacking)
	}
	assert.Equal(t, 256.0, s.Fighters[0].Body.X)

	// Hooks survive the rebuilt world
	faceOff(m, 500)
	components.Health.Get(m.Fighter(1)).Set(5)
	run(m, clk, press(0, cfg.ActionAttack), tick, 20)
	assert.True(t, m.Over())
	assert.Equal(t, 2, ended)
}

func TestLeftWinsWhenBothDirectionsHeld(t *testing.T) {
	m, clk := newTestMatch(t, nil)
	startX := components.Object.Get(m.Fighter(0)).X

	step(m, clk, press(0, cfg.ActionLeft, cfg.ActionRight), tick)

	f := m.Snapshot().Fighters[0]
	assert.InDelta(t, startX-7.68, f.Body.X, 1e-9)
	assert.False(t, f.FacingRight)
}

func TestFighterClampedToArena(t *testing.T) {
	m, clk := newTestMatch(t, nil)

	run(m, clk, press(0, cfg.ActionLeft), tick, 100)
	assert.Equal(t, -25.0, m.Snapshot().Fighters[0].Body.X)

	run(m, clk, press(1, cfg.ActionRight), tick, 100)
	assert.Equal(t, 1280.0-50+25, m.Snapshot().Fighters[1].Body.X)
}

func TestJumpLandsOnPlatformAndFallsOffEdge(t *testing.T) {
	m, clk := newTestMatch(t, nil)
	components.Object.Get(m.Fighter(0)).X = 470

	const dt = 16 * time.Millisecond
	step(m, clk, press(0, cfg.ActionJump), dt)
	assert.True(t, m.Snapshot().Fighters[0].Airborne)

	run(m, clk, idle, dt, 150)
	f := m.Snapshot().Fighters[0]
	assert.False(t, f.Airborne)
	assert.Equal(t, 432.0-100, f.Body.Y)

	// Walk off the right edge of the platform and drop to the ground
	run(m, clk, press(0, cfg.ActionRight), dt, 20)
	run(m, clk, idle, dt, 100)
	f = m.Snapshot().Fighters[0]
	assert.False(t, f.Airborne)
	assert.Equal(t, 570.0, f.Body.Y)
}

func TestRandomInputKeepsResourcesAndPositionsInBounds(t *testing.T) {
	m, clk := newTestMatch(t, nil)
	rng := rand.New(rand.NewSource(42))
	actions := []cfg.ActionID{cfg.ActionLeft, cfg.ActionRight, cfg.ActionJump, cfg.ActionAttack, cfg.ActionSpecial}

	for i := 0; i < 3000; i++ {
		var in components.InputSnapshot
		for slot := 0; slot < cfg.PlayerCount; slot++ {
			for _, a := range actions {
				if rng.Intn(3) == 0 {
					in.Press(slot, a)
				}
			}
		}
		step(m, clk, in, time.Duration(rng.Intn(30)+1)*time.Millisecond)

		for _, f := range m.Snapshot().Fighters {
			require.GreaterOrEqual(t, f.Health, 0)
			require.LessOrEqual(t, f.Health, 100)
			require.GreaterOrEqual(t, f.Energy, 0.0)
			require.LessOrEqual(t, f.Energy, 100.0)
			require.GreaterOrEqual(t, f.Body.X, -25.0)
			require.LessOrEqual(t, f.Body.X, 1280.0-25)
			require.LessOrEqual(t, f.Body.Y, 570.0)
			if f.Active {
				require.True(t, f.Attacking)
			}
		}
	}
}

func TestSetStageRebuildsLayout(t *testing.T) {
	m, _ := newTestMatch(t, nil)
	require.Len(t, systems.PlatformRects(m.ECS()), 3)

	m.SetStage(&leveldata.StageData{
		Name:        "ledge",
		Platforms:   []leveldata.PlatformSpec{{FX: 0.5, FY: 0.5, W: 100, H: 20}},
		SpawnPoints: []leveldata.SpawnPoint{{FX: 0.1, Index: 0}},
	})

	rects := systems.PlatformRects(m.ECS())
	require.Len(t, rects, 1)
	assert.InDelta(t, 640, rects[0].X, 1e-9)
	assert.InDelta(t, 128, components.Object.Get(m.Fighter(0)).X, 1e-9)
	assert.InDelta(t, 1024, components.Object.Get(m.Fighter(1)).X, 1e-9)

	m.SetStage(nil)
	assert.Len(t, systems.PlatformRects(m.ECS()), 3)
}
