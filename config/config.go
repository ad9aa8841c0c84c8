package config

import (
	"image/color"
	"time"
)

// ScreenConfig holds the logical viewport size
type ScreenConfig struct {
	Width  int
	Height int
}

// PhysicsConfig contains movement and gravity values. Factors are fractions
// of the viewport so the feel survives a resolution change.
type PhysicsConfig struct {
	GravityFactor   float64 // Gravity per tick as a fraction of screen height
	JumpFactor      float64 // Initial jump velocity as a fraction of fighter height
	SpeedFactor     float64 // Walk speed per tick as a fraction of screen width
	GroundOffset    float64 // Ground baseline distance from the bottom of the screen
	EdgeMarginRatio float64 // Portion of the body allowed off-screen horizontally
}

// CombatConfig contains melee and resource values
type CombatConfig struct {
	AttackDamage    int
	AttackCooldown  time.Duration // Measured from the last attack start
	SuperMultiplier int

	// Active window, in attack frames
	ActiveStartFrame float64
	ActiveEndFrame   float64

	// Melee hit-box before per-fighter scaling
	HitboxWidth   float64
	HitboxHeight  float64
	HitboxOffsetX float64
	HitboxOffsetY float64

	MaxHealth   int
	MaxEnergy   float64
	EnergyRegen float64 // Per tick while idle and not in super mode
	EnergyOnHit float64
}

// ProjectileConfig contains bullet values
type ProjectileConfig struct {
	SpeedFactor  float64         // Per tick as a fraction of screen width
	Radius       float64         // Bounding square side is twice this
	Cooldown     time.Duration   // Per shot, not per burst
	BurstDelays  []time.Duration // Extra shots scheduled after the first
	SpawnOffsetX float64
	SpawnHeight  float64 // Fraction of body height
	OffscreenPad float64
	TrailLength  int
}

// SuperConfig contains special mode values
type SuperConfig struct {
	Duration       time.Duration
	EffectCount    int
	EffectInterval time.Duration
}

// MatchConfig contains round values
type MatchConfig struct {
	Duration      time.Duration
	WarningAt     time.Duration // Timer pulses red at or below this
	MaxFrameDelta time.Duration // Clamp for a single tick, zero disables
	DrawName      string
}

// EffectsConfig contains presentation timings
type EffectsConfig struct {
	AttackFlash      time.Duration
	HitNumber        time.Duration
	HitNumberRise    float64
	SparkLife        time.Duration
	SparkSize        float64
	VictoryParticles int
	ParticleGravity  float64
	ParticleFade     float64
	TitleIntro       float64 // Seconds
}

// HUDConfig contains top bar layout
type HUDConfig struct {
	BarWidth     float64
	BarHeight    float64
	Margin       float64
	OverheadBar  float64
	TimerY       float64
	HealthBack   color.RGBA
	EnergyBack   color.RGBA
	EnergyFill   color.RGBA
	WarningColor color.RGBA
}

// SpectateConfig controls the optional websocket snapshot feed
type SpectateConfig struct {
	Enabled  bool
	Addr     string
	Interval time.Duration
}

// DebugConfig controls developer overlays
type DebugConfig struct {
	Overlay bool // Collision bodies, hit-boxes and tick counters
}

// Global configuration instances
var Screen ScreenConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Projectile ProjectileConfig
var Super SuperConfig
var Match MatchConfig
var Effects EffectsConfig
var HUD HUDConfig
var Spectate SpectateConfig
var Debug DebugConfig

// Stage is the Tiled map loaded for platforms; empty uses the built-in layout.
var Stage string

// LogLevel is the zerolog level name used by main.
var LogLevel string

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	OrangeRed    = color.RGBA{R: 255, G: 69, B: 0, A: 255}
	HotPink      = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	Lime         = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	DodgerBlue   = color.RGBA{R: 30, G: 144, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 136, G: 136, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 136, B: 136, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 204}
	PlatformFill = color.RGBA{R: 255, G: 255, B: 255, A: 51}
	Background   = color.RGBA{R: 24, G: 26, B: 40, A: 255}
)

// VictoryColors are picked at random for celebration particles
var VictoryColors = []color.RGBA{Gold, Orange, OrangeRed, HotPink, Lime, DodgerBlue}

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Screen = ScreenConfig{
		Width:  1280,
		Height: 720,
	}

	Physics = PhysicsConfig{
		GravityFactor:   0.001,
		JumpFactor:      0.3,
		SpeedFactor:     0.006,
		GroundOffset:    150,
		EdgeMarginRatio: 0.5,
	}

	Combat = CombatConfig{
		AttackDamage:     10,
		AttackCooldown:   500 * time.Millisecond,
		SuperMultiplier:  2,
		ActiveStartFrame: 3,
		ActiveEndFrame:   5,
		HitboxWidth:      60,
		HitboxHeight:     50,
		HitboxOffsetX:    30,
		HitboxOffsetY:    20,
		MaxHealth:        100,
		MaxEnergy:        100,
		EnergyRegen:      0.1,
		EnergyOnHit:      15,
	}

	Projectile = ProjectileConfig{
		SpeedFactor:  0.015,
		Radius:       6,
		Cooldown:     200 * time.Millisecond,
		BurstDelays:  []time.Duration{50 * time.Millisecond, 100 * time.Millisecond},
		SpawnOffsetX: 10,
		SpawnHeight:  0.45,
		OffscreenPad: 50,
		TrailLength:  5,
	}

	Super = SuperConfig{
		Duration:       3 * time.Second,
		EffectCount:    10,
		EffectInterval: 100 * time.Millisecond,
	}

	Match = MatchConfig{
		Duration:      180 * time.Second,
		WarningAt:     30 * time.Second,
		MaxFrameDelta: 250 * time.Millisecond,
		DrawName:      "平手",
	}

	Effects = EffectsConfig{
		AttackFlash:      200 * time.Millisecond,
		HitNumber:        500 * time.Millisecond,
		HitNumberRise:    50,
		SparkLife:        500 * time.Millisecond,
		SparkSize:        50,
		VictoryParticles: 100,
		ParticleGravity:  0.3,
		ParticleFade:     0.005,
		TitleIntro:       1.2,
	}

	HUD = HUDConfig{
		BarWidth:     300,
		BarHeight:    20,
		Margin:       10,
		OverheadBar:  50,
		TimerY:       10,
		HealthBack:   color.RGBA{R: 85, G: 0, B: 0, A: 255},
		EnergyBack:   color.RGBA{R: 68, G: 68, B: 0, A: 255},
		EnergyFill:   Yellow,
		WarningColor: Red,
	}

	Spectate = SpectateConfig{
		Enabled:  false,
		Addr:     "127.0.0.1:8089",
		Interval: 100 * time.Millisecond,
	}

	Stage = "stages/arena.tmx"
	LogLevel = "info"
}
