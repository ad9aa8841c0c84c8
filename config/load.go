package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// FileName is the optional override file looked up by Load
const FileName = "tkuet.json"

// Load reads overrides from FileName in configDir and applies them on top of
// the compiled defaults. A missing file is not an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", LogLevel)
	viper.SetDefault("stage", Stage)

	viper.SetDefault("screen.width", Screen.Width)
	viper.SetDefault("screen.height", Screen.Height)

	viper.SetDefault("match.durationSeconds", int(Match.Duration/time.Second))
	viper.SetDefault("match.warningSeconds", int(Match.WarningAt/time.Second))

	viper.SetDefault("combat.attackDamage", Combat.AttackDamage)
	viper.SetDefault("combat.attackCooldownMs", Combat.AttackCooldown.Milliseconds())
	viper.SetDefault("combat.energyOnHit", Combat.EnergyOnHit)

	viper.SetDefault("projectile.cooldownMs", Projectile.Cooldown.Milliseconds())

	viper.SetDefault("super.durationMs", Super.Duration.Milliseconds())

	viper.SetDefault("spectate.enabled", Spectate.Enabled)
	viper.SetDefault("spectate.addr", Spectate.Addr)
	viper.SetDefault("spectate.intervalMs", Spectate.Interval.Milliseconds())

	viper.SetDefault("debug.overlay", Debug.Overlay)

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return apply()
}

func apply() error {
	width, height := viper.GetInt("screen.width"), viper.GetInt("screen.height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", width, height)
	}
	seconds := viper.GetInt("match.durationSeconds")
	if seconds <= 0 {
		return fmt.Errorf("invalid match duration %ds", seconds)
	}

	LogLevel = viper.GetString("logLevel")
	Stage = viper.GetString("stage")

	Screen.Width = width
	Screen.Height = height

	Match.Duration = time.Duration(seconds) * time.Second
	Match.WarningAt = time.Duration(viper.GetInt("match.warningSeconds")) * time.Second

	Combat.AttackDamage = viper.GetInt("combat.attackDamage")
	Combat.AttackCooldown = time.Duration(viper.GetInt64("combat.attackCooldownMs")) * time.Millisecond
	Combat.EnergyOnHit = viper.GetFloat64("combat.energyOnHit")

	Projectile.Cooldown = time.Duration(viper.GetInt64("projectile.cooldownMs")) * time.Millisecond

	Super.Duration = time.Duration(viper.GetInt64("super.durationMs")) * time.Millisecond

	Spectate.Enabled = viper.GetBool("spectate.enabled")
	Spectate.Addr = viper.GetString("spectate.addr")
	Spectate.Interval = time.Duration(viper.GetInt64("spectate.intervalMs")) * time.Millisecond

	Debug.Overlay = viper.GetBool("debug.overlay")

	return nil
}
