package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	screen, match, combat, projectile, super, spectate := Screen, Match, Combat, Projectile, Super, Spectate
	stage, level, debug := Stage, LogLevel, Debug
	t.Cleanup(func() {
		viper.Reset()
		Screen, Match, Combat, Projectile, Super, Spectate = screen, match, combat, projectile, super, spectate
		Stage, LogLevel, Debug = stage, level, debug
	})
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	restoreGlobals(t)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"screen": { "width": 800, "height": 600 },
		"match": { "durationSeconds": 60 },
		"combat": { "attackDamage": 12 },
		"projectile": { "cooldownMs": 40 },
		"spectate": { "enabled": true, "addr": "127.0.0.1:9999" },
		"debug": { "overlay": true }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", LogLevel)
	assert.Equal(t, 800, Screen.Width)
	assert.Equal(t, 600, Screen.Height)
	assert.Equal(t, 60*time.Second, Match.Duration)
	assert.Equal(t, 12, Combat.AttackDamage)
	assert.Equal(t, 40*time.Millisecond, Projectile.Cooldown)
	assert.True(t, Spectate.Enabled)
	assert.Equal(t, "127.0.0.1:9999", Spectate.Addr)
	assert.True(t, Debug.Overlay)

	// Untouched keys keep the compiled defaults
	assert.Equal(t, 3*time.Second, Super.Duration)
	assert.Equal(t, 500*time.Millisecond, Combat.AttackCooldown)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	restoreGlobals(t)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, 1280, Screen.Width)
	assert.Equal(t, 720, Screen.Height)
	assert.Equal(t, 180*time.Second, Match.Duration)
	assert.Equal(t, 10, Combat.AttackDamage)
	assert.Equal(t, 200*time.Millisecond, Projectile.Cooldown)
	assert.Equal(t, "info", LogLevel)
	assert.False(t, Spectate.Enabled)
}

func TestLoad_InvalidJSON(t *testing.T) {
	restoreGlobals(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsZeroDuration(t *testing.T) {
	restoreGlobals(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"match": {"durationSeconds": 0}}`), 0644))

	assert.Error(t, Load(dir))
	assert.Equal(t, 180*time.Second, Match.Duration)
}

func TestCurrentRulesCopiesBurstDelays(t *testing.T) {
	r := CurrentRules()
	r.Projectile.BurstDelays[0] = time.Hour

	assert.Equal(t, 50*time.Millisecond, Projectile.BurstDelays[0])
	assert.Equal(t, 570.0, r.GroundY())
	assert.InDelta(t, 0.72, r.Gravity(), 1e-9)
	assert.InDelta(t, 7.68, r.WalkSpeed(), 1e-9)
	assert.InDelta(t, 19.2, r.ProjectileSpeed(), 1e-9)
}
