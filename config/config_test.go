package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hillside/level"
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/vmath"
)

// isolate runs the test in an empty directory with a clean viper
func isolate(t *testing.T) string {
	t.Helper()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./logs", cfg.LogsDir)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, parameter.AudioMasterVolume, cfg.Audio.Volume)
	assert.Equal(t, parameter.LevelWidthTiles, cfg.Level.WidthTiles)
	assert.Equal(t, parameter.LevelHeightTiles, cfg.Level.HeightTiles)
	assert.Equal(t, uint64(parameter.LevelSeed), cfg.Level.Seed)
	assert.Empty(t, cfg.Level.CollisionMap)
	assert.Equal(t, 320, cfg.Screen.Width)
	assert.Equal(t, 224, cfg.Screen.Height)
	assert.Equal(t, 48, cfg.Player.StartX)
	assert.Equal(t, 8.0, cfg.Player.MaxSpeed)
	assert.Equal(t, 408, cfg.Enemy.SpawnX)
	assert.Equal(t, 800, cfg.Enemy.SpawnY)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := isolate(t)

	body := `{
		"logLevel": "debug",
		"debug": true,
		"level": { "seed": 99, "widthTiles": 256 },
		"player": { "maxSpeed": 4.5 }
	}`
	path := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Debug)
	assert.Equal(t, uint64(99), cfg.Level.Seed)
	assert.Equal(t, 256, cfg.Level.WidthTiles)
	assert.Equal(t, parameter.LevelHeightTiles, cfg.Level.HeightTiles)
	assert.Equal(t, 4.5, cfg.Player.MaxSpeed)
}

func TestLoad_FindsDefaultNameInWorkingDir(t *testing.T) {
	dir := isolate(t)

	body := "frameRate = 30\n[screen]\nwidth = 256\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hillside.toml"), []byte(body), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 256, cfg.Screen.Width)
	assert.Equal(t, time.Second/30, cfg.FrameInterval())
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)

	_, err := Load("/nonexistent/hillside.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "hillside.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"level": {"seed": 5}}`), 0644))
	t.Setenv("HILLSIDE_LEVEL_SEED", "42")
	t.Setenv("HILLSIDE_AUDIO_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Level.Seed)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HILLSIDE_SCREEN_HEIGHT=200\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("HILLSIDE_SCREEN_HEIGHT") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Screen.Height)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("HILLSIDE_LEVEL_SEED", "42")
	t.Setenv("HILLSIDE_FRAMERATE", "50")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--seed=7", "--debug"}))
	require.NoError(t, BindFlags(fs))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Level.Seed)
	assert.True(t, cfg.Debug)
	// untouched flag keeps the environment value
	assert.Equal(t, 50, cfg.FrameRate)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero frame rate", `{"frameRate": 0}`, "frameRate"},
		{"negative screen", `{"screen": {"width": -1}}`, "screen size"},
		{"tiny level", `{"level": {"widthTiles": 8}}`, "too small"},
		{"wide level", `{"level": {"widthTiles": 5000}}`, "too large"},
		{"tall level", `{"level": {"heightTiles": 4096}}`, "too large"},
		{"screen beyond level", `{"level": {"heightTiles": 32}, "screen": {"height": 300}}`, "larger than the level"},
		{"no gravity", `{"player": {"gravity": 0}}`, "gravity"},
		{"loud", `{"audio": {"volume": 2}}`, "audio.volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "bad.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConversions(t *testing.T) {
	isolate(t)
	t.Setenv("HILLSIDE_PLAYER_GRAVITY", "0.5")
	t.Setenv("HILLSIDE_AUDIO_VOLUME", "0.25")

	cfg, err := Load("")
	require.NoError(t, err)

	ec := cfg.EngineConfig()
	assert.Equal(t, vmath.FromFloat(0.5), ec.Gravity)
	assert.Equal(t, parameter.PlayerMaxSpeed, ec.MaxSpeed)
	assert.Equal(t, 320, ec.ScreenWidth)
	assert.Equal(t, 408, ec.EnemyX)

	lc := cfg.LevelConfig()
	assert.Equal(t, level.DefaultConfig(), lc)

	ac := cfg.AudioConfig()
	assert.Equal(t, 0.25, ac.MasterVolume)
	assert.True(t, ac.Enabled)
	assert.NotEmpty(t, ac.CueVolumes)

	lo := cfg.LoggingOptions()
	assert.False(t, lo.Debug)
	assert.Equal(t, "./logs", lo.Dir)
	assert.Equal(t, "info", lo.Level)
}
