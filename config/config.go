// Package config loads runtime settings from defaults, an optional config
// file, a .env file, HILLSIDE_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/hillside/audio"
	"github.com/lixenwraith/hillside/engine"
	"github.com/lixenwraith/hillside/level"
	"github.com/lixenwraith/hillside/logging"
	"github.com/lixenwraith/hillside/parameter"
	"github.com/lixenwraith/hillside/vmath"
)

const (
	EnvPrefix = "HILLSIDE"

	// DefaultName is searched in the working directory when no path is given
	DefaultName = "hillside"
)

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type LevelConfig struct {
	WidthTiles  int    `mapstructure:"widthTiles"`
	HeightTiles int    `mapstructure:"heightTiles"`
	Seed        uint64 `mapstructure:"seed"`
	// CollisionMap is an optional JSON height profile file replacing the built-in table
	CollisionMap string `mapstructure:"collisionMap"`
}

type ScreenConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// PlayerConfig speeds are in pixels per frame
type PlayerConfig struct {
	StartX    int     `mapstructure:"startX"`
	MaxSpeed  float64 `mapstructure:"maxSpeed"`
	JumpSpeed float64 `mapstructure:"jumpSpeed"`
	Gravity   float64 `mapstructure:"gravity"`
}

type EnemyConfig struct {
	SpawnX int `mapstructure:"spawnX"`
	SpawnY int `mapstructure:"spawnY"`
}

// Config is the resolved settings tree
type Config struct {
	LogLevel  string `mapstructure:"logLevel"`
	LogsDir   string `mapstructure:"logsDir"`
	Debug     bool   `mapstructure:"debug"`
	FrameRate int    `mapstructure:"frameRate"`

	Audio  AudioConfig  `mapstructure:"audio"`
	Level  LevelConfig  `mapstructure:"level"`
	Screen ScreenConfig `mapstructure:"screen"`
	Player PlayerConfig `mapstructure:"player"`
	Enemy  EnemyConfig  `mapstructure:"enemy"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")
	viper.SetDefault("debug", false)
	viper.SetDefault("frameRate", parameter.FrameRate)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", parameter.AudioMasterVolume)

	viper.SetDefault("level.widthTiles", parameter.LevelWidthTiles)
	viper.SetDefault("level.heightTiles", parameter.LevelHeightTiles)
	viper.SetDefault("level.seed", parameter.LevelSeed)
	viper.SetDefault("level.collisionMap", "")

	viper.SetDefault("screen.width", parameter.ScreenWidth)
	viper.SetDefault("screen.height", parameter.ScreenHeight)

	viper.SetDefault("player.startX", parameter.PlayerStartX)
	viper.SetDefault("player.maxSpeed", parameter.PlayerMaxSpeedFloat)
	viper.SetDefault("player.jumpSpeed", parameter.PlayerJumpSpeedFloat)
	viper.SetDefault("player.gravity", parameter.PlayerGravityFloat)

	viper.SetDefault("enemy.spawnX", parameter.BazzbomberSpawnX)
	viper.SetDefault("enemy.spawnY", parameter.BazzbomberSpawnY)
}

// Load resolves the configuration
// An explicit path must exist; with an empty path hillside.{json,toml,yaml} in
// the working directory is used if present
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	setDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		viper.SetConfigName(DefaultName)
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frameRate must be positive, got %d", c.FrameRate)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Level.WidthTiles < level.MinWidthTiles || c.Level.HeightTiles < level.MinHeightTiles {
		return fmt.Errorf("level size %dx%d tiles: %w", c.Level.WidthTiles, c.Level.HeightTiles, level.ErrTooSmall)
	}
	if c.Level.WidthTiles > level.MaxWidthTiles || c.Level.HeightTiles > level.MaxHeightTiles {
		return fmt.Errorf("level size %dx%d tiles: %w", c.Level.WidthTiles, c.Level.HeightTiles, level.ErrTooLarge)
	}
	if c.Screen.Width > c.Level.WidthTiles*8 || c.Screen.Height > c.Level.HeightTiles*8 {
		return fmt.Errorf("screen %dx%d is larger than the level", c.Screen.Width, c.Screen.Height)
	}
	if c.Player.MaxSpeed <= 0 || c.Player.JumpSpeed <= 0 || c.Player.Gravity <= 0 {
		return errors.New("player speeds and gravity must be positive")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within 0..1, got %g", c.Audio.Volume)
	}
	return nil
}

// FrameInterval is the wall-clock duration of one simulation frame
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		ScreenWidth:  c.Screen.Width,
		ScreenHeight: c.Screen.Height,
		PlayerStartX: c.Player.StartX,
		MaxSpeed:     vmath.FromFloat(c.Player.MaxSpeed),
		JumpSpeed:    vmath.FromFloat(c.Player.JumpSpeed),
		Gravity:      vmath.FromFloat(c.Player.Gravity),
		EnemyX:       c.Enemy.SpawnX,
		EnemyY:       c.Enemy.SpawnY,
	}
}

func (c *Config) LevelConfig() level.Config {
	lc := level.DefaultConfig()
	lc.WidthTiles = c.Level.WidthTiles
	lc.HeightTiles = c.Level.HeightTiles
	lc.Seed = c.Level.Seed
	return lc
}

func (c *Config) AudioConfig() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	return ac
}

func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Debug: c.Debug,
		Dir:   c.LogsDir,
		Level: c.LogLevel,
	}
}

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"debug":         "debug",
	"log-level":     "logLevel",
	"logs-dir":      "logsDir",
	"audio":         "audio.enabled",
	"volume":        "audio.volume",
	"frame-rate":    "frameRate",
	"seed":          "level.seed",
	"width":         "level.widthTiles",
	"height":        "level.heightTiles",
	"collision-map": "level.collisionMap",
}

// RegisterFlags adds the config overrides to flags
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "write a log file")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("logs-dir", "./logs", "log file directory")
	flags.Bool("audio", true, "play sound cues")
	flags.Float64("volume", parameter.AudioMasterVolume, "master volume 0..1")
	flags.Int("frame-rate", parameter.FrameRate, "simulation frames per second")
	flags.Uint64("seed", parameter.LevelSeed, "level generation seed")
	flags.Int("width", parameter.LevelWidthTiles, "level width in tiles")
	flags.Int("height", parameter.LevelHeightTiles, "level height in tiles")
	flags.String("collision-map", "", "collision map JSON replacing the built-in heights")
}

// BindFlags makes the registered flags override every other source
// Flags left at their default do not mask config file or environment values
func BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
