package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"raycaster/model"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"

	envPrefix = "RAYCASTER"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrInvalidValue   = errors.New("invalid configuration value")
)

type Config struct {
	Backend string        `mapstructure:"backend"`
	Window  WindowConfig  `mapstructure:"window"`
	Map     MapConfig     `mapstructure:"map"`
	Player  PlayerConfig  `mapstructure:"player"`
	Render  RenderConfig  `mapstructure:"render"`
	Texture TextureConfig `mapstructure:"texture"`
	Log     LogConfig     `mapstructure:"log"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type MapConfig struct {
	// File is a layout file; empty selects the built-in layout
	File  string  `mapstructure:"file"`
	Units float64 `mapstructure:"units"`
}

type PlayerConfig struct {
	CollisionSize float64 `mapstructure:"collision_size"`
	TurnSpeed     float64 `mapstructure:"turn_speed"`
	MoveSpeed     float64 `mapstructure:"move_speed"`
}

type RenderConfig struct {
	Workers int `mapstructure:"workers"`
	TPS     int `mapstructure:"tps"`
}

type TextureConfig struct {
	// File is a strip of brick, blue and wood textures; empty selects the
	// generated textures
	File string `mapstructure:"file"`
	Size int    `mapstructure:"size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Model converts to the player tuning used by the simulation.
func (p PlayerConfig) Model() model.PlayerConfig {
	return model.PlayerConfig{
		CollisionSize: p.CollisionSize,
		TurnSpeed:     p.TurnSpeed,
		MoveSpeed:     p.MoveSpeed,
	}
}

func setDefaults(v *viper.Viper) {
	player := model.DefaultPlayerConfig()

	v.SetDefault("backend", BackendWindow)
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Raycaster")
	v.SetDefault("map.file", "")
	v.SetDefault("map.units", model.DefaultUnitsPerCell)
	v.SetDefault("player.collision_size", player.CollisionSize)
	v.SetDefault("player.turn_speed", player.TurnSpeed)
	v.SetDefault("player.move_speed", player.MoveSpeed)
	v.SetDefault("render.workers", runtime.NumCPU())
	v.SetDefault("render.tps", 60)
	v.SetDefault("texture.file", "")
	v.SetDefault("texture.size", 64)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("raycaster", pflag.ContinueOnError)
	flags.String("config", "", "configuration file (any format viper understands)")
	flags.StringP("backend", "b", BackendWindow, "frontend to run: window or terminal")
	flags.Int("width", 800, "window width in pixels")
	flags.Int("height", 600, "window height in pixels")
	flags.StringP("map", "m", "", "map layout file, built-in map when empty")
	flags.Float64("units", model.DefaultUnitsPerCell, "world units per map cell")
	flags.Int("workers", runtime.NumCPU(), "goroutines used for the column sweep")
	flags.Int("tps", 60, "simulation ticks per second")
	flags.String("texture", "", "texture strip image (brick, blue, wood)")
	flags.String("log-level", "info", "log level")
	flags.String("log-format", "text", "log format: text or json")
	return flags
}

// flag name -> configuration key
var flagKeys = map[string]string{
	"backend":    "backend",
	"width":      "window.width",
	"height":     "window.height",
	"map":        "map.file",
	"units":      "map.units",
	"workers":    "render.workers",
	"tps":        "render.tps",
	"texture":    "texture.file",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Load resolves the configuration from the command line arguments (without the
// program name), the environment and an optional config file on the OS
// filesystem.
func Load(args []string) (*Config, error) {
	return LoadFS(afero.NewOsFs(), args)
}

// LoadFS is Load with the config file read from fs. Later sources win:
// defaults, config file, RAYCASTER_* environment variables, flags.
func LoadFS(fs afero.Fs, args []string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the program cannot start with.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(c.Backend)
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidValue, c.Window.Width, c.Window.Height)
	case c.Map.Units <= 0:
		return fmt.Errorf("%w: map.units %v", ErrInvalidValue, c.Map.Units)
	case c.Player.CollisionSize <= 0:
		return fmt.Errorf("%w: player.collision_size %v", ErrInvalidValue, c.Player.CollisionSize)
	case c.Render.TPS <= 0:
		return fmt.Errorf("%w: render.tps %d", ErrInvalidValue, c.Render.TPS)
	case c.Texture.Size <= 0:
		return fmt.Errorf("%w: texture.size %d", ErrInvalidValue, c.Texture.Size)
	}

	if c.Render.Workers < 1 {
		c.Render.Workers = 1
	}
	return nil
}
