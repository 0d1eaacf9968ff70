package config

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration shared by the window client and the
// headless runner. Gameplay tuning is not configurable here.
type Config struct {
	Window      WindowConfig        `yaml:"window"`
	Seed        int64               `yaml:"seed"` // 0 seeds from the clock
	LogLevel    string              `yaml:"log_level"`
	Keybindings map[string][]string `yaml:"keybindings"` // Action -> ebiten key names
	Headless    HeadlessConfig      `yaml:"headless"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type HeadlessConfig struct {
	TickRate int   `yaml:"tick_rate"` // 0 runs unthrottled
	MaxTicks int64 `yaml:"max_ticks"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  DefaultTitle,
		},
		LogLevel: "info",
		Keybindings: map[string][]string{
			ActionUp:    {"W", "ArrowUp"},
			ActionDown:  {"S", "ArrowDown"},
			ActionLeft:  {"A", "ArrowLeft"},
			ActionRight: {"D", "ArrowRight"},
			ActionPick1: {"Digit1"},
			ActionPick2: {"Digit2"},
			ActionPick3: {"Digit3"},
			ActionRetry: {"Enter", "R"},
			ActionDebug: {"F1"},
		},
		Headless: HeadlessConfig{
			TickRate: 0,
			MaxTicks: 10 * 60 * TicksPerSecond,
		},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when empty or missing), then a .env file, then SURVIVOR_* variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "parse config %s", path)
			}
		case errors.Is(err, fs.ErrNotExist):
			// defaults only
		default:
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, errors.Wrap(err, "load .env")
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"SEED")
		}
		c.Seed = seed
	}
	if v, ok := lookup("WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"WIDTH")
		}
		c.Window.Width = n
	}
	if v, ok := lookup("HEIGHT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"HEIGHT")
		}
		c.Window.Height = n
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("TICK_RATE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"TICK_RATE")
		}
		c.Headless.TickRate = n
	}
	if v, ok := lookup("MAX_TICKS"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, EnvPrefix+"MAX_TICKS")
		}
		c.Headless.MaxTicks = n
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Validate rejects values the hosts cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	if c.Headless.TickRate < 0 {
		return errors.Errorf("tick rate must not be negative, got %d", c.Headless.TickRate)
	}
	return nil
}
