// Package config loads the optional measurekit.yaml settings file
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultPath is read when no explicit config file is given
const DefaultPath = "measurekit.yaml"

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Render RenderConfig `mapstructure:"render"`
	Output OutputConfig `mapstructure:"output"`
	Watch  WatchConfig  `mapstructure:"watch"`
	GUI    GUIConfig    `mapstructure:"gui"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

type RenderConfig struct {
	Quality    int    `mapstructure:"quality"`
	Background string `mapstructure:"background"`
}

type OutputConfig struct {
	Suffix string `mapstructure:"suffix"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

type GUIConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Load reads configPath (YAML). An empty path falls back to DefaultPath
// when that file exists, and to the built-in defaults otherwise.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MEASUREKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			configPath = DefaultPath
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log:    LogConfig{Mode: "debug"},
		Render: RenderConfig{Quality: 95, Background: "#FFFFFF"},
		Output: OutputConfig{Suffix: "-medidas"},
		Watch:  WatchConfig{Debounce: 300 * time.Millisecond},
		GUI:    GUIConfig{Width: 1200, Height: 800},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log.mode", d.Log.Mode)

	v.SetDefault("render.quality", d.Render.Quality)
	v.SetDefault("render.background", d.Render.Background)

	v.SetDefault("output.suffix", d.Output.Suffix)

	v.SetDefault("watch.debounce", d.Watch.Debounce)

	v.SetDefault("gui.width", d.GUI.Width)
	v.SetDefault("gui.height", d.GUI.Height)
}

func (c *Config) validate() error {
	if c.Render.Quality < 1 || c.Render.Quality > 100 {
		return fmt.Errorf("render.quality must be between 1 and 100, got %d", c.Render.Quality)
	}
	if _, err := ParseHexColor(c.Render.Background); err != nil {
		return fmt.Errorf("render.background: %w", err)
	}
	if c.Watch.Debounce < 0 {
		return errors.New("watch.debounce must not be negative")
	}
	return nil
}

// BackgroundColor returns the parsed render background
func (c *Config) BackgroundColor() color.Color {
	col, err := ParseHexColor(c.Render.Background)
	if err != nil {
		return color.White
	}
	return col
}

// ParseHexColor parses #RGB or #RRGGBB
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
