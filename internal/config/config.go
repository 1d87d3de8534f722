package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/input"
)

const (
	DefaultAlgorithm  = "bubble"
	DefaultSpeedMs    = 100
	DefaultMinSpeedMs = 10
	DefaultMaxSpeedMs = 2000
	DefaultSize       = 15
	DefaultMinValue   = 10
	DefaultMaxValue   = 400
	DefaultMaxLength  = 50
	DefaultMaxGen     = 100
	DefaultTarget     = 50
	DefaultBSTMin     = 1
	DefaultBSTMax     = 999
	DefaultAddr       = ":5001"
)

type Config struct {
	Algorithm string         `yaml:"algorithm"`
	Array     []int          `yaml:"array,omitempty"`
	Seed      int64          `yaml:"seed"`
	LogLevel  string         `yaml:"log_level"`
	Playback  PlaybackConfig `yaml:"playback"`
	Input     InputConfig    `yaml:"input"`
	Search    SearchConfig   `yaml:"search"`
	BST       BSTConfig      `yaml:"bst"`
	Server    ServerConfig   `yaml:"server"`
}

type PlaybackConfig struct {
	SpeedMs    int `yaml:"speed_ms"`
	MinSpeedMs int `yaml:"min_speed_ms"`
	MaxSpeedMs int `yaml:"max_speed_ms"`
}

type InputConfig struct {
	DefaultSize  int `yaml:"default_size"`
	MinValue     int `yaml:"min_value"`
	MaxValue     int `yaml:"max_value"`
	MaxLength    int `yaml:"max_length"`
	MaxGenerated int `yaml:"max_generated"`
}

type SearchConfig struct {
	Target int `yaml:"target"`
}

// BSTConfig.URL selects a remote tree service; empty runs operations in
// process.
type BSTConfig struct {
	URL      string        `yaml:"url"`
	MinValue int           `yaml:"min_value"`
	MaxValue int           `yaml:"max_value"`
	Timeout  time.Duration `yaml:"timeout"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		LogLevel:  "info",
		Playback: PlaybackConfig{
			SpeedMs:    DefaultSpeedMs,
			MinSpeedMs: DefaultMinSpeedMs,
			MaxSpeedMs: DefaultMaxSpeedMs,
		},
		Input: InputConfig{
			DefaultSize:  DefaultSize,
			MinValue:     DefaultMinValue,
			MaxValue:     DefaultMaxValue,
			MaxLength:    DefaultMaxLength,
			MaxGenerated: DefaultMaxGen,
		},
		Search: SearchConfig{Target: DefaultTarget},
		BST: BSTConfig{
			MinValue: DefaultBSTMin,
			MaxValue: DefaultBSTMax,
			Timeout:  5 * time.Second,
		},
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects inverted or non-positive bounds.
func (c *Config) Validate() error {
	p := c.Playback
	if p.MinSpeedMs <= 0 || p.MinSpeedMs > p.MaxSpeedMs {
		return fmt.Errorf("playback: invalid speed bounds %d..%d", p.MinSpeedMs, p.MaxSpeedMs)
	}
	in := c.Input
	if in.MinValue < 1 || in.MinValue > in.MaxValue {
		return fmt.Errorf("input: invalid value bounds %d..%d", in.MinValue, in.MaxValue)
	}
	if in.MaxLength < 1 || in.MaxGenerated < 1 {
		return fmt.Errorf("input: max_length and max_generated must be positive")
	}
	if in.DefaultSize < 1 || in.DefaultSize > in.MaxGenerated {
		return fmt.Errorf("input: default_size %d outside 1..%d", in.DefaultSize, in.MaxGenerated)
	}
	if c.BST.MinValue > c.BST.MaxValue {
		return fmt.Errorf("bst: invalid value bounds %d..%d", c.BST.MinValue, c.BST.MaxValue)
	}
	return nil
}

func (c *Config) Limits() input.Limits {
	return input.Limits{
		MinValue:     c.Input.MinValue,
		MaxValue:     c.Input.MaxValue,
		MaxLength:    c.Input.MaxLength,
		MaxGenerated: c.Input.MaxGenerated,
		DefaultSize:  c.Input.DefaultSize,
	}
}

func (c *Config) Speed() time.Duration {
	return time.Duration(c.Playback.SpeedMs) * time.Millisecond
}

func (c *Config) SpeedBounds() (time.Duration, time.Duration) {
	return time.Duration(c.Playback.MinSpeedMs) * time.Millisecond,
		time.Duration(c.Playback.MaxSpeedMs) * time.Millisecond
}
