package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Padding 是容器四边的内边距（单位：终端单元格）。
type Padding struct {
	Top    int `toml:"top"`
	Left   int `toml:"left"`
	Bottom int `toml:"bottom"`
	Right  int `toml:"right"`
}

// Config is the persisted config file schema.
type Config struct {
	Spacing    int     `toml:"spacing"`
	MaxLines   int     `toml:"max_lines"`
	MinLines   int     `toml:"min_lines"`
	RTL        bool    `toml:"rtl"`
	Padding    Padding `toml:"padding"`
	Transcript string  `toml:"transcript"`
	LogFile    string  `toml:"log_file"`
	LogLevel   string  `toml:"log_level"`
	Source     string  `toml:"-"`
}

func Default() Config {
	return Config{
		Spacing:    1,
		MinLines:   1,
		Transcript: DefaultTranscriptPath(),
		LogFile:    "logs/msgstack.log",
		LogLevel:   "info",
	}
}

// DisplayedLines 返回容器使用的行数预算；max_lines <= 0 表示不限。
func (c Config) DisplayedLines() int {
	if c.MaxLines <= 0 {
		return math.MaxInt
	}
	return c.MaxLines
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".msgstack")
}

func DefaultPath() string {
	dir := homeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

func DefaultTranscriptPath() string {
	dir := homeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "transcript.jsonl")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Source = path
	applyEnv(&cfg)
	return cfg.normalized(), nil
}

func applyEnv(cfg *Config) {
	if env := strings.TrimSpace(os.Getenv("MSGSTACK_TRANSCRIPT")); env != "" {
		cfg.Transcript = env
	}
}

func (c Config) normalized() Config {
	if c.Spacing < 0 {
		c.Spacing = 0
	}
	if c.MaxLines < 0 {
		c.MaxLines = 0
	}
	if c.MinLines < 1 {
		c.MinLines = 1
	}
	c.Padding.Top = max(c.Padding.Top, 0)
	c.Padding.Left = max(c.Padding.Left, 0)
	c.Padding.Bottom = max(c.Padding.Bottom, 0)
	c.Padding.Right = max(c.Padding.Right, 0)
	return c
}
