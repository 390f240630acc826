package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/tnguyen21/kestral-chat/internal/chat"
)

const DefaultConfigPath = "~/.config/kestral-chat/config.yaml"

type PollInterval struct {
	Conversations int `yaml:"conversations"`
}

type Config struct {
	Port         int          `yaml:"port"`
	HostKeyDir   string       `yaml:"host_key_dir"`
	DataDir      string       `yaml:"data_dir"`
	SelfName     string       `yaml:"self_name"`
	DisplayMode  string       `yaml:"display_mode"`
	LogLevel     string       `yaml:"log_level"`
	PollInterval PollInterval `yaml:"poll_interval"`
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Port:        2223,
		HostKeyDir:  filepath.Join(home, ".ssh"),
		DataDir:     filepath.Join(home, ".local", "share", "kestral-chat"),
		SelfName:    "me",
		DisplayMode: "symbolic",
		LogLevel:    "info",
		PollInterval: PollInterval{
			Conversations: 5,
		},
	}
}

// Mode returns the parsed display mode. Load has already validated it.
func (c Config) Mode() chat.DisplayMode {
	mode, _ := chat.ParseDisplayMode(c.DisplayMode)
	return mode
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

func Load(path string) (Config, error) {
	cfg := Default()

	resolved := expandPath(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", resolved, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", resolved, err)
	}

	cfg.HostKeyDir = expandPath(cfg.HostKeyDir)
	cfg.DataDir = expandPath(cfg.DataDir)

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", cfg.Port)
	}

	if cfg.DataDir == "" {
		return fmt.Errorf("data_dir must be set")
	}
	if _, err := chat.ParseDisplayMode(cfg.DisplayMode); err != nil {
		return fmt.Errorf("display_mode: %w", err)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if cfg.PollInterval.Conversations < 1 {
		return fmt.Errorf("poll_interval.conversations must be >= 1")
	}

	return nil
}
