package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"blackjack-server/internal/util"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded bool

	Host string `yaml:"host" envconfig:"host"`
	Port int    `yaml:"port" envconfig:"port"`

	Log struct {
		Level             string `yaml:"level" envconfig:"log_level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}

	Game struct {
		StartingCredits    int `yaml:"startingCredits" envconfig:"starting_credits"`
		DefaultTurnTimeout int `yaml:"defaultTurnTimeout" envconfig:"default_turn_timeout"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. The config file is optional;
// environment variables always win.
func Load() error {
	config = Config{}

	configFile := util.Getenv("BLACKJACK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("blackjack", &config); err != nil {
		return err
	}

	applyDefaults(&config)

	config.loaded = true
	return nil
}

// DefaultConfig returns a config with every default applied
func DefaultConfig() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Game.StartingCredits == 0 {
		cfg.Game.StartingCredits = 100
	}

	if cfg.Game.DefaultTurnTimeout == 0 {
		cfg.Game.DefaultTurnTimeout = 30
	}
}
