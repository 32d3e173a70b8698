package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("BLACKJACK_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("BLACKJACK_LOG_LEVEL", "warn")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal("127.0.0.1", cfg.Host)
	a.Equal(9000, cfg.Port)
	a.Equal("warn", cfg.Log.Level)
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal(250, cfg.Game.StartingCredits)
	a.Equal(15, cfg.Game.DefaultTurnTimeout)

	// ensure that it's only loaded once
	_ = os.Setenv("BLACKJACK_LOG_LEVEL", "error")
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("warn", cfg.Log.Level)
}

func TestDefaults(t *testing.T) {
	clear := setEnv("BLACKJACK_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(8080, cfg.Port)
	a.Equal("info", cfg.Log.Level)
	a.Equal(100, cfg.Game.StartingCredits)
	a.Equal(30, cfg.Game.DefaultTurnTimeout)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 100, cfg.Game.StartingCredits)
	assert.Equal(t, 30, cfg.Game.DefaultTurnTimeout)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
