package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults apply when the file is missing", func(t *testing.T) {
		// Given: a path without a file
		path := filepath.Join(t.TempDir(), "absent.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every section carries its default
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Empty(t, conf.Game)
		assert.Equal(t, "X", conf.TicTacToe.HumanMarker)
		assert.Equal(t, "O", conf.TicTacToe.ComputerMarker)
		assert.Equal(t, TwentyOne{
			Target:          21,
			DealerStayLimit: 17,
			NumberOfDecks:   8,
			Shuffles:        7,
			StartingPurse:   5,
			RichValue:       10,
			BrokeValue:      0,
		}, conf.TwentyOne)
		assert.Equal(t, RPS{Variant: "classic", WinningScore: 3, Strategy: "adaptive"}, conf.RPS)
		assert.Equal(t, StorageMemory, conf.Storage.Driver)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		// Given: a file choosing rps with the lizard-spock rules
		path := writeConfig(t, `
game: rps
rps:
  variant: lizard-spock
  winning-score: 5
  strategy: random
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file wins and untouched sections keep defaults
		require.NoError(t, err)
		assert.Equal(t, "rps", conf.Game)
		assert.Equal(t, RPS{Variant: "lizard-spock", WinningScore: 5, Strategy: "random"}, conf.RPS)
		assert.Equal(t, 21, conf.TwentyOne.Target)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "game: rps\n")
		t.Setenv("GAME", "twentyone")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "twentyone", conf.Game)
	})

	t.Run("Invalid values are rejected", func(t *testing.T) {
		path := writeConfig(t, "game: chess\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Unknown log level in the file is rejected", func(t *testing.T) {
		path := writeConfig(t, "log-level: trace\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: postgres\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func validConfig() Config {
	return Config{
		LogLevel:  "info",
		TicTacToe: TicTacToe{HumanMarker: "X", ComputerMarker: "O"},
		TwentyOne: TwentyOne{Target: 21, DealerStayLimit: 17, NumberOfDecks: 8, Shuffles: 7, StartingPurse: 5, RichValue: 10},
		RPS:       RPS{Variant: "classic", WinningScore: 3, Strategy: "adaptive"},
		Storage:   Storage{Driver: StorageMemory},
		Redis:     Redis{Host: "localhost", Port: 6379},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(conf *Config)
		valid  bool
	}{
		{name: "defaults", mutate: func(*Config) {}, valid: true},
		{name: "redis storage", mutate: func(conf *Config) { conf.Storage.Driver = StorageRedis }, valid: true},
		{name: "debug logging", mutate: func(conf *Config) { conf.LogLevel = "debug" }, valid: true},
		{name: "unknown log level", mutate: func(conf *Config) { conf.LogLevel = "verbose" }},
		{name: "empty log level", mutate: func(conf *Config) { conf.LogLevel = "" }},
		{name: "random strategy", mutate: func(conf *Config) { conf.RPS.Strategy = "random" }, valid: true},
		{name: "same markers", mutate: func(conf *Config) { conf.TicTacToe.ComputerMarker = "X" }},
		{name: "long marker", mutate: func(conf *Config) { conf.TicTacToe.HumanMarker = "XX" }},
		{name: "blank marker", mutate: func(conf *Config) { conf.TicTacToe.HumanMarker = " " }},
		{name: "stay limit above target", mutate: func(conf *Config) { conf.TwentyOne.DealerStayLimit = 22 }},
		{name: "no decks", mutate: func(conf *Config) { conf.TwentyOne.NumberOfDecks = 0 }},
		{name: "purse already rich", mutate: func(conf *Config) { conf.TwentyOne.StartingPurse = 10 }},
		{name: "purse already broke", mutate: func(conf *Config) { conf.TwentyOne.StartingPurse = 0 }},
		{name: "unknown variant", mutate: func(conf *Config) { conf.RPS.Variant = "dynamite" }},
		{name: "zero winning score", mutate: func(conf *Config) { conf.RPS.WinningScore = 0 }},
		{name: "unknown strategy", mutate: func(conf *Config) { conf.RPS.Strategy = "psychic" }},
		{name: "redis without host", mutate: func(conf *Config) {
			conf.Storage.Driver = StorageRedis
			conf.Redis.Host = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := validConfig()
			tt.mutate(&conf)

			err := conf.Validate()

			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
