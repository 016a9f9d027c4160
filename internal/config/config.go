package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/service"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

// LogLevels - the accepted log-level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile   string    `yaml:"log-file" env:"LOG_FILE" env-default:"console-games.log"`
	Game      string    `yaml:"game" env:"GAME"`
	Console   Console   `yaml:"console"`
	TicTacToe TicTacToe `yaml:"tictactoe"`
	TwentyOne TwentyOne `yaml:"twentyone"`
	RPS       RPS       `yaml:"rps"`
	Storage   Storage   `yaml:"storage"`
	Redis     Redis     `yaml:"redis"`
}

type Console struct {
	Prompt      string `yaml:"prompt" env:"CONSOLE_PROMPT" env-default:"» "`
	HistoryFile string `yaml:"history-file" env:"CONSOLE_HISTORY_FILE"`
}

type TicTacToe struct {
	HumanMarker    string `yaml:"human-marker" env:"TICTACTOE_HUMAN_MARKER" env-default:"X"`
	ComputerMarker string `yaml:"computer-marker" env:"TICTACTOE_COMPUTER_MARKER" env-default:"O"`
}

type TwentyOne struct {
	Target          int `yaml:"target" env:"TWENTYONE_TARGET" env-default:"21"`
	DealerStayLimit int `yaml:"dealer-stay-limit" env:"TWENTYONE_DEALER_STAY_LIMIT" env-default:"17"`
	NumberOfDecks   int `yaml:"number-of-decks" env:"TWENTYONE_NUMBER_OF_DECKS" env-default:"8"`
	Shuffles        int `yaml:"shuffles" env:"TWENTYONE_SHUFFLES" env-default:"7"`
	StartingPurse   int `yaml:"starting-purse" env:"TWENTYONE_STARTING_PURSE" env-default:"5"`
	RichValue       int `yaml:"rich-value" env:"TWENTYONE_RICH_VALUE" env-default:"10"`
	BrokeValue      int `yaml:"broke-value" env:"TWENTYONE_BROKE_VALUE" env-default:"0"`
}

type RPS struct {
	Variant      string `yaml:"variant" env:"RPS_VARIANT" env-default:"classic"`
	WinningScore int    `yaml:"winning-score" env:"RPS_WINNING_SCORE" env-default:"3"`
	Strategy     string `yaml:"strategy" env:"RPS_STRATEGY" env-default:"adaptive"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// MustLoad - load all configurations from the yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - rejects values no game can run with.
func (that *Config) Validate() error {
	if !slices.Contains(LogLevels, that.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, that.LogLevel)
	}

	if that.Game != "" && !slices.Contains(entity.Games, that.Game) {
		return fmt.Errorf("%w: unknown game %q", ErrInvalidConfig, that.Game)
	}

	if err := that.TicTacToe.validate(); err != nil {
		return err
	}

	if err := that.TwentyOne.validate(); err != nil {
		return err
	}

	if err := that.RPS.validate(); err != nil {
		return err
	}

	switch that.Storage.Driver {
	case StorageMemory:
	case StorageRedis:
		if that.Redis.Host == "" || that.Redis.Port <= 0 {
			return fmt.Errorf("%w: redis storage needs host and port", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, that.Storage.Driver)
	}

	return nil
}

func (that *TicTacToe) validate() error {
	for _, marker := range []string{that.HumanMarker, that.ComputerMarker} {
		if utf8.RuneCountInString(marker) != 1 || marker == string(entity.EmptyMarker) {
			return fmt.Errorf("%w: marker %q must be one visible character", ErrInvalidConfig, marker)
		}
	}

	if that.HumanMarker == that.ComputerMarker {
		return fmt.Errorf("%w: both players use marker %q", ErrInvalidConfig, that.HumanMarker)
	}

	return nil
}

func (that *TwentyOne) validate() error {
	switch {
	case that.Target <= 0:
		return fmt.Errorf("%w: twentyone target must be positive", ErrInvalidConfig)
	case that.DealerStayLimit <= 0 || that.DealerStayLimit > that.Target:
		return fmt.Errorf("%w: dealer stay limit must be in 1..%d", ErrInvalidConfig, that.Target)
	case that.NumberOfDecks <= 0:
		return fmt.Errorf("%w: at least one deck is needed", ErrInvalidConfig)
	case that.Shuffles < 0:
		return fmt.Errorf("%w: shuffles cannot be negative", ErrInvalidConfig)
	case that.BrokeValue >= that.RichValue:
		return fmt.Errorf("%w: broke value must be below rich value", ErrInvalidConfig)
	case that.StartingPurse <= that.BrokeValue || that.StartingPurse >= that.RichValue:
		return fmt.Errorf("%w: starting purse must be between broke and rich values", ErrInvalidConfig)
	}

	return nil
}

func (that *RPS) validate() error {
	if _, err := entity.ChoicesFor(that.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if that.WinningScore <= 0 {
		return fmt.Errorf("%w: rps winning score must be positive", ErrInvalidConfig)
	}

	switch that.Strategy {
	case service.StrategyRandom, service.StrategyAdaptive:
		return nil
	default:
		return fmt.Errorf("%w: unknown rps strategy %q", ErrInvalidConfig, that.Strategy)
	}
}
