package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	minSideLength = 1
	maxSideLength = 99
)

var ErrInvalidSideLength = errors.New("board side length is out of range")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"GOMOKU_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"GOMOKU_LOG_FILE" env-default:"gomoku.log"`
	Board    Board   `yaml:"board"`
	Players  Players `yaml:"players"`
	Results  Results `yaml:"results"`
}

type Board struct {
	SideLength int `yaml:"side-length" env:"GOMOKU_BOARD_SIDE" env-default:"15"`
}

type Players struct {
	First       string `yaml:"first" env:"GOMOKU_PLAYER_FIRST"`
	Second      string `yaml:"second" env:"GOMOKU_PLAYER_SECOND"`
	PromptNames bool   `yaml:"prompt-names" env:"GOMOKU_PROMPT_NAMES" env-default:"false"`
}

type Results struct {
	Enabled      bool  `yaml:"enabled" env:"GOMOKU_RESULTS_ENABLED" env-default:"false"`
	HistoryLimit int64 `yaml:"history-limit" env:"GOMOKU_RESULTS_HISTORY_LIMIT" env-default:"100"`
	Redis        Redis `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"GOMOKU_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"GOMOKU_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load configuration from the yml file, or from the environment only if the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Board.SideLength < minSideLength || that.Board.SideLength > maxSideLength {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSideLength, that.Board.SideLength, minSideLength, maxSideLength)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
