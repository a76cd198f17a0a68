package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"battleship/game"
	"battleship/meta"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "BATTLESHIP_"

type Config struct {
	Fleet       []int  `yaml:"fleet"`
	Seed        uint64 `yaml:"seed"`
	Matches     int    `yaml:"matches"`
	MaxTurns    int    `yaml:"max_turns"`
	MaxRestarts int    `yaml:"max_restarts"` // 0 retries placement forever
	OutputDir   string `yaml:"output_dir"`
	LogLevel    string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Fleet:     slices.Clone(meta.DefaultFleet),
		Seed:      uint64(time.Now().UnixNano()),
		Matches:   meta.DefaultMatches,
		MaxTurns:  meta.MaxTurns,
		OutputDir: "experiments",
		LogLevel:  "info",
	}
}

// Load starts from Default, applies the YAML file at path if it exists, then
// the .env file and BATTLESHIP_* environment variables.
func Load(path string) (*Config, error) {
	return load(path, ".env")
}

func load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(path string, out *Config) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(envPrefix + "MATCHES"); ok {
		matches, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMATCHES: %w", envPrefix, err)
		}
		c.Matches = matches
	}
	if v, ok := os.LookupEnv(envPrefix + "MAX_TURNS"); ok {
		turns, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_TURNS: %w", envPrefix, err)
		}
		c.MaxTurns = turns
	}
	if v, ok := os.LookupEnv(envPrefix + "MAX_RESTARTS"); ok {
		restarts, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_RESTARTS: %w", envPrefix, err)
		}
		c.MaxRestarts = restarts
	}
	if v, ok := os.LookupEnv(envPrefix + "FLEET"); ok {
		fleet, err := parseFleet(v)
		if err != nil {
			return fmt.Errorf("%sFLEET: %w", envPrefix, err)
		}
		c.Fleet = fleet
	}
	if v, ok := os.LookupEnv(envPrefix + "OUTPUT_DIR"); ok {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

// parseFleet reads a comma separated list of ship lengths such as "3,2,2,1".
func parseFleet(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	fleet := make([]int, 0, len(parts))
	for _, part := range parts {
		length, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, length)
	}
	return fleet, nil
}

func (c *Config) Validate() error {
	if err := game.ValidateFleet(c.Fleet); err != nil {
		return err
	}
	if c.Matches < 0 {
		return fmt.Errorf("matches must not be negative, got %d", c.Matches)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	}
	if c.MaxRestarts < 0 {
		return fmt.Errorf("max_restarts must not be negative, got %d", c.MaxRestarts)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}
