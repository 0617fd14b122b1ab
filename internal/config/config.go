// Package config
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/amirphl/stock-technicals/internal/technical"
)

/*
YAML config example:
input: "records/ALK.json"
log:
  level: "debug"
  format: "json"
engine:
  periods:
    - { name: "day", window: 2 }
    - { name: "week", window: 7 }
    - { name: "month", window: 30 }
  moving_average_cap: 10
  hull_cap: 9
  williams_window: 1
  ultimate_windows: [7, 14, 28]
  min_records: 2
*/

type Config struct {
	Input   string    `yaml:"input"`
	History bool      `yaml:"history"`
	Log     LogConfig `yaml:"log"`
	Engine  Engine    `yaml:"engine"`
}

type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
}

// Engine mirrors technical.Config. Unset fields take the defaults below;
// an empty period list means day/week/month.
type Engine struct {
	Periods          []technical.Period `yaml:"periods" validate:"omitempty,unique=Name,dive"`
	MovingAverageCap int                `yaml:"moving_average_cap" default:"10" validate:"gte=1"`
	HullCap          int                `yaml:"hull_cap" default:"9" validate:"gte=1"`
	WilliamsWindow   int                `yaml:"williams_window" default:"1" validate:"gte=1"`
	UltimateWindows  []int              `yaml:"ultimate_windows" default:"[7,14,28]" validate:"len=3,dive,gte=1"`
	MinRecords       int                `yaml:"min_records" default:"2" validate:"gte=1"`
}

// Technical converts the file settings into the engine configuration.
func (e Engine) Technical() technical.Config {
	cfg := technical.Config{
		Periods:          e.Periods,
		MovingAverageCap: e.MovingAverageCap,
		HullCap:          e.HullCap,
		WilliamsWindow:   e.WilliamsWindow,
		MinRecords:       e.MinRecords,
	}
	if len(cfg.Periods) == 0 {
		cfg.Periods = technical.DefaultConfig().Periods
	}
	copy(cfg.Ultimate[:], e.UltimateWindows)
	return cfg
}

var validate = validator.New()

// Load builds the configuration from defaults, an optional YAML file and
// command-line flags, in increasing order of precedence.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("stock-technicals", flag.ContinueOnError)
	configFile := fs.String("config", "", "Path to YAML config file")
	input := fs.String("input", "", "Path to a JSON file of raw records (default stdin)")
	history := fs.Bool("history", false, "Print the chronological price history instead of indicators")
	logLevel := fs.String("log-level", "", "Log level: trace, debug, info, warn, error")
	logFormat := fs.String("log-format", "", "Log format: console or json")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var cfg Config
	if *configFile != "" {
		data, err := os.ReadFile(*configFile)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "history":
			cfg.History = *history
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Engine.Technical().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
