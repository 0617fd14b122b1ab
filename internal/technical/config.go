package technical

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/amirphl/stock-technicals/internal/indicator"
)

var validate = validator.New()

// Period names a look-back horizon and the number of most recent records
// it covers.
type Period struct {
	Name   string `yaml:"name" json:"name" validate:"required"`
	Window int    `yaml:"window" json:"window" validate:"gte=1"`
}

// Config holds the fixed windows of the engine. Use DefaultConfig unless a
// test or deployment needs different horizons.
type Config struct {
	Periods []Period `yaml:"periods" validate:"required,min=1,unique=Name,dive"`

	// MovingAverageCap bounds the SMA and EMA windows.
	MovingAverageCap int `yaml:"moving_average_cap" validate:"gte=1"`
	// HullCap bounds the Hull moving average window.
	HullCap        int                       `yaml:"hull_cap" validate:"gte=1"`
	WilliamsWindow int                       `yaml:"williams_window" validate:"gte=1"`
	Ultimate       indicator.UltimateWindows `yaml:"ultimate_windows" validate:"dive,gte=1"`

	// MinRecords is the shortest history Periods accepts.
	MinRecords int `yaml:"min_records" validate:"gte=1"`
}

// DefaultConfig returns the day/week/month horizons of 2, 7 and 30 records.
func DefaultConfig() Config {
	return Config{
		Periods: []Period{
			{Name: "day", Window: 2},
			{Name: "week", Window: 7},
			{Name: "month", Window: 30},
		},
		MovingAverageCap: 10,
		HullCap:          9,
		WilliamsWindow:   1,
		Ultimate:         indicator.DefaultUltimateWindows,
		MinRecords:       2,
	}
}

// Validate checks that every window is positive and period names are unique.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid technical config: %w", err)
	}
	return nil
}
