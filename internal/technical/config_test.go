package technical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no periods", func(c *Config) { c.Periods = nil }},
		{"zero window", func(c *Config) { c.Periods[0].Window = 0 }},
		{"unnamed period", func(c *Config) { c.Periods[1].Name = "" }},
		{"duplicate period", func(c *Config) { c.Periods[2].Name = "day" }},
		{"zero moving average cap", func(c *Config) { c.MovingAverageCap = 0 }},
		{"zero hull cap", func(c *Config) { c.HullCap = 0 }},
		{"zero williams window", func(c *Config) { c.WilliamsWindow = 0 }},
		{"zero ultimate window", func(c *Config) { c.Ultimate[1] = 0 }},
		{"zero min records", func(c *Config) { c.MinRecords = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}
