package planner

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/breaking-byts/Life-Os-sub000/pkg/timeutil"
)

// Config is the planning policy: the daily window candidate slots may use,
// the quantization step, and the duration of a generated focus block.
type Config struct {
	// DayStart / DayEnd bound the planning window, as "15:04" clock times.
	DayStart string `yaml:"day_start" json:"day_start"`
	DayEnd   string `yaml:"day_end" json:"day_end"`

	// StepMinutes is the candidate-start granularity.
	StepMinutes int `yaml:"step_minutes" json:"step_minutes"`

	// FocusMinutes is the duration of a generated focus block.
	FocusMinutes int `yaml:"focus_minutes" json:"focus_minutes"`
}

func DefaultConfig() Config {
	return Config{
		DayStart:     "08:00",
		DayEnd:       "20:00",
		StepMinutes:  15,
		FocusMinutes: 90,
	}
}

// Normalize fills in missing/invalid values so a partially-filled policy
// file still behaves.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if _, err := timeutil.ClockMinutes(c.DayStart); err != nil {
		c.DayStart = def.DayStart
	}
	if _, err := timeutil.ClockMinutes(c.DayEnd); err != nil {
		c.DayEnd = def.DayEnd
	}
	if c.StepMinutes <= 0 {
		c.StepMinutes = def.StepMinutes
	}
	if c.FocusMinutes <= 0 {
		c.FocusMinutes = def.FocusMinutes
	}
	if c.WindowEnd() <= c.WindowStart() {
		c.DayStart = def.DayStart
		c.DayEnd = def.DayEnd
	}
}

// WindowStart returns the window open in minutes from midnight.
func (c Config) WindowStart() int {
	m, _ := timeutil.ClockMinutes(c.DayStart)
	return m
}

// WindowEnd returns the window close in minutes from midnight.
func (c Config) WindowEnd() int {
	m, _ := timeutil.ClockMinutes(c.DayEnd)
	return m
}

// LoadConfig reads the policy from a YAML file. A missing file is not an
// error: it yields the defaults, so the service runs untuned out of the box.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	cfg.Normalize()
	return cfg, nil
}
