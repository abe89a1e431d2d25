package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Match struct {
	QuarterSeconds         float64 `yaml:"quarter_seconds"`
	TickSeconds            float64 `yaml:"tick_seconds"`
	ContestIntervalSeconds float64 `yaml:"contest_interval_seconds"`
	QuarterBreakSeconds    float64 `yaml:"quarter_break_seconds"`
	HalfTimeSeconds        float64 `yaml:"half_time_seconds"`
	Weather                string  `yaml:"weather"`
	Venue                  string  `yaml:"venue"`
	Seed                   int64   `yaml:"seed"`
}

type Tactics struct {
	TargetInterchanges int `yaml:"target_interchanges"`
	InterchangeCap     int `yaml:"interchange_cap"`
}

type Root struct {
	Match   Match   `yaml:"match"`
	Tactics Tactics `yaml:"tactics"`
}

// Defaults returns a runnable configuration: 20-minute quarters, 6-second
// ticks, a contest every 30 seconds of play.
func Defaults() Root {
	return Root{
		Match: Match{
			QuarterSeconds:         1200,
			TickSeconds:            6,
			ContestIntervalSeconds: 30,
			QuarterBreakSeconds:    360,
			HalfTimeSeconds:        1200,
			Weather:                "clear",
			Seed:                   1,
		},
		Tactics: Tactics{
			TargetInterchanges: 60,
			InterchangeCap:     75,
		},
	}
}

// Load reads a yaml config and fills unset fields with defaults. Validation
// is separate: callers validate at the simulation boundary, before the tick
// loop starts.
func Load(path string) (Root, error) {
	c := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	if c.Match.Weather == "" {
		c.Match.Weather = "clear"
	}
	return c, nil
}

// Validate rejects configurations that must not enter the tick loop. This is
// the one hard-failure point: once a match starts, every operation degrades
// defensively instead of erroring.
func (c Root) Validate() error {
	m := c.Match
	if m.QuarterSeconds <= 0 {
		return fmt.Errorf("match.quarter_seconds must be positive, got %v", m.QuarterSeconds)
	}
	if m.TickSeconds <= 0 {
		return fmt.Errorf("match.tick_seconds must be positive, got %v", m.TickSeconds)
	}
	if m.TickSeconds > m.QuarterSeconds {
		return fmt.Errorf("match.tick_seconds %v exceeds quarter length %v", m.TickSeconds, m.QuarterSeconds)
	}
	if m.ContestIntervalSeconds < m.TickSeconds {
		return fmt.Errorf("match.contest_interval_seconds %v is shorter than a tick %v", m.ContestIntervalSeconds, m.TickSeconds)
	}
	if m.QuarterBreakSeconds < 0 || m.HalfTimeSeconds < 0 {
		return fmt.Errorf("break durations must not be negative")
	}
	if c.Tactics.TargetInterchanges < 0 {
		return fmt.Errorf("tactics.target_interchanges must not be negative, got %d", c.Tactics.TargetInterchanges)
	}
	return nil
}
