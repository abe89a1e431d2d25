package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Root)
	}{
		{"zero_quarter", func(c *Root) { c.Match.QuarterSeconds = 0 }},
		{"negative_tick", func(c *Root) { c.Match.TickSeconds = -6 }},
		{"tick_longer_than_quarter", func(c *Root) { c.Match.TickSeconds = 2000 }},
		{"contest_interval_below_tick", func(c *Root) { c.Match.ContestIntervalSeconds = 1 }},
		{"negative_break", func(c *Root) { c.Match.QuarterBreakSeconds = -1 }},
		{"negative_target", func(c *Root) { c.Tactics.TargetInterchanges = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Defaults()
			tc.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("want validation error, got nil")
			}
		})
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.yaml")
	doc := []byte("match:\n  seed: 99\n  weather: hot\ntactics:\n  target_interchanges: 80\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Match.Seed != 99 || c.Match.Weather != "hot" {
		t.Fatalf("explicit values lost: %+v", c.Match)
	}
	if c.Tactics.TargetInterchanges != 80 {
		t.Fatalf("tactics lost: %+v", c.Tactics)
	}
	if c.Match.QuarterSeconds != 1200 || c.Match.TickSeconds != 6 {
		t.Fatalf("defaults not applied: %+v", c.Match)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}
