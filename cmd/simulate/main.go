// Command simulate runs one match from a yaml config and optional roster
// fixtures, printing the event log as it goes and a summary at the end.
// With -live it paces ticks against the wall clock so a match can be
// watched unfolding instead of finishing instantly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/VoidbreakDev/afl-coach-sim/internal/config"
	"github.com/VoidbreakDev/afl-coach-sim/internal/match"
	"github.com/VoidbreakDev/afl-coach-sim/internal/model"
	"github.com/VoidbreakDev/afl-coach-sim/internal/observ"
	"github.com/VoidbreakDev/afl-coach-sim/internal/simrand"
)

func main() {
	log.SetFlags(0)
	cfgPath := flag.String("config", "", "yaml config path (defaults applied when empty)")
	homePath := flag.String("home", "", "home roster yaml (generated from seed when empty)")
	awayPath := flag.String("away", "", "away roster yaml (generated from seed when empty)")
	seed := flag.Int64("seed", 0, "override match seed")
	live := flag.Bool("live", false, "pace ticks against the wall clock")
	speed := flag.Float64("speed", 60, "live playback speed multiple of real time")
	flag.Parse()

	cfg := config.Defaults()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Match.Seed = *seed
	}

	home := loadRoster(*homePath, "Home", cfg.Match.Seed)
	away := loadRoster(*awayPath, "Away", cfg.Match.Seed+1)

	runID := uuid.NewString()
	observ.Log("run_start", map[string]any{"run_id": runID, "seed": cfg.Match.Seed})

	sim, err := match.New(cfg, home, away, simrand.New(cfg.Match.Seed))
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}

	if *live {
		if *speed <= 0 {
			log.Fatalf("speed must be positive, got %v", *speed)
		}
		// One token per simulated tick, released at speed x real time.
		limiter := rate.NewLimiter(rate.Limit(*speed/cfg.Match.TickSeconds), 1)
		ctx := context.Background()
		sim.SetTickHook(func() {
			if err := limiter.Wait(ctx); err != nil {
				log.Fatalf("pacing: %v", err)
			}
		})
	}

	res := sim.Run()
	printSummary(res, runID)
}

func loadRoster(path, fallbackName string, seed int64) model.Roster {
	if path == "" {
		return model.GenerateRoster(fallbackName, seed)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read roster %s: %v", path, err)
	}
	var r model.Roster
	if err := yaml.Unmarshal(b, &r); err != nil {
		log.Fatalf("parse roster %s: %v", path, err)
	}
	return r
}

func printSummary(res match.Result, runID string) {
	verb := "def"
	switch {
	case res.HomePoints < res.AwayPoints:
		verb = "def by"
	case res.HomePoints == res.AwayPoints:
		verb = "drew"
	}
	fmt.Printf("\n%s %d.%d (%d) %s %s %d.%d (%d)\n",
		res.HomeTeam, res.HomeGoals, res.HomeBehinds, res.HomePoints, verb,
		res.AwayTeam, res.AwayGoals, res.AwayBehinds, res.AwayPoints)

	fmt.Printf("rotations: %d  contests: %d\n", len(res.Events), len(res.Ratings))
	for _, p := range res.Final.Home.Players {
		if p.Zone == "heavy" || p.Zone == "exhausted" {
			fmt.Printf("  gassed: %s (%s) fatigue %.1f\n", p.Name, p.Position, p.Fatigue)
		}
	}

	snap := observ.Snapshot()
	observ.Log("run_end", map[string]any{
		"run_id":     runID,
		"rotations":  snap.Counters["rotation_swaps_total"],
		"contests":   snap.Counters["contests_total"],
		"zone_moves": snap.Counters["zone_transitions_total"],
	})
}
