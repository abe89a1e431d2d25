package fatigue

import "github.com/VoidbreakDev/afl-coach-sim/internal/model"

// Profile holds the per-role fatigue constants. BaseRate and BaseRecovery
// are in fatigue points per second at multiplier 1.0. Resistance below 1.0
// means the role fatigues slower than baseline.
type Profile struct {
	BaseRate     float64
	RunningMult  float64
	ContestMult  float64
	BaseRecovery float64
	Resistance   float64
}

// defaultProfile covers any role not in the table below. Mid-range values:
// a position we have not modelled should behave unremarkably, not explode.
var defaultProfile = Profile{
	BaseRate:     0.016,
	RunningMult:  1.0,
	ContestMult:  1.0,
	BaseRecovery: 0.050,
	Resistance:   1.0,
}

// profiles is indexed by model.Position. Running roles burn faster and
// recover faster; key-position roles burn slowest.
var profiles = [model.NumPositions]Profile{
	model.Ruck:        {BaseRate: 0.024, RunningMult: 0.90, ContestMult: 1.25, BaseRecovery: 0.046, Resistance: 1.05},
	model.Midfield:    {BaseRate: 0.021, RunningMult: 1.15, ContestMult: 1.10, BaseRecovery: 0.056, Resistance: 0.95},
	model.Wing:        {BaseRate: 0.019, RunningMult: 1.20, ContestMult: 0.95, BaseRecovery: 0.054, Resistance: 0.95},
	model.HalfForward: {BaseRate: 0.016, RunningMult: 1.05, ContestMult: 1.00, BaseRecovery: 0.050, Resistance: 1.00},
	model.FullForward: {BaseRate: 0.013, RunningMult: 0.95, ContestMult: 1.05, BaseRecovery: 0.048, Resistance: 1.00},
	model.HalfBack:    {BaseRate: 0.015, RunningMult: 1.05, ContestMult: 1.00, BaseRecovery: 0.050, Resistance: 1.00},
	model.FullBack:    {BaseRate: 0.012, RunningMult: 0.90, ContestMult: 1.05, BaseRecovery: 0.048, Resistance: 1.05},
}

// ProfileFor returns the constants for a role, falling back to the default
// profile for anything outside the table.
func ProfileFor(p model.Position) Profile {
	if p < 0 || p >= model.NumPositions {
		return defaultProfile
	}
	return profiles[p]
}
