package model

// PlayerMatchState is the mutable per-player runtime record for one match.
// It is created at match start from the roster and discarded at match end.
// A player is in exactly one of the on-field or bench lists at any time;
// OnField mirrors which list currently holds the record.
type PlayerMatchState struct {
	PlayerID             int
	OnField              bool
	SecondsSinceRotation float64 // on field: stint length; on bench: rest length
	Condition            float64 // 0-100
	FatigueMultiplier    float64 // applied multiplicatively to ratings
	InjuryMultiplier     float64 // supplied by the external injury subsystem
	InjuredOut           bool
	ReturnInSeconds      float64 // cooldown before an injured player is re-eligible
}

// NewPlayerMatchState initializes runtime state from a roster entry.
func NewPlayerMatchState(p Player, onField bool) *PlayerMatchState {
	return &PlayerMatchState{
		PlayerID:          p.ID,
		OnField:           onField,
		Condition:         p.Condition,
		FatigueMultiplier: 1.0,
		InjuryMultiplier:  1.0,
	}
}
