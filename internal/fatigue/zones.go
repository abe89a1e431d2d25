package fatigue

import "fmt"

// Zone classifies a fatigue percentage into one of five ordered bands.
// A Zone is always derived from the current fatigue value via ZoneFor; it is
// never stored and set independently, so the classification invariant cannot
// drift.
type Zone int

const (
	ZoneFresh Zone = iota
	ZoneLight
	ZoneModerate
	ZoneHeavy
	ZoneExhausted
)

// Zone thresholds: fatigue below the threshold stays in the lower band.
const (
	lightThreshold     = 20.0
	moderateThreshold  = 40.0
	heavyThreshold     = 65.0
	exhaustedThreshold = 85.0
)

// ZoneFor returns the band for a fatigue value. Boundary values belong to the
// upper band: 85.0 is Exhausted, 84.9 is Heavy.
func ZoneFor(fatigue float64) Zone {
	switch {
	case fatigue < lightThreshold:
		return ZoneFresh
	case fatigue < moderateThreshold:
		return ZoneLight
	case fatigue < heavyThreshold:
		return ZoneModerate
	case fatigue < exhaustedThreshold:
		return ZoneHeavy
	default:
		return ZoneExhausted
	}
}

func (z Zone) String() string {
	switch z {
	case ZoneFresh:
		return "fresh"
	case ZoneLight:
		return "light"
	case ZoneModerate:
		return "moderate"
	case ZoneHeavy:
		return "heavy"
	case ZoneExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("zone(%d)", int(z))
	}
}

// bounds returns the fatigue range covered by the zone, used to position a
// value within its band when scaling impact.
func (z Zone) bounds() (lo, hi float64) {
	switch z {
	case ZoneFresh:
		return 0, lightThreshold
	case ZoneLight:
		return lightThreshold, moderateThreshold
	case ZoneModerate:
		return moderateThreshold, heavyThreshold
	case ZoneHeavy:
		return heavyThreshold, exhaustedThreshold
	default:
		return exhaustedThreshold, 100
	}
}

// Urgency is the substitution pressure derived from a zone. It is a pure
// function of the zone alone; the rotation manager combines it with stint and
// bench constraints.
type Urgency int

const (
	UrgencyNone Urgency = iota
	UrgencyConsider
	UrgencyRecommended
	UrgencyUrgent
)

func (u Urgency) String() string {
	switch u {
	case UrgencyNone:
		return "none"
	case UrgencyConsider:
		return "consider"
	case UrgencyRecommended:
		return "recommended"
	case UrgencyUrgent:
		return "urgent"
	default:
		return fmt.Sprintf("urgency(%d)", int(u))
	}
}

// UrgencyFor maps a zone to substitution urgency.
func UrgencyFor(z Zone) Urgency {
	switch z {
	case ZoneFresh, ZoneLight:
		return UrgencyNone
	case ZoneModerate:
		return UrgencyConsider
	case ZoneHeavy:
		return UrgencyRecommended
	default:
		return UrgencyUrgent
	}
}
