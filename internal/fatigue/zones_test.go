package fatigue

import "testing"

func TestZoneFor_Boundaries(t *testing.T) {
	cases := []struct {
		fatigue float64
		want    Zone
	}{
		{0, ZoneFresh},
		{19.9, ZoneFresh},
		{20.0, ZoneLight},
		{39.9, ZoneLight},
		{40.0, ZoneModerate},
		{64.9, ZoneModerate},
		{65.0, ZoneHeavy},
		{84.9, ZoneHeavy},
		{85.0, ZoneExhausted},
		{100, ZoneExhausted},
	}
	for _, c := range cases {
		if got := ZoneFor(c.fatigue); got != c.want {
			t.Errorf("ZoneFor(%v) = %v, want %v", c.fatigue, got, c.want)
		}
	}
}

func TestUrgencyFor(t *testing.T) {
	cases := []struct {
		zone Zone
		want Urgency
	}{
		{ZoneFresh, UrgencyNone},
		{ZoneLight, UrgencyNone},
		{ZoneModerate, UrgencyConsider},
		{ZoneHeavy, UrgencyRecommended},
		{ZoneExhausted, UrgencyUrgent},
	}
	for _, c := range cases {
		if got := UrgencyFor(c.zone); got != c.want {
			t.Errorf("UrgencyFor(%v) = %v, want %v", c.zone, got, c.want)
		}
	}
}

func TestZoneBoundsCoverScale(t *testing.T) {
	// Each zone's range must end where the next begins, covering 0-100.
	zones := []Zone{ZoneFresh, ZoneLight, ZoneModerate, ZoneHeavy, ZoneExhausted}
	prev := 0.0
	for _, z := range zones {
		lo, hi := z.bounds()
		if lo != prev {
			t.Errorf("zone %v starts at %v, want %v", z, lo, prev)
		}
		if hi <= lo {
			t.Errorf("zone %v has empty range [%v,%v]", z, lo, hi)
		}
		prev = hi
	}
	if prev != 100 {
		t.Errorf("zones end at %v, want 100", prev)
	}
}
