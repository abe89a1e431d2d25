package model

import "fmt"

// Position is a player's field role. It is a closed set: code that branches
// on Position must handle every constant plus a default arm so an unmapped
// role degrades to documented defaults instead of failing mid-match.
type Position int

const (
	Ruck Position = iota
	Midfield
	Wing
	HalfForward
	FullForward
	HalfBack
	FullBack

	// NumPositions bounds fixed-size lookup tables indexed by Position.
	NumPositions
)

func (p Position) String() string {
	switch p {
	case Ruck:
		return "ruck"
	case Midfield:
		return "midfield"
	case Wing:
		return "wing"
	case HalfForward:
		return "half_forward"
	case FullForward:
		return "full_forward"
	case HalfBack:
		return "half_back"
	case FullBack:
		return "full_back"
	default:
		return fmt.Sprintf("position(%d)", int(p))
	}
}

// UnmarshalYAML accepts the string form used in roster fixtures.
func (p *Position) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "ruck":
		*p = Ruck
	case "midfield":
		*p = Midfield
	case "wing":
		*p = Wing
	case "half_forward":
		*p = HalfForward
	case "full_forward":
		*p = FullForward
	case "half_back":
		*p = HalfBack
	case "full_back":
		*p = FullBack
	default:
		return fmt.Errorf("unknown position %q", s)
	}
	return nil
}

// Weather is the match-day condition. It scales fatigue accumulation only;
// it never touches ratings directly.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherHot
	WeatherWet
	WeatherCold
	WeatherWindy
)

func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherHot:
		return "hot"
	case WeatherWet:
		return "wet"
	case WeatherCold:
		return "cold"
	case WeatherWindy:
		return "windy"
	default:
		return fmt.Sprintf("weather(%d)", int(w))
	}
}

// ParseWeather maps the config string form; unknown strings are an error at
// the config boundary, not inside the match loop.
func ParseWeather(s string) (Weather, error) {
	switch s {
	case "", "clear":
		return WeatherClear, nil
	case "hot":
		return WeatherHot, nil
	case "wet":
		return WeatherWet, nil
	case "cold":
		return WeatherCold, nil
	case "windy":
		return WeatherWindy, nil
	}
	return WeatherClear, fmt.Errorf("unknown weather %q", s)
}
