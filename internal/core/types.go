package core

import (
	"fmt"
	"strings"
)

// Window dimensions the normalized sky coordinates are mapped onto.
const (
	WindowWidth  = 1728
	WindowHeight = 972
)

// TimeOfDay enumerates the four sky states.
type TimeOfDay int

const (
	Dawn TimeOfDay = iota
	MidDay
	Dusk
	Night
)

var timeOfDayNames = [...]string{"dawn", "midday", "dusk", "night"}

func (t TimeOfDay) String() string {
	if t < 0 || int(t) >= len(timeOfDayNames) {
		return fmt.Sprintf("TimeOfDay(%d)", int(t))
	}
	return timeOfDayNames[t]
}

// ParseTimeOfDay maps a case-insensitive name onto a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, "-", "")
	for i, name := range timeOfDayNames {
		if key == name {
			return TimeOfDay(i), nil
		}
	}
	return MidDay, fmt.Errorf("unknown time of day %q", s)
}

// Scene enumerates the four seasons and the alien world.
type Scene int

const (
	Summer Scene = iota
	Fall
	Winter
	Spring
	Alien
)

var sceneNames = [...]string{"summer", "fall", "winter", "spring", "alien"}

func (s Scene) String() string {
	if s < 0 || int(s) >= len(sceneNames) {
		return fmt.Sprintf("Scene(%d)", int(s))
	}
	return sceneNames[s]
}

// Title returns the display name used by the HUD.
func (s Scene) Title() string {
	name := s.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// IsAlien reports whether the scene uses the alien catalogs.
func (s Scene) IsAlien() bool { return s == Alien }

// ParseScene maps a case-insensitive name onto a Scene.
func ParseScene(s string) (Scene, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range sceneNames {
		if key == name {
			return Scene(i), nil
		}
	}
	return Summer, fmt.Errorf("unknown scene %q", s)
}

// TerrainTier identifies the near and far terrain layers.
type TerrainTier int

const (
	Bottom TerrainTier = iota
	Distant
)

func (t TerrainTier) String() string {
	switch t {
	case Bottom:
		return "bottom"
	case Distant:
		return "distant"
	default:
		return fmt.Sprintf("TerrainTier(%d)", int(t))
	}
}
