package celestial

import (
	"fmt"

	"nightsky/internal/core"

	"github.com/go-gl/mathgl/mgl32"
)

// Pattern names one of the fixed sky layouts.
type Pattern int

const (
	EarthNorth Pattern = iota
	EarthEast
	EarthSouth
	EarthWest
	AlienPattern1
	AlienPattern2
	AlienPattern3
	AlienPattern4
)

var patternNames = [...]string{
	"earth-north", "earth-east", "earth-south", "earth-west",
	"alien-1", "alien-2", "alien-3", "alien-4",
}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

// PatternsFor returns the four layouts available to a scene family.
func PatternsFor(scene core.Scene) []Pattern {
	if scene.IsAlien() {
		return []Pattern{AlienPattern1, AlienPattern2, AlienPattern3, AlienPattern4}
	}
	return []Pattern{EarthNorth, EarthEast, EarthSouth, EarthWest}
}

// StarPlacement overwrites one star of the generated field.
type StarPlacement struct {
	Pos        mgl32.Vec2
	Brightness float32
}

// ConstellationLayout is a named group of placements. Its stars take
// consecutive indices starting after the previous constellation's.
type ConstellationLayout struct {
	Name  string
	Stars []StarPlacement
}

// Planet is a distant, textureless planet drawn as a colored point.
type Planet struct {
	Name       string
	Pos        mgl32.Vec2
	Brightness float32
	Color      mgl32.Vec3
	Size       float32
}

// Layout is the static reference data of one pattern.
type Layout struct {
	Pattern        Pattern
	Constellations []ConstellationLayout
	Planets        []Planet
}

// StarCount returns how many star indices the layout overwrites.
func (l Layout) StarCount() int {
	n := 0
	for _, c := range l.Constellations {
		n += len(c.Stars)
	}
	return n
}

func st(x, y, b float32) StarPlacement {
	return StarPlacement{Pos: mgl32.Vec2{x, y}, Brightness: b}
}

func planet(name string, x, y, b float32, color mgl32.Vec3, size float32) Planet {
	return Planet{Name: name, Pos: mgl32.Vec2{x, y}, Brightness: b, Color: color, Size: size}
}

var (
	jupiterColor = mgl32.Vec3{1.0, 0.9, 0.8}
	venusColor   = mgl32.Vec3{1.0, 1.0, 0.9}
	saturnColor  = mgl32.Vec3{1.0, 0.9, 0.7}
)

var layouts = map[Pattern]Layout{
	EarthNorth: {
		Pattern: EarthNorth,
		Constellations: []ConstellationLayout{
			{Name: "URSA MAJOR", Stars: []StarPlacement{
				st(0.35, 0.70, 0.9), st(0.40, 0.65, 0.85), st(0.45, 0.67, 0.7), st(0.50, 0.72, 0.65),
				st(0.55, 0.69, 0.8), st(0.60, 0.65, 0.8), st(0.65, 0.61, 0.9),
			}},
			{Name: "CASSIOPEIA", Stars: []StarPlacement{
				st(0.70, 0.88, 0.9), st(0.73, 0.84, 0.85), st(0.76, 0.86, 0.95), st(0.79, 0.82, 0.8), st(0.82, 0.84, 0.7),
			}},
			{Name: "CEPHEUS", Stars: []StarPlacement{
				st(0.60, 0.90, 0.9), st(0.65, 0.87, 0.8), st(0.68, 0.92, 0.85), st(0.55, 0.85, 0.7), st(0.58, 0.80, 0.75),
			}},
			{Name: "DRACO", Stars: []StarPlacement{
				st(0.30, 0.85, 0.7), st(0.35, 0.90, 0.85), st(0.40, 0.87, 0.9), st(0.45, 0.82, 0.75), st(0.50, 0.78, 0.7),
			}},
		},
		Planets: []Planet{
			planet("JUPITER", 0.90, 0.60, 1.0, jupiterColor, 6),
		},
	},
	EarthEast: {
		Pattern: EarthEast,
		Constellations: []ConstellationLayout{
			{Name: "TAURUS", Stars: []StarPlacement{
				st(0.80, 0.70, 1.0), st(0.82, 0.72, 0.7), st(0.78, 0.72, 0.7), st(0.83, 0.67, 0.65),
				st(0.77, 0.67, 0.65), st(0.85, 0.73, 0.8), st(0.75, 0.73, 0.75),
			}},
			{Name: "AURIGA", Stars: []StarPlacement{
				st(0.60, 0.80, 1.0), st(0.65, 0.78, 0.8), st(0.62, 0.75, 0.7), st(0.58, 0.72, 0.75), st(0.55, 0.76, 0.7),
			}},
			{Name: "PERSEUS", Stars: []StarPlacement{
				st(0.45, 0.85, 0.9), st(0.50, 0.82, 0.85), st(0.48, 0.87, 0.7), st(0.40, 0.80, 0.75), st(0.42, 0.75, 0.8),
			}},
			{Name: "ANDROMEDA", Stars: []StarPlacement{
				st(0.30, 0.70, 0.9), st(0.35, 0.68, 0.85), st(0.40, 0.66, 0.8), st(0.37, 0.63, 0.7),
			}},
		},
		Planets: []Planet{
			planet("VENUS", 0.90, 0.65, 1.2, venusColor, 4),
			planet("MARS", 0.85, 0.60, 0.9, mgl32.Vec3{1.0, 0.5, 0.5}, 4),
			planet("JUPITER", 0.80, 0.60, 1.0, jupiterColor, 6),
		},
	},
	EarthSouth: {
		Pattern: EarthSouth,
		Constellations: []ConstellationLayout{
			{Name: "SAGITTARIUS", Stars: []StarPlacement{
				st(0.50, 0.60, 0.9), st(0.55, 0.62, 0.85), st(0.52, 0.65, 0.8), st(0.48, 0.67, 0.75),
				st(0.45, 0.63, 0.8), st(0.40, 0.61, 0.7), st(0.43, 0.58, 0.7),
			}},
			{Name: "SCORPIUS", Stars: []StarPlacement{
				st(0.20, 0.65, 1.0), st(0.22, 0.67, 0.8), st(0.24, 0.69, 0.7), st(0.18, 0.63, 0.75),
				st(0.16, 0.61, 0.8), st(0.14, 0.59, 0.9), st(0.17, 0.57, 0.85),
			}},
			{Name: "CAPRICORNUS", Stars: []StarPlacement{
				st(0.70, 0.55, 0.8), st(0.65, 0.57, 0.85), st(0.60, 0.54, 0.7), st(0.67, 0.52, 0.75), st(0.63, 0.50, 0.7),
			}},
			{Name: "AQUARIUS", Stars: []StarPlacement{
				st(0.80, 0.60, 0.85), st(0.85, 0.58, 0.8), st(0.82, 0.55, 0.75), st(0.78, 0.53, 0.7),
			}},
		},
		Planets: []Planet{
			planet("JUPITER", 0.55, 0.55, 1.0, jupiterColor, 6),
			planet("SATURN", 0.60, 0.60, 0.8, saturnColor, 4),
		},
	},
	EarthWest: {
		Pattern: EarthWest,
		Constellations: []ConstellationLayout{
			{Name: "CYGNUS", Stars: []StarPlacement{
				st(0.50, 0.85, 0.95), st(0.45, 0.80, 0.85), st(0.48, 0.75, 0.8), st(0.52, 0.78, 0.7), st(0.47, 0.70, 0.75),
			}},
			{Name: "LYRA", Stars: []StarPlacement{
				st(0.35, 0.80, 1.0), st(0.38, 0.77, 0.8), st(0.37, 0.74, 0.75), st(0.34, 0.76, 0.7),
			}},
			{Name: "AQUILA", Stars: []StarPlacement{
				st(0.65, 0.70, 0.95), st(0.60, 0.68, 0.7), st(0.70, 0.67, 0.85), st(0.63, 0.65, 0.7),
			}},
			{Name: "DELPHINUS", Stars: []StarPlacement{
				st(0.80, 0.75, 0.8), st(0.83, 0.73, 0.85), st(0.81, 0.70, 0.7), st(0.78, 0.72, 0.75),
			}},
		},
		Planets: []Planet{
			planet("VENUS", 0.20, 0.65, 1.2, venusColor, 4),
			planet("SATURN", 0.25, 0.60, 0.8, saturnColor, 4),
		},
	},
	AlienPattern1: {
		Pattern: AlienPattern1,
		Constellations: []ConstellationLayout{
			{Name: "BATLH", Stars: []StarPlacement{
				st(0.50, 0.85, 0.95), st(0.52, 0.80, 0.8), st(0.48, 0.80, 0.8), st(0.50, 0.75, 0.9),
				st(0.53, 0.70, 0.7), st(0.47, 0.70, 0.7),
			}},
			{Name: "QAPLA'", Stars: []StarPlacement{
				st(0.20, 0.55, 0.9), st(0.25, 0.50, 0.8), st(0.15, 0.50, 0.7),
			}},
			{Name: "TLHINGAN", Stars: []StarPlacement{
				st(0.80, 0.80, 0.9), st(0.83, 0.77, 0.85), st(0.85, 0.73, 0.8), st(0.82, 0.70, 0.7),
			}},
		},
		Planets: []Planet{
			planet("RURA PENTHE", 0.20, 0.65, 1.0, mgl32.Vec3{0.7, 0.3, 0.5}, 5),
			planet("KRONOS", 0.85, 0.65, 0.9, mgl32.Vec3{0.6, 0.4, 0.8}, 4.5),
			planet("KHITOMER", 0.30, 0.55, 0.8, mgl32.Vec3{0.9, 0.6, 0.3}, 4),
		},
	},
	AlienPattern2: {
		Pattern: AlienPattern2,
		Constellations: []ConstellationLayout{
			{Name: "MOK'TAH", Stars: []StarPlacement{
				st(0.20, 0.65, 0.9), st(0.30, 0.70, 0.8), st(0.40, 0.60, 0.7), st(0.50, 0.65, 0.9),
				st(0.60, 0.60, 0.8), st(0.70, 0.65, 0.7), st(0.80, 0.60, 0.85),
			}},
			{Name: "VENGOR", Stars: []StarPlacement{
				st(0.30, 0.80, 0.9), st(0.33, 0.78, 0.8), st(0.35, 0.76, 0.7), st(0.32, 0.74, 0.75),
			}},
			{Name: "KHORVOK", Stars: []StarPlacement{
				st(0.65, 0.65, 0.9), st(0.68, 0.63, 0.8), st(0.65, 0.61, 0.7), st(0.62, 0.63, 0.85),
			}},
		},
		Planets: []Planet{
			planet("PRAXIS", 0.82, 0.60, 0.9, mgl32.Vec3{0.5, 0.7, 0.3}, 4),
			planet("KLINZHAI", 0.30, 0.70, 1.0, mgl32.Vec3{0.8, 0.4, 0.4}, 5),
			planet("TY'GOKOR", 0.45, 0.65, 0.8, mgl32.Vec3{0.3, 0.6, 0.9}, 4.5),
		},
	},
	AlienPattern3: {
		Pattern: AlienPattern3,
		Constellations: []ConstellationLayout{
			{Name: "TORVAK", Stars: []StarPlacement{
				st(0.30, 0.80, 0.9), st(0.40, 0.85, 0.8), st(0.50, 0.87, 0.85), st(0.60, 0.85, 0.9),
				st(0.70, 0.82, 0.8), st(0.80, 0.78, 0.7),
			}},
			{Name: "GHARNOK", Stars: []StarPlacement{
				st(0.25, 0.55, 0.9), st(0.25, 0.60, 0.9), st(0.22, 0.57, 0.7), st(0.28, 0.57, 0.7),
			}},
			{Name: "ZELTAR", Stars: []StarPlacement{
				st(0.75, 0.60, 0.5), st(0.68, 0.60, 0.8), st(0.78, 0.57, 0.6), st(0.75, 0.57, 0.3),
			}},
		},
		Planets: []Planet{
			planet("BORETH", 0.25, 0.65, 0.8, mgl32.Vec3{0.8, 0.5, 0.4}, 4),
			planet("MORSKA", 0.80, 0.75, 0.95, mgl32.Vec3{0.4, 0.7, 0.5}, 5),
			planet("KRIOS", 0.50, 0.55, 0.85, mgl32.Vec3{0.9, 0.5, 0.7}, 4.5),
		},
	},
	AlienPattern4: {
		Pattern: AlienPattern4,
		Constellations: []ConstellationLayout{
			{Name: "DRAKTHAR", Stars: []StarPlacement{
				st(0.35, 0.10, 0.9), st(0.35, 0.90, 0.85), st(0.35, 0.80, 0.8), st(0.35, 0.80, 0.7),
			}},
			{Name: "SYRVEX", Stars: []StarPlacement{
				st(0.50, 0.65, 0.9), st(0.53, 0.67, 0.8), st(0.47, 0.67, 0.7), st(0.50, 0.70, 0.75),
			}},
			{Name: "QOLTHAR", Stars: []StarPlacement{
				st(0.80, 0.75, 0.95), st(0.83, 0.77, 0.8), st(0.82, 0.72, 0.7), st(0.77, 0.73, 0.85), st(0.78, 0.78, 0.75),
			}},
		},
		Planets: []Planet{
			planet("KOLARUS", 0.90, 0.90, 0.9, mgl32.Vec3{0.5, 0.8, 0.6}, 4.5),
			planet("RAKHAR", 0.75, 0.60, 0.85, mgl32.Vec3{0.7, 0.3, 0.7}, 4),
			planet("BETA THORIDOR", 0.35, 0.55, 0.95, mgl32.Vec3{0.9, 0.7, 0.3}, 5),
		},
	},
}

// LayoutFor returns the reference layout of p. Unknown patterns fall back to
// the first layout of their family.
func LayoutFor(p Pattern) Layout {
	if l, ok := layouts[p]; ok {
		return l
	}
	if p >= AlienPattern1 {
		return layouts[AlienPattern1]
	}
	return layouts[EarthNorth]
}

// CatalogEntry describes one satellite or ship that may cross the night sky.
type CatalogEntry struct {
	Name        string
	Speed       float32
	Inclination float32
	TextColor   mgl32.Vec3
	Size        float32
	Brightness  float32
}

// Cooldowns, in seconds, before a name may be shown again.
const (
	FlagshipCooldown  = 240
	SatelliteCooldown = 60
	FleetCooldown     = 300
)

// Flagship names get the long cooldown and are drawn highlighted.
var flagships = map[string]struct{}{
	"INTERNATIONAL SPACE STATION": {},
	"IKS D'GAVAH (BIRD-OF-PREY)":  {},
}

// IsFlagship reports whether name is one of the flagship craft.
func IsFlagship(name string) bool {
	_, ok := flagships[name]
	return ok
}

// CooldownFor returns the reuse cooldown of a satellite name.
func CooldownFor(name string) float32 {
	if IsFlagship(name) {
		return FlagshipCooldown
	}
	return SatelliteCooldown
}

// FleetName is the history key of the scene's train formation.
func FleetName(scene core.Scene) string {
	if scene.IsAlien() {
		return "KLINGON DEFENSE FORCE TACTICAL FLEET"
	}
	return "STARLINK TRAIN FORMATION"
}

// FleetLabel is the on-screen caption of the scene's train formation.
func FleetLabel(scene core.Scene) string {
	if scene.IsAlien() {
		return "KLINGON DEFENSE FORCE"
	}
	return "STARLINK TRAIN"
}

// SatelliteCatalog returns the ordered catalog for a scene.
func SatelliteCatalog(scene core.Scene) []CatalogEntry {
	if scene.IsAlien() {
		return alienSatellites
	}
	return earthSatellites
}

func earthSat(name string, speed, incl float32) CatalogEntry {
	return CatalogEntry{Name: name, Speed: speed, Inclination: incl, TextColor: mgl32.Vec3{1, 1, 1}, Size: 2, Brightness: 0.7}
}

func ship(name string, speed, incl float32, color mgl32.Vec3, size, brightness float32) CatalogEntry {
	return CatalogEntry{Name: name, Speed: speed, Inclination: incl, TextColor: color, Size: size, Brightness: brightness}
}

var earthSatellites = []CatalogEntry{
	{Name: "INTERNATIONAL SPACE STATION", Speed: 0.01, Inclination: 51.6, TextColor: mgl32.Vec3{1, 1, 0}, Size: 2, Brightness: 1},
	earthSat("HUBBLE SPACE TELESCOPE", 0.0098, 28.5),
	earthSat("SPUTNIK 1", 0.0096, 65),
	earthSat("LANDSAT 8", 0.0096, 98.2),
	earthSat("GOES-16", 0.0039, 0),
	earthSat("IRIDIUM 33", 0.0095, 86.4),
	earthSat("TIANGONG-1", 0.0101, 42.8),
	earthSat("NOAA-19", 0.0094, 98.7),
	earthSat("AQUA", 0.0096, 98.2),
	earthSat("TERRA", 0.0096, 98.2),
	earthSat("ENVISAT", 0.0095, 98.4),
	earthSat("JASON-3", 0.0092, 66),
	earthSat("CRYOSAT-2", 0.0096, 92),
	earthSat("SENTINEL-1A", 0.0097, 98.18),
	earthSat("METOP-A", 0.0094, 98.7),
	earthSat("KOSMOS 2251", 0.0095, 74),
	earthSat("GALILEO G1", 0.0048, 56),
	earthSat("GPS IIF-12", 0.0049, 55),
	earthSat("INMARSAT-4 F3", 0.0039, 0),
	earthSat("SIRIUS FM-6", 0.0039, 0),
	earthSat("CHANDRA X-RAY OBSERVATORY", 0.0035, 28.5),
	earthSat("KEPLER SPACE TELESCOPE", 0.0094, 0),
	earthSat("SPOT-7", 0.0097, 98.2),
	earthSat("SWIFT GAMMA-RAY BURST MISSION", 0.0098, 20.6),
	earthSat("FENGYUN-2D", 0.0039, 0),
	earthSat("RADARSAT-2", 0.0095, 98.6),
	earthSat("ALOS-2", 0.0098, 97.9),
	earthSat("WORLDVIEW-3", 0.0098, 97.2),
	earthSat("GCOM-W1", 0.0096, 98.2),
	earthSat("OFEQ-10", 0.0098, 141),
	earthSat("YAMAL-402", 0.0039, 0),
	earthSat("ASTROSAT", 0.0098, 6),
	earthSat("CARTOSAT-2", 0.0098, 97.9),
	earthSat("RESURS-P1", 0.0099, 97.3),
	earthSat("KOMPSAT-3", 0.0097, 98.1),
	earthSat("GONETS-M1", 0.0091, 82.5),
	earthSat("YAOGAN-30", 0.0098, 35),
	earthSat("BEIDOU G7", 0.0039, 0),
	earthSat("INSAT-4CR", 0.0039, 0),
	earthSat("EUTELSAT 8 WEST B", 0.0039, 0),
	earthSat("THAICOM 8", 0.0039, 0),
	earthSat("NUSANTARA SATU", 0.0039, 0),
	earthSat("GSAT-31", 0.0039, 0),
	earthSat("AMOS-17", 0.0039, 0),
	earthSat("INTELSAT 39", 0.0039, 0),
	earthSat("SES-12", 0.0039, 0),
	earthSat("TELSTAR 19V", 0.0039, 0),
	earthSat("ABS-3A", 0.0039, 0),
	earthSat("BRISAT", 0.0039, 0),
	earthSat("ECHOSTAR 23", 0.0039, 0),
	earthSat("SKYNET 5D", 0.0039, 0),
}

var (
	klingonRed = mgl32.Vec3{0.7, 0.2, 0.2}
	romulan    = mgl32.Vec3{0.3, 0.6, 0.3}
	federation = mgl32.Vec3{0.5, 0.5, 0.8}
	neutral    = mgl32.Vec3{0.6, 0.6, 0.6}
)

var alienSatellites = []CatalogEntry{
	ship("IKS D'GAVAH (BIRD-OF-PREY)", 0.012, 45, mgl32.Vec3{1, 0, 0}, 3, 1.2),
	ship("IKS KORINAR (K'VORT-CLASS)", 0.010, 40, klingonRed, 2.5, 0.9),
	ship("IKS MAUK (VOR'CHA-CLASS)", 0.011, 35, klingonRed, 2.8, 1.0),
	ship("IKS TONG (D7-CLASS)", 0.009, 50, klingonRed, 2.0, 0.8),
	ship("IKS BURUK (B'REL-CLASS)", 0.010, 42, klingonRed, 2.2, 0.9),
	ship("IKS RAKTAR (NEGH'VAR-CLASS)", 0.012, 38, klingonRed, 3.0, 1.1),
	ship("IKS QEH'TAK (K'T'INGA-CLASS)", 0.011, 47, klingonRed, 2.7, 1.0),
	ship("IKS VOR'NAL (RAPTOR-CLASS)", 0.0095, 41, klingonRed, 2.3, 0.9),
	ship("IKS JIH'VEK (D5-CLASS)", 0.0105, 39, klingonRed, 2.4, 0.9),
	ship("IKS NUQ'TAR (KELDON-CLASS)", 0.011, 43, klingonRed, 2.6, 1.0),
	ship("IKS TAL'SHIAR (D'DERIDEX WARBIRD)", 0.012, 44, mgl32.Vec3{0.2, 0.8, 0.2}, 3.0, 1.1),
	ship("IKS VREX'TAL (VALDORE-CLASS)", 0.011, 40, romulan, 2.8, 1.0),
	ship("IKS SOT'HAR (KERCHAN-CLASS)", 0.010, 42, romulan, 2.5, 0.9),
	ship("IKS DUK'TAL (SCORPION-CLASS)", 0.009, 38, romulan, 2.2, 0.8),
	ship("IKS REMAN'VEK (SHRIKE-CLASS)", 0.0105, 41, romulan, 2.4, 0.9),
	ship("IKS NEX'TOR (T'LISS WARBIRD)", 0.011, 39, romulan, 2.6, 1.0),
	ship("IKS VOR'CHA (NERADA-CLASS)", 0.012, 43, romulan, 3.0, 1.1),
	ship("IKS KEL'TAK (D7 WARBIRD)", 0.010, 40, romulan, 2.5, 0.9),
	ship("IKS TAL'VEK (HAWK-CLASS)", 0.0095, 42, romulan, 2.3, 0.8),
	ship("IKS SAREK'TAL (FALCON-CLASS)", 0.011, 41, romulan, 2.7, 1.0),
	ship("IKS TAJ'VEK (GALAXY-CLASS)", 0.012, 45, mgl32.Vec3{0.8, 0.8, 1.0}, 3.0, 1.1),
	ship("IKS QONOS'TAR (CONSTITUTION-CLASS)", 0.011, 40, federation, 2.8, 1.0),
	ship("IKS VOR'TAK (INTREPID-CLASS)", 0.010, 42, federation, 2.5, 0.9),
	ship("IKS NEX'VEK (DEFIANT-CLASS)", 0.009, 38, federation, 2.2, 0.8),
	ship("IKS KEL'CHA (SOVEREIGN-CLASS)", 0.011, 41, federation, 2.7, 1.0),
	ship("IKS DUK'VEK (NEBULA-CLASS)", 0.0105, 39, federation, 2.4, 0.9),
	ship("IKS SOT'VEK (EXCELSIOR-CLASS)", 0.012, 43, federation, 3.0, 1.1),
	ship("IKS TAL'TAR (AKIRA-CLASS)", 0.010, 40, federation, 2.5, 0.9),
	ship("IKS VREX'TOR (MIRANDA-CLASS)", 0.0095, 42, federation, 2.3, 0.8),
	ship("IKS NEX'TAK (PROMETHEUS-CLASS)", 0.011, 41, federation, 2.7, 1.0),
	ship("IKS ZOR'TAL (CYLON BASISTAR)", 0.012, 44, mgl32.Vec3{0.5, 0.5, 0.5}, 3.0, 1.1),
	ship("IKS VEX'CHA (BORG CUBE)", 0.011, 40, mgl32.Vec3{0.4, 0.1, 0.4}, 2.8, 1.0),
	ship("IKS DOR'TAK (IMPERIAL STAR DESTROYER)", 0.010, 42, mgl32.Vec3{0.3, 0.5, 0.7}, 2.5, 0.9),
	ship("IKS KOR'VEK (MILLENNIUM FALCON)", 0.009, 38, mgl32.Vec3{0.8, 0.6, 0.4}, 2.2, 0.8),
	ship("IKS TAL'CHA (FIREFLY-CLASS)", 0.0105, 41, neutral, 2.4, 0.9),
	ship("IKS SOT'TAR (SERENITY)", 0.011, 39, neutral, 2.6, 1.0),
	ship("IKS VOR'TAK (REAVER SHIP)", 0.012, 43, neutral, 3.0, 1.1),
	ship("IKS NEX'CHA (GALACTICA)", 0.010, 40, neutral, 2.5, 0.9),
	ship("IKS DUK'TOR (VIPER MK II)", 0.0095, 42, neutral, 2.3, 0.8),
	ship("IKS KEL'TAR (RAIDER)", 0.011, 41, neutral, 2.7, 1.0),
	ship("IKS ZOR'VEK (NORMANDY SR-2)", 0.012, 44, neutral, 3.0, 1.1),
	ship("IKS VEX'TAK (REAPER DESTROYER)", 0.011, 40, neutral, 2.8, 1.0),
	ship("IKS DOR'CHA (DESTINY)", 0.010, 42, neutral, 2.5, 0.9),
	ship("IKS KOR'VEK (ATLANTIS)", 0.009, 38, neutral, 2.2, 0.8),
	ship("IKS TAL'TOR (HIVE SHIP)", 0.0105, 41, neutral, 2.4, 0.9),
	ship("IKS SOT'CHA (WRAITH CRUISER)", 0.011, 39, neutral, 2.6, 1.0),
	ship("IKS VOR'TAK (DART)", 0.012, 43, neutral, 3.0, 1.1),
	ship("IKS NEX'TOR (ORION DESTROYER)", 0.010, 40, neutral, 2.5, 0.9),
	ship("IKS DUK'CHA (NAQUADAH MINER)", 0.0095, 42, neutral, 2.3, 0.8),
	ship("IKS KEL'TOR (TEL'TAK)", 0.011, 41, neutral, 2.7, 1.0),
}
