package model

import (
	"strconv"
	"strings"
)

// GameMods is a set of game modifications, implemented as bitflags over the
// api's 32-bit mod space. NightCore always carries the DoubleTime bit and
// Perfect always carries the SuddenDeath bit, mirroring how the api encodes
// them.
type GameMods uint32

//goland:noinspection ALL
const (
	NoMod       GameMods = 0
	NoFail      GameMods = 1
	Easy        GameMods = 1 << 1
	TouchDevice GameMods = 1 << 2
	Hidden      GameMods = 1 << 3
	HardRock    GameMods = 1 << 4
	SuddenDeath GameMods = 1 << 5
	DoubleTime  GameMods = 1 << 6
	Relax       GameMods = 1 << 7
	HalfTime    GameMods = 1 << 8
	NightCore   GameMods = 1<<9 | DoubleTime
	Flashlight  GameMods = 1 << 10
	Autoplay    GameMods = 1 << 11
	SpunOut     GameMods = 1 << 12
	Autopilot   GameMods = 1 << 13
	Perfect     GameMods = 1<<14 | SuddenDeath
	Key4        GameMods = 1 << 15
	Key5        GameMods = 1 << 16
	Key6        GameMods = 1 << 17
	Key7        GameMods = 1 << 18
	Key8        GameMods = 1 << 19
	FadeIn      GameMods = 1 << 20
	Random      GameMods = 1 << 21
	Cinema      GameMods = 1 << 22
	Target      GameMods = 1 << 23
	Key9        GameMods = 1 << 24
	KeyCoop     GameMods = 1 << 25
	Key1        GameMods = 1 << 26
	Key2        GameMods = 1 << 27
	Key3        GameMods = 1 << 28
	ScoreV2     GameMods = 1 << 29
	Mirror      GameMods = 1 << 30
)

// validModBits covers every defined flag, i.e. bits 0..=30.
const validModBits uint32 = 1<<31 - 1

// GameModsFromBits validates a raw bitset from the api. Any combination of
// defined bits is accepted, unknown bits fail with a ModParsingError.
func GameModsFromBits(bits uint32) (GameMods, error) {
	if bits&^validModBits != 0 {
		return NoMod, &ModParsingError{Bits: &bits}
	}
	return GameMods(bits), nil
}

// ParseGameMods parses a concatenation of two-letter mod abbreviations such
// as "HDHR". The literal "NOMOD" parses to the empty set.
func ParseGameMods(s string) (GameMods, error) {
	mods := NoMod
	full := strings.ToUpper(s)
	upper := full
	for len(upper) > 0 {
		end := 2
		if len(upper) < 2 {
			end = len(upper)
		}
		chunk := upper[:end]
		upper = upper[end:]

		var m GameMods
		switch chunk {
		case "NM":
			m = NoMod
		case "NF":
			m = NoFail
		case "EZ":
			m = Easy
		case "TD":
			m = TouchDevice
		case "HD":
			m = Hidden
		case "HR":
			m = HardRock
		case "SD":
			m = SuddenDeath
		case "DT":
			m = DoubleTime
		case "RX", "RL":
			m = Relax
		case "HT":
			m = HalfTime
		case "NC":
			m = NightCore
		case "FL":
			m = Flashlight
		case "SO":
			m = SpunOut
		case "AP":
			m = Autopilot
		case "PF":
			m = Perfect
		case "FI":
			m = FadeIn
		case "RD":
			m = Random
		case "TP":
			m = Target
		case "V2":
			m = ScoreV2
		case "MR":
			m = Mirror
		case "1K", "K1":
			m = Key1
		case "2K", "K2":
			m = Key2
		case "3K", "K3":
			m = Key3
		case "4K", "K4":
			m = Key4
		case "5K", "K5":
			m = Key5
		case "6K", "K6":
			m = Key6
		case "7K", "K7":
			m = Key7
		case "8K", "K8":
			m = Key8
		case "9K", "K9":
			m = Key9
		case "NO":
			if full == "NOMOD" {
				return NoMod, nil
			}
			return NoMod, &ModParsingError{Str: s}
		default:
			return NoMod, &ModParsingError{Str: s}
		}
		mods |= m
	}
	return mods, nil
}

// Bits returns the raw bitset as the api encodes it.
func (m GameMods) Bits() uint32 {
	return uint32(m)
}

// Contains reports whether every bit of other is set.
func (m GameMods) Contains(other GameMods) bool {
	return m&other == other
}

// Intersects reports whether any bit of other is set.
func (m GameMods) Intersects(other GameMods) bool {
	return m&other != 0
}

// Mods returns the atomic mods in ascending bit order. NightCore subsumes
// DoubleTime and Perfect subsumes SuddenDeath, so those companions are
// skipped. The empty set yields the single element NoMod.
func (m GameMods) Mods() []GameMods {
	if m == NoMod {
		return []GameMods{NoMod}
	}
	mods := make([]GameMods, 0, m.Len())
	for shift := 0; shift < 32; shift++ {
		bit := GameMods(1) << shift
		if (bit == SuddenDeath && m.Contains(Perfect)) ||
			(bit == DoubleTime && m.Contains(NightCore)) {
			continue
		}
		switch bit {
		case NightCore &^ DoubleTime:
			bit = NightCore
		case Perfect &^ SuddenDeath:
			bit = Perfect
		}
		if m.Contains(bit) {
			mods = append(mods, bit)
		}
	}
	return mods
}

// Len counts the contained atomic mods.
func (m GameMods) Len() int {
	n := popcount(uint32(m))
	if m.Contains(NightCore) {
		n--
	}
	if m.Contains(Perfect) {
		n--
	}
	return n
}

func popcount(v uint32) int {
	n := 0
	for ; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// HasKeyMod returns the lowest-numbered key mod Key1..Key9, or NoMod and
// false when the set contains none.
func (m GameMods) HasKeyMod() (GameMods, bool) {
	for _, key := range [...]GameMods{Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9} {
		if m.Contains(key) {
			return key, true
		}
	}
	return NoMod, false
}

// ScoreMultiplier calculates the factor by which the mods influence a
// play's score in the given mode.
func (m GameMods) ScoreMultiplier(mode GameMode) float32 {
	multiplier := float32(1.0)
	for _, mod := range m.Mods() {
		multiplier *= singleMultiplier(mod, mode)
	}
	return multiplier
}

func singleMultiplier(mod GameMods, mode GameMode) float32 {
	switch mode {
	case GameModeTaiko:
		switch mod {
		case HalfTime:
			return 0.3
		case Easy, NoFail:
			return 0.5
		case HardRock, Hidden:
			return 1.06
		case DoubleTime, NightCore, Flashlight:
			return 1.12
		}
	case GameModeCatch:
		switch mod {
		case HalfTime:
			return 0.3
		case Easy, NoFail:
			return 0.5
		case DoubleTime, NightCore, Hidden:
			return 1.06
		case HardRock, Flashlight:
			return 1.12
		}
	case GameModeMania:
		switch mod {
		case Easy, NoFail, HalfTime:
			return 0.5
		}
	default:
		switch mod {
		case HalfTime:
			return 0.3
		case Easy, NoFail:
			return 0.5
		case SpunOut:
			return 0.9
		case HardRock, Hidden:
			return 1.06
		case DoubleTime, NightCore, Flashlight:
			return 1.12
		}
	}
	return 1.0
}

// IncreasesScore reports whether the mods raise a play's score in the
// given mode.
func (m GameMods) IncreasesScore(mode GameMode) bool {
	return m.ScoreMultiplier(mode) > 1.0
}

// DecreasesScore reports whether the mods lower a play's score in the
// given mode.
func (m GameMods) DecreasesScore(mode GameMode) bool {
	return m.ScoreMultiplier(mode) < 1.0
}

// ChangesStars reports whether the mods influence a beatmap's star rating
// in the given mode.
func (m GameMods) ChangesStars(mode GameMode) bool {
	if m.Intersects(DoubleTime | NightCore | HalfTime) {
		return true
	}
	if m.Intersects(HardRock | Easy) {
		return mode == GameModeOsu || mode == GameModeCatch
	}
	return false
}

func (m GameMods) String() string {
	var sb strings.Builder
	for _, mod := range m.Mods() {
		sb.WriteString(abbrev(mod))
	}
	return sb.String()
}

func abbrev(mod GameMods) string {
	switch mod {
	case NoMod:
		return "NM"
	case NoFail:
		return "NF"
	case Easy:
		return "EZ"
	case TouchDevice:
		return "TD"
	case Hidden:
		return "HD"
	case HardRock:
		return "HR"
	case SuddenDeath:
		return "SD"
	case DoubleTime:
		return "DT"
	case Relax:
		return "RX"
	case HalfTime:
		return "HT"
	case NightCore:
		return "NC"
	case Flashlight:
		return "FL"
	case SpunOut:
		return "SO"
	case Autopilot:
		return "AP"
	case Perfect:
		return "PF"
	case FadeIn:
		return "FI"
	case Random:
		return "RD"
	case Target:
		return "TP"
	case ScoreV2:
		return "V2"
	case Mirror:
		return "MR"
	case Key1:
		return "1K"
	case Key2:
		return "2K"
	case Key3:
		return "3K"
	case Key4:
		return "4K"
	case Key5:
		return "5K"
	case Key6:
		return "6K"
	case Key7:
		return "7K"
	case Key8:
		return "8K"
	case Key9:
		return "9K"
	default:
		// Autoplay, Cinema, and KeyCoop have no abbreviation
		return ""
	}
}

// UnmarshalJSON accepts the bitset as number or decimal string, a
// concatenation of abbreviations, or null.
func (m *GameMods) UnmarshalJSON(data []byte) error {
	s, ok := lenientScalar(data)
	if !ok {
		*m = NoMod
		return nil
	}
	if bits, err := strconv.ParseUint(s, 10, 32); err == nil {
		mods, err := GameModsFromBits(uint32(bits))
		if err != nil {
			return err
		}
		*m = mods
		return nil
	}
	mods, err := ParseGameMods(s)
	if err != nil {
		return err
	}
	*m = mods
	return nil
}

func (m GameMods) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(m.Bits()), 10)), nil
}
