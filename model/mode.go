package model

import (
	"bytes"
	"fmt"
)

// GameMode is one of the four game modes osu!standard, osu!taiko,
// Catch the Beat, and osu!mania.
type GameMode uint8

//goland:noinspection ALL
const (
	GameModeOsu GameMode = iota
	GameModeTaiko
	GameModeCatch
	GameModeMania
)

// GameModeFromCode converts the api's numeric mode code, failing for
// anything outside 0..=3.
func GameModeFromCode(code int) (GameMode, error) {
	if code < 0 || code > 3 {
		return GameModeOsu, fmt.Errorf("invalid GameMode code %d", code)
	}
	return GameMode(code), nil
}

func (m GameMode) String() string {
	switch m {
	case GameModeTaiko:
		return "taiko"
	case GameModeCatch:
		return "fruits"
	case GameModeMania:
		return "mania"
	default:
		return "osu"
	}
}

// UnmarshalJSON accepts the numeric code as number or decimal string plus a
// few textual aliases. Null and unknown values fall back to osu!standard.
func (m *GameMode) UnmarshalJSON(data []byte) error {
	s, ok := lenientScalar(data)
	if !ok {
		*m = GameModeOsu
		return nil
	}
	switch s {
	case "0", "osu":
		*m = GameModeOsu
	case "1", "taiko", "tko":
		*m = GameModeTaiko
	case "2", "ctb", "fruits":
		*m = GameModeCatch
	case "3", "mania", "mna":
		*m = GameModeMania
	default:
		*m = GameModeOsu
	}
	return nil
}

func (m GameMode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d", uint8(m))), nil
}

// lenientScalar reduces a JSON number or string value to its text. The
// second return is false for null and non-scalar values.
func lenientScalar(data []byte) (string, bool) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false
	}
	if data[0] == '"' && len(data) >= 2 && data[len(data)-1] == '"' {
		return string(data[1 : len(data)-1]), true
	}
	if data[0] == '{' || data[0] == '[' {
		return "", false
	}
	return string(data), true
}
