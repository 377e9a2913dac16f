package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MingxuanGame/OsuApiV1/deserialize"
)

// ScoringType of a multiplayer match, i.e. the winning condition.
type ScoringType uint8

//goland:noinspection ALL
const (
	ScoringScore ScoringType = iota
	ScoringAccuracy
	ScoringCombo
	ScoringScoreV2
)

// ScoringTypeFromCode converts the api's numeric scoring type code.
func ScoringTypeFromCode(code int) (ScoringType, error) {
	if code < 0 || code > 3 {
		return ScoringScore, fmt.Errorf("invalid ScoringType code %d", code)
	}
	return ScoringType(code), nil
}

func (t *ScoringType) UnmarshalJSON(data []byte) error {
	v, ok := lenientScalar(data)
	if !ok {
		*t = ScoringScore
		return nil
	}
	switch v {
	case "1", "accuracy":
		*t = ScoringAccuracy
	case "2", "combo":
		*t = ScoringCombo
	case "3", "scorev2":
		*t = ScoringScoreV2
	default:
		*t = ScoringScore
	}
	return nil
}

func (t ScoringType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(t))), nil
}

// TeamType of a multiplayer match.
type TeamType uint8

//goland:noinspection ALL
const (
	TeamTypeHeadToHead TeamType = iota
	TeamTypeTagCoop
	TeamTypeTeamVS
	TeamTypeTagTeamVS
)

// TeamTypeFromCode converts the api's numeric team type code.
func TeamTypeFromCode(code int) (TeamType, error) {
	if code < 0 || code > 3 {
		return TeamTypeHeadToHead, fmt.Errorf("invalid TeamType code %d", code)
	}
	return TeamType(code), nil
}

func (t *TeamType) UnmarshalJSON(data []byte) error {
	v, ok := lenientScalar(data)
	if !ok {
		*t = TeamTypeHeadToHead
		return nil
	}
	switch v {
	case "1", "tagcoop":
		*t = TeamTypeTagCoop
	case "2", "teamvs":
		*t = TeamTypeTeamVS
	case "3", "tagteamvs":
		*t = TeamTypeTagTeamVS
	default:
		*t = TeamTypeHeadToHead
	}
	return nil
}

func (t TeamType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(t))), nil
}

// Team of a player within a multiplayer game.
type Team uint8

//goland:noinspection ALL
const (
	TeamNone Team = iota
	TeamBlue
	TeamRed
)

// TeamFromCode converts the api's numeric team code.
func TeamFromCode(code int) (Team, error) {
	if code < 0 || code > 2 {
		return TeamNone, fmt.Errorf("invalid Team code %d", code)
	}
	return Team(code), nil
}

func (t *Team) UnmarshalJSON(data []byte) error {
	v, ok := lenientScalar(data)
	if !ok {
		*t = TeamNone
		return nil
	}
	switch v {
	case "1", "blue":
		*t = TeamBlue
	case "2", "red":
		*t = TeamRed
	default:
		*t = TeamNone
	}
	return nil
}

func (t Team) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(t))), nil
}

// Match retrieved from the /api/get_match endpoint.
type Match struct {
	MatchID   uint32      `json:"match_id"`
	Name      string      `json:"name"`
	StartTime time.Time   `json:"start_time"`
	EndTime   *time.Time  `json:"end_time,omitempty"`
	Games     []MatchGame `json:"games"`
}

// UnmarshalJSON accepts both shapes the api emits: the nested
// {match: {...}, games: [...]} object and a flat object carrying match_id,
// name, start_time, end_time, and games at the top level.
func (m *Match) UnmarshalJSON(data []byte) error {
	var raw struct {
		Match *struct {
			MatchID   deserialize.U32     `json:"match_id"`
			Name      string              `json:"name"`
			StartTime deserialize.Date    `json:"start_time"`
			EndTime   deserialize.OptDate `json:"end_time"`
		} `json:"match"`
		Games     *[]MatchGame         `json:"games"`
		MatchID   *deserialize.U32     `json:"match_id"`
		Name      *string              `json:"name"`
		StartTime *deserialize.Date    `json:"start_time"`
		EndTime   *deserialize.OptDate `json:"end_time"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Games == nil {
		return errors.New("deserializing Match requires the field `games`")
	}

	if raw.Match != nil {
		*m = Match{
			MatchID:   uint32(raw.Match.MatchID),
			Name:      raw.Match.Name,
			StartTime: raw.Match.StartTime.Time(),
			EndTime:   raw.Match.EndTime.Ptr(),
			Games:     *raw.Games,
		}
		return nil
	}

	if raw.MatchID == nil || raw.Name == nil || raw.StartTime == nil {
		return errors.New(
			"deserializing Match requires either the field `match`, " +
				"or the fields `match_id`, `name`, and `start_time`")
	}
	var endTime *time.Time
	if raw.EndTime != nil {
		endTime = raw.EndTime.Ptr()
	}
	*m = Match{
		MatchID:   uint32(*raw.MatchID),
		Name:      *raw.Name,
		StartTime: raw.StartTime.Time(),
		EndTime:   endTime,
		Games:     *raw.Games,
	}
	return nil
}

// MatchGame is one map played during a multiplayer match, containing the
// game's settings and all its scores.
type MatchGame struct {
	GameID      uint32      `json:"game_id"`
	StartTime   time.Time   `json:"start_time"`
	EndTime     *time.Time  `json:"end_time,omitempty"`
	BeatmapID   uint32      `json:"beatmap_id"`
	Mode        GameMode    `json:"mode"`
	ScoringType ScoringType `json:"scoring_type"`
	TeamType    TeamType    `json:"team_type"`
	Mods        *GameMods   `json:"mods,omitempty"`
	Scores      []GameScore `json:"scores"`
}

type rawMatchGame struct {
	GameID      deserialize.U32     `json:"game_id"`
	StartTime   deserialize.Date    `json:"start_time"`
	EndTime     deserialize.OptDate `json:"end_time"`
	BeatmapID   deserialize.U32     `json:"beatmap_id"`
	Mode        *GameMode           `json:"mode"`
	PlayMode    *GameMode           `json:"play_mode"`
	ScoringType ScoringType         `json:"scoring_type"`
	TeamType    TeamType            `json:"team_type"`
	Mods        *GameMods           `json:"mods"`
	Scores      []GameScore         `json:"scores"`
}

func (g *MatchGame) UnmarshalJSON(data []byte) error {
	var raw rawMatchGame
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = MatchGame{
		GameID:      uint32(raw.GameID),
		StartTime:   raw.StartTime.Time(),
		EndTime:     raw.EndTime.Ptr(),
		BeatmapID:   uint32(raw.BeatmapID),
		Mode:        alias(raw.Mode, raw.PlayMode),
		ScoringType: raw.ScoringType,
		TeamType:    raw.TeamType,
		Mods:        raw.Mods,
		Scores:      raw.Scores,
	}
	return nil
}

// GameScore is the play of one participating user within a MatchGame.
type GameScore struct {
	Slot        uint32    `json:"slot"`
	Team        Team      `json:"team"`
	UserID      uint32    `json:"user_id"`
	Score       uint32    `json:"score"`
	MaxCombo    uint32    `json:"max_combo"`
	Count50     uint32    `json:"count50"`
	Count100    uint32    `json:"count100"`
	Count300    uint32    `json:"count300"`
	CountMiss   uint32    `json:"count_miss"`
	CountGeki   uint32    `json:"count_geki"`
	CountKatu   uint32    `json:"count_katu"`
	Perfect     bool      `json:"perfect"`
	Pass        bool      `json:"pass"`
	EnabledMods *GameMods `json:"enabled_mods,omitempty"`
}

type rawGameScore struct {
	Slot           deserialize.U32  `json:"slot"`
	Team           Team             `json:"team"`
	UserID         deserialize.U32  `json:"user_id"`
	Score          deserialize.U32  `json:"score"`
	MaxCombo       *deserialize.U32 `json:"max_combo"`
	MaxComboAlias  *deserialize.U32 `json:"maxcombo"`
	Count50        deserialize.U32  `json:"count50"`
	Count100       deserialize.U32  `json:"count100"`
	Count300       deserialize.U32  `json:"count300"`
	CountMiss      *deserialize.U32 `json:"count_miss"`
	CountMissAlias *deserialize.U32 `json:"countmiss"`
	CountGeki      *deserialize.U32 `json:"count_geki"`
	CountGekiAlias *deserialize.U32 `json:"countgeki"`
	CountKatu      *deserialize.U32 `json:"count_katu"`
	CountKatuAlias *deserialize.U32 `json:"countkatu"`
	Perfect        deserialize.Bool `json:"perfect"`
	Pass           deserialize.Bool `json:"pass"`
	EnabledMods    *GameMods        `json:"enabled_mods"`
}

func (s *GameScore) UnmarshalJSON(data []byte) error {
	var raw rawGameScore
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = GameScore{
		Slot:        uint32(raw.Slot),
		Team:        raw.Team,
		UserID:      uint32(raw.UserID),
		Score:       uint32(raw.Score),
		MaxCombo:    uint32(alias(raw.MaxCombo, raw.MaxComboAlias)),
		Count50:     uint32(raw.Count50),
		Count100:    uint32(raw.Count100),
		Count300:    uint32(raw.Count300),
		CountMiss:   uint32(alias(raw.CountMiss, raw.CountMissAlias)),
		CountGeki:   uint32(alias(raw.CountGeki, raw.CountGekiAlias)),
		CountKatu:   uint32(alias(raw.CountKatu, raw.CountKatuAlias)),
		Perfect:     bool(raw.Perfect),
		Pass:        bool(raw.Pass),
		EnabledMods: raw.EnabledMods,
	}
	return nil
}
