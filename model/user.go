package model

import (
	"encoding/json"
	"time"

	"github.com/MingxuanGame/OsuApiV1/deserialize"
)

// User retrieved from the /api/get_user endpoint. Two users are considered
// the same iff their user ids match.
type User struct {
	UserID             uint32    `json:"user_id"`
	Username           string    `json:"username"`
	JoinDate           time.Time `json:"join_date"`
	Count300           uint32    `json:"count300"`
	Count100           uint32    `json:"count100"`
	Count50            uint32    `json:"count50"`
	Playcount          uint32    `json:"playcount"`
	RankedScore        uint64    `json:"ranked_score"`
	TotalScore         uint64    `json:"total_score"`
	PPRank             uint32    `json:"pp_rank"`
	Level              float32   `json:"level"`
	PPRaw              float32   `json:"pp_raw"`
	Accuracy           float32   `json:"accuracy"`
	CountSSH           uint32    `json:"count_ssh"`
	CountSS            uint32    `json:"count_ss"`
	CountSH            uint32    `json:"count_sh"`
	CountS             uint32    `json:"count_s"`
	CountA             uint32    `json:"count_a"`
	Country            string    `json:"country"`
	TotalSecondsPlayed uint32    `json:"total_seconds_played"`
	PPCountryRank      uint32    `json:"pp_country_rank"`
	Events             []Event   `json:"events,omitempty"`
}

type rawUser struct {
	UserID             deserialize.U32  `json:"user_id"`
	Username           string           `json:"username"`
	JoinDate           deserialize.Date `json:"join_date"`
	Count300           deserialize.U32  `json:"count300"`
	Count100           deserialize.U32  `json:"count100"`
	Count50            deserialize.U32  `json:"count50"`
	Playcount          deserialize.U32  `json:"playcount"`
	RankedScore        deserialize.U64  `json:"ranked_score"`
	TotalScore         deserialize.U64  `json:"total_score"`
	PPRank             deserialize.U32  `json:"pp_rank"`
	Level              deserialize.F32  `json:"level"`
	PPRaw              deserialize.F32  `json:"pp_raw"`
	Accuracy           deserialize.F32  `json:"accuracy"`
	CountSSH           *deserialize.U32 `json:"count_ssh"`
	CountRankSSH       *deserialize.U32 `json:"count_rank_ssh"`
	CountSS            *deserialize.U32 `json:"count_ss"`
	CountRankSS        *deserialize.U32 `json:"count_rank_ss"`
	CountSH            *deserialize.U32 `json:"count_sh"`
	CountRankSH        *deserialize.U32 `json:"count_rank_sh"`
	CountS             *deserialize.U32 `json:"count_s"`
	CountRankS         *deserialize.U32 `json:"count_rank_s"`
	CountA             *deserialize.U32 `json:"count_a"`
	CountRankA         *deserialize.U32 `json:"count_rank_a"`
	Country            string           `json:"country"`
	TotalSecondsPlayed deserialize.U32  `json:"total_seconds_played"`
	PPCountryRank      deserialize.U32  `json:"pp_country_rank"`
	Events             []Event          `json:"events"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw rawUser
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = User{
		UserID:             uint32(raw.UserID),
		Username:           raw.Username,
		JoinDate:           raw.JoinDate.Time(),
		Count300:           uint32(raw.Count300),
		Count100:           uint32(raw.Count100),
		Count50:            uint32(raw.Count50),
		Playcount:          uint32(raw.Playcount),
		RankedScore:        uint64(raw.RankedScore),
		TotalScore:         uint64(raw.TotalScore),
		PPRank:             uint32(raw.PPRank),
		Level:              float32(raw.Level),
		PPRaw:              float32(raw.PPRaw),
		Accuracy:           float32(raw.Accuracy),
		CountSSH:           uint32(alias(raw.CountSSH, raw.CountRankSSH)),
		CountSS:            uint32(alias(raw.CountSS, raw.CountRankSS)),
		CountSH:            uint32(alias(raw.CountSH, raw.CountRankSH)),
		CountS:             uint32(alias(raw.CountS, raw.CountRankS)),
		CountA:             uint32(alias(raw.CountA, raw.CountRankA)),
		Country:            raw.Country,
		TotalSecondsPlayed: uint32(raw.TotalSecondsPlayed),
		PPCountryRank:      uint32(raw.PPCountryRank),
		Events:             raw.Events,
	}
	return nil
}

// TotalHits counts all 300s, 100s, and 50s of the user.
func (u *User) TotalHits() uint64 {
	return uint64(u.Count300) + uint64(u.Count100) + uint64(u.Count50)
}

// Equal follows user identity, i.e. the user id alone.
func (u *User) Equal(other *User) bool {
	return other != nil && u.UserID == other.UserID
}

// Event within the User struct, describing a recent highlight such as a new
// top score on a beatmap.
type Event struct {
	HTML         string     `json:"html"`
	BeatmapID    *uint32    `json:"beatmap_id,omitempty"`
	BeatmapsetID *uint32    `json:"beatmapset_id,omitempty"`
	Date         time.Time  `json:"date"`
	EpicFactor   uint32     `json:"epic_factor"`
}

type rawEvent struct {
	HTML            *string          `json:"html"`
	DisplayHTML     *string          `json:"display_html"`
	BeatmapID       *deserialize.U32 `json:"beatmap_id"`
	BeatmapsetID    *deserialize.U32 `json:"beatmapset_id"`
	Date            deserialize.Date `json:"date"`
	EpicFactor      *deserialize.U32 `json:"epic_factor"`
	EpicFactorAlias *deserialize.U32 `json:"epicfactor"`
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var raw rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Event{
		HTML:         alias(raw.HTML, raw.DisplayHTML),
		BeatmapID:    u32Ptr(raw.BeatmapID),
		BeatmapsetID: u32Ptr(raw.BeatmapsetID),
		Date:         raw.Date.Time(),
		EpicFactor:   uint32(alias(raw.EpicFactor, raw.EpicFactorAlias)),
	}
	return nil
}
