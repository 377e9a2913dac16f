package model

import (
	"encoding/json"
	"math"
	"time"

	"github.com/MingxuanGame/OsuApiV1/deserialize"
)

// Upstream emits the same play with slightly shifted timestamps across
// endpoints, so score identity tolerates a small date difference.
var scoreDateTolerance = 2 * time.Second

// Score retrieved from the /api/get_scores, /api/get_user_best, and
// /api/get_user_recent endpoints.
type Score struct {
	BeatmapID       *uint32    `json:"beatmap_id,omitempty"`
	ScoreID         *uint64    `json:"score_id,omitempty"`
	Score           uint32     `json:"score"`
	UserID          uint32     `json:"user_id"`
	Username        *string    `json:"username,omitempty"`
	Count300        uint32     `json:"count300"`
	Count100        uint32     `json:"count100"`
	Count50         uint32     `json:"count50"`
	CountMiss       uint32     `json:"count_miss"`
	CountGeki       uint32     `json:"count_geki"`
	CountKatu       uint32     `json:"count_katu"`
	MaxCombo        uint32     `json:"max_combo"`
	Perfect         bool       `json:"perfect"`
	EnabledMods     GameMods   `json:"enabled_mods"`
	Date            time.Time  `json:"date"`
	Grade           Grade      `json:"grade"`
	PP              *float32   `json:"pp,omitempty"`
	ReplayAvailable *bool      `json:"replay_available,omitempty"`
}

type rawScore struct {
	BeatmapID       *deserialize.U32  `json:"beatmap_id"`
	ScoreID         *deserialize.U64  `json:"score_id"`
	Score           deserialize.U32   `json:"score"`
	UserID          deserialize.U32   `json:"user_id"`
	Username        *string           `json:"username"`
	Count300        deserialize.U32   `json:"count300"`
	Count100        deserialize.U32   `json:"count100"`
	Count50         deserialize.U32   `json:"count50"`
	CountMiss       *deserialize.U32  `json:"count_miss"`
	CountMissAlias  *deserialize.U32  `json:"countmiss"`
	CountGeki       *deserialize.U32  `json:"count_geki"`
	CountGekiAlias  *deserialize.U32  `json:"countgeki"`
	CountKatu       *deserialize.U32  `json:"count_katu"`
	CountKatuAlias  *deserialize.U32  `json:"countkatu"`
	MaxCombo        *deserialize.U32  `json:"max_combo"`
	MaxComboAlias   *deserialize.U32  `json:"maxcombo"`
	Perfect         deserialize.Bool  `json:"perfect"`
	EnabledMods     GameMods          `json:"enabled_mods"`
	Date            deserialize.Date  `json:"date"`
	Grade           *Grade            `json:"grade"`
	Rank            *Grade            `json:"rank"`
	PP              *deserialize.F32  `json:"pp"`
	ReplayAvailable *deserialize.Bool `json:"replay_available"`
}

func (s *Score) UnmarshalJSON(data []byte) error {
	var raw rawScore
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Score{
		BeatmapID:       u32Ptr(raw.BeatmapID),
		ScoreID:         u64Ptr(raw.ScoreID),
		Score:           uint32(raw.Score),
		UserID:          uint32(raw.UserID),
		Username:        raw.Username,
		Count300:        uint32(raw.Count300),
		Count100:        uint32(raw.Count100),
		Count50:         uint32(raw.Count50),
		CountMiss:       uint32(alias(raw.CountMiss, raw.CountMissAlias)),
		CountGeki:       uint32(alias(raw.CountGeki, raw.CountGekiAlias)),
		CountKatu:       uint32(alias(raw.CountKatu, raw.CountKatuAlias)),
		MaxCombo:        uint32(alias(raw.MaxCombo, raw.MaxComboAlias)),
		Perfect:         bool(raw.Perfect),
		EnabledMods:     raw.EnabledMods,
		Date:            raw.Date.Time(),
		Grade:           alias(raw.Grade, raw.Rank),
		PP:              f32Ptr(raw.PP),
		ReplayAvailable: boolPtr(raw.ReplayAvailable),
	}
	return nil
}

// Equal treats two scores as the same play when user and score value match
// and the dates differ by at most two seconds.
func (s *Score) Equal(other *Score) bool {
	if other == nil || s.UserID != other.UserID || s.Score != other.Score {
		return false
	}
	diff := s.Date.Sub(other.Date)
	if diff < 0 {
		diff = -diff
	}
	return diff <= scoreDateTolerance
}

// TotalHits counts all hit objects of the score, i.e. for osu!standard the
// amount of 300s, 100s, 50s, and misses.
func (s *Score) TotalHits(mode GameMode) uint32 {
	amount := s.Count300 + s.Count100 + s.CountMiss
	if mode != GameModeTaiko {
		amount += s.Count50
		if mode != GameModeOsu {
			amount += s.CountKatu
			if mode != GameModeCatch {
				amount += s.CountGeki
			}
		}
	}
	return amount
}

// Accuracy calculates the accuracy of the score, 0 <= acc <= 100, rounded
// to two decimals.
func (s *Score) Accuracy(mode GameMode) float32 {
	amountObjects := float32(s.TotalHits(mode))
	if amountObjects == 0 {
		return 0
	}

	var numerator, denominator float32
	switch mode {
	case GameModeTaiko:
		numerator = 0.5*float32(s.Count100) + float32(s.Count300)
		denominator = amountObjects
	case GameModeCatch:
		numerator = float32(s.Count300 + s.Count100 + s.Count50)
		denominator = amountObjects
	default:
		n := float32(s.Count50*50 + s.Count100*100 + s.Count300*300)
		if mode == GameModeMania {
			n += float32(s.CountKatu*200 + s.CountGeki*300)
		}
		numerator = n
		denominator = amountObjects * 300.0
	}

	return float32(math.Round(float64(10_000.0*numerator/denominator))) / 100.0
}

// RecalculateGrade sets and returns the score's grade. The accuracy is only
// used for non-standard modes and is calculated internally when nil. The
// score is assumed to be a pass, otherwise the grade may be incorrect.
func (s *Score) RecalculateGrade(mode GameMode, accuracy *float32) Grade {
	passedObjects := s.TotalHits(mode)

	switch mode {
	case GameModeMania:
		s.Grade = s.maniaGrade(passedObjects, accuracy)
	case GameModeTaiko:
		s.Grade = s.taikoGrade(passedObjects, accuracy)
	case GameModeCatch:
		s.Grade = s.ctbGrade(accuracy)
	default:
		s.Grade = s.osuGrade(passedObjects)
	}

	return s.Grade
}

func (s *Score) osuGrade(passedObjects uint32) Grade {
	if s.Count300 == passedObjects {
		return s.silver(GradeXH, GradeX)
	}

	ratio300 := float32(s.Count300) / float32(passedObjects)
	ratio50 := float32(s.Count50) / float32(passedObjects)

	switch {
	case ratio300 > 0.9 && ratio50 < 0.01 && s.CountMiss == 0:
		return s.silver(GradeSH, GradeS)
	case ratio300 > 0.9 || (ratio300 > 0.8 && s.CountMiss == 0):
		return GradeA
	case ratio300 > 0.8 || (ratio300 > 0.7 && s.CountMiss == 0):
		return GradeB
	case ratio300 > 0.6:
		return GradeC
	default:
		return GradeD
	}
}

func (s *Score) maniaGrade(passedObjects uint32, accuracy *float32) Grade {
	if s.CountGeki == passedObjects {
		return s.silver(GradeXH, GradeX)
	}

	acc := s.accuracyOr(GameModeMania, accuracy)
	switch {
	case acc > 95.0:
		return s.silver(GradeSH, GradeS)
	case acc > 90.0:
		return GradeA
	case acc > 80.0:
		return GradeB
	case acc > 70.0:
		return GradeC
	default:
		return GradeD
	}
}

func (s *Score) taikoGrade(passedObjects uint32, accuracy *float32) Grade {
	if s.Count300 == passedObjects {
		return s.silver(GradeXH, GradeX)
	}

	acc := s.accuracyOr(GameModeTaiko, accuracy)
	switch {
	case acc > 95.0:
		return s.silver(GradeSH, GradeS)
	case acc > 90.0:
		return GradeA
	case acc > 80.0:
		return GradeB
	default:
		return GradeC
	}
}

func (s *Score) ctbGrade(accuracy *float32) Grade {
	acc := s.accuracyOr(GameModeCatch, accuracy)
	switch {
	case math.Abs(float64(100.0-acc)) <= 1e-7:
		return s.silver(GradeXH, GradeX)
	case acc > 98.0:
		return s.silver(GradeSH, GradeS)
	case acc > 94.0:
		return GradeA
	case acc > 90.0:
		return GradeB
	case acc > 85.0:
		return GradeC
	default:
		return GradeD
	}
}

func (s *Score) accuracyOr(mode GameMode, accuracy *float32) float32 {
	if accuracy != nil {
		return *accuracy
	}
	return s.Accuracy(mode)
}

func (s *Score) silver(hidden, regular Grade) Grade {
	if s.EnabledMods.Contains(Hidden) {
		return hidden
	}
	return regular
}
