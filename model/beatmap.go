package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MingxuanGame/OsuApiV1/deserialize"
)

// ApprovalStatus of a beatmap.
type ApprovalStatus int8

//goland:noinspection ALL
const (
	StatusGraveyard ApprovalStatus = iota - 2
	StatusWIP
	StatusPending
	StatusRanked
	StatusApproved
	StatusQualified
	StatusLoved
)

// ApprovalStatusFromCode converts the api's numeric status code, failing
// for anything outside -2..=4.
func ApprovalStatusFromCode(code int) (ApprovalStatus, error) {
	if code < -2 || code > 4 {
		return StatusPending, &ApprovalStatusParsingError{Code: code}
	}
	return ApprovalStatus(code), nil
}

func (s ApprovalStatus) String() string {
	switch s {
	case StatusLoved:
		return "loved"
	case StatusQualified:
		return "qualified"
	case StatusApproved:
		return "approved"
	case StatusRanked:
		return "ranked"
	case StatusWIP:
		return "wip"
	case StatusGraveyard:
		return "graveyard"
	default:
		return "pending"
	}
}

func (s *ApprovalStatus) UnmarshalJSON(data []byte) error {
	v, ok := lenientScalar(data)
	if !ok {
		*s = StatusPending
		return nil
	}
	switch v {
	case "4", "loved":
		*s = StatusLoved
	case "3", "qualified":
		*s = StatusQualified
	case "2", "approved":
		*s = StatusApproved
	case "1", "ranked":
		*s = StatusRanked
	case "0", "pending":
		*s = StatusPending
	case "-1", "wip":
		*s = StatusWIP
	case "-2", "graveyard":
		*s = StatusGraveyard
	default:
		*s = StatusPending
	}
	return nil
}

func (s ApprovalStatus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(s))), nil
}

// Genre of a beatmap's music.
type Genre uint8

//goland:noinspection ALL
const (
	GenreAny Genre = iota
	GenreUnspecified
	GenreVideoGame
	GenreAnime
	GenreRock
	GenrePop
	GenreOther
	GenreNovelty
	GenreHipHop Genre = iota + 1
	GenreElectronic
	GenreMetal
	GenreClassical
	GenreFolk
	GenreJazz
)

// GenreFromCode converts the api's numeric genre code. Note that code 8 is
// unassigned upstream.
func GenreFromCode(code int) (Genre, error) {
	if code < 0 || code == 8 || code > 14 {
		return GenreAny, fmt.Errorf("invalid Genre code %d", code)
	}
	return Genre(code), nil
}

func (g *Genre) UnmarshalJSON(data []byte) error {
	v, ok := lenientScalar(data)
	if !ok {
		*g = GenreAny
		return nil
	}
	switch v {
	case "1", "unspecified":
		*g = GenreUnspecified
	case "2", "videogame":
		*g = GenreVideoGame
	case "3", "anime":
		*g = GenreAnime
	case "4", "rock":
		*g = GenreRock
	case "5", "pop":
		*g = GenrePop
	case "6", "other":
		*g = GenreOther
	case "7", "novelty":
		*g = GenreNovelty
	case "9", "hiphop":
		*g = GenreHipHop
	case "10", "electronic":
		*g = GenreElectronic
	case "11", "metal":
		*g = GenreMetal
	case "12", "classical":
		*g = GenreClassical
	case "13", "folk":
		*g = GenreFolk
	case "14", "jazz":
		*g = GenreJazz
	default:
		*g = GenreAny
	}
	return nil
}

func (g Genre) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(g))), nil
}

// Language of a beatmap's music.
type Language uint8

//goland:noinspection ALL
const (
	LangAny Language = iota
	LangOther
	LangEnglish
	LangJapanese
	LangChinese
	LangInstrumental
	LangKorean
	LangFrench
	LangGerman
	LangSwedish
	LangSpanish
	LangItalian
	LangRussian
	LangPolish
	LangUnspecified
)

// LanguageFromCode converts the api's numeric language code.
func LanguageFromCode(code int) (Language, error) {
	if code < 0 || code > 14 {
		return LangAny, fmt.Errorf("invalid Language code %d", code)
	}
	return Language(code), nil
}

func (l *Language) UnmarshalJSON(data []byte) error {
	v, ok := lenientScalar(data)
	if !ok {
		*l = LangAny
		return nil
	}
	switch v {
	case "1", "other":
		*l = LangOther
	case "2", "english":
		*l = LangEnglish
	case "3", "japanese":
		*l = LangJapanese
	case "4", "chinese":
		*l = LangChinese
	case "5", "instrumental":
		*l = LangInstrumental
	case "6", "korean":
		*l = LangKorean
	case "7", "french":
		*l = LangFrench
	case "8", "german":
		*l = LangGerman
	case "9", "swedish":
		*l = LangSwedish
	case "10", "spanish":
		*l = LangSpanish
	case "11", "italian":
		*l = LangItalian
	case "12", "russian":
		*l = LangRussian
	case "13", "polish":
		*l = LangPolish
	case "14", "unspecified":
		*l = LangUnspecified
	default:
		*l = LangAny
	}
	return nil
}

func (l Language) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(l))), nil
}

// Beatmap retrieved from the /api/get_beatmaps endpoint. Two beatmaps are
// considered the same iff their beatmap ids match.
type Beatmap struct {
	ApprovalStatus      ApprovalStatus `json:"approval_status"`
	SubmitDate          time.Time      `json:"submit_date"`
	ApprovedDate        *time.Time     `json:"approved_date,omitempty"`
	LastUpdate          time.Time      `json:"last_update"`
	Artist              string         `json:"artist"`
	Title               string         `json:"title"`
	Version             string         `json:"version"`
	BeatmapID           uint32         `json:"beatmap_id"`
	BeatmapsetID        uint32         `json:"beatmapset_id"`
	BPM                 float32        `json:"bpm"`
	Creator             string         `json:"creator"`
	CreatorID           uint32         `json:"creator_id"`
	Stars               float32        `json:"stars"`
	StarsAim            *float32       `json:"stars_aim,omitempty"`
	StarsSpeed          *float32       `json:"stars_speed,omitempty"`
	DiffCS              float32        `json:"diff_cs"`
	DiffOD              float32        `json:"diff_od"`
	DiffAR              float32        `json:"diff_ar"`
	DiffHP              float32        `json:"diff_hp"`
	SecondsDrain        uint32         `json:"seconds_drain"`
	SecondsTotal        uint32         `json:"seconds_total"`
	Source              string         `json:"source"`
	Genre               Genre          `json:"genre"`
	Language            Language       `json:"language"`
	Mode                GameMode       `json:"mode"`
	Tags                string         `json:"tags"`
	FavouriteCount      uint32         `json:"favourite_count"`
	Rating              float32        `json:"rating"`
	Playcount           uint32         `json:"playcount"`
	Passcount           uint32         `json:"passcount"`
	CountCircle         uint32         `json:"count_circle"`
	CountSlider         uint32         `json:"count_slider"`
	CountSpinner        uint32         `json:"count_spinner"`
	MaxCombo            *uint32        `json:"max_combo,omitempty"`
	DownloadUnavailable bool           `json:"download_unavailable"`
	AudioUnavailable    bool           `json:"audio_unavailable"`
	FileMD5             *string        `json:"file_md5,omitempty"`
}

type rawBeatmap struct {
	ApprovalStatus      *ApprovalStatus     `json:"approval_status"`
	Approved            *ApprovalStatus     `json:"approved"`
	SubmitDate          deserialize.Date    `json:"submit_date"`
	ApprovedDate        deserialize.OptDate `json:"approved_date"`
	LastUpdate          deserialize.Date    `json:"last_update"`
	Artist              string              `json:"artist"`
	Title               string              `json:"title"`
	Version             string              `json:"version"`
	BeatmapID           deserialize.U32     `json:"beatmap_id"`
	BeatmapsetID        deserialize.U32     `json:"beatmapset_id"`
	BPM                 deserialize.F32     `json:"bpm"`
	Creator             string              `json:"creator"`
	CreatorID           deserialize.U32     `json:"creator_id"`
	Stars               *deserialize.F32    `json:"stars"`
	DifficultyRating    *deserialize.F32    `json:"difficultyrating"`
	StarsAim            *deserialize.F32    `json:"stars_aim"`
	DiffAim             *deserialize.F32    `json:"diff_aim"`
	StarsSpeed          *deserialize.F32    `json:"stars_speed"`
	DiffSpeed           *deserialize.F32    `json:"diff_speed"`
	DiffCS              *deserialize.F32    `json:"diff_cs"`
	DiffSize            *deserialize.F32    `json:"diff_size"`
	DiffOD              *deserialize.F32    `json:"diff_od"`
	DiffOverall         *deserialize.F32    `json:"diff_overall"`
	DiffAR              *deserialize.F32    `json:"diff_ar"`
	DiffApproach        *deserialize.F32    `json:"diff_approach"`
	DiffHP              *deserialize.F32    `json:"diff_hp"`
	DiffDrain           *deserialize.F32    `json:"diff_drain"`
	SecondsDrain        *deserialize.U32    `json:"seconds_drain"`
	HitLength           *deserialize.U32    `json:"hit_length"`
	SecondsTotal        *deserialize.U32    `json:"seconds_total"`
	TotalLength         *deserialize.U32    `json:"total_length"`
	Source              string              `json:"source"`
	Genre               *Genre              `json:"genre"`
	GenreID             *Genre              `json:"genre_id"`
	Language            *Language           `json:"language"`
	LanguageID          *Language           `json:"language_id"`
	Mode                GameMode            `json:"mode"`
	Tags                string              `json:"tags"`
	FavouriteCount      deserialize.U32     `json:"favourite_count"`
	Rating              deserialize.F32     `json:"rating"`
	Playcount           deserialize.U32     `json:"playcount"`
	Passcount           deserialize.U32     `json:"passcount"`
	CountCircle         *deserialize.U32    `json:"count_circle"`
	CountNormal         *deserialize.U32    `json:"count_normal"`
	CountSlider         deserialize.U32     `json:"count_slider"`
	CountSpinner        deserialize.U32     `json:"count_spinner"`
	MaxCombo            *deserialize.U32    `json:"max_combo"`
	MaxComboAlias       *deserialize.U32    `json:"maxcombo"`
	DownloadUnavailable deserialize.Bool    `json:"download_unavailable"`
	AudioUnavailable    deserialize.Bool    `json:"audio_unavailable"`
	FileMD5             *string             `json:"file_md5"`
}

func (b *Beatmap) UnmarshalJSON(data []byte) error {
	var raw rawBeatmap
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Beatmap{
		ApprovalStatus:      alias(raw.ApprovalStatus, raw.Approved),
		SubmitDate:          raw.SubmitDate.Time(),
		ApprovedDate:        raw.ApprovedDate.Ptr(),
		LastUpdate:          raw.LastUpdate.Time(),
		Artist:              raw.Artist,
		Title:               raw.Title,
		Version:             raw.Version,
		BeatmapID:           uint32(raw.BeatmapID),
		BeatmapsetID:        uint32(raw.BeatmapsetID),
		BPM:                 float32(raw.BPM),
		Creator:             raw.Creator,
		CreatorID:           uint32(raw.CreatorID),
		Stars:               float32(alias(raw.Stars, raw.DifficultyRating)),
		StarsAim:            f32Ptr(firstOf(raw.StarsAim, raw.DiffAim)),
		StarsSpeed:          f32Ptr(firstOf(raw.StarsSpeed, raw.DiffSpeed)),
		DiffCS:              float32(alias(raw.DiffCS, raw.DiffSize)),
		DiffOD:              float32(alias(raw.DiffOD, raw.DiffOverall)),
		DiffAR:              float32(alias(raw.DiffAR, raw.DiffApproach)),
		DiffHP:              float32(alias(raw.DiffHP, raw.DiffDrain)),
		SecondsDrain:        uint32(alias(raw.SecondsDrain, raw.HitLength)),
		SecondsTotal:        uint32(alias(raw.SecondsTotal, raw.TotalLength)),
		Source:              raw.Source,
		Genre:               alias(raw.Genre, raw.GenreID),
		Language:            alias(raw.Language, raw.LanguageID),
		Mode:                raw.Mode,
		Tags:                raw.Tags,
		FavouriteCount:      uint32(raw.FavouriteCount),
		Rating:              float32(raw.Rating),
		Playcount:           uint32(raw.Playcount),
		Passcount:           uint32(raw.Passcount),
		CountCircle:         uint32(alias(raw.CountCircle, raw.CountNormal)),
		CountSlider:         uint32(raw.CountSlider),
		CountSpinner:        uint32(raw.CountSpinner),
		MaxCombo:            u32Ptr(firstOf(raw.MaxCombo, raw.MaxComboAlias)),
		DownloadUnavailable: bool(raw.DownloadUnavailable),
		AudioUnavailable:    bool(raw.AudioUnavailable),
		FileMD5:             raw.FileMD5,
	}
	return nil
}

// CountObjects counts all circles, sliders, and spinners of the beatmap.
func (b *Beatmap) CountObjects() uint32 {
	return b.CountCircle + b.CountSlider + b.CountSpinner
}

// Equal follows beatmap identity, i.e. the beatmap id alone.
func (b *Beatmap) Equal(other *Beatmap) bool {
	return other != nil && b.BeatmapID == other.BeatmapID
}

func (b *Beatmap) String() string {
	return fmt.Sprintf("%s - %s [%s]", b.Artist, b.Title, b.Version)
}

// alias dereferences the canonical field if present, then its wire alias,
// and falls back to the zero value.
func alias[T any](canonical, aka *T) T {
	if canonical != nil {
		return *canonical
	}
	if aka != nil {
		return *aka
	}
	var zero T
	return zero
}

// firstOf keeps optionality: nil when both names are absent.
func firstOf[T any](canonical, aka *T) *T {
	if canonical != nil {
		return canonical
	}
	return aka
}

func f32Ptr(v *deserialize.F32) *float32 {
	if v == nil {
		return nil
	}
	f := float32(*v)
	return &f
}

func u32Ptr(v *deserialize.U32) *uint32 {
	if v == nil {
		return nil
	}
	u := uint32(*v)
	return &u
}

func u64Ptr(v *deserialize.U64) *uint64 {
	if v == nil {
		return nil
	}
	u := uint64(*v)
	return &u
}

func boolPtr(v *deserialize.Bool) *bool {
	if v == nil {
		return nil
	}
	b := bool(*v)
	return &b
}
