package model

import (
	"encoding/json"
	"testing"
	"time"
)

const scoreJSON = `{
	"beatmap_id": "129891",
	"score_id": "2177560145",
	"score": "132408001",
	"username": "Cookiezi",
	"maxcombo": "2385",
	"count50": "0",
	"count100": "8",
	"count300": "1970",
	"countmiss": "0",
	"countkatu": "7",
	"countgeki": "385",
	"perfect": "1",
	"enabled_mods": "24",
	"user_id": "124493",
	"date": "2016-01-10 13:10:20",
	"rank": "XH",
	"pp": "781.827",
	"replay_available": "1"
}`

func TestScoreUnmarshal(t *testing.T) {
	var s Score
	if err := json.Unmarshal([]byte(scoreJSON), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.BeatmapID == nil || *s.BeatmapID != 129891 {
		t.Fatalf("unexpected beatmap id: %v", s.BeatmapID)
	}
	if s.ScoreID == nil || *s.ScoreID != 2177560145 {
		t.Fatalf("unexpected score id: %v", s.ScoreID)
	}
	if s.MaxCombo != 2385 {
		t.Fatalf("maxcombo alias not merged: %d", s.MaxCombo)
	}
	if s.CountMiss != 0 || s.CountKatu != 7 || s.CountGeki != 385 {
		t.Fatalf("count aliases not merged: %d %d %d", s.CountMiss, s.CountKatu, s.CountGeki)
	}
	if !s.Perfect {
		t.Fatalf("expected perfect")
	}
	if s.EnabledMods != Hidden|HardRock {
		t.Fatalf("unexpected mods: %s", s.EnabledMods)
	}
	if s.Grade != GradeXH {
		t.Fatalf("rank alias not merged: %s", s.Grade)
	}
	if s.PP == nil || *s.PP < 781.8 || *s.PP > 781.9 {
		t.Fatalf("unexpected pp: %v", s.PP)
	}
	want := time.Date(2016, 1, 10, 13, 10, 20, 0, time.UTC)
	if !s.Date.Equal(want) {
		t.Fatalf("unexpected date: %s", s.Date)
	}
}

func TestScoreEqual(t *testing.T) {
	base := Score{UserID: 1, Score: 1000, Date: time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)}

	same := base
	same.Date = base.Date.Add(2 * time.Second)
	if !base.Equal(&same) {
		t.Fatalf("dates two seconds apart identify the same play")
	}

	late := base
	late.Date = base.Date.Add(3 * time.Second)
	if base.Equal(&late) {
		t.Fatalf("dates three seconds apart are different plays")
	}

	otherUser := base
	otherUser.UserID = 2
	if base.Equal(&otherUser) {
		t.Fatalf("different users are different plays")
	}

	if base.Equal(nil) {
		t.Fatalf("nil never equals")
	}
}

func TestScoreTotalHits(t *testing.T) {
	s := Score{Count300: 100, Count100: 50, Count50: 20, CountMiss: 5, CountKatu: 3, CountGeki: 2}
	cases := []struct {
		mode GameMode
		want uint32
	}{
		{GameModeOsu, 175},
		{GameModeTaiko, 155},
		{GameModeCatch, 178},
		{GameModeMania, 180},
	}
	for _, c := range cases {
		if got := s.TotalHits(c.mode); got != c.want {
			t.Errorf("TotalHits(%s): expected %d, got %d", c.mode, c.want, got)
		}
	}
}

func TestScoreAccuracy(t *testing.T) {
	osu := Score{Count300: 99, Count100: 1}
	if got := osu.Accuracy(GameModeOsu); got != 99.33 {
		t.Fatalf("osu accuracy: expected 99.33, got %f", got)
	}

	taiko := Score{Count300: 190, Count100: 10}
	if got := taiko.Accuracy(GameModeTaiko); got != 97.5 {
		t.Fatalf("taiko accuracy: expected 97.5, got %f", got)
	}

	ctb := Score{Count300: 90, Count100: 5, Count50: 3, CountKatu: 1, CountMiss: 1}
	if got := ctb.Accuracy(GameModeCatch); got != 98.0 {
		t.Fatalf("ctb accuracy: expected 98.0, got %f", got)
	}

	mania := Score{CountGeki: 90, Count300: 5, CountKatu: 3, Count100: 1, Count50: 1}
	if got := mania.Accuracy(GameModeMania); got != 97.5 {
		t.Fatalf("mania accuracy: expected 97.5, got %f", got)
	}

	var empty Score
	if got := empty.Accuracy(GameModeOsu); got != 0 {
		t.Fatalf("empty score accuracy: expected 0, got %f", got)
	}
}

func TestRecalculateGradeOsu(t *testing.T) {
	cases := []struct {
		name  string
		score Score
		want  Grade
	}{
		{"all 300s", Score{Count300: 100}, GradeX},
		{"all 300s hidden", Score{Count300: 100, EnabledMods: Hidden}, GradeXH},
		{"ratio just above 0.9", Score{Count300: 91, Count100: 9}, GradeS},
		{"silver s", Score{Count300: 91, Count100: 9, EnabledMods: Hidden | HardRock}, GradeSH},
		{"ratio at 0.9", Score{Count300: 90, Count100: 10}, GradeA},
		{"high ratio with miss", Score{Count300: 92, Count100: 7, CountMiss: 1}, GradeA},
		{"too many 50s for s", Score{Count300: 95, Count100: 3, Count50: 2}, GradeA},
		{"0.85 no miss", Score{Count300: 85, Count100: 15}, GradeA},
		{"0.85 with miss", Score{Count300: 85, Count100: 14, CountMiss: 1}, GradeB},
		{"0.75 no miss", Score{Count300: 75, Count100: 25}, GradeB},
		{"0.65", Score{Count300: 65, Count100: 34, CountMiss: 1}, GradeC},
		{"0.5", Score{Count300: 50, Count100: 49, CountMiss: 1}, GradeD},
	}
	for _, c := range cases {
		if got := c.score.RecalculateGrade(GameModeOsu, nil); got != c.want {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, got)
		}
		if c.score.Grade != c.want {
			t.Errorf("%s: grade not stored on the score", c.name)
		}
	}
}

func TestRecalculateGradeMania(t *testing.T) {
	perfect := Score{CountGeki: 100}
	if got := perfect.RecalculateGrade(GameModeMania, nil); got != GradeX {
		t.Fatalf("expected X, got %s", got)
	}

	acc := float32(96.0)
	s := Score{CountGeki: 96, Count100: 4}
	if got := s.RecalculateGrade(GameModeMania, &acc); got != GradeS {
		t.Fatalf("expected S at 96%%, got %s", got)
	}

	acc = 85.0
	if got := s.RecalculateGrade(GameModeMania, &acc); got != GradeB {
		t.Fatalf("expected B at 85%%, got %s", got)
	}
}

func TestRecalculateGradeTaiko(t *testing.T) {
	perfect := Score{Count300: 50, EnabledMods: Hidden}
	if got := perfect.RecalculateGrade(GameModeTaiko, nil); got != GradeXH {
		t.Fatalf("expected XH, got %s", got)
	}

	// 0.5*20 + 180 = 190 of 200 -> 95.0, not above 95
	s := Score{Count300: 180, Count100: 20}
	if got := s.RecalculateGrade(GameModeTaiko, nil); got != GradeA {
		t.Fatalf("expected A at 95%%, got %s", got)
	}
}

func TestRecalculateGradeCatch(t *testing.T) {
	acc := float32(100.0)
	s := Score{Count300: 100}
	if got := s.RecalculateGrade(GameModeCatch, &acc); got != GradeX {
		t.Fatalf("expected X, got %s", got)
	}

	acc = 99.0
	if got := s.RecalculateGrade(GameModeCatch, &acc); got != GradeS {
		t.Fatalf("expected S, got %s", got)
	}

	acc = 92.0
	if got := s.RecalculateGrade(GameModeCatch, &acc); got != GradeB {
		t.Fatalf("expected B, got %s", got)
	}

	acc = 80.0
	if got := s.RecalculateGrade(GameModeCatch, &acc); got != GradeD {
		t.Fatalf("expected D, got %s", got)
	}
}
