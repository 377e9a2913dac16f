package osu

import (
	"testing"
	"time"

	"github.com/MingxuanGame/OsuApiV1/model"
)

func TestUserIdentificationString(t *testing.T) {
	if got := UserID(124493).String(); got != "type=id&u=124493" {
		t.Fatalf("unexpected id rendering: %s", got)
	}
	if got := Username("Badewanne3").String(); got != "type=string&u=Badewanne3" {
		t.Fatalf("unexpected name rendering: %s", got)
	}
	// spaces are query escaped
	if got := Username("- Legacy -").String(); got != "type=string&u=-+Legacy+-" {
		t.Fatalf("unexpected escaping: %s", got)
	}
}

func TestBeatmapsRouteOrder(t *testing.T) {
	creator := Username("RikiH_")
	hash := "d7e1002824cb188bf318326aa109469d"
	limit := uint32(3)
	mapID := uint32(252002)
	mapsetID := uint32(93398)
	mode := model.GameModeTaiko
	mods := model.Hidden | model.HardRock
	since := time.Date(2019, 2, 13, 9, 58, 32, 0, time.UTC)
	conv := true

	r := beatmapsRoute(&creator, &hash, &limit, &mapID, &mapsetID, &mode, &mods, &since, &conv)
	want := "get_beatmaps?" +
		"&type=string&u=RikiH_" +
		"&h=d7e1002824cb188bf318326aa109469d" +
		"&limit=3" +
		"&b=252002" +
		"&s=93398" +
		"&m=1" +
		"&mods=24" +
		"&since=2019-02-13 09:58:32" +
		"&a=1"
	if r.uri != want {
		t.Fatalf("unexpected uri:\n got %s\nwant %s", r.uri, want)
	}
	if r.kind != kindBeatmaps {
		t.Fatalf("unexpected kind: %d", r.kind)
	}

	empty := beatmapsRoute(nil, nil, nil, nil, nil, nil, nil, nil, nil)
	if empty.uri != "get_beatmaps?" {
		t.Fatalf("unexpected empty uri: %s", empty.uri)
	}
}

func TestMatchRoute(t *testing.T) {
	r := matchRoute(16155689)
	if r.uri != "get_match?mp=16155689" {
		t.Fatalf("unexpected uri: %s", r.uri)
	}
	if r.kind != kindMatch {
		t.Fatalf("unexpected kind: %d", r.kind)
	}
}

func TestScoresRoute(t *testing.T) {
	limit := uint32(5)
	mode := model.GameModeOsu
	user := UserID(124493)
	r := scoresRoute(129891, &limit, &mode, nil, &user)
	want := "get_scores?b=129891&limit=5&m=0&type=id&u=124493"
	if r.uri != want {
		t.Fatalf("unexpected uri:\n got %s\nwant %s", r.uri, want)
	}
}

func TestUserRoute(t *testing.T) {
	mode := model.GameModeMania
	days := uint32(7)
	r := userRoute(Username("peppy"), &mode, &days)
	want := "get_user?type=string&u=peppy&m=3&event_days=7"
	if r.uri != want {
		t.Fatalf("unexpected uri:\n got %s\nwant %s", r.uri, want)
	}
	if r.kind != kindUser {
		t.Fatalf("unexpected kind: %d", r.kind)
	}
}

func TestUserScoresRoute(t *testing.T) {
	limit := uint32(10)
	best := userScoresRoute(kindUserBest, UserID(2), &limit, nil)
	if best.uri != "get_user_best?type=id&u=2&limit=10" {
		t.Fatalf("unexpected best uri: %s", best.uri)
	}
	recent := userScoresRoute(kindUserRecent, UserID(2), nil, nil)
	if recent.uri != "get_user_recent?type=id&u=2" {
		t.Fatalf("unexpected recent uri: %s", recent.uri)
	}
}

func TestBuilderClamps(t *testing.T) {
	client, err := NewBuilder("key").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	maps := client.Beatmaps().Limit(9999)
	if maps.limit == nil || *maps.limit != 500 {
		t.Fatalf("beatmaps limit not clamped: %v", maps.limit)
	}

	scores := client.Scores(1).Limit(0)
	if scores.limit == nil || *scores.limit != 1 {
		t.Fatalf("scores limit not clamped up: %v", scores.limit)
	}
	scores = client.Scores(1).Limit(500)
	if *scores.limit != 100 {
		t.Fatalf("scores limit not clamped down: %v", *scores.limit)
	}

	best := client.TopScores(UserID(2)).Limit(101)
	if *best.limit != 100 {
		t.Fatalf("best limit not clamped: %d", *best.limit)
	}

	recent := client.RecentScores(UserID(2)).Limit(51)
	if *recent.limit != 50 {
		t.Fatalf("recent limit not clamped: %d", *recent.limit)
	}

	user := client.User(UserID(2)).EventDays(45)
	if *user.eventDays != 31 {
		t.Fatalf("event days not clamped: %d", *user.eventDays)
	}
	user = client.User(UserID(2)).EventDays(0)
	if *user.eventDays != 1 {
		t.Fatalf("event days not clamped up: %d", *user.eventDays)
	}
}
