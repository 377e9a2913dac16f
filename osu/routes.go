package osu

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MingxuanGame/OsuApiV1/deserialize"
	"github.com/MingxuanGame/OsuApiV1/model"
)

const (
	convTag      = "a"
	eventDaysTag = "event_days"
	hashTag      = "h"
	limitTag     = "limit"
	mapTag       = "b"
	modeTag      = "m"
	modsTag      = "mods"
	mpTag        = "mp"
	setTag       = "s"
	sinceTag     = "since"
	typeTag      = "type"
	userTag      = "u"
)

type requestKind uint8

//goland:noinspection ALL
const (
	kindBeatmaps requestKind = iota
	kindMatch
	kindScores
	kindUser
	kindUserBest
	kindUserRecent
)

// route is the rendered endpoint path plus query, without the api key.
// It doubles as the cache key of the request.
type route struct {
	kind requestKind
	uri  string
}

// UserIdentification identifies a user either by id or by name. Construct
// it with UserID or Username.
type UserIdentification struct {
	name string
	id   uint32
	isID bool
}

// UserID identifies a user by their numeric id.
func UserID(id uint32) UserIdentification {
	return UserIdentification{id: id, isID: true}
}

// Username identifies a user by name.
func Username(name string) UserIdentification {
	return UserIdentification{name: name}
}

// String renders the type and u query pairs. Names are query-escaped, so
// spaces become '+'.
func (u UserIdentification) String() string {
	if u.isID {
		return fmt.Sprintf("%s=id&%s=%d", typeTag, userTag, u.id)
	}
	return fmt.Sprintf("%s=string&%s=%s", typeTag, userTag, url.QueryEscape(u.name))
}

func beatmapsRoute(creator *UserIdentification, hash *string, limit *uint32,
	mapID, mapsetID *uint32, mode *model.GameMode, mods *model.GameMods,
	since *time.Time, withConverted *bool) route {

	var sb strings.Builder
	sb.WriteString("get_beatmaps?")

	if creator != nil {
		fmt.Fprintf(&sb, "&%s", creator)
	}
	if hash != nil {
		fmt.Fprintf(&sb, "&%s=%s", hashTag, *hash)
	}
	if limit != nil {
		fmt.Fprintf(&sb, "&%s=%d", limitTag, *limit)
	}
	if mapID != nil {
		fmt.Fprintf(&sb, "&%s=%d", mapTag, *mapID)
	}
	if mapsetID != nil {
		fmt.Fprintf(&sb, "&%s=%d", setTag, *mapsetID)
	}
	if mode != nil {
		fmt.Fprintf(&sb, "&%s=%d", modeTag, uint8(*mode))
	}
	if mods != nil {
		fmt.Fprintf(&sb, "&%s=%d", modsTag, mods.Bits())
	}
	if since != nil {
		fmt.Fprintf(&sb, "&%s=%s", sinceTag, since.UTC().Format(deserialize.DateFormat))
	}
	if withConverted != nil {
		conv := 0
		if *withConverted {
			conv = 1
		}
		fmt.Fprintf(&sb, "&%s=%d", convTag, conv)
	}

	return route{kind: kindBeatmaps, uri: sb.String()}
}

func matchRoute(matchID uint32) route {
	return route{kind: kindMatch, uri: fmt.Sprintf("get_match?%s=%d", mpTag, matchID)}
}

func scoresRoute(mapID uint32, limit *uint32, mode *model.GameMode,
	mods *model.GameMods, user *UserIdentification) route {

	var sb strings.Builder
	fmt.Fprintf(&sb, "get_scores?%s=%d", mapTag, mapID)

	if limit != nil {
		fmt.Fprintf(&sb, "&%s=%d", limitTag, *limit)
	}
	if mode != nil {
		fmt.Fprintf(&sb, "&%s=%d", modeTag, uint8(*mode))
	}
	if mods != nil {
		fmt.Fprintf(&sb, "&%s=%d", modsTag, mods.Bits())
	}
	if user != nil {
		fmt.Fprintf(&sb, "&%s", user)
	}

	return route{kind: kindScores, uri: sb.String()}
}

func userRoute(user UserIdentification, mode *model.GameMode, eventDays *uint32) route {
	var sb strings.Builder
	fmt.Fprintf(&sb, "get_user?%s", user)

	if mode != nil {
		fmt.Fprintf(&sb, "&%s=%d", modeTag, uint8(*mode))
	}
	if eventDays != nil {
		fmt.Fprintf(&sb, "&%s=%d", eventDaysTag, *eventDays)
	}

	return route{kind: kindUser, uri: sb.String()}
}

func userScoresRoute(kind requestKind, user UserIdentification,
	limit *uint32, mode *model.GameMode) route {

	endpoint := "get_user_best"
	if kind == kindUserRecent {
		endpoint = "get_user_recent"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s?%s", endpoint, user)

	if limit != nil {
		fmt.Fprintf(&sb, "&%s=%d", limitTag, *limit)
	}
	if mode != nil {
		fmt.Fprintf(&sb, "&%s=%d", modeTag, uint8(*mode))
	}

	return route{kind: kind, uri: sb.String()}
}
