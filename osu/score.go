package osu

import (
	"context"

	"github.com/MingxuanGame/OsuApiV1/model"
)

// GetScores requests the leaderboard of a beatmap from the get_scores
// endpoint.
type GetScores struct {
	osu   *Osu
	mapID uint32
	limit *uint32
	mode  *model.GameMode
	mods  *model.GameMods
	user  *UserIdentification
}

// Scores prepares a request for the top scores of a beatmap.
func (o *Osu) Scores(mapID uint32) *GetScores {
	return &GetScores{osu: o, mapID: mapID}
}

// Limit caps the number of results. Values are clamped between 1 and 100,
// the api default is 50.
func (g *GetScores) Limit(limit uint32) *GetScores {
	limit = min(max(limit, 1), 100)
	g.limit = &limit
	return g
}

// Mode restricts the leaderboard to a game mode.
func (g *GetScores) Mode(mode model.GameMode) *GetScores {
	g.mode = &mode
	return g
}

// Mods only returns scores set with exactly the given mods.
func (g *GetScores) Mods(mods model.GameMods) *GetScores {
	g.mods = &mods
	return g
}

// User only returns scores of the given user.
func (g *GetScores) User(user UserIdentification) *GetScores {
	g.user = &user
	return g
}

// Exec sends the request.
func (g *GetScores) Exec(ctx context.Context) ([]model.Score, error) {
	g.osu.metrics.scores.Inc()
	r := scoresRoute(g.mapID, g.limit, g.mode, g.mods, g.user)
	return execList[model.Score](ctx, g.osu, r)
}

// GetScore requests a single score on a beatmap. It renders the same query
// as GetScores with the limit pinned to 1, so without further filters the
// top score of the map is returned.
type GetScore struct {
	inner GetScores
}

// Score prepares a request for a single score on a beatmap.
func (o *Osu) Score(mapID uint32) *GetScore {
	return &GetScore{inner: GetScores{osu: o, mapID: mapID}}
}

// Mode restricts the leaderboard to a game mode.
func (g *GetScore) Mode(mode model.GameMode) *GetScore {
	g.inner.Mode(mode)
	return g
}

// Mods only considers scores set with exactly the given mods.
func (g *GetScore) Mods(mods model.GameMods) *GetScore {
	g.inner.Mods(mods)
	return g
}

// User only considers scores of the given user.
func (g *GetScore) User(user UserIdentification) *GetScore {
	g.inner.User(user)
	return g
}

// Exec sends the request. Returns nil without an error when no score
// matched the filters.
func (g *GetScore) Exec(ctx context.Context) (*model.Score, error) {
	g.inner.osu.metrics.scores.Inc()
	one := uint32(1)
	r := scoresRoute(g.inner.mapID, &one, g.inner.mode, g.inner.mods, g.inner.user)
	return execOne[model.Score](ctx, g.inner.osu, r)
}
