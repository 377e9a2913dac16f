package osu

import (
	"context"

	"github.com/MingxuanGame/OsuApiV1/model"
)

// GetUserBest requests the top scores of a user from the get_user_best
// endpoint.
type GetUserBest struct {
	osu   *Osu
	user  UserIdentification
	limit *uint32
	mode  *model.GameMode
}

// TopScores prepares a request for the top scores of a user.
func (o *Osu) TopScores(user UserIdentification) *GetUserBest {
	return &GetUserBest{osu: o, user: user}
}

// Limit caps the number of results. Values are clamped between 1 and 100,
// the api default is 10.
func (g *GetUserBest) Limit(limit uint32) *GetUserBest {
	limit = min(max(limit, 1), 100)
	g.limit = &limit
	return g
}

// Mode restricts the scores to a game mode, defaults to osu!standard.
func (g *GetUserBest) Mode(mode model.GameMode) *GetUserBest {
	g.mode = &mode
	return g
}

// Exec sends the request.
func (g *GetUserBest) Exec(ctx context.Context) ([]model.Score, error) {
	g.osu.metrics.topScores.Inc()
	return execList[model.Score](ctx, g.osu, userScoresRoute(kindUserBest, g.user, g.limit, g.mode))
}

// GetUserRecent requests the scores a user set within the last 24 hours
// from the get_user_recent endpoint.
type GetUserRecent struct {
	osu   *Osu
	user  UserIdentification
	limit *uint32
	mode  *model.GameMode
}

// RecentScores prepares a request for the recent scores of a user.
func (o *Osu) RecentScores(user UserIdentification) *GetUserRecent {
	return &GetUserRecent{osu: o, user: user}
}

// Limit caps the number of results. Values are clamped between 1 and 50,
// the api default is 10.
func (g *GetUserRecent) Limit(limit uint32) *GetUserRecent {
	limit = min(max(limit, 1), 50)
	g.limit = &limit
	return g
}

// Mode restricts the scores to a game mode, defaults to osu!standard.
func (g *GetUserRecent) Mode(mode model.GameMode) *GetUserRecent {
	g.mode = &mode
	return g
}

// Exec sends the request.
func (g *GetUserRecent) Exec(ctx context.Context) ([]model.Score, error) {
	g.osu.metrics.recentScores.Inc()
	return execList[model.Score](ctx, g.osu, userScoresRoute(kindUserRecent, g.user, g.limit, g.mode))
}
