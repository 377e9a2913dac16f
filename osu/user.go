package osu

import (
	"context"

	"github.com/MingxuanGame/OsuApiV1/model"
)

// GetUser requests a user from the get_user endpoint. Values of optional
// parameters are set through the builder methods.
type GetUser struct {
	osu       *Osu
	user      UserIdentification
	mode      *model.GameMode
	eventDays *uint32
}

// User prepares a request for the given user.
func (o *Osu) User(user UserIdentification) *GetUser {
	return &GetUser{osu: o, user: user}
}

// Mode restricts the statistics to a game mode, defaults to osu!standard.
func (g *GetUser) Mode(mode model.GameMode) *GetUser {
	g.mode = &mode
	return g
}

// EventDays sets the maximum age of the returned events in days.
// Values are clamped between 1 and 31, the api default is 1.
func (g *GetUser) EventDays(days uint32) *GetUser {
	days = min(max(days, 1), 31)
	g.eventDays = &days
	return g
}

// Exec sends the request. Returns nil without an error when the user does
// not exist.
func (g *GetUser) Exec(ctx context.Context) (*model.User, error) {
	g.osu.metrics.users.Inc()
	return execOne[model.User](ctx, g.osu, userRoute(g.user, g.mode, g.eventDays))
}
