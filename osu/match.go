package osu

import (
	"context"
	"encoding/json"

	"github.com/MingxuanGame/OsuApiV1/model"
)

// GetMatch requests a multiplayer match from the get_match endpoint.
type GetMatch struct {
	osu     *Osu
	matchID uint32
}

// Match prepares a request for the multiplayer match with the given id.
func (o *Osu) Match(matchID uint32) *GetMatch {
	return &GetMatch{osu: o, matchID: matchID}
}

// Exec sends the request. An invalid or private match id makes the api
// answer with a shape that does not decode, which is reported as
// ErrInvalidMultiplayerMatch.
func (g *GetMatch) Exec(ctx context.Context) (*model.Match, error) {
	g.osu.metrics.matches.Inc()
	body, err := g.osu.requestBytes(ctx, matchRoute(g.matchID))
	if err != nil {
		return nil, err
	}
	var match model.Match
	if err := json.Unmarshal(body, &match); err != nil {
		return nil, ErrInvalidMultiplayerMatch
	}
	return &match, nil
}
