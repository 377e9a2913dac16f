package osu

import (
	"context"
	"time"

	"github.com/MingxuanGame/OsuApiV1/model"
)

// GetBeatmaps requests beatmaps from the get_beatmaps endpoint. Without any
// filter the api returns the 500 most recently ranked maps.
type GetBeatmaps struct {
	osu           *Osu
	creator       *UserIdentification
	hash          *string
	limit         *uint32
	mapID         *uint32
	mapsetID      *uint32
	mode          *model.GameMode
	mods          *model.GameMods
	since         *time.Time
	withConverted *bool
}

// Beatmaps prepares a request for multiple beatmaps.
func (o *Osu) Beatmaps() *GetBeatmaps {
	return &GetBeatmaps{osu: o}
}

// Creator filters by the mapper.
func (g *GetBeatmaps) Creator(user UserIdentification) *GetBeatmaps {
	g.creator = &user
	return g
}

// Hash filters by the beatmap file hash.
func (g *GetBeatmaps) Hash(hash string) *GetBeatmaps {
	g.hash = &hash
	return g
}

// Limit caps the number of results. Values are clamped to at most 500,
// the api default and maximum.
func (g *GetBeatmaps) Limit(limit uint32) *GetBeatmaps {
	limit = min(limit, 500)
	g.limit = &limit
	return g
}

// MapID filters by beatmap id.
func (g *GetBeatmaps) MapID(id uint32) *GetBeatmaps {
	g.mapID = &id
	return g
}

// MapsetID filters by beatmapset id.
func (g *GetBeatmaps) MapsetID(id uint32) *GetBeatmaps {
	g.mapsetID = &id
	return g
}

// Mode filters by game mode.
func (g *GetBeatmaps) Mode(mode model.GameMode) *GetBeatmaps {
	g.mode = &mode
	return g
}

// Mods adjusts the returned difficulty values for the given mods.
func (g *GetBeatmaps) Mods(mods model.GameMods) *GetBeatmaps {
	g.mods = &mods
	return g
}

// Since only returns maps ranked or loved after the given timestamp.
func (g *GetBeatmaps) Since(since time.Time) *GetBeatmaps {
	g.since = &since
	return g
}

// WithConverted includes maps converted from other modes. Converted maps
// show their converted difficulty values.
func (g *GetBeatmaps) WithConverted(include bool) *GetBeatmaps {
	g.withConverted = &include
	return g
}

// Exec sends the request.
func (g *GetBeatmaps) Exec(ctx context.Context) ([]model.Beatmap, error) {
	g.osu.metrics.beatmaps.Inc()
	r := beatmapsRoute(g.creator, g.hash, g.limit, g.mapID, g.mapsetID,
		g.mode, g.mods, g.since, g.withConverted)
	return execList[model.Beatmap](ctx, g.osu, r)
}

// GetBeatmap requests a single beatmap. It renders the same query as
// GetBeatmaps with the limit pinned to 1.
type GetBeatmap struct {
	inner GetBeatmaps
}

// Beatmap prepares a request for a single beatmap.
func (o *Osu) Beatmap() *GetBeatmap {
	return &GetBeatmap{inner: GetBeatmaps{osu: o}}
}

// Creator filters by the mapper.
func (g *GetBeatmap) Creator(user UserIdentification) *GetBeatmap {
	g.inner.Creator(user)
	return g
}

// Hash filters by the beatmap file hash.
func (g *GetBeatmap) Hash(hash string) *GetBeatmap {
	g.inner.Hash(hash)
	return g
}

// MapID filters by beatmap id.
func (g *GetBeatmap) MapID(id uint32) *GetBeatmap {
	g.inner.MapID(id)
	return g
}

// MapsetID filters by beatmapset id.
func (g *GetBeatmap) MapsetID(id uint32) *GetBeatmap {
	g.inner.MapsetID(id)
	return g
}

// Mode filters by game mode.
func (g *GetBeatmap) Mode(mode model.GameMode) *GetBeatmap {
	g.inner.Mode(mode)
	return g
}

// Mods adjusts the returned difficulty values for the given mods.
func (g *GetBeatmap) Mods(mods model.GameMods) *GetBeatmap {
	g.inner.Mods(mods)
	return g
}

// Since only returns maps ranked or loved after the given timestamp.
func (g *GetBeatmap) Since(since time.Time) *GetBeatmap {
	g.inner.Since(since)
	return g
}

// WithConverted includes maps converted from other modes.
func (g *GetBeatmap) WithConverted(include bool) *GetBeatmap {
	g.inner.WithConverted(include)
	return g
}

// Exec sends the request. Returns nil without an error when no beatmap
// matched the filters.
func (g *GetBeatmap) Exec(ctx context.Context) (*model.Beatmap, error) {
	g.inner.osu.metrics.beatmaps.Inc()
	one := uint32(1)
	r := beatmapsRoute(g.inner.creator, g.inner.hash, &one, g.inner.mapID,
		g.inner.mapsetID, g.inner.mode, g.inner.mods, g.inner.since,
		g.inner.withConverted)
	return execOne[model.Beatmap](ctx, g.inner.osu, r)
}
