// Package osu implements a typed client for the osu! v1 api. Construct an
// Osu handle from an api key, build a request through one of its methods,
// and execute it:
//
//	client, err := osu.New(apiKey)
//	if err != nil {
//		return err
//	}
//	user, err := client.User(osu.Username("Badewanne3")).Exec(ctx)
//
// The client enforces a global rate limit of 15 requests per second by
// default and injects the api key into every request.
package osu

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/MingxuanGame/OsuApiV1/model"
	"github.com/MingxuanGame/OsuApiV1/ratelimit"
)

const (
	defaultBaseURL = "https://osu.ppy.sh/api/"
	defaultTimeout = 10 * time.Second

	projectHome = "https://github.com/MingxuanGame/OsuApiV1"
	version     = "0.1.0"
	userAgent   = "(" + projectHome + ", " + version + ") rosu"
)

// Osu is the main client. It is cheap to share between goroutines.
type Osu struct {
	http     *http.Client
	limiter  *ratelimit.Limiter
	apiKey   string
	baseURL  string
	logger   zerolog.Logger
	metrics  *metrics
	cache    CacheStore
	cached   CachedKinds
	cacheTTL time.Duration
}

// New creates a client with the default transport and rate limit.
func New(apiKey string) (*Osu, error) {
	return NewBuilder(apiKey).Build()
}

// Builder assembles an Osu client.
type Builder struct {
	apiKey   string
	timeout  time.Duration
	http     *http.Client
	baseURL  string
	logger   zerolog.Logger
	rate     uint32
	per      time.Duration
	cache    CacheStore
	cached   CachedKinds
	cacheTTL time.Duration
}

// NewBuilder creates a builder for an Osu client.
func NewBuilder(apiKey string) *Builder {
	return &Builder{
		apiKey:   apiKey,
		timeout:  defaultTimeout,
		baseURL:  defaultBaseURL,
		logger:   zerolog.Nop(),
		rate:     15,
		per:      time.Second,
		cacheTTL: 300 * time.Second,
	}
}

// Timeout sets the timeout for HTTP requests, defaults to 10 seconds.
// Ignored when a custom HTTP client is set.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.timeout = d
	return b
}

// HTTPClient sets a pre-configured transport to use instead of the stock
// HTTPS client.
func (b *Builder) HTTPClient(client *http.Client) *Builder {
	b.http = client
	return b
}

// BaseURL overrides the api root, e.g. for a caching proxy.
func (b *Builder) BaseURL(u string) *Builder {
	b.baseURL = u
	return b
}

// Logger attaches a zerolog logger, defaults to a disabled one.
func (b *Builder) Logger(l zerolog.Logger) *Builder {
	b.logger = l
	return b
}

// RateLimit overrides the default budget of 15 requests per second.
func (b *Builder) RateLimit(rate uint32, per time.Duration) *Builder {
	b.rate = rate
	b.per = per
	return b
}

// Cache attaches a response cache for the given request kinds. A ttl of 0
// keeps entries forever; defaults to 300 seconds.
func (b *Builder) Cache(store CacheStore, kinds CachedKinds, ttl time.Duration) *Builder {
	b.cache = store
	b.cached = kinds
	b.cacheTTL = ttl
	return b
}

// Build assembles the client.
func (b *Builder) Build() (*Osu, error) {
	if b.apiKey == "" {
		return nil, &BuildingClientError{Err: errors.New("api key must not be empty")}
	}
	if b.rate == 0 || b.per <= 0 {
		return nil, &BuildingClientError{Err: errors.New("rate limit must be positive")}
	}
	httpClient := b.http
	if httpClient == nil {
		httpClient = &http.Client{Timeout: b.timeout}
	}
	return &Osu{
		http:     httpClient,
		limiter:  ratelimit.New(b.rate, b.per),
		apiKey:   b.apiKey,
		baseURL:  b.baseURL,
		logger:   b.logger,
		metrics:  newMetrics(),
		cache:    b.cache,
		cached:   b.cached,
		cacheTTL: b.cacheTTL,
	}, nil
}

// Metrics returns the request counter vec, one counter per request kind,
// for the caller to register with their prometheus registry.
func (o *Osu) Metrics() *prometheus.CounterVec {
	return o.metrics.counters
}

// requestBytes performs one api call: cache lookup, rate limit, HTTP GET,
// and status classification. Cache hits never charge the rate limiter.
func (o *Osu) requestBytes(ctx context.Context, r route) ([]byte, error) {
	cacheable := o.cache != nil && o.cached.contains(r.kind.cacheKind())
	if cacheable {
		if body, ok := o.cache.Get(r.uri); ok {
			o.metrics.cached.Inc()
			o.logger.Debug().Str("key", r.uri).Msg("found in cache")
			return body, nil
		}
	}

	if err := o.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	o.logger.Debug().Str("url", o.baseURL+r.uri).Msg("requesting")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+r.uri+"&k="+o.apiKey, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &ChunkingResponseError{Err: err}
		}
		if cacheable {
			o.cache.Set(r.uri, body, o.cacheTTL)
		}
		return body, nil
	case http.StatusServiceUnavailable:
		body, _ := io.ReadAll(resp.Body)
		return nil, &ServiceUnavailableError{Body: string(body)}
	case http.StatusTooManyRequests:
		o.logger.Warn().Str("url", o.baseURL+r.uri).Msg("429 response")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ChunkingResponseError{Err: err}
	}

	var apiErr struct {
		Message *string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == nil {
		if err == nil {
			err = errors.New("missing field `error`")
		}
		return nil, &ParsingError{Body: string(body), Err: err}
	}
	return nil, &ResponseError{
		Status:   resp.StatusCode,
		Body:     string(body),
		APIError: &APIError{Message: *apiErr.Message},
	}
}

// execList requests a route and decodes the response array.
func execList[T any](ctx context.Context, o *Osu, r route) ([]T, error) {
	body, err := o.requestBytes(ctx, r)
	if err != nil {
		return nil, err
	}
	var list []T
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &ParsingError{Body: string(body), Err: err}
	}
	return list, nil
}

// execOne requests a route whose response is an array but only the first
// element is wanted. The whole array is still decoded so malformed trailing
// entries fail. Returns nil for an empty array.
func execOne[T any](ctx context.Context, o *Osu, r route) (*T, error) {
	list, err := execList[T](ctx, o, r)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// Convenience lookups mirroring the links between entities.

// BeatmapCreator requests the user that created the beatmap.
func (o *Osu) BeatmapCreator(m *model.Beatmap) *GetUser {
	return o.User(UserID(m.CreatorID))
}

// BeatmapLeaderboard requests the global top scores of the beatmap.
func (o *Osu) BeatmapLeaderboard(m *model.Beatmap) *GetScores {
	return o.Scores(m.BeatmapID).Mode(m.Mode)
}

// ScoreUser requests the user of the score.
func (o *Osu) ScoreUser(s *model.Score) *GetUser {
	return o.User(UserID(s.UserID))
}

// UserTopScores requests the top scores of the user.
func (o *Osu) UserTopScores(u *model.User) *GetUserBest {
	return o.TopScores(UserID(u.UserID))
}

// UserRecentScores requests the most recent scores of the user.
func (o *Osu) UserRecentScores(u *model.User) *GetUserRecent {
	return o.RecentScores(UserID(u.UserID))
}
