package osu

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const userBody = `[{
	"user_id": "2",
	"username": "peppy",
	"join_date": "2007-08-28 01:18:34",
	"count300": "1",
	"count100": "2",
	"count50": "3",
	"playcount": "4",
	"ranked_score": "5",
	"total_score": "6",
	"pp_rank": "7",
	"level": "1.5",
	"pp_raw": "2.5",
	"accuracy": "98.06",
	"count_rank_ss": "1",
	"count_rank_s": "2",
	"count_rank_a": "3",
	"country": "AU",
	"total_seconds_played": "8",
	"pp_country_rank": "9",
	"events": []
}]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Osu {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewBuilder("test-key").
		BaseURL(server.URL + "/").
		RateLimit(100, time.Second).
		Build()
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	return client
}

func TestClientUserRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_user" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("k") != "test-key" {
			t.Fatalf("api key not appended: %s", r.URL.RawQuery)
		}
		if query.Get("type") != "string" || query.Get("u") != "peppy" {
			t.Fatalf("unexpected user params: %s", r.URL.RawQuery)
		}
		if ua := r.Header.Get("User-Agent"); ua != userAgent {
			t.Fatalf("unexpected user agent: %s", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, userBody)
	})

	user, err := client.User(Username("peppy")).Exec(context.Background())
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	if user == nil || user.UserID != 2 || user.Username != "peppy" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestClientUserNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	user, err := client.User(UserID(1)).Exec(context.Background())
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil for empty response, got %+v", user)
	}
}

func TestClientServiceUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "osu is down")
	})

	_, err := client.User(UserID(1)).Exec(context.Background())
	var unavailable *ServiceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ServiceUnavailableError, got %v", err)
	}
	if unavailable.Body != "osu is down" {
		t.Fatalf("unexpected body: %s", unavailable.Body)
	}
}

func TestClientAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error": "Please provide a valid API key."}`)
	})

	_, err := client.User(UserID(1)).Exec(context.Background())
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("expected ResponseError, got %v", err)
	}
	if respErr.Status != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", respErr.Status)
	}
	if respErr.APIError.Message != "Please provide a valid API key." {
		t.Fatalf("unexpected message: %s", respErr.APIError.Message)
	}
}

func TestClientGarbledErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `<html>Internal Server Error</html>`)
	})

	_, err := client.User(UserID(1)).Exec(context.Background())
	var parseErr *ParsingError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParsingError, got %v", err)
	}
}

func TestClientGarbledSuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"not": "an array"}`)
	})

	_, err := client.User(UserID(1)).Exec(context.Background())
	var parseErr *ParsingError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParsingError, got %v", err)
	}
}

func TestClientInvalidMatch(t *testing.T) {
	// the api answers invalid match ids with a shape that does not decode
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"match": 0, "games": []}`)
	})

	_, err := client.Match(123).Exec(context.Background())
	if !errors.Is(err, ErrInvalidMultiplayerMatch) {
		t.Fatalf("expected ErrInvalidMultiplayerMatch, got %v", err)
	}
}

func TestClientMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_match" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("mp") != "16155689" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `{
			"match": {"match_id": "16155689", "name": "test", "start_time": "2015-08-22 13:10:16", "end_time": null},
			"games": []
		}`)
	})

	match, err := client.Match(16155689).Exec(context.Background())
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	if match.MatchID != 16155689 || match.Name != "test" {
		t.Fatalf("unexpected match: %+v", match)
	}
}

func TestClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewBuilder("test-key").BaseURL(url + "/").Build()
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	_, err = client.User(UserID(1)).Exec(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
}

func TestClientCacheHit(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = io.WriteString(w, userBody)
	}))
	defer server.Close()

	client, err := NewBuilder("test-key").
		BaseURL(server.URL + "/").
		Cache(NewMemoryCache(), CacheUsers, time.Minute).
		Build()
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		user, err := client.User(UserID(2)).Exec(ctx)
		if err != nil {
			t.Fatalf("exec %d: %v", i, err)
		}
		if user == nil || user.UserID != 2 {
			t.Fatalf("exec %d: unexpected user %+v", i, user)
		}
	}
	if requests != 1 {
		t.Fatalf("expected a single upstream request, got %d", requests)
	}
}

func TestClientCacheKindNotEnabled(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = io.WriteString(w, userBody)
	}))
	defer server.Close()

	client, err := NewBuilder("test-key").
		BaseURL(server.URL + "/").
		RateLimit(100, time.Second).
		Cache(NewMemoryCache(), CacheBeatmaps, time.Minute).
		Build()
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.User(UserID(2)).Exec(ctx); err != nil {
			t.Fatalf("exec %d: %v", i, err)
		}
	}
	if requests != 2 {
		t.Fatalf("users are not cached, expected 2 requests, got %d", requests)
	}
}

func TestBuilderValidation(t *testing.T) {
	var buildErr *BuildingClientError
	if _, err := NewBuilder("").Build(); !errors.As(err, &buildErr) {
		t.Fatalf("expected BuildingClientError for empty key, got %v", err)
	}
	if _, err := NewBuilder("key").RateLimit(0, time.Second).Build(); !errors.As(err, &buildErr) {
		t.Fatalf("expected BuildingClientError for zero rate, got %v", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set("a", []byte("body"), 10*time.Millisecond)
	if body, ok := cache.Get("a"); !ok || string(body) != "body" {
		t.Fatalf("expected fresh entry")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := cache.Get("a"); ok {
		t.Fatalf("expected entry to expire")
	}

	cache.Set("b", []byte("keep"), 0)
	if _, ok := cache.Get("b"); !ok {
		t.Fatalf("ttl 0 keeps the entry")
	}
}
