// Package sqlitecache persists api responses in a sqlite database so they
// survive process restarts. It satisfies the osu.CacheStore interface.
package sqlitecache

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog"
)
import _ "github.com/ncruces/go-sqlite3/driver"
import _ "github.com/ncruces/go-sqlite3/embed"

const schema = `CREATE TABLE IF NOT EXISTS responses (
	key TEXT NOT NULL,
	body BLOB NOT NULL,
	expires_at INTEGER NOT NULL,
	CONSTRAINT responses_pk PRIMARY KEY (key)
)`

// Store is a sqlite-backed response cache. Get and Set never return errors
// since osu.CacheStore treats the cache as best effort; failures are logged
// and reported as misses.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open creates or opens the database at path and ensures the schema.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, logger: logger.With().Str("module", "sqlitecache").Logger()}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached body for key. Expired entries are deleted and
// reported as misses.
func (s *Store) Get(key string) ([]byte, bool) {
	var body []byte
	var expiresAt int64
	err := s.db.QueryRow("SELECT body, expires_at FROM responses WHERE key = ?", key).
		Scan(&body, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil, false
	}
	if expiresAt != 0 && time.Now().Unix() > expiresAt {
		if _, err := s.db.Exec("DELETE FROM responses WHERE key = ?", key); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("could not evict expired entry")
		}
		return nil, false
	}
	return body, true
}

// Set stores body under key. A ttl of 0 keeps the entry until it is
// overwritten.
func (s *Store) Set(key string, body []byte, ttl time.Duration) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).Unix()
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO responses (key, body, expires_at) VALUES (?, ?, ?)",
		key, body, expiresAt)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
