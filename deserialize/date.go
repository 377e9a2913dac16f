package deserialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DateFormat is the datetime layout of the osu! v1 api, interpreted as UTC.
const DateFormat = "2006-01-02 15:04:05"

var logger = zerolog.Nop()

// SetLogger routes the coercer diagnostics, e.g. silently dropped optional
// dates, to the given logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Date parses a required "YYYY-MM-DD HH:MM:SS" field. Null or a missing
// field leaves the zero time, a malformed string is an error.
type Date time.Time

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*d = Date(time.Time{})
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("deserialize: date must be a string: %w", err)
	}
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return fmt.Errorf("deserialize: %q is not a date of the format YYYY-MM-DD HH:MM:SS", s)
	}
	*d = Date(t)
	return nil
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

// OptDate parses an optional date field. Absent, null, and malformed values
// all leave Valid false; malformed values emit a diagnostic since upstream
// occasionally sends garbage where a date belongs.
type OptDate struct {
	Time  time.Time
	Valid bool
}

func (d *OptDate) UnmarshalJSON(data []byte) error {
	d.Valid = false
	if bytes.Equal(data, nullLiteral) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		logger.Debug().Str("value", string(data)).Msg("dropping non-string optional date")
		return nil
	}
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		logger.Debug().Str("value", s).Msg("dropping malformed optional date")
		return nil
	}
	d.Time = t
	d.Valid = true
	return nil
}

// Ptr returns the date as *time.Time, nil when unset.
func (d OptDate) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
