package model

import (
	"encoding/json"
	"testing"
)

func TestGameModeFromCode(t *testing.T) {
	for code := 0; code <= 3; code++ {
		mode, err := GameModeFromCode(code)
		if err != nil {
			t.Fatalf("GameModeFromCode(%d): %v", code, err)
		}
		if int(mode) != code {
			t.Fatalf("GameModeFromCode(%d): got %d", code, mode)
		}
	}
	if _, err := GameModeFromCode(4); err == nil {
		t.Fatalf("expected error for code 4")
	}
	if _, err := GameModeFromCode(-1); err == nil {
		t.Fatalf("expected error for code -1")
	}
}

func TestGameModeJSON(t *testing.T) {
	cases := []struct {
		input string
		want  GameMode
	}{
		{`0`, GameModeOsu},
		{`"1"`, GameModeTaiko},
		{`"taiko"`, GameModeTaiko},
		{`"tko"`, GameModeTaiko},
		{`"ctb"`, GameModeCatch},
		{`"fruits"`, GameModeCatch},
		{`3`, GameModeMania},
		{`"mna"`, GameModeMania},
		{`null`, GameModeOsu},
		{`"something"`, GameModeOsu},
	}
	for _, c := range cases {
		var got GameMode
		if err := json.Unmarshal([]byte(c.input), &got); err != nil {
			t.Errorf("unmarshal %s: %v", c.input, err)
		} else if got != c.want {
			t.Errorf("unmarshal %s: expected %s, got %s", c.input, c.want, got)
		}
	}

	out, err := json.Marshal(GameModeCatch)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "2" {
		t.Fatalf("expected 2, got %s", out)
	}
}
