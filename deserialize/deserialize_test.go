package deserialize

import (
	"encoding/json"
	"testing"
	"time"
)

func TestU32(t *testing.T) {
	cases := []struct {
		input   string
		want    U32
		wantErr bool
	}{
		{`42`, 42, false},
		{`"42"`, 42, false},
		{`null`, 0, false},
		{`""`, 0, false},
		{`-3`, 0, false},
		{`"-3"`, 0, false},
		{`"abc"`, 0, true},
		{`1.5`, 0, true},
	}
	for _, c := range cases {
		var got U32
		err := json.Unmarshal([]byte(c.input), &got)
		if c.wantErr {
			if err == nil {
				t.Errorf("U32(%s): expected error, got %d", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("U32(%s): %v", c.input, err)
		} else if got != c.want {
			t.Errorf("U32(%s): expected %d, got %d", c.input, c.want, got)
		}
	}
}

func TestU64(t *testing.T) {
	var got U64
	if err := json.Unmarshal([]byte(`"9007199254740993"`), &got); err != nil {
		t.Fatalf("U64: %v", err)
	}
	if got != 9007199254740993 {
		t.Fatalf("U64: expected 9007199254740993, got %d", got)
	}
}

func TestF32(t *testing.T) {
	cases := []struct {
		input   string
		want    F32
		wantErr bool
	}{
		{`4.5`, 4.5, false},
		{`"4.5"`, 4.5, false},
		{`7`, 7, false},
		{`null`, 0, false},
		{`""`, 0, false},
		{`"x"`, 0, true},
	}
	for _, c := range cases {
		var got F32
		err := json.Unmarshal([]byte(c.input), &got)
		if c.wantErr {
			if err == nil {
				t.Errorf("F32(%s): expected error, got %f", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("F32(%s): %v", c.input, err)
		} else if got != c.want {
			t.Errorf("F32(%s): expected %f, got %f", c.input, c.want, got)
		}
	}
}

func TestBool(t *testing.T) {
	cases := []struct {
		input   string
		want    Bool
		wantErr bool
	}{
		{`true`, true, false},
		{`false`, false, false},
		{`"true"`, true, false},
		{`"false"`, false, false},
		{`1`, true, false},
		{`0`, false, false},
		{`"1"`, true, false},
		{`"0"`, false, false},
		{`null`, false, false},
		{`"yes"`, false, true},
		{`2`, false, true},
	}
	for _, c := range cases {
		var got Bool
		err := json.Unmarshal([]byte(c.input), &got)
		if c.wantErr {
			if err == nil {
				t.Errorf("Bool(%s): expected error, got %v", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Bool(%s): %v", c.input, err)
		} else if got != c.want {
			t.Errorf("Bool(%s): expected %v, got %v", c.input, c.want, got)
		}
	}
}

func TestDate(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2019-02-13 09:58:32"`), &d); err != nil {
		t.Fatalf("Date: %v", err)
	}
	want := time.Date(2019, 2, 13, 9, 58, 32, 0, time.UTC)
	if !d.Time().Equal(want) {
		t.Fatalf("Date: expected %s, got %s", want, d.Time())
	}

	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("Date null: %v", err)
	}
	if !d.Time().IsZero() {
		t.Fatalf("Date null: expected zero time, got %s", d.Time())
	}

	if err := json.Unmarshal([]byte(`"13/02/2019"`), &d); err == nil {
		t.Fatalf("Date: expected error for malformed date")
	}
}

func TestOptDate(t *testing.T) {
	var d OptDate
	if err := json.Unmarshal([]byte(`"2019-02-13 09:58:32"`), &d); err != nil {
		t.Fatalf("OptDate: %v", err)
	}
	if !d.Valid || d.Ptr() == nil {
		t.Fatalf("OptDate: expected a valid date")
	}

	// malformed and null values are dropped, not errors
	for _, input := range []string{`null`, `"garbage"`, `42`} {
		d = OptDate{}
		if err := json.Unmarshal([]byte(input), &d); err != nil {
			t.Fatalf("OptDate(%s): %v", input, err)
		}
		if d.Valid || d.Ptr() != nil {
			t.Fatalf("OptDate(%s): expected unset", input)
		}
	}
}
