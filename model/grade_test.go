package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseGrade(t *testing.T) {
	cases := []struct {
		input string
		want  Grade
	}{
		{"XH", GradeXH},
		{"SSH", GradeXH},
		{"ssh", GradeXH},
		{"X", GradeX},
		{"SS", GradeX},
		{"SH", GradeSH},
		{"s", GradeS},
		{"A", GradeA},
		{"B", GradeB},
		{"C", GradeC},
		{"D", GradeD},
		{"F", GradeF},
	}
	for _, c := range cases {
		got, err := ParseGrade(c.input)
		if err != nil {
			t.Errorf("ParseGrade(%q): %v", c.input, err)
		} else if got != c.want {
			t.Errorf("ParseGrade(%q): expected %s, got %s", c.input, c.want, got)
		}
	}

	if _, err := ParseGrade("E"); !errors.Is(err, ErrGradeParsing) {
		t.Fatalf("expected ErrGradeParsing, got %v", err)
	}
}

func TestGradeOrdering(t *testing.T) {
	order := []Grade{GradeF, GradeD, GradeC, GradeB, GradeA, GradeS, GradeSH, GradeX, GradeXH}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("expected %s < %s", order[i-1], order[i])
		}
	}
}

func TestGradeEqLetter(t *testing.T) {
	if !GradeX.EqLetter(GradeXH) {
		t.Fatalf("X and XH share a letter")
	}
	if !GradeSH.EqLetter(GradeS) {
		t.Fatalf("SH and S share a letter")
	}
	if GradeS.EqLetter(GradeX) {
		t.Fatalf("S and X do not share a letter")
	}
	if !GradeA.EqLetter(GradeA) {
		t.Fatalf("A equals itself")
	}
}

func TestGradeJSON(t *testing.T) {
	var g Grade
	if err := json.Unmarshal([]byte(`"SH"`), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g != GradeSH {
		t.Fatalf("expected SH, got %s", g)
	}

	if err := json.Unmarshal([]byte(`"Z"`), &g); err == nil {
		t.Fatalf("expected error for unknown grade")
	}

	out, err := json.Marshal(GradeXH)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"XH"` {
		t.Fatalf("expected \"XH\", got %s", out)
	}
}
