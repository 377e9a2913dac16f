package model

import "strings"

// Grade of a score, sometimes called rank. Ordered F < D < C < B < A < S <
// SH < X < XH.
type Grade uint8

//goland:noinspection ALL
const (
	GradeF Grade = iota
	GradeD
	GradeC
	GradeB
	GradeA
	GradeS
	GradeSH
	GradeX
	GradeXH
)

// ParseGrade parses a grade letter, case-insensitive. "SS" is an alias for
// X and "SSH" for XH.
func ParseGrade(s string) (Grade, error) {
	switch strings.ToUpper(s) {
	case "XH", "SSH":
		return GradeXH, nil
	case "X", "SS":
		return GradeX, nil
	case "SH":
		return GradeSH, nil
	case "S":
		return GradeS, nil
	case "A":
		return GradeA, nil
	case "B":
		return GradeB, nil
	case "C":
		return GradeC, nil
	case "D":
		return GradeD, nil
	case "F":
		return GradeF, nil
	default:
		return GradeF, ErrGradeParsing
	}
}

// EqLetter checks two grades for equality, ignoring the silver-/regular
// difference of S and X grades.
func (g Grade) EqLetter(other Grade) bool {
	switch g {
	case GradeXH, GradeX:
		return other == GradeXH || other == GradeX
	case GradeSH, GradeS:
		return other == GradeSH || other == GradeS
	default:
		return g == other
	}
}

func (g Grade) String() string {
	switch g {
	case GradeXH:
		return "XH"
	case GradeX:
		return "X"
	case GradeSH:
		return "SH"
	case GradeS:
		return "S"
	case GradeA:
		return "A"
	case GradeB:
		return "B"
	case GradeC:
		return "C"
	case GradeD:
		return "D"
	default:
		return "F"
	}
}

func (g *Grade) UnmarshalJSON(data []byte) error {
	s, ok := lenientScalar(data)
	if !ok {
		*g = GradeF
		return nil
	}
	grade, err := ParseGrade(s)
	if err != nil {
		return err
	}
	*g = grade
	return nil
}

func (g Grade) MarshalJSON() ([]byte, error) {
	return []byte(`"` + g.String() + `"`), nil
}
