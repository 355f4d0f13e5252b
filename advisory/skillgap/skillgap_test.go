package skillgap

import (
	"reflect"
	"testing"
)

func TestLexicalGapHalfMatch(t *testing.T) {
	missing, pct := LexicalGap(
		[]string{"Python", "SQL"},
		[]string{"Python", "Docker", "SQL", "AWS"},
	)

	if pct != 50 {
		t.Errorf("percentage = %d, want 50", pct)
	}
	if !reflect.DeepEqual(missing, []string{"Docker", "AWS"}) {
		t.Errorf("missing = %v, want [Docker AWS]", missing)
	}
}

func TestLexicalGapEmptyRequired(t *testing.T) {
	missing, pct := LexicalGap([]string{"Go"}, nil)

	if pct != 0 {
		t.Errorf("percentage = %d, want 0 for empty required list", pct)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want empty", missing)
	}
}

func TestLexicalGapCaseInsensitive(t *testing.T) {
	missing, pct := LexicalGap(
		[]string{"python", "DOCKER"},
		[]string{"Python", "Docker"},
	)

	if pct != 100 {
		t.Errorf("percentage = %d, want 100", pct)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want empty", missing)
	}
}

func TestLexicalGapKeepsRequiredCasing(t *testing.T) {
	missing, _ := LexicalGap(nil, []string{"Node.js", "GraphQL"})

	if !reflect.DeepEqual(missing, []string{"Node.js", "GraphQL"}) {
		t.Errorf("missing = %v, should keep the posting's casing and order", missing)
	}
}

func TestLexicalGapRounding(t *testing.T) {
	// 1 of 3 matched: round(33.33) = 33
	_, pct := LexicalGap([]string{"Go"}, []string{"Go", "Rust", "Zig"})
	if pct != 33 {
		t.Errorf("percentage = %d, want 33", pct)
	}

	// 2 of 3 matched: round(66.67) = 67
	_, pct = LexicalGap([]string{"Go", "Rust"}, []string{"Go", "Rust", "Zig"})
	if pct != 67 {
		t.Errorf("percentage = %d, want 67", pct)
	}
}

func TestLexicalGapBounds(t *testing.T) {
	cases := [][2][]string{
		{nil, nil},
		{nil, {"A"}},
		{{"A"}, {"A"}},
		{{"A", "B", "C"}, {"D"}},
	}
	for _, c := range cases {
		if _, pct := LexicalGap(c[0], c[1]); pct < 0 || pct > 100 {
			t.Errorf("LexicalGap(%v, %v) percentage %d out of bounds", c[0], c[1], pct)
		}
	}
}
