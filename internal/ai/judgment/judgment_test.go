package judgment

import (
	"reflect"
	"testing"
)

type verdict struct {
	Score  int      `json:"score"`
	Points []string `json:"points"`
}

func TestObjectDecodesPlainJSON(t *testing.T) {
	raw := `{"score": 80, "points": ["a", "b"]}`

	got := Object(raw, verdict{Score: -1})
	want := verdict{Score: 80, Points: []string{"a", "b"}}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Object() = %+v, want %+v", got, want)
	}
}

func TestObjectStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"score\": 42}\n```"

	got := Object(raw, verdict{Score: -1})
	if got.Score != 42 {
		t.Fatalf("Score = %d, want 42", got.Score)
	}
}

func TestObjectIgnoresSurroundingProse(t *testing.T) {
	raw := `Sure! Here is the analysis you asked for:

{"score": 55, "points": ["solid"]}

Let me know if you need anything else.`

	got := Object(raw, verdict{Score: -1})
	if got.Score != 55 {
		t.Fatalf("Score = %d, want 55", got.Score)
	}
}

func TestObjectBracesInsideStrings(t *testing.T) {
	raw := `{"score": 10, "points": ["tricky } brace", "and { another"]}`

	got := Object(raw, verdict{Score: -1})
	if got.Score != 10 || len(got.Points) != 2 {
		t.Fatalf("Object() = %+v, braces inside strings broke the scan", got)
	}
}

func TestObjectFallbackOnNoSpan(t *testing.T) {
	fallback := verdict{Score: 65, Points: []string{"default"}}

	got := Object("the model refused to answer", fallback)
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("Object() = %+v, want fallback %+v", got, fallback)
	}
}

func TestObjectFallbackOnUnbalancedSpan(t *testing.T) {
	fallback := verdict{Score: 65}

	got := Object(`{"score": 80, "points": ["cut off`, fallback)
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("Object() = %+v, want fallback on truncated response", got)
	}
}

func TestObjectFallbackOnTypeMismatch(t *testing.T) {
	fallback := verdict{Score: 65}

	got := Object(`{"score": "eighty"}`, fallback)
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("Object() = %+v, want fallback on type mismatch", got)
	}
}

func TestArrayDecodes(t *testing.T) {
	raw := "```\n[{\"score\": 1}, {\"score\": 2}]\n```"

	got := Array(raw, []verdict{{Score: -1}})
	if len(got) != 2 || got[1].Score != 2 {
		t.Fatalf("Array() = %+v, want two decoded items", got)
	}
}

func TestArrayFallbackOnEmptyList(t *testing.T) {
	fallback := []verdict{{Score: 7}}

	got := Array("[]", fallback)
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("Array() = %+v, want fallback for empty list", got)
	}
}

func TestArrayFallbackOnObjectSpanOnly(t *testing.T) {
	fallback := []verdict{{Score: 7}}

	// An object is present but no array span of the expected kind.
	got := Array(`{"score": 3}`, fallback)
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("Array() = %+v, want fallback when only an object span exists", got)
	}
}
