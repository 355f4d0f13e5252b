package kernel

import "testing"

func TestNewEmailNormalizes(t *testing.T) {
	e := NewEmail("  Jane.Doe@Example.COM ")
	if e.String() != "jane.doe@example.com" {
		t.Fatalf("got %q", e.String())
	}
	if e.IsEmpty() {
		t.Fatal("expected non-empty email")
	}
}

func TestEmailIsValid(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"jane@example.com", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"@example.com", false},
		{"jane@", false},
		{"jane@localhost", false},
		{"", false},
	}
	for _, c := range cases {
		if got := NewEmail(c.in).IsValid(); got != c.valid {
			t.Errorf("IsValid(%q) = %v, want %v", c.in, got, c.valid)
		}
	}
}

func TestClampInt(t *testing.T) {
	cases := []struct {
		v, min, max, want int
	}{
		{50, 0, 100, 50},
		{-5, 0, 100, 0},
		{120, 0, 100, 100},
		{0, 0, 100, 0},
		{100, 0, 100, 100},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := ClampInt(c.v, c.min, c.max); got != c.want {
			t.Errorf("ClampInt(%d, %d, %d) = %d, want %d", c.v, c.min, c.max, got, c.want)
		}
	}
}

func TestPaginationNormalize(t *testing.T) {
	p := PaginationOptions{}.Normalize()
	if p.Page != 1 || p.PageSize != DefaultPageSize {
		t.Fatalf("zero value normalized to %+v", p)
	}

	p = PaginationOptions{Page: -3, PageSize: 500}.Normalize()
	if p.Page != 1 {
		t.Errorf("negative page normalized to %d", p.Page)
	}
	if p.PageSize != MaxPageSize {
		t.Errorf("oversized page size normalized to %d", p.PageSize)
	}

	p = PaginationOptions{Page: 4, PageSize: 25}.Normalize()
	if p.Page != 4 || p.PageSize != 25 {
		t.Fatalf("in-range options changed: %+v", p)
	}
}

func TestEmploymentTypeIsValid(t *testing.T) {
	for _, v := range []EmploymentType{EmploymentFullTime, EmploymentPartTime, EmploymentInternship, EmploymentContract} {
		if !v.IsValid() {
			t.Errorf("%q should be valid", v)
		}
	}
	if EmploymentType("Freelance").IsValid() {
		t.Error("unknown employment type accepted")
	}
}

func TestPriorityIsValid(t *testing.T) {
	for _, v := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		if !v.IsValid() {
			t.Errorf("%q should be valid", v)
		}
	}
	if Priority("urgent").IsValid() {
		t.Error("unknown priority accepted")
	}
}
