package seed

import (
	"slices"
	"testing"
	"time"
)

func TestRoster(t *testing.T) {
	t.Parallel()

	roster, err := Roster()
	if err != nil {
		t.Fatalf("Roster returned error: %v", err)
	}
	if len(roster) != 11 {
		t.Fatalf("expected 11 employees, got %d", len(roster))
	}

	first := roster[0]
	if first.Name != "Ahmet Yılmaz" || first.Department != "Bilgi Teknolojileri" {
		t.Fatalf("unexpected first employee: %+v", first)
	}
	if !slices.Equal(first.Skills, []string{"Swift", "SwiftUI", "iOS"}) {
		t.Fatalf("unexpected skills: %v", first.Skills)
	}
	if roster[2].Phone != "+90 535 663 33 76" {
		t.Fatalf("expected phone preserved as string, got %q", roster[2].Phone)
	}
	for _, in := range roster {
		if in.Name == "" || in.Position == "" {
			t.Fatalf("roster entry missing required fields: %+v", in)
		}
		if in.StartDate != nil {
			t.Fatalf("expected start date to be left to the clock, got %v", in.StartDate)
		}
	}
}

func TestParse_StartDate(t *testing.T) {
	t.Parallel()

	inputs, err := Parse([]byte("employees:\n  - name: A\n    position: B\n    start_date: 2024-02-29\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if inputs[0].StartDate == nil || !inputs[0].StartDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, inputs[0].StartDate)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("employees:\n  - name: A\n    salary: 1\n")); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, err := Parse([]byte("employees:\n  - name: A\n    start_date: yesterday\n")); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}
