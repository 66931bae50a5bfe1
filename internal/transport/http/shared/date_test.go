package shared

import (
	"testing"
	"time"
)

func TestParseDateDayOnly(t *testing.T) {
	parsed, err := ParseDate("2025-06-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.Equal(time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2025-06-11, got %v", parsed)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	parsed, err := ParseDate("2025-06-11T09:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Hour() != 9 || parsed.Day() != 11 {
		t.Fatalf("unexpected parse result: %v", parsed)
	}
}

func TestParseDateEmptyIsZero(t *testing.T) {
	parsed, err := ParseDate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.IsZero() {
		t.Fatalf("expected zero time, got %v", parsed)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("June 11th"); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}
