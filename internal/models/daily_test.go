// ABOUTME: Tests for DailyData merging and date key validation.
// ABOUTME: Merge overlays only set fields; dates must fall in the fixed year.

package models

import (
	"testing"
	"time"
)

func TestDailyDataMerge(t *testing.T) {
	base := DailyData{Mood: MoodHappy, Journal: "a good day"}

	merged := base.Merge(DailyData{Mood: MoodSad})
	if merged.Mood != MoodSad {
		t.Errorf("expected mood overwritten, got %q", merged.Mood)
	}
	if merged.Journal != "a good day" {
		t.Errorf("expected journal preserved, got %q", merged.Journal)
	}

	merged = base.Merge(DailyData{Journal: "rewritten"})
	if merged.Mood != MoodHappy {
		t.Errorf("expected mood preserved, got %q", merged.Mood)
	}
	if merged.Journal != "rewritten" {
		t.Errorf("expected journal overwritten, got %q", merged.Journal)
	}

	if got := base.Merge(DailyData{}); got != base {
		t.Errorf("merging the zero value changed the entry: %+v", got)
	}
}

func TestDateKey(t *testing.T) {
	if got := DateKey(time.March, 7); got != "2026-03-07" {
		t.Errorf("DateKey(March, 7) = %q", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-06-15"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if _, err := ParseDate("2025-06-15"); err == nil {
		t.Error("expected error for date outside the calendar year")
	}
	if _, err := ParseDate("june 15"); err == nil {
		t.Error("expected error for malformed date")
	}
}
