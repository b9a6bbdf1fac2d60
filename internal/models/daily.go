// ABOUTME: DailyData holds one profile's mood and journal text for one date.
// ABOUTME: Dates are ISO YYYY-MM-DD strings inside the fixed calendar year.

package models

import (
	"fmt"
	"time"
)

// Year is the single calendar year the app renders. It is a fixed
// constant, not derived from the system clock.
const Year = 2026

// DateLayout is the ISO key format for calendar entries.
const DateLayout = "2006-01-02"

type DailyData struct {
	Mood    Mood   `json:"mood,omitempty"`
	Journal string `json:"journal,omitempty"`
}

// IsZero reports whether neither field is set.
func (d DailyData) IsZero() bool {
	return d.Mood == "" && d.Journal == ""
}

// Merge overlays set fields of other onto d, field by field. This mirrors
// the server's merge-duplicates upsert resolution.
func (d DailyData) Merge(other DailyData) DailyData {
	if other.Mood != "" {
		d.Mood = other.Mood
	}
	if other.Journal != "" {
		d.Journal = other.Journal
	}
	return d
}

// DateKey builds the ISO date key for a day of the fixed year.
func DateKey(month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", Year, month, day)
}

// ParseDate validates an ISO date key and requires it to fall in the
// fixed year.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	if t.Year() != Year {
		return time.Time{}, fmt.Errorf("date %q outside calendar year %d", s, Year)
	}
	return t, nil
}
