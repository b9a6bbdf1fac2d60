// ABOUTME: Aggregate statistics over one profile's calendar entries.
// ABOUTME: Dominant mood plus the wellbeing (soul vessel) percentage.

package stats

import (
	"math"
	"sort"

	"github.com/harper/bench/internal/models"
)

// Placeholder is shown when no entry has a mood set.
const Placeholder = "—"

// Summary is derived from the current calendar slice. It is cheap to
// recompute (at most 366 entries), so nothing caches it.
type Summary struct {
	// Dominant is the most frequent mood, or "" when no entry has one.
	Dominant models.Mood
	// WellbeingPercent is round(100 * positive / withMood); 0 when no
	// entry has a mood.
	WellbeingPercent int
	// Tracked counts entries with any mood set.
	Tracked int
}

// HasDominant reports whether any mood was recorded.
func (s Summary) HasDominant() bool {
	return s.Dominant != ""
}

// DominantGlyph is the display glyph, or the placeholder.
func (s Summary) DominantGlyph() string {
	if !s.HasDominant() {
		return Placeholder
	}
	return s.Dominant.Glyph()
}

// DominantLabel is the uppercased name, or the placeholder.
func (s Summary) DominantLabel() string {
	if !s.HasDominant() {
		return Placeholder
	}
	return s.Dominant.Label()
}

// Compute derives the summary. Ties on the dominant mood break toward
// the mood whose first occurrence has the earliest date, so the result
// is deterministic regardless of map iteration order.
func Compute(entries map[string]models.DailyData) Summary {
	dates := make([]string, 0, len(entries))
	for date := range entries {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	counts := map[models.Mood]int{}
	firstSeen := map[models.Mood]int{}
	positive := 0
	tracked := 0

	for i, date := range dates {
		mood := entries[date].Mood
		if mood == "" {
			continue
		}
		if _, ok := firstSeen[mood]; !ok {
			firstSeen[mood] = i
		}
		counts[mood]++
		tracked++
		if mood.Positive() {
			positive++
		}
	}

	var summary Summary
	summary.Tracked = tracked
	if tracked == 0 {
		return summary
	}

	best := -1
	for mood, count := range counts {
		switch {
		case count > best:
			best = count
			summary.Dominant = mood
		case count == best && firstSeen[mood] < firstSeen[summary.Dominant]:
			summary.Dominant = mood
		}
	}

	summary.WellbeingPercent = int(math.Round(100 * float64(positive) / float64(tracked)))
	return summary
}
