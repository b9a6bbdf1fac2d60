// ABOUTME: Mood enumeration with display glyphs.
// ABOUTME: Happy and peaceful count toward the wellbeing statistic.

package models

import (
	"errors"
	"fmt"
	"strings"
)

type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodAngry    Mood = "angry"
	MoodNeutral  Mood = "neutral"
	MoodPeaceful Mood = "peaceful"
)

var ErrBadMood = errors.New("unknown mood")

var moodGlyphs = map[Mood]string{
	MoodHappy:    "😊",
	MoodSad:      "😟",
	MoodAngry:    "🤬",
	MoodNeutral:  "😐",
	MoodPeaceful: "😌",
}

// Moods returns all moods in display order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodSad, MoodAngry, MoodNeutral, MoodPeaceful}
}

// ParseMood accepts the five known moods, case-insensitively.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := moodGlyphs[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrBadMood, s)
	}
	return m, nil
}

// Glyph returns the fixed display glyph for the mood.
func (m Mood) Glyph() string {
	return moodGlyphs[m]
}

// Positive reports whether the mood counts toward wellbeing.
func (m Mood) Positive() bool {
	return m == MoodHappy || m == MoodPeaceful
}

// Label is the uppercased display name, e.g. "HAPPY".
func (m Mood) Label() string {
	return strings.ToUpper(string(m))
}

func (m Mood) String() string {
	return string(m)
}
