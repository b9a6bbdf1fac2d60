// ABOUTME: Tests for terminal UI formatting functions.
// ABOUTME: Validates note, calendar, stats, and bench display.

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/stats"
)

func TestFormatNoteListItem(t *testing.T) {
	note := models.NewNote("a short note", "", models.Knight)
	note.AddComment(models.NewComment("echo", models.Hornet))

	output := FormatNoteListItem(note)

	if !strings.Contains(output, note.ID.String()[:6]) {
		t.Error("expected output to contain ID prefix")
	}
	if !strings.Contains(output, "Knight") {
		t.Error("expected output to contain author")
	}
	if !strings.Contains(output, "a short note") {
		t.Error("expected output to contain text")
	}
	if !strings.Contains(output, "echoes:") {
		t.Error("expected output to contain echo count")
	}
}

func TestFormatNoteListItemTruncates(t *testing.T) {
	note := models.NewNote(strings.Repeat("x", 200), "", models.Knight)

	output := FormatNoteListItem(note)
	if !strings.Contains(output, "...") {
		t.Error("expected long text to be truncated")
	}
	if strings.Contains(output, strings.Repeat("x", 100)) {
		t.Error("expected truncation well under the full text")
	}
}

func TestFormatNoteListItemImage(t *testing.T) {
	note := models.NewNote("with picture", "https://img.example/a.png", models.Hornet)

	if !strings.Contains(FormatNoteListItem(note), "[image]") {
		t.Error("expected image marker")
	}
}

func TestFormatNoteDetailNoComments(t *testing.T) {
	note := models.NewNote("lonely", "", models.Knight)

	output := FormatNoteDetail(note)
	if !strings.Contains(output, "No echoes yet") {
		t.Error("expected empty-comments placeholder")
	}
}

func TestFormatStats(t *testing.T) {
	s := stats.Summary{Dominant: models.MoodHappy, WellbeingPercent: 75, Tracked: 4}

	output := FormatStats(s)
	if !strings.Contains(output, "HAPPY") {
		t.Error("expected dominant label")
	}
	if !strings.Contains(output, "75%") {
		t.Error("expected wellbeing percentage")
	}
	if !strings.Contains(output, "4") {
		t.Error("expected tracked count")
	}
}

func TestFormatStatsEmpty(t *testing.T) {
	output := FormatStats(stats.Summary{})
	if !strings.Contains(output, stats.Placeholder) {
		t.Error("expected placeholder for empty stats")
	}
}

func TestFormatMonth(t *testing.T) {
	entries := map[string]models.DailyData{
		models.DateKey(time.January, 1): {Mood: models.MoodHappy},
		models.DateKey(time.January, 2): {Journal: "wrote a bit"},
	}

	output := FormatMonth(time.January, entries)
	if !strings.Contains(output, "January 2026") {
		t.Error("expected month header")
	}
	if !strings.Contains(output, "Su  Mo  Tu") {
		t.Error("expected weekday header")
	}
	if !strings.Contains(output, models.MoodHappy.Glyph()) {
		t.Error("expected mood glyph in the grid")
	}
	if !strings.Contains(output, "·") {
		t.Error("expected journal marker")
	}
	if !strings.Contains(output, "31") {
		t.Error("expected the last day of the month")
	}
}

func TestFormatBench(t *testing.T) {
	status := models.BenchStatus{Knight: true}

	output := FormatBench(status, models.Knight)
	if !strings.Contains(output, "resting on the bench") {
		t.Error("expected resting state")
	}
	if !strings.Contains(output, "wandering") {
		t.Error("expected wandering state for the other profile")
	}
}

func TestRenderMarkdown(t *testing.T) {
	output, err := RenderMarkdown("# Hello\n\nThis is **bold** text.")
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	if output == "" {
		t.Error("expected non-empty output")
	}
}
