// ABOUTME: Terminal formatting for bench output.
// ABOUTME: Uses glamour for markdown bodies and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/stats"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// Success formats a success message.
func Success(msg string) string {
	return green("✓ ") + msg
}

// Warn formats a warning message.
func Warn(msg string) string {
	return yellow("! ") + msg
}

// FormatNoteListItem renders one board note for list output.
func FormatNoteListItem(note *models.Note) string {
	var sb strings.Builder

	heart := faint("♡")
	if note.Liked {
		heart = red("♥")
	}

	idPrefix := note.ID.String()[:6]
	sb.WriteString(fmt.Sprintf("  %s  %s %s %s\n",
		faint(idPrefix), bold(note.Author.String()), heart, faint(note.Timestamp)))

	text := note.Text
	if len(text) > 72 {
		text = text[:69] + "..."
	}
	sb.WriteString(fmt.Sprintf("         %s\n", text))

	if note.ImageURL != "" {
		sb.WriteString(fmt.Sprintf("         %s\n", cyan("[image]")))
	}
	if len(note.Comments) > 0 {
		sb.WriteString(fmt.Sprintf("         %s %d\n", faint("echoes:"), len(note.Comments)))
	}
	return sb.String()
}

// FormatComment renders one comment line.
func FormatComment(c models.Comment) string {
	return fmt.Sprintf("    %s %s\n      %s\n",
		cyan(c.Author.String()), faint(c.Timestamp), c.Text)
}

// FormatNoteDetail renders a full note with its comment thread.
func FormatNoteDetail(note *models.Note) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", bold(note.Author.String()), faint(note.Timestamp)))
	if note.ImageURL != "" {
		sb.WriteString(cyan(note.ImageURL) + "\n")
	}

	body, err := RenderMarkdown(note.Text)
	if err != nil {
		body = note.Text + "\n"
	}
	sb.WriteString(body)

	if len(note.Comments) == 0 {
		sb.WriteString(faint("  No echoes yet...") + "\n")
		return sb.String()
	}
	sb.WriteString(faint(fmt.Sprintf("  %d echo(es):", len(note.Comments))) + "\n")
	for _, c := range note.Comments {
		sb.WriteString(FormatComment(c))
	}
	return sb.String()
}

// RenderMarkdown renders body text through glamour, falling back to the
// raw text if the renderer cannot be built.
func RenderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return rendered, nil
}

// FormatStats renders the dominant mood and soul vessel banner.
func FormatStats(s stats.Summary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s  %s %s\n",
		faint("Dominant Mood:"), s.DominantGlyph(), bold(s.DominantLabel())))
	sb.WriteString(fmt.Sprintf("  %s    %s %d%%\n",
		faint("Soul Vessel:"), vesselBar(s.WellbeingPercent), s.WellbeingPercent))
	sb.WriteString(fmt.Sprintf("  %s  %d\n", faint("Tracked days:"), s.Tracked))
	return sb.String()
}

func vesselBar(percent int) string {
	const width = 20
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return yellow(strings.Repeat("█", filled)) + faint(strings.Repeat("░", width-filled))
}

// FormatMonth renders one month's grid with mood glyphs and journal
// markers.
func FormatMonth(month time.Month, entries map[string]models.DailyData) string {
	var sb strings.Builder
	sb.WriteString(bold(fmt.Sprintf("%s %d", month, models.Year)) + "\n")
	sb.WriteString(faint(" Su  Mo  Tu  We  Th  Fr  Sa") + "\n")

	first := time.Date(models.Year, month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()

	col := int(first.Weekday())
	sb.WriteString(strings.Repeat("    ", col))

	for day := 1; day <= daysIn; day++ {
		data := entries[models.DateKey(month, day)]
		cell := fmt.Sprintf("%3d", day)
		if data.Mood != "" {
			cell = " " + data.Mood.Glyph()
		}
		if data.Journal != "" {
			cell += cyan("·")
		} else {
			cell += " "
		}
		sb.WriteString(cell)

		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatBench renders the resting state for both profiles.
func FormatBench(status models.BenchStatus, current models.Profile) string {
	var sb strings.Builder
	for _, p := range models.Profiles() {
		marker := "  "
		if p == current {
			marker = cyan("▸ ")
		}
		state := faint("wandering")
		if status.Resting(p) {
			state = green("resting on the bench")
		}
		sb.WriteString(fmt.Sprintf("%s%s is %s\n", marker, bold(p.String()), state))
	}
	return sb.String()
}
