// ABOUTME: Export command for backing up board notes and calendars.
// ABOUTME: Supports JSON and markdown export formats.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ExportComment struct {
	Author    string `json:"author" yaml:"author"`
	Text      string `json:"text" yaml:"text"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

type ExportNote struct {
	ID        string          `json:"id" yaml:"id"`
	Author    string          `json:"author" yaml:"author"`
	Text      string          `json:"text" yaml:"-"`
	ImageURL  string          `json:"image_url,omitempty" yaml:"image,omitempty"`
	Liked     bool            `json:"liked" yaml:"liked"`
	Timestamp string          `json:"timestamp" yaml:"timestamp"`
	Comments  []ExportComment `json:"comments,omitempty" yaml:"-"`
}

type ExportEntry struct {
	Date    string `json:"date" yaml:"date"`
	Mood    string `json:"mood,omitempty" yaml:"mood,omitempty"`
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
}

type ExportData struct {
	ExportedAt time.Time                `json:"exported_at"`
	Version    string                   `json:"version"`
	Notes      []ExportNote             `json:"notes"`
	Calendars  map[string][]ExportEntry `json:"calendars"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export board notes and calendars",
	Long:  `Export board notes and both profiles' calendars to JSON or markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		if !offline {
			ctx := cmd.Context()
			if err := appStore.HydrateNotes(ctx); err != nil {
				return fmt.Errorf("fetch notes: %w", err)
			}
			for _, p := range models.Profiles() {
				if err := appStore.HydrateCalendar(ctx, p); err != nil {
					return fmt.Errorf("fetch calendar for %s: %w", p, err)
				}
			}
		}

		data := buildExport()
		switch format {
		case "json":
			return exportJSON(data, outputPath)
		case "md":
			return exportMarkdown(data, outputPath)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func buildExport() ExportData {
	data := ExportData{
		ExportedAt: time.Now(),
		Version:    "1.0",
		Calendars:  map[string][]ExportEntry{},
	}

	for _, n := range appStore.Notes() {
		en := ExportNote{
			ID:        n.ID.String(),
			Author:    n.Author.String(),
			Text:      n.Text,
			ImageURL:  n.ImageURL,
			Liked:     n.Liked,
			Timestamp: n.Timestamp,
		}
		for _, c := range n.Comments {
			en.Comments = append(en.Comments, ExportComment{
				Author:    c.Author.String(),
				Text:      c.Text,
				Timestamp: c.Timestamp,
			})
		}
		data.Notes = append(data.Notes, en)
	}

	for _, p := range models.Profiles() {
		entries := appStore.Calendar(p)
		dates := make([]string, 0, len(entries))
		for date := range entries {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		exported := make([]ExportEntry, 0, len(dates))
		for _, date := range dates {
			e := entries[date]
			exported = append(exported, ExportEntry{
				Date:    date,
				Mood:    string(e.Mood),
				Journal: e.Journal,
			})
		}
		data.Calendars[p.String()] = exported
	}
	return data
}

func exportJSON(data ExportData, outputPath string) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if outputPath == "" || outputPath == "-" {
		fmt.Println(string(encoded))
		return nil
	}
	return os.WriteFile(outputPath, encoded, 0644)
}

func exportMarkdown(data ExportData, outputDir string) error {
	if outputDir == "" {
		outputDir = "export"
	}
	if err := os.MkdirAll(filepath.Join(outputDir, "board"), 0755); err != nil {
		return err
	}

	for _, n := range data.Notes {
		var sb strings.Builder
		sb.WriteString("---\n")
		frontmatter, _ := yaml.Marshal(n)
		sb.Write(frontmatter)
		sb.WriteString("---\n\n")
		sb.WriteString(n.Text)
		sb.WriteString("\n")
		for _, c := range n.Comments {
			sb.WriteString(fmt.Sprintf("\n> %s (%s): %s\n", c.Author, c.Timestamp, c.Text))
		}

		filePath := filepath.Join(outputDir, "board", n.ID[:8]+".md")
		if err := os.WriteFile(filePath, []byte(sb.String()), 0644); err != nil {
			return err
		}
	}

	for profile, entries := range data.Calendars {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("# %s — %d\n", profile, models.Year))
		for _, e := range entries {
			sb.WriteString(fmt.Sprintf("\n## %s\n", e.Date))
			if e.Mood != "" {
				sb.WriteString(fmt.Sprintf("mood: %s\n", e.Mood))
			}
			if e.Journal != "" {
				sb.WriteString("\n" + e.Journal + "\n")
			}
		}
		filePath := filepath.Join(outputDir, strings.ToLower(profile)+"-calendar.md")
		if err := os.WriteFile(filePath, []byte(sb.String()), 0644); err != nil {
			return err
		}
	}

	fmt.Println(ui.Success(fmt.Sprintf("Exported %d notes and %d calendars to %s",
		len(data.Notes), len(data.Calendars), outputDir)))
	return nil
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|md)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	rootCmd.AddCommand(exportCmd)
}
