// ABOUTME: Calendar entry operations against the calendar_entries resource.
// ABOUTME: Upserts merge by (user_profile, entry_date), never overwrite wholesale.

package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/harper/bench/internal/models"
)

// calendarRow is the server-side shape of a calendar_entries row.
type calendarRow struct {
	EntryDate string  `json:"entry_date"`
	Mood      *string `json:"mood"`
	Journal   *string `json:"journal"`
}

type calendarUpsertRow struct {
	UserProfile string  `json:"user_profile"`
	EntryDate   string  `json:"entry_date"`
	Mood        *string `json:"mood"`
	Journal     *string `json:"journal"`
}

func (r calendarRow) toModel() (models.DailyData, error) {
	var data models.DailyData
	if r.Mood != nil && *r.Mood != "" {
		mood, err := models.ParseMood(*r.Mood)
		if err != nil {
			return models.DailyData{}, fmt.Errorf("entry %s: %w", r.EntryDate, err)
		}
		data.Mood = mood
	}
	if r.Journal != nil {
		data.Journal = *r.Journal
	}
	return data, nil
}

// GetCalendarEntries returns a profile's entries keyed by ISO date,
// range-filtered to the target year.
func (c *Client) GetCalendarEntries(ctx context.Context, profile models.Profile, year int) (map[string]models.DailyData, error) {
	path := fmt.Sprintf(
		"/calendar_entries?user_profile=eq.%s&entry_date=gte.%04d-01-01&entry_date=lte.%04d-12-31&select=entry_date,mood,journal",
		profile, year, year,
	)

	var rows []calendarRow
	if err := c.do(ctx, http.MethodGet, path, "", nil, &rows); err != nil {
		return nil, err
	}

	entries := make(map[string]models.DailyData, len(rows))
	for _, row := range rows {
		data, err := row.toModel()
		if err != nil {
			return nil, err
		}
		entries[row.EntryDate] = data
	}
	return entries, nil
}

// UpsertCalendarEntry inserts or merges an entry keyed by
// (user_profile, entry_date). The server merges fields rather than
// replacing the row.
func (c *Client) UpsertCalendarEntry(ctx context.Context, profile models.Profile, date string, data models.DailyData) error {
	row := calendarUpsertRow{
		UserProfile: profile.String(),
		EntryDate:   date,
	}
	if data.Mood != "" {
		mood := data.Mood.String()
		row.Mood = &mood
	}
	if data.Journal != "" {
		journal := data.Journal
		row.Journal = &journal
	}

	return c.do(ctx, http.MethodPost,
		"/calendar_entries?on_conflict=user_profile,entry_date",
		"resolution=merge-duplicates,return=minimal",
		row, nil)
}
