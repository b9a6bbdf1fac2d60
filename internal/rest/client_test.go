// ABOUTME: Tests for the data API client against a local HTTP server.
// ABOUTME: Verifies auth headers, query shapes, and error surfacing.

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/harper/bench/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(&Config{BaseURL: srv.URL, APIKey: "test-key"}, WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func TestAuthHeaders(t *testing.T) {
	var apikey, auth, contentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		apikey = r.Header.Get("apikey")
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte("[]"))
	})

	if _, err := c.ListNotes(context.Background()); err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if apikey != "test-key" {
		t.Errorf("apikey header = %q", apikey)
	}
	if auth != "Bearer test-key" {
		t.Errorf("Authorization header = %q", auth)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type header = %q", contentType)
	}
}

func TestErrorCarriesStatusAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"relation does not exist"}`))
	})

	_, err := c.ListNotes(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("status = %d", apiErr.Status)
	}
	if apiErr.Body != `{"message":"relation does not exist"}` {
		t.Errorf("body = %q", apiErr.Body)
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(&Config{}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := NewClient(&Config{BaseURL: "https://x.example"}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials without key, got %v", err)
	}
}

func TestListNotesDecodesRows(t *testing.T) {
	noteID := uuid.New()
	commentID := uuid.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("order"); got != "created_at.desc" {
			t.Errorf("order param = %q", got)
		}
		_, _ = w.Write([]byte(`[{
			"id": "` + noteID.String() + `",
			"text": "hello",
			"image_url": null,
			"liked": true,
			"timestamp_text": "3/7/2026, 1:02:03 PM",
			"author": "Knight",
			"comments": [{
				"id": "` + commentID.String() + `",
				"text": "an echo",
				"author": "Hornet",
				"timestamp": "3/7/2026, 2:00:00 PM"
			}]
		}]`))
	})

	notes, err := c.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	n := notes[0]
	if n.ID != noteID || n.Text != "hello" || !n.Liked || n.Author != models.Knight {
		t.Errorf("note mismatch: %+v", n)
	}
	if n.ImageURL != "" {
		t.Errorf("null image_url should map to empty, got %q", n.ImageURL)
	}
	if len(n.Comments) != 1 || n.Comments[0].Author != models.Hornet {
		t.Errorf("comments mismatch: %+v", n.Comments)
	}
}

func TestListNotesRejectsUnknownAuthor(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": "` + uuid.NewString() + `", "author": "Zote", "comments": []}]`))
	})

	if _, err := c.ListNotes(context.Background()); !errors.Is(err, models.ErrBadProfile) {
		t.Errorf("expected ErrBadProfile, got %v", err)
	}
}

func TestCreateNoteSendsClientID(t *testing.T) {
	note := models.NewNote("pinned", "", models.Hornet)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Prefer"); got != "return=representation" {
			t.Errorf("Prefer = %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if row["id"] != note.ID.String() {
			t.Errorf("id = %v, want client-owned %s", row["id"], note.ID)
		}
		_, _ = w.Write([]byte(`[` + string(mustNoteJSON(t, note)) + `]`))
	})

	created, err := c.CreateNote(context.Background(), note)
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if created.ID != note.ID {
		t.Error("server representation should keep the client id")
	}
}

func mustNoteJSON(t *testing.T, n *models.Note) []byte {
	t.Helper()
	raw, err := json.Marshal(noteRowFromModel(n))
	if err != nil {
		t.Fatalf("marshal note row: %v", err)
	}
	return raw
}

func TestDeleteNoteFiltersByID(t *testing.T) {
	id := uuid.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.URL.Query().Get("id"); got != "eq."+id.String() {
			t.Errorf("id filter = %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.DeleteNote(context.Background(), id); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
}

func TestPatchNoteOmitsUnsetFields(t *testing.T) {
	liked := true
	var body map[string]json.RawMessage
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s", r.Method)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.PatchNote(context.Background(), uuid.New(), NotePatch{Liked: &liked}); err != nil {
		t.Fatalf("PatchNote failed: %v", err)
	}
	if _, ok := body["liked"]; !ok {
		t.Error("liked should be present")
	}
	if _, ok := body["comments"]; ok {
		t.Error("comments should be omitted when unset")
	}
}

func TestGetCalendarEntriesQueryAndMapping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("user_profile"); got != "eq.Hornet" {
			t.Errorf("user_profile = %q", got)
		}
		dates := q["entry_date"]
		if len(dates) != 2 || dates[0] != "gte.2026-01-01" || dates[1] != "lte.2026-12-31" {
			t.Errorf("entry_date filters = %v", dates)
		}
		_, _ = w.Write([]byte(`[
			{"entry_date": "2026-03-07", "mood": "happy", "journal": null},
			{"entry_date": "2026-03-08", "mood": null, "journal": "quiet day"}
		]`))
	})

	entries, err := c.GetCalendarEntries(context.Background(), models.Hornet, 2026)
	if err != nil {
		t.Fatalf("GetCalendarEntries failed: %v", err)
	}
	if entries["2026-03-07"].Mood != models.MoodHappy {
		t.Errorf("mood mismatch: %+v", entries["2026-03-07"])
	}
	if entries["2026-03-08"].Journal != "quiet day" || entries["2026-03-08"].Mood != "" {
		t.Errorf("journal-only entry mismatch: %+v", entries["2026-03-08"])
	}
}

func TestUpsertCalendarEntryMerges(t *testing.T) {
	var prefer string
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("on_conflict"); got != "user_profile,entry_date" {
			t.Errorf("on_conflict = %q", got)
		}
		prefer = r.Header.Get("Prefer")
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := c.UpsertCalendarEntry(context.Background(), models.Knight, "2026-03-07",
		models.DailyData{Mood: models.MoodPeaceful})
	if err != nil {
		t.Fatalf("UpsertCalendarEntry failed: %v", err)
	}
	if prefer != "resolution=merge-duplicates,return=minimal" {
		t.Errorf("Prefer = %q", prefer)
	}
	if body["user_profile"] != "Knight" || body["entry_date"] != "2026-03-07" {
		t.Errorf("key fields mismatch: %v", body)
	}
	if body["mood"] != "peaceful" {
		t.Errorf("mood = %v", body["mood"])
	}
	if body["journal"] != nil {
		t.Errorf("unset journal should be null, got %v", body["journal"])
	}
}

func TestGetBenchStatusMissingRow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	status, err := c.GetBenchStatus(context.Background())
	if err != nil {
		t.Fatalf("GetBenchStatus failed: %v", err)
	}
	if status.Knight || status.Hornet {
		t.Errorf("missing row should read as both awake, got %+v", status)
	}
}

func TestUpdateBenchStatusPatchesOneColumn(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "eq.1" {
			t.Errorf("id filter = %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.UpdateBenchStatus(context.Background(), models.Hornet, true); err != nil {
		t.Fatalf("UpdateBenchStatus failed: %v", err)
	}
	if body["hornet_resting"] != true {
		t.Errorf("hornet_resting = %v", body["hornet_resting"])
	}
	if _, ok := body["knight_resting"]; ok {
		t.Error("the other profile's column must not be touched")
	}
}
