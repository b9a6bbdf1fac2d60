// ABOUTME: Note operations against the notes resource.
// ABOUTME: Row structs map server shapes to domain models, failing loudly.

package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/harper/bench/internal/models"
)

const noteSelect = "id,text,image_url,liked,timestamp_text,author,comments"

// noteRow is the server-side shape of a notes row.
type noteRow struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	ImageURL  *string      `json:"image_url"`
	Liked     bool         `json:"liked"`
	Timestamp string       `json:"timestamp_text"`
	Author    string       `json:"author"`
	Comments  []commentRow `json:"comments"`
}

type commentRow struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
}

func (r *noteRow) toModel() (*models.Note, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parse note ID: %w", err)
	}
	author, err := models.ParseProfile(r.Author)
	if err != nil {
		return nil, fmt.Errorf("note %s: %w", r.ID, err)
	}

	comments := make([]models.Comment, 0, len(r.Comments))
	for _, cr := range r.Comments {
		c, err := cr.toModel()
		if err != nil {
			return nil, fmt.Errorf("note %s: %w", r.ID, err)
		}
		comments = append(comments, c)
	}

	note := &models.Note{
		ID:        id,
		Text:      r.Text,
		Liked:     r.Liked,
		Timestamp: r.Timestamp,
		Author:    author,
		Comments:  comments,
	}
	if r.ImageURL != nil {
		note.ImageURL = *r.ImageURL
	}
	return note, nil
}

func (r commentRow) toModel() (models.Comment, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("parse comment ID: %w", err)
	}
	author, err := models.ParseProfile(r.Author)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment %s: %w", r.ID, err)
	}
	return models.Comment{ID: id, Text: r.Text, Author: author, Timestamp: r.Timestamp}, nil
}

func commentRows(comments []models.Comment) []commentRow {
	rows := make([]commentRow, len(comments))
	for i, c := range comments {
		rows[i] = commentRow{
			ID:        c.ID.String(),
			Text:      c.Text,
			Author:    c.Author.String(),
			Timestamp: c.Timestamp,
		}
	}
	return rows
}

func noteRowFromModel(n *models.Note) noteRow {
	row := noteRow{
		ID:        n.ID.String(),
		Text:      n.Text,
		Liked:     n.Liked,
		Timestamp: n.Timestamp,
		Author:    n.Author.String(),
		Comments:  commentRows(n.Comments),
	}
	if n.ImageURL != "" {
		url := n.ImageURL
		row.ImageURL = &url
	}
	return row
}

// ListNotes returns all notes, most recent first (server creation order).
func (c *Client) ListNotes(ctx context.Context) ([]*models.Note, error) {
	var rows []noteRow
	path := "/notes?select=" + noteSelect + "&order=created_at.desc"
	if err := c.do(ctx, http.MethodGet, path, "", nil, &rows); err != nil {
		return nil, err
	}

	notes := make([]*models.Note, 0, len(rows))
	for i := range rows {
		n, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// CreateNote inserts a note under its client-owned id and returns the
// server's representation. An omitted timestamp is stamped with local
// time by the model constructor, never by the server.
func (c *Client) CreateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	if note.Timestamp == "" {
		note.Timestamp = time.Now().Format(models.TimestampLayout)
	}

	var rows []noteRow
	path := "/notes?select=" + noteSelect
	if err := c.do(ctx, http.MethodPost, path, "return=representation", noteRowFromModel(note), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("create note: empty representation")
	}
	return rows[0].toModel()
}

// DeleteNote removes a note by id. Deleting an absent note is not an
// error; the server simply matches zero rows.
func (c *Client) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/notes?id=eq."+id.String(), "return=minimal", nil, nil)
}

// NotePatch is a partial update for a note.
type NotePatch struct {
	Liked    *bool             `json:"liked,omitempty"`
	Comments *[]models.Comment `json:"-"`
}

type notePatchBody struct {
	Liked    *bool         `json:"liked,omitempty"`
	Comments *[]commentRow `json:"comments,omitempty"`
}

// PatchNote applies a partial update; no response body is expected.
func (c *Client) PatchNote(ctx context.Context, id uuid.UUID, patch NotePatch) error {
	body := notePatchBody{Liked: patch.Liked}
	if patch.Comments != nil {
		rows := commentRows(*patch.Comments)
		body.Comments = &rows
	}
	return c.do(ctx, http.MethodPatch, "/notes?id=eq."+id.String(), "return=minimal", body, nil)
}
