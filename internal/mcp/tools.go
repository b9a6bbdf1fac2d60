// ABOUTME: MCP tools for board, calendar, and bench operations.
// ABOUTME: Maps CLI functionality to the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// post_note
	s.server.AddTool(&mcp.Tool{
		Name:        "post_note",
		Description: "Pin a new note to the message board",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"text": {"type": "string", "description": "Note text"},
				"image_url": {"type": "string", "description": "Optional image URL or data URI"},
				"author": {"type": "string", "enum": ["Knight", "Hornet"], "description": "Posting profile"}
			},
			"required": ["text", "author"]
		}`),
	}, s.handlePostNote)

	// list_notes
	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List board notes, most recent first",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"limit": {"type": "integer", "description": "Max results", "default": 20}
			}
		}`),
	}, s.handleListNotes)

	// delete_note
	s.server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a board note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix (6+ chars)"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteNote)

	// toggle_like
	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_like",
		Description: "Toggle the liked flag on a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleToggleLike)

	// add_comment
	s.server.AddTool(&mcp.Tool{
		Name:        "add_comment",
		Description: "Append a comment to a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"text": {"type": "string", "description": "Comment text"},
				"author": {"type": "string", "enum": ["Knight", "Hornet"], "description": "Commenting profile"}
			},
			"required": ["id", "text", "author"]
		}`),
	}, s.handleAddComment)

	// set_mood
	s.server.AddTool(&mcp.Tool{
		Name:        "set_mood",
		Description: "Record a mood for a calendar day",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"profile": {"type": "string", "enum": ["Knight", "Hornet"]},
				"date": {"type": "string", "description": "ISO date (YYYY-MM-DD)"},
				"mood": {"type": "string", "enum": ["happy", "sad", "angry", "neutral", "peaceful"]}
			},
			"required": ["profile", "date", "mood"]
		}`),
	}, s.handleSetMood)

	// set_journal
	s.server.AddTool(&mcp.Tool{
		Name:        "set_journal",
		Description: "Write journal text for a calendar day",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"profile": {"type": "string", "enum": ["Knight", "Hornet"]},
				"date": {"type": "string", "description": "ISO date (YYYY-MM-DD)"},
				"journal": {"type": "string", "description": "Journal text"}
			},
			"required": ["profile", "date", "journal"]
		}`),
	}, s.handleSetJournal)

	// get_calendar
	s.server.AddTool(&mcp.Tool{
		Name:        "get_calendar",
		Description: "Get a profile's calendar entries",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"profile": {"type": "string", "enum": ["Knight", "Hornet"]}
			},
			"required": ["profile"]
		}`),
	}, s.handleGetCalendar)

	// mood_stats
	s.server.AddTool(&mcp.Tool{
		Name:        "mood_stats",
		Description: "Dominant mood and wellbeing percentage for a profile",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"profile": {"type": "string", "enum": ["Knight", "Hornet"]}
			},
			"required": ["profile"]
		}`),
	}, s.handleMoodStats)

	// bench_status
	s.server.AddTool(&mcp.Tool{
		Name:        "bench_status",
		Description: "Resting state for both profiles",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleBenchStatus)

	// toggle_rest
	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_rest",
		Description: "Toggle a profile's resting state on the bench",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"profile": {"type": "string", "enum": ["Knight", "Hornet"]}
			},
			"required": ["profile"]
		}`),
	}, s.handleToggleRest)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func (s *Server) handlePostNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Text     string `json:"text"`
		ImageURL string `json:"image_url"`
		Author   string `json:"author"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	author, err := models.ParseProfile(params.Author)
	if err != nil {
		return errorResult("%v", err), nil
	}
	if params.Text == "" && params.ImageURL == "" {
		return errorResult("note needs text or an image"), nil
	}

	note := s.store.PostNote(params.Text, params.ImageURL, author)
	return textResult(fmt.Sprintf("Pinned note %s", note.ID.String())), nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Limit int `json:"limit"`
	}
	params.Limit = 20 // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	notes := s.store.Notes()
	if params.Limit > 0 && len(notes) > params.Limit {
		notes = notes[:params.Limit]
	}

	data, _ := json.MarshalIndent(notes, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, err := s.store.NoteByPrefix(params.ID)
	if err != nil {
		return errorResult("failed to find note: %v", err), nil
	}
	if err := s.store.DeleteNote(note.ID); err != nil {
		return errorResult("failed to delete note: %v", err), nil
	}
	return textResult(fmt.Sprintf("Deleted note %s", note.ID.String()[:6])), nil
}

func (s *Server) handleToggleLike(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, err := s.store.NoteByPrefix(params.ID)
	if err != nil {
		return errorResult("failed to find note: %v", err), nil
	}
	liked, err := s.store.ToggleLike(note.ID)
	if err != nil {
		return errorResult("failed to toggle like: %v", err), nil
	}
	if liked {
		return textResult("Liked"), nil
	}
	return textResult("Unliked"), nil
}

func (s *Server) handleAddComment(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID     string `json:"id"`
		Text   string `json:"text"`
		Author string `json:"author"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	author, err := models.ParseProfile(params.Author)
	if err != nil {
		return errorResult("%v", err), nil
	}
	note, err := s.store.NoteByPrefix(params.ID)
	if err != nil {
		return errorResult("failed to find note: %v", err), nil
	}
	comment, err := s.store.AddComment(note.ID, params.Text, author)
	if err != nil {
		return errorResult("failed to add comment: %v", err), nil
	}
	return textResult(fmt.Sprintf("Added comment %s", comment.ID.String()[:6])), nil
}

func (s *Server) handleSetMood(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Profile string `json:"profile"`
		Date    string `json:"date"`
		Mood    string `json:"mood"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	profile, err := models.ParseProfile(params.Profile)
	if err != nil {
		return errorResult("%v", err), nil
	}
	mood, err := models.ParseMood(params.Mood)
	if err != nil {
		return errorResult("%v", err), nil
	}
	if err := s.store.SetMood(profile, params.Date, mood); err != nil {
		return errorResult("failed to set mood: %v", err), nil
	}
	return textResult(fmt.Sprintf("%s %s on %s", mood.Glyph(), mood, params.Date)), nil
}

func (s *Server) handleSetJournal(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Profile string `json:"profile"`
		Date    string `json:"date"`
		Journal string `json:"journal"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	profile, err := models.ParseProfile(params.Profile)
	if err != nil {
		return errorResult("%v", err), nil
	}
	if err := s.store.SetJournal(profile, params.Date, params.Journal); err != nil {
		return errorResult("failed to set journal: %v", err), nil
	}
	return textResult(fmt.Sprintf("Journal saved for %s", params.Date)), nil
}

func (s *Server) handleGetCalendar(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Profile string `json:"profile"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	profile, err := models.ParseProfile(params.Profile)
	if err != nil {
		return errorResult("%v", err), nil
	}
	data, _ := json.MarshalIndent(s.store.Calendar(profile), "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleMoodStats(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Profile string `json:"profile"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	profile, err := models.ParseProfile(params.Profile)
	if err != nil {
		return errorResult("%v", err), nil
	}
	summary := stats.Compute(s.store.Calendar(profile))
	return textResult(fmt.Sprintf("dominant=%s wellbeing=%d%% tracked=%d",
		summary.DominantLabel(), summary.WellbeingPercent, summary.Tracked)), nil
}

func (s *Server) handleBenchStatus(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := s.store.Bench()
	data, _ := json.MarshalIndent(status, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleToggleRest(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Profile string `json:"profile"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	profile, err := models.ParseProfile(params.Profile)
	if err != nil {
		return errorResult("%v", err), nil
	}
	if s.store.ToggleRest(profile) {
		return textResult(fmt.Sprintf("%s is resting", profile)), nil
	}
	return textResult(fmt.Sprintf("%s is wandering", profile)), nil
}
