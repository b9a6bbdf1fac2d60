// ABOUTME: Note and Comment models for the pinboard message board.
// ABOUTME: Notes carry client-owned UUIDs; comments are append-only.

package models

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout matches the display format notes have always carried.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

type Comment struct {
	ID        uuid.UUID
	Text      string
	Author    Profile
	Timestamp string
}

type Note struct {
	ID        uuid.UUID
	Text      string
	ImageURL  string
	Liked     bool
	Timestamp string
	Author    Profile
	Comments  []Comment
}

func NewNote(text, imageURL string, author Profile) *Note {
	return &Note{
		ID:        uuid.New(),
		Text:      text,
		ImageURL:  imageURL,
		Liked:     false,
		Timestamp: time.Now().Format(TimestampLayout),
		Author:    author,
		Comments:  []Comment{},
	}
}

func NewComment(text string, author Profile) Comment {
	return Comment{
		ID:        uuid.New(),
		Text:      text,
		Author:    author,
		Timestamp: time.Now().Format(TimestampLayout),
	}
}

func (n *Note) ToggleLike() {
	n.Liked = !n.Liked
}

// AddComment appends; comments are never reordered or edited.
func (n *Note) AddComment(c Comment) {
	n.Comments = append(n.Comments, c)
}

// Clone returns a deep copy safe to hand to callers.
func (n *Note) Clone() *Note {
	out := *n
	out.Comments = make([]Comment, len(n.Comments))
	copy(out.Comments, n.Comments)
	return &out
}
