// ABOUTME: Prefix-based note lookup for CLI and MCP ergonomics.
// ABOUTME: Requires at least 6 characters and a unique match.

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harper/bench/internal/models"
)

var (
	ErrPrefixTooShort  = errors.New("prefix must be at least 6 characters")
	ErrAmbiguousPrefix = errors.New("prefix matches multiple notes")
)

// NoteByPrefix finds a note by id prefix (minimum 6 chars).
func (s *Store) NoteByPrefix(prefix string) (*models.Note, error) {
	if len(prefix) < 6 {
		return nil, ErrPrefixTooShort
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []*models.Note
	for _, n := range s.notes {
		if strings.HasPrefix(n.ID.String(), prefix) {
			matches = append(matches, n)
		}
	}
	if len(matches) == 0 {
		return nil, ErrNoteNotFound
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("%w: %d matches", ErrAmbiguousPrefix, len(matches))
	}
	return matches[0].Clone(), nil
}
