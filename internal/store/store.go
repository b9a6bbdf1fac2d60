// ABOUTME: Local optimistic store for notes, calendars, and bench status.
// ABOUTME: Mutations apply locally first; remote writes are queued per entity key.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/rest"
)

var ErrNoteNotFound = errors.New("note not found")

// Remote is the slice of the data API the store persists through.
// *rest.Client satisfies it; tests substitute fakes.
type Remote interface {
	ListNotes(ctx context.Context) ([]*models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) (*models.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
	PatchNote(ctx context.Context, id uuid.UUID, patch rest.NotePatch) error
	GetCalendarEntries(ctx context.Context, profile models.Profile, year int) (map[string]models.DailyData, error)
	UpsertCalendarEntry(ctx context.Context, profile models.Profile, date string, data models.DailyData) error
	GetBenchStatus(ctx context.Context) (models.BenchStatus, error)
	UpdateBenchStatus(ctx context.Context, profile models.Profile, resting bool) error
}

// Store holds the working copy of all entities for a session. Every
// user mutation lands here synchronously; the matching remote write is
// fire-and-forget through the queue. A nil remote runs fully offline; a
// nil cache runs remote-only.
type Store struct {
	mu        sync.Mutex
	notes     []*models.Note
	calendars map[models.Profile]map[string]models.DailyData
	bench     models.BenchStatus

	remote Remote
	cache  *Cache
	queue  *Queue
}

// New builds a store. When a cache is present its blob is read once,
// here, and never again.
func New(remote Remote, cache *Cache) *Store {
	s := &Store{
		calendars: map[models.Profile]map[string]models.DailyData{
			models.Knight: {},
			models.Hornet: {},
		},
		remote: remote,
		cache:  cache,
		queue:  NewQueue(nil),
	}
	if cache != nil {
		s.calendars = cache.Load()
	}
	return s
}

// Flush blocks until queued remote writes have been attempted. A
// short-lived process must call this before exit or queued writes are
// lost.
func (s *Store) Flush() {
	s.queue.Wait()
}

func (s *Store) Close() error {
	s.Flush()
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}

// --- Notes ---

// Notes returns a copy of the in-memory sequence, most recent first.
func (s *Store) Notes() []*models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Clone()
	}
	return out
}

// Note returns a copy of one note.
func (s *Store) Note(id uuid.UUID) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.findLocked(id)
	if n == nil {
		return nil, ErrNoteNotFound
	}
	return n.Clone(), nil
}

func (s *Store) findLocked(id uuid.UUID) *models.Note {
	for _, n := range s.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// PostNote creates a note under a client-owned id, prepends it, and
// queues the remote create. The returned copy is what the board shows
// immediately.
func (s *Store) PostNote(text, imageURL string, author models.Profile) *models.Note {
	note := models.NewNote(text, imageURL, author)

	s.mu.Lock()
	s.notes = append([]*models.Note{note}, s.notes...)
	s.mu.Unlock()

	created := note.Clone()
	s.enqueueRemote("note:"+note.ID.String(), "create note", func(ctx context.Context) error {
		_, err := s.remote.CreateNote(ctx, created)
		return err
	})
	return note.Clone()
}

// DeleteNote removes the note locally whatever the remote outcome.
func (s *Store) DeleteNote(id uuid.UUID) error {
	s.mu.Lock()
	found := false
	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	s.notes = kept
	s.mu.Unlock()

	if !found {
		return ErrNoteNotFound
	}
	s.enqueueRemote("note:"+id.String(), "delete note", func(ctx context.Context) error {
		return s.remote.DeleteNote(ctx, id)
	})
	return nil
}

// ToggleLike flips liked in place and patches the remote copy with the
// new value. Returns the new state.
func (s *Store) ToggleLike(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	n := s.findLocked(id)
	if n == nil {
		s.mu.Unlock()
		return false, ErrNoteNotFound
	}
	n.ToggleLike()
	liked := n.Liked
	s.mu.Unlock()

	s.enqueueRemote("note:"+id.String(), "patch like", func(ctx context.Context) error {
		v := liked
		return s.remote.PatchNote(ctx, id, rest.NotePatch{Liked: &v})
	})
	return liked, nil
}

// AddComment appends a comment and patches the remote copy with the
// full comment sequence.
func (s *Store) AddComment(id uuid.UUID, text string, author models.Profile) (models.Comment, error) {
	comment := models.NewComment(text, author)

	s.mu.Lock()
	n := s.findLocked(id)
	if n == nil {
		s.mu.Unlock()
		return models.Comment{}, ErrNoteNotFound
	}
	n.AddComment(comment)
	comments := make([]models.Comment, len(n.Comments))
	copy(comments, n.Comments)
	s.mu.Unlock()

	s.enqueueRemote("note:"+id.String(), "patch comments", func(ctx context.Context) error {
		return s.remote.PatchNote(ctx, id, rest.NotePatch{Comments: &comments})
	})
	return comment, nil
}

// HydrateNotes replaces the local notes slice with the remote one.
// Replace, not merge: hydration assumes no local edits are pending.
func (s *Store) HydrateNotes(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	notes, err := s.remote.ListNotes(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
	return nil
}

// --- Calendar ---

// Calendar returns a copy of one profile's entries.
func (s *Store) Calendar(profile models.Profile) map[string]models.DailyData {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]models.DailyData, len(s.calendars[profile]))
	for k, v := range s.calendars[profile] {
		out[k] = v
	}
	return out
}

// Entry returns one entry; the zero DailyData if none exists.
func (s *Store) Entry(profile models.Profile, date string) models.DailyData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendars[profile][date]
}

// SetMood merges a mood into (profile, date) and queues the upsert.
func (s *Store) SetMood(profile models.Profile, date string, mood models.Mood) error {
	return s.mergeEntry(profile, date, models.DailyData{Mood: mood})
}

// SetJournal merges journal text into (profile, date) and queues the upsert.
func (s *Store) SetJournal(profile models.Profile, date string, journal string) error {
	return s.mergeEntry(profile, date, models.DailyData{Journal: journal})
}

func (s *Store) mergeEntry(profile models.Profile, date string, change models.DailyData) error {
	if _, err := models.ParseDate(date); err != nil {
		return err
	}

	s.mu.Lock()
	cal := s.calendars[profile]
	if cal == nil {
		cal = map[string]models.DailyData{}
		s.calendars[profile] = cal
	}
	cal[date] = cal[date].Merge(change)
	s.mu.Unlock()

	// The full blob is rewritten on every mutation, synchronously.
	if s.cache != nil {
		s.mu.Lock()
		snapshot := map[models.Profile]map[string]models.DailyData{}
		for p, m := range s.calendars {
			copied := make(map[string]models.DailyData, len(m))
			for k, v := range m {
				copied[k] = v
			}
			snapshot[p] = copied
		}
		s.mu.Unlock()
		if err := s.cache.Save(snapshot); err != nil {
			return err
		}
	}

	// Only the changed fields go over the wire; the server merges.
	s.enqueueRemote("cal:"+profile.String()+":"+date, "upsert calendar entry", func(ctx context.Context) error {
		return s.remote.UpsertCalendarEntry(ctx, profile, date, change)
	})
	return nil
}

// HydrateCalendar replaces one profile's entries with the remote year.
func (s *Store) HydrateCalendar(ctx context.Context, profile models.Profile) error {
	if s.remote == nil {
		return nil
	}
	entries, err := s.remote.GetCalendarEntries(ctx, profile, models.Year)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.calendars[profile] = entries
	s.mu.Unlock()
	return nil
}

// --- Bench ---

// Bench returns the current resting state.
func (s *Store) Bench() models.BenchStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bench
}

// ToggleRest flips the profile's resting flag and queues the patch.
// Returns the new state.
func (s *Store) ToggleRest(profile models.Profile) bool {
	s.mu.Lock()
	resting := !s.bench.Resting(profile)
	s.bench.SetResting(profile, resting)
	s.mu.Unlock()

	s.enqueueRemote("bench:"+profile.String(), "update bench status", func(ctx context.Context) error {
		return s.remote.UpdateBenchStatus(ctx, profile, resting)
	})
	return resting
}

// HydrateBench replaces the resting state with the remote singleton.
func (s *Store) HydrateBench(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	status, err := s.remote.GetBenchStatus(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bench = status
	s.mu.Unlock()
	return nil
}

// enqueueRemote is a no-op without a remote, mirroring the silent-skip
// behavior when sync is not configured.
func (s *Store) enqueueRemote(key, label string, fn func(context.Context) error) {
	if s.remote == nil {
		return
	}
	s.queue.Enqueue(key, label, fn)
}
