// ABOUTME: Tests for the interactive calendar model's update logic.
// ABOUTME: Drives Update directly with key and tick messages.

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(store.New(nil, nil), models.Knight)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestNavigationClampsToMonth(t *testing.T) {
	m := newTestModel(t)

	if m.month != time.January || m.cursor != 1 {
		t.Fatalf("unexpected initial position: %s %d", m.month, m.cursor)
	}

	m = update(t, m, runeKey('h'))
	if m.cursor != 1 {
		t.Error("cursor must not move before day 1")
	}

	for i := 0; i < 40; i++ {
		m = update(t, m, runeKey('l'))
	}
	if m.cursor != 31 {
		t.Errorf("cursor must stop at the last day, got %d", m.cursor)
	}

	m = update(t, m, runeKey('k'))
	if m.cursor != 24 {
		t.Errorf("up should move back a week, got %d", m.cursor)
	}
}

func TestMonthSwitchClampsCursor(t *testing.T) {
	m := newTestModel(t)
	m.month = time.January
	m.cursor = 31

	m = update(t, m, runeKey(']'))
	if m.month != time.February {
		t.Errorf("expected February, got %s", m.month)
	}
	if m.cursor != 28 {
		t.Errorf("cursor should clamp to February's length, got %d", m.cursor)
	}

	m = update(t, m, runeKey('['))
	if m.month != time.January {
		t.Errorf("expected January again, got %s", m.month)
	}
}

func TestMonthBoundaries(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, runeKey('['))
	if m.month != time.January {
		t.Error("cannot page before January")
	}

	m.month = time.December
	m = update(t, m, runeKey(']'))
	if m.month != time.December {
		t.Error("cannot page past December")
	}
}

func TestClickOpensMoodPicker(t *testing.T) {
	m := newTestModel(t)

	m.events.click = m.dateKey()
	m = m.consumeEvents()

	if m.overlay != overlayMood {
		t.Fatalf("expected mood overlay, got %d", m.overlay)
	}
}

func TestMoodSelectionByDigit(t *testing.T) {
	m := newTestModel(t)
	m.overlay = overlayMood

	m = update(t, m, runeKey('3'))

	if m.overlay != overlayNone {
		t.Error("picker should close after selection")
	}
	entry := m.store.Entry(models.Knight, m.dateKey())
	if entry.Mood != models.MoodAngry {
		t.Errorf("digit 3 should pick the third mood (angry), got %q", entry.Mood)
	}
}

func TestMoodPickerEscape(t *testing.T) {
	m := newTestModel(t)
	m.overlay = overlayMood

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.overlay != overlayNone {
		t.Error("esc should close the picker")
	}
	if !m.store.Entry(models.Knight, m.dateKey()).IsZero() {
		t.Error("esc must not record a mood")
	}
}

func TestLongPressOpensJournalWithExistingText(t *testing.T) {
	m := newTestModel(t)
	if err := m.store.SetJournal(models.Knight, m.dateKey(), "already written"); err != nil {
		t.Fatalf("SetJournal failed: %v", err)
	}

	m.events.longPress = m.dateKey()
	m = m.consumeEvents()

	if m.overlay != overlayJournal {
		t.Fatalf("expected journal overlay, got %d", m.overlay)
	}
	if m.journal.Value() != "already written" {
		t.Errorf("journal should preload the entry, got %q", m.journal.Value())
	}
}

func TestJournalSave(t *testing.T) {
	m := newTestModel(t)
	m.events.longPress = m.dateKey()
	m = m.consumeEvents()

	m.journal.SetValue("a new thought")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.overlay != overlayNone {
		t.Error("save should close the journal")
	}
	if got := m.store.Entry(models.Knight, m.dateKey()).Journal; got != "a new thought" {
		t.Errorf("journal not saved, got %q", got)
	}
}

func TestJournalDiscard(t *testing.T) {
	m := newTestModel(t)
	m.events.longPress = m.dateKey()
	m = m.consumeEvents()

	m.journal.SetValue("never mind")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.overlay != overlayNone {
		t.Error("esc should close the journal")
	}
	if got := m.store.Entry(models.Knight, m.dateKey()).Journal; got != "" {
		t.Errorf("discarded text must not be saved, got %q", got)
	}
}

func TestSpaceHoldDrivesDetector(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.holding {
		t.Fatal("space should start a hold")
	}
	if !m.detector.Pressing() {
		t.Fatal("detector should see the press")
	}

	// Simulate the repeat gap elapsing: the next tick releases.
	m.lastHeld = time.Now().Add(-time.Second)
	m = update(t, m, tickMsg(time.Now()))
	if m.holding {
		t.Error("stale hold should be released on tick")
	}
	// The early release is a tap, which opens the mood picker.
	if m.overlay != overlayMood {
		t.Errorf("expected mood overlay after tap, got %d", m.overlay)
	}
}

func TestAmbienceToggle(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.overlay != overlayAmbience {
		t.Fatal("tab should open the ambience panel")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.overlay != overlayNone {
		t.Error("tab should close the ambience panel")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected tea.QuitMsg, got %#v", msg)
	}
}

func TestViewShowsGrid(t *testing.T) {
	m := newTestModel(t)
	if err := m.store.SetMood(models.Knight, "2026-01-05", models.MoodHappy); err != nil {
		t.Fatalf("SetMood failed: %v", err)
	}

	view := m.View()
	if !strings.Contains(view, "January") {
		t.Error("view should name the month")
	}
	if !strings.Contains(view, models.MoodHappy.Glyph()) {
		t.Error("view should render recorded moods")
	}
}
