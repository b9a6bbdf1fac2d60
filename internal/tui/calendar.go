// ABOUTME: Interactive mood calendar with hold-to-journal.
// ABOUTME: Space tapped picks a mood; space held past the threshold opens the journal.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/bench/internal/gesture"
	"github.com/harper/bench/internal/models"
	"github.com/harper/bench/internal/stats"
	"github.com/harper/bench/internal/store"
)

const (
	tickInterval = 50 * time.Millisecond
	// keyRepeatGap is how long without a repeat event before a held key
	// counts as released. Terminals report holds as repeats, not as
	// down/up pairs.
	keyRepeatGap = 350 * time.Millisecond
)

type overlay int

const (
	overlayNone overlay = iota
	overlayMood
	overlayJournal
	overlayAmbience
)

type tickMsg time.Time

// holdEvents collects detector callbacks between Update calls. Update
// runs on a single goroutine, so no locking is needed.
type holdEvents struct {
	progress  float64
	longPress string
	click     string
}

type Model struct {
	store   *store.Store
	profile models.Profile

	month  time.Month
	cursor int // day of month, 1-based

	detector *gesture.Detector
	events   *holdEvents
	holding  bool
	heldKey  string
	lastHeld time.Time

	overlay overlay
	moodIdx int
	journal textarea.Model
	volumes map[string]int
	status  string
}

func NewModel(st *store.Store, profile models.Profile) Model {
	events := &holdEvents{}
	det := gesture.New()
	det.OnProgress = func(_ string, p float64) { events.progress = p }
	det.OnLongPress = func(key string) { events.longPress = key }
	det.OnClick = func(key string) { events.click = key }

	ta := textarea.New()
	ta.Placeholder = "What burdens your mind today?"
	ta.CharLimit = 0

	return Model{
		store:    st,
		profile:  profile,
		month:    time.January,
		cursor:   1,
		detector: det,
		events:   events,
		journal:  ta,
		volumes:  map[string]int{"Bonfire": 50, "Howling Cliffs": 30, "Stray Shade": 0},
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) dateKey() string {
	return models.DateKey(m.month, m.cursor)
}

func daysIn(month time.Month) int {
	first := time.Date(models.Year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.updateTick()
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateTick() (tea.Model, tea.Cmd) {
	if m.holding {
		// No repeat event for a while means the key was let go.
		if time.Since(m.lastHeld) > keyRepeatGap {
			m.holding = false
			m.detector.Release(m.heldKey)
		} else {
			m.detector.Poll()
		}
	}
	return m.consumeEvents(), tick()
}

// consumeEvents turns detector callbacks into overlay transitions.
func (m Model) consumeEvents() Model {
	if key := m.events.longPress; key != "" {
		m.events.longPress = ""
		m.holding = false
		m.openJournal(key)
	}
	if key := m.events.click; key != "" {
		m.events.click = ""
		m.overlay = overlayMood
		m.moodIdx = 0
		m.status = "select a mood for " + key
	}
	return m
}

func (m *Model) openJournal(key string) {
	m.overlay = overlayJournal
	m.journal.SetValue(m.store.Entry(m.profile, key).Journal)
	m.journal.Focus()
	m.status = "journal for " + key
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayJournal:
		return m.updateJournalKey(msg)
	case overlayMood:
		return m.updateMoodKey(msg)
	case overlayAmbience:
		return m.updateAmbienceKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.overlay = overlayAmbience
		return m, nil
	case " ":
		now := time.Now()
		if !m.holding {
			m.holding = true
			m.heldKey = m.dateKey()
			m.detector.Press(m.heldKey)
		}
		m.lastHeld = now
		return m, nil
	case "left", "h":
		if m.cursor > 1 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < daysIn(m.month) {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 7 {
			m.cursor -= 7
		}
	case "down", "j":
		if m.cursor+7 <= daysIn(m.month) {
			m.cursor += 7
		}
	case "[", "pgup":
		if m.month > time.January {
			m.month--
			m.clampCursor()
		}
	case "]", "pgdown":
		if m.month < time.December {
			m.month++
			m.clampCursor()
		}
	}
	return m, nil
}

func (m *Model) clampCursor() {
	if max := daysIn(m.month); m.cursor > max {
		m.cursor = max
	}
}

func (m Model) updateMoodKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	moods := models.Moods()
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		m.status = ""
	case "left", "h":
		if m.moodIdx > 0 {
			m.moodIdx--
		}
	case "right", "l":
		if m.moodIdx < len(moods)-1 {
			m.moodIdx++
		}
	case "1", "2", "3", "4", "5":
		m.moodIdx = int(msg.String()[0] - '1')
		fallthrough
	case "enter", " ":
		mood := moods[m.moodIdx]
		if err := m.store.SetMood(m.profile, m.dateKey(), mood); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("%s %s on %s", mood.Glyph(), mood, m.dateKey())
		}
		m.overlay = overlayNone
	}
	return m, nil
}

func (m Model) updateJournalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		m.journal.Blur()
		m.status = ""
		return m, nil
	case "ctrl+s":
		if err := m.store.SetJournal(m.profile, m.dateKey(), m.journal.Value()); err != nil {
			m.status = err.Error()
		} else {
			m.status = "journal saved for " + m.dateKey()
		}
		m.overlay = overlayNone
		m.journal.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.journal, cmd = m.journal.Update(msg)
	return m, cmd
}

func (m Model) updateAmbienceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		m.overlay = overlayNone
	}
	return m, nil
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	journalDot    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render("·")
)

func (m Model) View() string {
	var sb strings.Builder

	entries := m.store.Calendar(m.profile)
	summary := stats.Compute(entries)

	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s — %s %d", m.profile, m.month, models.Year)))
	sb.WriteString("\n")
	sb.WriteString(faintStyle.Render(fmt.Sprintf("dominant %s %s · soul vessel %d%%",
		summary.DominantGlyph(), summary.DominantLabel(), summary.WellbeingPercent)))
	sb.WriteString("\n\n")

	sb.WriteString(m.viewMonth(entries))
	sb.WriteString("\n")

	if m.holding || m.events.progress > 0 {
		sb.WriteString(progressBar(m.events.progress))
		sb.WriteString("\n")
	}

	switch m.overlay {
	case overlayMood:
		sb.WriteString(m.viewMoodPicker())
	case overlayJournal:
		sb.WriteString(m.viewJournal())
	case overlayAmbience:
		sb.WriteString(m.viewAmbience())
	default:
		sb.WriteString(faintStyle.Render("tap space: mood · hold space: journal · [/]: month · tab: ambience · q: quit"))
		sb.WriteString("\n")
	}

	if m.status != "" {
		sb.WriteString(m.status)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) viewMonth(entries map[string]models.DailyData) string {
	var sb strings.Builder
	sb.WriteString(faintStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	sb.WriteString("\n")

	first := time.Date(models.Year, m.month, 1, 0, 0, 0, 0, time.UTC)
	col := int(first.Weekday())
	sb.WriteString(strings.Repeat("    ", col))

	for day := 1; day <= daysIn(m.month); day++ {
		data := entries[models.DateKey(m.month, day)]
		cell := fmt.Sprintf("%3d", day)
		if data.Mood != "" {
			cell = " " + data.Mood.Glyph()
		}
		if day == m.cursor {
			cell = selectedStyle.Render(cell)
		}
		sb.WriteString(cell)
		if data.Journal != "" {
			sb.WriteString(journalDot)
		} else {
			sb.WriteString(" ")
		}

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

func progressBar(progress float64) string {
	const width = 24
	filled := int(progress * width)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + faintStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) viewMoodPicker() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Select Mood"))
	sb.WriteString("\n")
	for i, mood := range models.Moods() {
		cell := fmt.Sprintf(" %s %s ", mood.Glyph(), mood)
		if i == m.moodIdx {
			cell = selectedStyle.Render(cell)
		}
		sb.WriteString(cell)
	}
	sb.WriteString("\n")
	sb.WriteString(faintStyle.Render("1-5 or ←/→ then enter · esc: close"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewJournal() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Journal — " + m.dateKey()))
	sb.WriteString("\n")
	sb.WriteString(m.journal.View())
	sb.WriteString("\n")
	sb.WriteString(faintStyle.Render("ctrl+s: save · esc: discard"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewAmbience() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Soundscapes"))
	sb.WriteString("\n")
	for _, name := range []string{"Bonfire", "Howling Cliffs", "Stray Shade"} {
		vol := m.volumes[name]
		sb.WriteString(fmt.Sprintf("  %-15s %s %d\n", name, progressBar(float64(vol)/100), vol))
	}
	sb.WriteString(faintStyle.Render("esc/tab: close"))
	sb.WriteString("\n")
	return sb.String()
}

// Run starts the interactive calendar.
func Run(st *store.Store, profile models.Profile) error {
	_, err := tea.NewProgram(NewModel(st, profile)).Run()
	return err
}
