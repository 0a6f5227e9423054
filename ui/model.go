package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chelyabinsk/renamer/rename"
)

// FileLogEntry is one row in the copied-files list
type FileLogEntry struct {
	OriginalName string
	NewName      string
	Status       string // "✓", "❌"
	Error        string
}

func (f FileLogEntry) FilterValue() string { return f.OriginalName }
func (f FileLogEntry) Title() string       { return f.OriginalName }
func (f FileLogEntry) Description() string {
	if f.Error != "" {
		return fmt.Sprintf("❌ %s", f.Error)
	}
	return fmt.Sprintf("✓ → %s", f.NewName)
}

// Model drives the interactive progress display for one rename operation.
// It consumes the core event channel one event at a time and quits after the
// terminal event arrives.
type Model struct {
	plan      []rename.PlannedFile
	events    <-chan rename.Event
	cancel    context.CancelFunc
	completed int
	total     int
	entries   []FileLogEntry

	overallProgress progress.Model
	fileList        list.Model

	width  int
	height int

	result   rename.Done
	finished bool
	quitting bool

	Version string
}

// NewModel creates a model for an operation whose plan has already been
// computed. The executor re-derives the same plan internally, so indices in
// Progress events line up with plan entries. cancel stops the executor when
// the user quits; it may be nil.
func NewModel(plan []rename.PlannedFile, events <-chan rename.Event, cancel context.CancelFunc, version string) Model {
	fileList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	fileList.Title = "Copied Files"
	fileList.SetShowHelp(false)

	return Model{
		plan:            plan,
		events:          events,
		cancel:          cancel,
		total:           len(plan),
		overallProgress: progress.New(progress.WithDefaultGradient()),
		fileList:        fileList,
		Version:         version,
	}
}

// Result returns the terminal event received from the executor. Only valid
// when Finished reports true.
func (m Model) Result() rename.Done {
	return m.result
}

// Finished reports whether the terminal event has arrived. A model that quit
// without finishing carries no result.
func (m Model) Finished() bool {
	return m.finished
}

// waitForEvent blocks until the next core event and converts it to a tea.Msg.
func waitForEvent(events <-chan rename.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		switch ev := ev.(type) {
		case rename.Progress:
			return ProgressMsg(ev)
		case rename.Done:
			return DoneMsg(ev)
		}
		return nil
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Cancel the executor and keep consuming events: it stops
			// before the next file and emits its terminal event, which
			// quits the program with the real result.
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.overallProgress.Width = msg.Width - 20
		m.fileList.SetSize(msg.Width-4, msg.Height/2)

	case ProgressMsg:
		m.completed = msg.Completed
		if msg.Completed >= 1 && msg.Completed <= len(m.plan) {
			pf := m.plan[msg.Completed-1]
			m.entries = append(m.entries, FileLogEntry{
				OriginalName: pf.Source,
				NewName:      pf.NewName,
				Status:       "✓",
			})
			m.syncList()
		}
		return m, waitForEvent(m.events)

	case DoneMsg:
		m.result = rename.Done(msg)
		m.finished = true
		if m.result.Err != nil && m.completed < len(m.plan) {
			pf := m.plan[m.completed]
			m.entries = append(m.entries, FileLogEntry{
				OriginalName: pf.Source,
				Status:       "❌",
				Error:        m.result.Err.Error(),
			})
			m.syncList()
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) syncList() {
	items := make([]list.Item, len(m.entries))
	for i, entry := range m.entries {
		items[i] = entry
	}
	m.fileList.SetItems(items)
}

// View implements tea.Model
func (m Model) View() string {
	header := HeaderStyle.Render(fmt.Sprintf("Renamer %s", m.Version))

	overallPercent := 0.0
	if m.total > 0 {
		overallPercent = float64(m.completed) / float64(m.total)
	}
	overallView := fmt.Sprintf("Progress: %s (%d/%d)",
		m.overallProgress.ViewAs(overallPercent),
		m.completed,
		m.total)

	controls := "Controls: [q] Cancel"
	if m.quitting && !m.finished {
		controls = "Cancelling, waiting for the current file..."
	}

	sections := []string{
		header,
		overallView,
		m.fileList.View(),
		controls,
	}

	return strings.Join(sections, "\n\n")
}
