package terminal

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"workplay/internal/core/model"
	"workplay/internal/core/timekeeper"
	"workplay/internal/i18n"
)

const (
	defaultFrame    = 100 * time.Millisecond
	defaultBarWidth = 40
	minBarWidth     = 10
	maxBarWidth     = 60
)

// Controller is what the terminal view drives.
type Controller interface {
	Start()
	Stop()
	SetWorkMinutes(minutes int) error
	SetPlayMinutes(minutes int) error
}

type frameMsg time.Time

// Model is the Bubble Tea model for the terminal timer.
type Model struct {
	title      string
	controller Controller
	mailbox    *Mailbox
	frame      time.Duration
	event      timekeeper.Event
	seq        uint64
	durations  model.Durations
	err        error
	barWidth   int
}

// NewModel builds the model. frame is how often the mailbox is polled.
func NewModel(title string, controller Controller, mailbox *Mailbox, durations model.Durations, frame time.Duration) Model {
	if frame <= 0 {
		frame = defaultFrame
	}
	event, seq := mailbox.Latest()
	return Model{
		title:      title,
		controller: controller,
		mailbox:    mailbox,
		frame:      frame,
		event:      event,
		seq:        seq,
		durations:  durations,
		barWidth:   defaultBarWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.barWidth = min(max(msg.Width-16, minBarWidth), maxBarWidth)
		return m, nil
	case frameMsg:
		m.refresh()
		return m, m.nextFrame()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "s", "enter":
		m.controller.Start()
	case "x":
		m.controller.Stop()
	case "+", "=":
		m.adjustWork(1)
	case "-", "_":
		m.adjustWork(-1)
	case "]":
		m.adjustPlay(1)
	case "[":
		m.adjustPlay(-1)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// refresh copies the newest mailbox event and reports whether it was new.
func (m *Model) refresh() bool {
	event, seq := m.mailbox.Latest()
	if seq == m.seq {
		return false
	}
	m.event, m.seq = event, seq
	return true
}

func (m *Model) adjustWork(delta int) {
	next := m.durations.WorkMinutes + delta
	if err := m.controller.SetWorkMinutes(next); err != nil {
		m.err = err
		return
	}
	m.durations.WorkMinutes = next
	m.err = nil
}

func (m *Model) adjustPlay(delta int) {
	next := m.durations.PlayMinutes + delta
	if err := m.controller.SetPlayMinutes(next); err != nil {
		m.err = err
		return
	}
	m.durations.PlayMinutes = next
	m.err = nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	phase := phaseStyles[m.event.Phase].Render(i18n.PhaseLabel(m.event.Phase))
	remaining := "--:--"
	if m.event.Phase != timekeeper.PhaseIdle {
		remaining = i18n.FormatRemaining(m.event.Remaining)
	}
	fmt.Fprintf(&b, "%s  %s\n", phase, remaining)
	fmt.Fprintf(&b, "%s %3d%%\n\n", m.bar(), m.event.Progress)

	fmt.Fprintf(&b, "%s: %d   %s: %d\n", i18n.T("Work minutes"), m.durations.WorkMinutes, i18n.T("Play minutes"), m.durations.PlayMinutes)
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s start • x stop • +/- work • [/] play • q quit"))

	return frameStyle.Render(b.String()) + "\n"
}

func (m Model) bar() string {
	progress := min(max(m.event.Progress, 0), 100)
	filled := m.barWidth * progress / 100
	style := phaseStyles[m.event.Phase]
	return style.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", m.barWidth-filled))
}

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(at time.Time) tea.Msg {
		return frameMsg(at)
	})
}
