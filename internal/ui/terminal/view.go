package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"workplay/internal/core/model"
	"workplay/internal/core/timekeeper"
)

// View runs the timer in a terminal.
type View struct {
	title   string
	mailbox *Mailbox
	handle  *timekeeper.ViewHandle
}

// NewView creates a terminal view with a live handle.
func NewView(title string) *View {
	mailbox := NewMailbox()
	return &View{
		title:   title,
		mailbox: mailbox,
		handle:  timekeeper.NewViewHandle(mailbox),
	}
}

// Handle returns the weak reference the timekeeper publishes through.
func (view *View) Handle() *timekeeper.ViewHandle {
	return view.handle
}

// Run blocks until the user quits or ctx is done. The handle is released on
// return so any run still in flight ends on its next tick.
func (view *View) Run(ctx context.Context, controller Controller, durations model.Durations, frame time.Duration, options ...tea.ProgramOption) error {
	defer view.handle.Release()

	options = append(options, tea.WithContext(ctx))
	program := tea.NewProgram(NewModel(view.title, controller, view.mailbox, durations, frame), options...)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, ctx.Err())) {
			return nil
		}
		return fmt.Errorf("run terminal view: %w", err)
	}
	return nil
}
