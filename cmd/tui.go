package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"workplay/internal/ui/terminal"
)

func runTUI(ctx context.Context, current *session) error {
	ctx, cancel := context.WithCancel(ctx)

	view := terminal.NewView(appTitle)
	current.keeper.AttachView(view.Handle())

	done := make(chan struct{})
	go func() {
		defer close(done)
		current.keeper.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	return view.Run(ctx, current.keeper, current.config.Durations(), 0, tea.WithAltScreen())
}
