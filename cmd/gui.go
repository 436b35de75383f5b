package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"workplay/internal/ui/timerwindow"
	"workplay/internal/ui/tray"
)

const trayEventBuffer = 16

func runGUI(ctx context.Context, current *session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keeper := current.keeper
	logger := current.logger.Named("ui")

	fyneApp := app.NewWithID(appID)
	window := timerwindow.New(fyneApp, appTitle, current.config.Durations(), keeper)
	keeper.AttachView(window.Handle())
	window.SetOnClosed(func() {
		logger.Debug("timer window closed")
		cancel()
		fyneApp.Quit()
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		manager := tray.New(desktopApp, appTitle, tray.Callbacks{
			OnShow:  window.Show,
			OnStart: keeper.Start,
			OnStop:  keeper.Stop,
			OnQuit: func() {
				cancel()
				fyneApp.Quit()
			},
		})
		events := keeper.Subscribe(trayEventBuffer)
		go func() {
			for event := range events {
				fyne.Do(func() {
					manager.Update(event)
				})
			}
		}()
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()
	go keeper.Run(ctx)

	window.ShowAndRun()
	return nil
}
