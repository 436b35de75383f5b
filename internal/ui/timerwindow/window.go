package timerwindow

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"workplay/internal/core/model"
	"workplay/internal/core/timekeeper"
	"workplay/internal/i18n"
	"workplay/internal/ui/preferences"
)

// Controller is what the window drives.
type Controller interface {
	Start()
	Stop()
	SetWorkMinutes(minutes int) error
	SetPlayMinutes(minutes int) error
}

// Window is the main timer window: spinners, buttons and a progress bar.
type Window struct {
	window      fyne.Window
	controller  Controller
	handle      *timekeeper.ViewHandle
	panel       *preferences.Panel
	phaseLabel  *canvas.Text
	timerLabel  *canvas.Text
	progress    *widget.ProgressBar
	startButton *widget.Button
	stopButton  *widget.Button
	onClosed    func()
}

var (
	workColor = color.NRGBA{R: 214, G: 69, B: 65, A: 255}
	playColor = color.NRGBA{R: 67, G: 160, B: 71, A: 255}
	idleColor = color.NRGBA{R: 158, G: 158, B: 158, A: 255}
)

// New creates the timer window. The caller attaches Handle() to the
// timekeeper; closing the window releases it.
func New(app fyne.App, title string, durations model.Durations, controller Controller) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	phaseLabel := canvas.NewText(i18n.T("Idle"), idleColor)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 21

	timerLabel := canvas.NewText("--:--", theme.Color(theme.ColorNameForeground))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Monospace: true}
	timerLabel.TextSize = 16

	progress := widget.NewProgressBar()
	progress.Min = 0
	progress.Max = 100
	progress.TextFormatter = func() string {
		return fmt.Sprintf("%.0f%%", progress.Value)
	}

	timer := &Window{
		window:     window,
		controller: controller,
		phaseLabel: phaseLabel,
		timerLabel: timerLabel,
		progress:   progress,
	}
	timer.handle = timekeeper.NewViewHandle(timer)

	timer.panel = preferences.New(durations, preferences.Callbacks{
		OnWorkMinutes: controller.SetWorkMinutes,
		OnPlayMinutes: controller.SetPlayMinutes,
	})

	timer.startButton = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), controller.Start)
	timer.startButton.Importance = widget.HighImportance
	timer.stopButton = widget.NewButtonWithIcon(i18n.T("Stop"), theme.MediaStopIcon(), controller.Stop)
	timer.stopButton.Disable()

	buttons := container.NewHBox(layout.NewSpacer(), timer.startButton, timer.stopButton, layout.NewSpacer())
	content := container.NewVBox(
		phaseLabel,
		timerLabel,
		progress,
		widget.NewSeparator(),
		timer.panel.CanvasObject(),
		buttons,
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(360, 260))
	window.SetOnClosed(func() {
		timer.handle.Release()
		if timer.onClosed != nil {
			timer.onClosed()
		}
	})

	return timer
}

// Handle returns the weak reference the timekeeper publishes through.
func (timer *Window) Handle() *timekeeper.ViewHandle {
	return timer.handle
}

// SetOnClosed registers a callback run after the window is closed.
func (timer *Window) SetOnClosed(handler func()) {
	timer.onClosed = handler
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// ShowAndRun displays the window and runs the app event loop.
func (timer *Window) ShowAndRun() {
	timer.window.ShowAndRun()
}

// ShowProgress implements timekeeper.Surface. It may be called from any
// goroutine and never blocks.
func (timer *Window) ShowProgress(event timekeeper.Event) {
	fyne.Do(func() {
		timer.applyEventUnsafe(event)
	})
}

func (timer *Window) applyEventUnsafe(event timekeeper.Event) {
	timer.progress.SetValue(float64(event.Progress))

	timer.phaseLabel.Text = i18n.PhaseLabel(event.Phase)
	timer.phaseLabel.Color = phaseColor(event.Phase)
	timer.phaseLabel.Refresh()

	if event.Phase == timekeeper.PhaseIdle {
		timer.timerLabel.Text = "--:--"
		timer.startButton.Enable()
		timer.stopButton.Disable()
	} else {
		timer.timerLabel.Text = i18n.FormatRemaining(event.Remaining)
		timer.startButton.Disable()
		timer.stopButton.Enable()
	}
	timer.timerLabel.Refresh()
}

func phaseColor(phase timekeeper.Phase) color.Color {
	switch phase {
	case timekeeper.PhaseWorking:
		return workColor
	case timekeeper.PhasePlaying:
		return playColor
	default:
		return idleColor
	}
}
