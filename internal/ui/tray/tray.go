package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"workplay/internal/core/timekeeper"
	"workplay/internal/i18n"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnStop  func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	host       MenuHost
	title      string
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	showItem   *fyne.MenuItem
	startItem  *fyne.MenuItem
	stopItem   *fyne.MenuItem
	quitItem   *fyne.MenuItem
	installed  bool
}

// New creates a tray manager with the provided callbacks.
func New(host MenuHost, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.showItem = fyne.NewMenuItem(i18n.T("Show timer"), invoke(&manager.callbacks.OnShow))
	manager.startItem = fyne.NewMenuItem(i18n.T("Start"), invoke(&manager.callbacks.OnStart))
	manager.stopItem = fyne.NewMenuItem(i18n.T("Stop"), invoke(&manager.callbacks.OnStop))
	manager.quitItem = fyne.NewMenuItem(i18n.T("Quit"), invoke(&manager.callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	manager.Update(timekeeper.Event{Phase: timekeeper.PhaseIdle})
	return manager
}

// Update reflects the latest timer event in the menu.
// The native menu is only reinstalled when its contents change, so sub-second
// progress ticks cost nothing.
func (manager *Manager) Update(event timekeeper.Event) {
	status := StatusText(event)
	running := event.Phase != timekeeper.PhaseIdle
	if manager.installed && status == manager.statusItem.Label && running == manager.startItem.Disabled {
		return
	}
	manager.statusItem.Label = status
	manager.startItem.Disabled = running
	manager.stopItem.Disabled = !running
	manager.refreshMenu()
}

// Menu returns the menu currently installed.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.startItem,
		manager.stopItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	)
}

// StatusText renders e.g. "Status: Work 12:30 (50%)".
func StatusText(event timekeeper.Event) string {
	status := i18n.T("Status")
	if event.Phase == timekeeper.PhaseIdle {
		return fmt.Sprintf("%s: %s", status, i18n.PhaseLabel(event.Phase))
	}
	return fmt.Sprintf("%s: %s %s (%d%%)", status, i18n.PhaseLabel(event.Phase), i18n.FormatRemaining(event.Remaining), event.Progress)
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.Menu())
	}
	manager.installed = true
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
