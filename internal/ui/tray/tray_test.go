package tray

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workplay/internal/core/timekeeper"
)

type fakeHost struct {
	menus []*fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

func (host *fakeHost) last() *fyne.Menu {
	return host.menus[len(host.menus)-1]
}

func findItem(menu *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

func TestTrayInstallsIdleMenu(t *testing.T) {
	host := &fakeHost{}
	New(host, "workplay", Callbacks{})

	require.Len(t, host.menus, 1)
	menu := host.last()
	assert.Equal(t, "Status: Idle", menu.Items[0].Label)
	assert.False(t, findItem(menu, "Start").Disabled)
	assert.True(t, findItem(menu, "Stop").Disabled)
}

func TestTrayTracksRunningPhase(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, "workplay", Callbacks{})

	manager.Update(timekeeper.Event{Phase: timekeeper.PhaseWorking, Progress: 48, Remaining: 12*time.Minute + 5*time.Second})

	menu := host.last()
	assert.Equal(t, "Status: Work 12:05 (48%)", menu.Items[0].Label)
	assert.True(t, findItem(menu, "Start").Disabled)
	assert.False(t, findItem(menu, "Stop").Disabled)
}

func TestTrayReinstallsMenuOnlyWhenTextChanges(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, "workplay", Callbacks{})
	require.Len(t, host.menus, 1)

	total := 25 * time.Minute
	for elapsed := 100 * time.Millisecond; elapsed < time.Second; elapsed += 100 * time.Millisecond {
		manager.Update(timekeeper.Event{Phase: timekeeper.PhaseWorking, Progress: 100, Remaining: total - elapsed, Total: total})
	}
	assert.Len(t, host.menus, 2)
	assert.Equal(t, "Status: Work 25:00 (100%)", host.last().Items[0].Label)

	manager.Update(timekeeper.Event{Phase: timekeeper.PhaseWorking, Progress: 100, Remaining: total - time.Second, Total: total})
	assert.Len(t, host.menus, 3)
	assert.Equal(t, "Status: Work 24:59 (100%)", host.last().Items[0].Label)

	manager.Update(timekeeper.Event{Phase: timekeeper.PhaseIdle})
	manager.Update(timekeeper.Event{Phase: timekeeper.PhaseIdle})
	assert.Len(t, host.menus, 4)
	assert.False(t, findItem(host.last(), "Start").Disabled)
}

func TestTrayItemsInvokeCallbacks(t *testing.T) {
	host := &fakeHost{}
	var calls []string
	New(host, "workplay", Callbacks{
		OnShow:  func() { calls = append(calls, "show") },
		OnStart: func() { calls = append(calls, "start") },
		OnStop:  func() { calls = append(calls, "stop") },
	})

	menu := host.last()
	for _, label := range []string{"Show timer", "Start", "Stop", "Quit"} {
		item := findItem(menu, label)
		require.NotNil(t, item, label)
		item.Action()
	}
	assert.Equal(t, []string{"show", "start", "stop"}, calls)
}

func TestStatusTextPlaying(t *testing.T) {
	text := StatusText(timekeeper.Event{Phase: timekeeper.PhasePlaying, Progress: 100, Remaining: 5 * time.Minute})
	assert.Equal(t, "Status: Play 05:00 (100%)", text)
}
