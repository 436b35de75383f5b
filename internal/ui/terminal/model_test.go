package terminal

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workplay/internal/core/model"
	"workplay/internal/core/timekeeper"
)

type fakeController struct {
	mailbox *Mailbox
	starts  int
	stops   int
	work    []int
	play    []int
}

func (controller *fakeController) Start() {
	controller.starts++
	controller.mailbox.ShowProgress(timekeeper.Event{
		Type:      timekeeper.EventPhaseChange,
		Phase:     timekeeper.PhaseWorking,
		Progress:  100,
		Remaining: 25 * time.Minute,
		Total:     25 * time.Minute,
	})
}

func (controller *fakeController) Stop() {
	controller.stops++
	controller.mailbox.ShowProgress(timekeeper.Event{Type: timekeeper.EventPhaseChange, Phase: timekeeper.PhaseIdle})
}

func (controller *fakeController) SetWorkMinutes(minutes int) error {
	if err := model.ValidateMinutes(minutes); err != nil {
		return err
	}
	controller.work = append(controller.work, minutes)
	return nil
}

func (controller *fakeController) SetPlayMinutes(minutes int) error {
	if err := model.ValidateMinutes(minutes); err != nil {
		return err
	}
	controller.play = append(controller.play, minutes)
	return nil
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func newModel(durations model.Durations) (Model, *fakeController) {
	mailbox := NewMailbox()
	controller := &fakeController{mailbox: mailbox}
	return NewModel("workplay", controller, mailbox, durations, time.Millisecond), controller
}

func update(t *testing.T, current Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := current.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func TestStartAndStopKeys(t *testing.T) {
	current, controller := newModel(model.DefaultDurations())

	current, _ = update(t, current, runes("s"))
	assert.Equal(t, 1, controller.starts)
	assert.Equal(t, timekeeper.PhaseWorking, current.event.Phase)
	assert.Contains(t, current.View(), "25:00")
	assert.Contains(t, current.View(), "100%")

	current, _ = update(t, current, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, controller.starts)

	current, _ = update(t, current, runes("x"))
	assert.Equal(t, 1, controller.stops)
	assert.Equal(t, timekeeper.PhaseIdle, current.event.Phase)
	assert.Contains(t, current.View(), "--:--")
}

func TestMinuteKeysAdjustDurations(t *testing.T) {
	current, controller := newModel(model.Durations{WorkMinutes: 25, PlayMinutes: 5})

	current, _ = update(t, current, runes("+"))
	current, _ = update(t, current, runes("]"))
	current, _ = update(t, current, runes("["))
	current, _ = update(t, current, runes("["))

	assert.Equal(t, []int{26}, controller.work)
	assert.Equal(t, []int{6, 5, 4}, controller.play)
	assert.Equal(t, model.Durations{WorkMinutes: 26, PlayMinutes: 4}, current.durations)
	assert.Contains(t, current.View(), "Work minutes: 26")
}

func TestRejectedMinutesKeepLastValue(t *testing.T) {
	current, controller := newModel(model.Durations{WorkMinutes: 1, PlayMinutes: 1})

	current, _ = update(t, current, runes("-"))

	assert.Empty(t, controller.work)
	assert.Equal(t, 1, current.durations.WorkMinutes)
	require.Error(t, current.err)
	assert.ErrorIs(t, current.err, model.ErrInvalidDuration)

	current, _ = update(t, current, runes("+"))
	assert.NoError(t, current.err)
	assert.Equal(t, 2, current.durations.WorkMinutes)
}

func TestFramePicksUpLatestEvent(t *testing.T) {
	current, controller := newModel(model.DefaultDurations())

	controller.mailbox.ShowProgress(timekeeper.Event{Phase: timekeeper.PhasePlaying, Progress: 40, Remaining: 2 * time.Minute})
	current, cmd := update(t, current, frameMsg(time.Now()))

	assert.NotNil(t, cmd)
	assert.Equal(t, timekeeper.PhasePlaying, current.event.Phase)
	assert.Contains(t, current.View(), " 40%")
	assert.Contains(t, current.View(), "02:00")
	assert.False(t, current.refresh())

	controller.mailbox.ShowProgress(timekeeper.Event{Phase: timekeeper.PhasePlaying, Progress: 39, Remaining: 119 * time.Second})
	assert.True(t, current.refresh())
	assert.Equal(t, 39, current.event.Progress)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		current, _ := newModel(model.DefaultDurations())
		_, cmd := update(t, current, key)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, key.String())
	}
}

func TestWindowSizeClampsBar(t *testing.T) {
	current, _ := newModel(model.DefaultDurations())

	current, _ = update(t, current, tea.WindowSizeMsg{Width: 20})
	assert.Equal(t, minBarWidth, current.barWidth)

	current, _ = update(t, current, tea.WindowSizeMsg{Width: 500})
	assert.Equal(t, maxBarWidth, current.barWidth)
}

func TestViewHandleReleasedAfterRelease(t *testing.T) {
	view := NewView("workplay")
	surface, ok := view.Handle().Upgrade()
	require.True(t, ok)
	assert.Same(t, view.mailbox, surface)

	view.Handle().Release()
	_, ok = view.Handle().Upgrade()
	assert.False(t, ok)
}

func TestViewRunStopsWhenContextDone(t *testing.T) {
	view := NewView("workplay")
	controller := &fakeController{mailbox: view.mailbox}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- view.Run(ctx, controller, model.DefaultDurations(), time.Millisecond,
			tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler())
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("terminal view kept running after its context was cancelled")
	}
	_, ok := view.Handle().Upgrade()
	assert.False(t, ok)
}
