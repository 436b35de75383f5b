package timekeeper

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"workplay/internal/core/model"
)

const (
	defaultPollingInterval = 100 * time.Millisecond
	defaultWorkerInterval  = time.Second

	progressLogEvery = 5 * time.Second
	progressLogTail  = 5 * time.Second
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Mode         Mode
	Clock        Clock
}

// TimeKeeper owns the timer state machine and drives it from a ticker.
type TimeKeeper struct {
	mu        sync.Mutex
	machine   *Machine
	options   Config
	logger    hclog.Logger
	view      *ViewHandle
	events    []chan Event
	stopRun   chan struct{}
	workers   sync.WaitGroup
	closed    bool
	lastLogAt time.Duration
	runID     string
	runLogger hclog.Logger
}

// New creates an idle TimeKeeper.
func New(durations model.Durations, options Config, logger hclog.Logger) (*TimeKeeper, error) {
	machine, err := NewMachine(durations)
	if err != nil {
		return nil, err
	}
	if options.Mode == "" {
		options.Mode = ModePolling
	}
	if options.TickInterval <= 0 {
		options.TickInterval = defaultPollingInterval
		if options.Mode == ModeWorker {
			options.TickInterval = defaultWorkerInterval
		}
	}
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &TimeKeeper{
		machine:   machine,
		options:   options,
		logger:    logger,
		runLogger: logger,
		lastLogAt: -1,
	}, nil
}

// AttachView routes every event to the surface behind handle.
func (keeper *TimeKeeper) AttachView(handle *ViewHandle) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.view = handle
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Mode returns the scheduling mode in use.
func (keeper *TimeKeeper) Mode() Mode {
	return keeper.options.Mode
}

// TickInterval returns the cadence the runner ticks at.
func (keeper *TimeKeeper) TickInterval() time.Duration {
	return keeper.options.TickInterval
}

// Configure replaces both durations.
func (keeper *TimeKeeper) Configure(durations model.Durations) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if err := keeper.machine.Configure(durations); err != nil {
		return err
	}
	keeper.logger.Info("durations updated", "work_minutes", durations.WorkMinutes, "play_minutes", durations.PlayMinutes)
	return nil
}

// SetWorkMinutes updates the work duration for the next work phase. Views
// call it on every keystroke, so it only logs at debug.
func (keeper *TimeKeeper) SetWorkMinutes(minutes int) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if err := keeper.machine.SetWorkMinutes(minutes); err != nil {
		return err
	}
	keeper.logger.Debug("work time updated", "minutes", minutes)
	return nil
}

// SetPlayMinutes updates the play duration for the next play phase.
func (keeper *TimeKeeper) SetPlayMinutes(minutes int) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if err := keeper.machine.SetPlayMinutes(minutes); err != nil {
		return err
	}
	keeper.logger.Debug("play time updated", "minutes", minutes)
	return nil
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.machine.Snapshot(keeper.options.Clock.Now())
}

// Start begins a work phase. It is a no-op while a run is in flight.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	event, ok := keeper.machine.Start(keeper.options.Clock.Now())
	if !ok {
		keeper.logger.Debug("start ignored, run in progress", "phase", keeper.machine.Phase())
		return
	}
	keeper.runID = uuid.New().String()
	keeper.runLogger = keeper.logger.With("run", keeper.runID)
	durations := keeper.machine.Durations()
	keeper.runLogger.Info("timer started", "phase", event.Phase,
		"work_minutes", durations.WorkMinutes, "play_minutes", durations.PlayMinutes)
	keeper.lastLogAt = -1

	if !keeper.publishLocked(event) {
		return
	}
	if keeper.options.Mode == ModeWorker {
		keeper.spawnWorkerLocked()
	}
}

// Stop abandons the current run and returns to idle.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	keeper.cancelRunLocked()
	event, ok := keeper.machine.Stop(keeper.options.Clock.Now())
	if !ok {
		return
	}
	keeper.runLogger.Info("timer stopped")
	keeper.publishLocked(event)
}

// Tick evaluates the machine at now. Runners call it on every interval;
// tests call it directly with simulated time.
func (keeper *TimeKeeper) Tick(now time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.tickLocked(now)
}

// Run drives the keeper until ctx is cancelled, then closes it.
func (keeper *TimeKeeper) Run(ctx context.Context) {
	defer keeper.Close()

	if keeper.options.Mode == ModeWorker {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			keeper.Tick(keeper.options.Clock.Now())
		}
	}
}

// Close cancels any run, waits for its worker and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.cancelRunLocked()
	keeper.machine.Abort()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	keeper.workers.Wait()
	for _, ch := range events {
		close(ch)
	}
}

// tickLocked reports whether a run is still active afterwards.
func (keeper *TimeKeeper) tickLocked(now time.Time) bool {
	if keeper.closed {
		return false
	}

	event, ok := keeper.machine.Tick(now)
	if !ok {
		return false
	}
	if !keeper.publishLocked(event) {
		return false
	}

	switch {
	case event.Type == EventPhaseChange && event.Phase == PhasePlaying:
		keeper.runLogger.Info("work timer completed, switching to play timer")
		keeper.lastLogAt = -1
	case event.Type == EventPhaseChange && event.Phase == PhaseIdle:
		keeper.runLogger.Info("play timer completed, timer reset")
		keeper.cancelRunLocked()
	case event.Type == EventProgress:
		keeper.logProgressLocked(event)
	}
	return event.Phase != PhaseIdle
}

// publishLocked hands event to the view and subscribers. A released view
// ends the run silently and reports false.
func (keeper *TimeKeeper) publishLocked(event Event) bool {
	event.RunID = keeper.runID
	if keeper.view != nil {
		surface, ok := keeper.view.Upgrade()
		if !ok {
			keeper.runLogger.Debug("view released, abandoning run", "phase", event.Phase)
			keeper.cancelRunLocked()
			keeper.machine.Abort()
			return false
		}
		surface.ShowProgress(event)
	}
	keeper.emitLocked(event)
	return true
}

func (keeper *TimeKeeper) logProgressLocked(event Event) {
	elapsed := (event.Total - event.Remaining).Truncate(time.Second)
	if elapsed == keeper.lastLogAt {
		return
	}
	if elapsed%progressLogEvery != 0 && event.Remaining > progressLogTail {
		return
	}
	keeper.lastLogAt = elapsed
	keeper.runLogger.Debug("progress",
		"phase", event.Phase,
		"percent", event.Progress,
		"remaining", event.Remaining.Round(time.Second),
		"total", event.Total)
}

func (keeper *TimeKeeper) spawnWorkerLocked() {
	keeper.cancelRunLocked()
	stop := make(chan struct{})
	keeper.stopRun = stop
	keeper.workers.Add(1)
	go keeper.work(stop)
}

func (keeper *TimeKeeper) cancelRunLocked() {
	if keeper.stopRun != nil {
		close(keeper.stopRun)
		keeper.stopRun = nil
	}
}

// work owns the ticker for a single run in worker mode.
func (keeper *TimeKeeper) work(stop chan struct{}) {
	defer keeper.workers.Done()

	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			keeper.mu.Lock()
			if keeper.stopRun != stop {
				keeper.mu.Unlock()
				return
			}
			active := keeper.tickLocked(keeper.options.Clock.Now())
			if !active && keeper.stopRun == stop {
				keeper.cancelRunLocked()
			}
			keeper.mu.Unlock()
			if !active {
				return
			}
		}
	}
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
