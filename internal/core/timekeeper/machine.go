package timekeeper

import (
	"math"
	"time"

	"workplay/internal/core/model"
)

// State is a point-in-time copy of the machine for observers.
type State struct {
	Phase     Phase
	StartedAt time.Time
	Progress  int
	Remaining time.Duration
	Total     time.Duration
	Durations model.Durations
}

// Running reports whether a cycle is in flight.
func (state State) Running() bool {
	return state.Phase != PhaseIdle
}

// Machine is the Idle -> Working -> Playing -> Idle countdown.
// It is not safe for concurrent use; TimeKeeper guards it with a mutex.
type Machine struct {
	durations model.Durations
	phase     Phase
	startedAt time.Time
	total     time.Duration
	progress  int
}

// NewMachine returns an idle machine with validated durations.
func NewMachine(durations model.Durations) (*Machine, error) {
	if err := durations.Validate(); err != nil {
		return nil, err
	}
	return &Machine{
		durations: durations,
		phase:     PhaseIdle,
	}, nil
}

// Configure replaces both durations. The running phase keeps its own total.
func (machine *Machine) Configure(durations model.Durations) error {
	if err := durations.Validate(); err != nil {
		return err
	}
	machine.durations = durations
	return nil
}

// SetWorkMinutes updates the work duration used by the next work phase.
func (machine *Machine) SetWorkMinutes(minutes int) error {
	if err := model.ValidateMinutes(minutes); err != nil {
		return err
	}
	machine.durations.WorkMinutes = minutes
	return nil
}

// SetPlayMinutes updates the play duration used by the next play phase.
func (machine *Machine) SetPlayMinutes(minutes int) error {
	if err := model.ValidateMinutes(minutes); err != nil {
		return err
	}
	machine.durations.PlayMinutes = minutes
	return nil
}

// Durations returns the configured durations.
func (machine *Machine) Durations() model.Durations {
	return machine.durations
}

// Phase returns the current phase.
func (machine *Machine) Phase() Phase {
	return machine.phase
}

// Start enters the work phase. Calling it mid-run changes nothing.
func (machine *Machine) Start(now time.Time) (Event, bool) {
	if machine.phase != PhaseIdle {
		return Event{}, false
	}
	return machine.enter(PhaseWorking, now, machine.durations.Work()), true
}

// Stop abandons the current run and reports the return to idle.
func (machine *Machine) Stop(now time.Time) (Event, bool) {
	if machine.phase == PhaseIdle {
		return Event{}, false
	}
	machine.reset()
	return machine.phaseEvent(now), true
}

// Abort returns to idle without producing an event.
func (machine *Machine) Abort() {
	machine.reset()
}

// Tick re-evaluates elapsed time. Idle machines never emit.
func (machine *Machine) Tick(now time.Time) (Event, bool) {
	if machine.phase == PhaseIdle {
		return Event{}, false
	}

	elapsed := now.Sub(machine.startedAt)
	if elapsed >= machine.total {
		switch machine.phase {
		case PhaseWorking:
			return machine.enter(PhasePlaying, now, machine.durations.Play()), true
		default:
			machine.reset()
			return machine.phaseEvent(now), true
		}
	}

	machine.progress = countdown(elapsed, machine.total)
	return Event{
		Type:      EventProgress,
		Phase:     machine.phase,
		Progress:  machine.progress,
		Remaining: machine.total - clampElapsed(elapsed),
		Total:     machine.total,
		At:        now,
	}, true
}

// Snapshot copies the machine state as seen at now.
func (machine *Machine) Snapshot(now time.Time) State {
	state := State{
		Phase:     machine.phase,
		StartedAt: machine.startedAt,
		Progress:  machine.progress,
		Total:     machine.total,
		Durations: machine.durations,
	}
	if machine.phase != PhaseIdle {
		state.Remaining = machine.total - clampElapsed(now.Sub(machine.startedAt))
		if state.Remaining < 0 {
			state.Remaining = 0
		}
	}
	return state
}

func (machine *Machine) enter(phase Phase, now time.Time, total time.Duration) Event {
	machine.phase = phase
	machine.startedAt = now
	machine.total = total
	machine.progress = 100
	return machine.phaseEvent(now)
}

func (machine *Machine) reset() {
	machine.phase = PhaseIdle
	machine.startedAt = time.Time{}
	machine.total = 0
	machine.progress = 0
}

func (machine *Machine) phaseEvent(now time.Time) Event {
	return Event{
		Type:      EventPhaseChange,
		Phase:     machine.phase,
		Progress:  machine.progress,
		Remaining: machine.total,
		Total:     machine.total,
		At:        now,
	}
}

// countdown returns the percent of total still remaining.
func countdown(elapsed, total time.Duration) int {
	if total <= 0 {
		return 0
	}
	elapsed = clampElapsed(elapsed)
	remaining := float64(total-elapsed) / float64(total)
	return int(math.Round(remaining * 100))
}

// clampElapsed guards against clocks that step backwards.
func clampElapsed(elapsed time.Duration) time.Duration {
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
