package timekeeper

import "time"

// Phase represents the current timer mode.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseWorking Phase = "working"
	PhasePlaying Phase = "playing"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventPhaseChange EventType = "phase_change"
	EventProgress    EventType = "progress"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Progress  int
	Remaining time.Duration
	Total     time.Duration
	At        time.Time
	// RunID identifies the Start call that produced the event. Empty when
	// the machine is driven directly.
	RunID string
}

// Mode selects how ticks are scheduled.
type Mode string

const (
	// ModePolling ticks continuously from Run, even while idle.
	ModePolling Mode = "polling"
	// ModeWorker spawns one goroutine per run that exits when the run ends.
	ModeWorker Mode = "worker"
)

// ParseMode converts a flag or config value to a Mode.
func ParseMode(value string) (Mode, bool) {
	switch Mode(value) {
	case ModePolling, "":
		return ModePolling, true
	case ModeWorker:
		return ModeWorker, true
	}
	return "", false
}
