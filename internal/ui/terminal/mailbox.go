package terminal

import (
	"sync"

	"workplay/internal/core/timekeeper"
)

// Mailbox is a timekeeper.Surface that keeps only the latest event. The
// Bubble Tea model polls it on every frame, so publishing never blocks on
// the program's event loop.
type Mailbox struct {
	mu     sync.Mutex
	latest timekeeper.Event
	seq    uint64
}

// NewMailbox starts idle.
func NewMailbox() *Mailbox {
	return &Mailbox{latest: timekeeper.Event{Phase: timekeeper.PhaseIdle}}
}

func (mailbox *Mailbox) ShowProgress(event timekeeper.Event) {
	mailbox.mu.Lock()
	defer mailbox.mu.Unlock()
	mailbox.latest = event
	mailbox.seq++
}

// Latest returns the newest event and its sequence number.
func (mailbox *Mailbox) Latest() (timekeeper.Event, uint64) {
	mailbox.mu.Lock()
	defer mailbox.mu.Unlock()
	return mailbox.latest, mailbox.seq
}
