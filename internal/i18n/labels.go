package i18n

import (
	"fmt"
	"time"

	"workplay/internal/core/timekeeper"
)

// PhaseLabel returns the translated phase name.
func PhaseLabel(phase timekeeper.Phase) string {
	switch phase {
	case timekeeper.PhaseWorking:
		return T("Work")
	case timekeeper.PhasePlaying:
		return T("Play")
	default:
		return T("Idle")
	}
}

// FormatRemaining renders a duration as mm:ss, rounding up partial seconds.
func FormatRemaining(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int((value + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
