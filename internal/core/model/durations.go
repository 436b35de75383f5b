package model

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinMinutes = 1
	MaxMinutes = 24 * 60

	DefaultWorkMinutes = 25
	DefaultPlayMinutes = 5
)

// ErrInvalidDuration indicates a phase length outside [MinMinutes, MaxMinutes].
var ErrInvalidDuration = errors.New("invalid duration")

// Durations holds the configured phase lengths in whole minutes.
type Durations struct {
	WorkMinutes int
	PlayMinutes int
}

// DefaultDurations returns the classic 25/5 split.
func DefaultDurations() Durations {
	return Durations{
		WorkMinutes: DefaultWorkMinutes,
		PlayMinutes: DefaultPlayMinutes,
	}
}

// NewDurations validates both values.
func NewDurations(workMinutes, playMinutes int) (Durations, error) {
	if err := ValidateMinutes(workMinutes); err != nil {
		return Durations{}, fmt.Errorf("work: %w", err)
	}
	if err := ValidateMinutes(playMinutes); err != nil {
		return Durations{}, fmt.Errorf("play: %w", err)
	}
	return Durations{WorkMinutes: workMinutes, PlayMinutes: playMinutes}, nil
}

// ValidateMinutes rejects zero, negative and absurdly long phases.
func ValidateMinutes(minutes int) error {
	if minutes < MinMinutes || minutes > MaxMinutes {
		return fmt.Errorf("%w: %d minutes (want %d-%d)", ErrInvalidDuration, minutes, MinMinutes, MaxMinutes)
	}
	return nil
}

// Validate checks both phase lengths.
func (durations Durations) Validate() error {
	_, err := NewDurations(durations.WorkMinutes, durations.PlayMinutes)
	return err
}

// Work returns the work phase length.
func (durations Durations) Work() time.Duration {
	return time.Duration(durations.WorkMinutes) * time.Minute
}

// Play returns the play phase length.
func (durations Durations) Play() time.Duration {
	return time.Duration(durations.PlayMinutes) * time.Minute
}
