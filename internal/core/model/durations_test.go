package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDurationsAcceptsBounds(t *testing.T) {
	durations, err := NewDurations(MinMinutes, MaxMinutes)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, durations.Work())
	assert.Equal(t, 24*time.Hour, durations.Play())
}

func TestNewDurationsRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		work int
		play int
	}{
		{name: "zero work", work: 0, play: 5},
		{name: "negative play", work: 25, play: -1},
		{name: "too long", work: MaxMinutes + 1, play: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDurations(tc.work, tc.play)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDuration))
		})
	}
}

func TestDefaultDurationsAreValid(t *testing.T) {
	durations := DefaultDurations()
	require.NoError(t, durations.Validate())
	assert.Equal(t, 25*time.Minute, durations.Work())
	assert.Equal(t, 5*time.Minute, durations.Play())
}
