package preferences

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workplay/internal/core/model"
)

type recorder struct {
	work []int
	play []int
	fail error
}

func (rec *recorder) callbacks() Callbacks {
	return Callbacks{
		OnWorkMinutes: func(minutes int) error {
			if rec.fail != nil {
				return rec.fail
			}
			rec.work = append(rec.work, minutes)
			return nil
		},
		OnPlayMinutes: func(minutes int) error {
			rec.play = append(rec.play, minutes)
			return nil
		},
	}
}

func TestSpinnerButtonsStepByOneMinute(t *testing.T) {
	test.NewTempApp(t)
	rec := &recorder{}
	panel := New(model.Durations{WorkMinutes: 25, PlayMinutes: 5}, rec.callbacks())

	test.Tap(panel.work.plus)
	test.Tap(panel.work.plus)
	test.Tap(panel.play.minus)

	assert.Equal(t, []int{26, 27}, rec.work)
	assert.Equal(t, []int{4}, rec.play)
	assert.Equal(t, "27", panel.work.entry.Text)
	assert.Equal(t, model.Durations{WorkMinutes: 27, PlayMinutes: 4}, panel.Durations())
	assert.Empty(t, panel.Error())
}

func TestSpinnerRejectsZeroAndKeepsLastValue(t *testing.T) {
	test.NewTempApp(t)
	rec := &recorder{}
	panel := New(model.Durations{WorkMinutes: 25, PlayMinutes: 1}, rec.callbacks())

	test.Tap(panel.play.minus)

	assert.Empty(t, rec.play)
	assert.Equal(t, 1, panel.play.Value())
	assert.Contains(t, panel.Error(), "invalid duration")
}

func TestSpinnerTypedText(t *testing.T) {
	test.NewTempApp(t)
	rec := &recorder{}
	panel := New(model.DefaultDurations(), rec.callbacks())

	panel.work.handleText("abc")
	assert.NotEmpty(t, panel.Error())
	assert.Empty(t, rec.work)

	panel.work.handleText(" 40 ")
	assert.Equal(t, []int{40}, rec.work)
	assert.Equal(t, "40", panel.work.entry.Text)
	assert.Empty(t, panel.Error())
}

func TestSpinnerSurfacesCallbackError(t *testing.T) {
	test.NewTempApp(t)
	rec := &recorder{fail: errors.New("busy")}
	panel := New(model.DefaultDurations(), rec.callbacks())

	test.Tap(panel.work.plus)

	require.Equal(t, "busy", panel.Error())
	assert.Equal(t, model.DefaultWorkMinutes, panel.work.Value())
}

func TestParseMinutes(t *testing.T) {
	minutes, err := parseMinutes("15")
	require.NoError(t, err)
	assert.Equal(t, 15, minutes)

	_, err = parseMinutes("1.5")
	assert.ErrorIs(t, err, model.ErrInvalidDuration)
}
